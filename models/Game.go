package models

import "github.com/google/uuid"

type Game struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Genre       string    `json:"genre"`
	Price       float64   `json:"price"`
	ReleaseDate Date      `json:"releaseDate"`
}

// GameInput is the request body for create and update. The server always
// assigns ids, so the shape carries no id field and anything the client sends
// under "id" is ignored.
type GameInput struct {
	Name        string  `json:"name" validate:"required,min=3,max=50"`
	Genre       string  `json:"genre" validate:"required,min=3,max=20"`
	Price       float64 `json:"price" validate:"required,gte=1,lte=100"`
	ReleaseDate Date    `json:"releaseDate" validate:"required"`
}

// Game converts the candidate into an entity without an id.
func (in GameInput) Game() Game {
	return Game{
		Name:        in.Name,
		Genre:       in.Genre,
		Price:       in.Price,
		ReleaseDate: in.ReleaseDate,
	}
}
