package models

import "github.com/google/uuid"

// Genre is a planned lookup table for Game.Genre. Games currently carry the
// genre name as free text; no endpoints are wired for this type yet.
type Genre struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name" validate:"required,min=3,max=20"`
}
