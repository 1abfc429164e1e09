package store

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"gamesapi/models"
)

var ErrGameNotFound = errors.New("game not found")

// GameStore holds the live set of games in memory. Gin dispatches requests on
// multiple goroutines, so every operation takes the mutex.
type GameStore struct {
	mu    sync.Mutex
	games []models.Game
}

// NewGameStore builds a store preloaded with the given games. Seed entries
// without an ID get one assigned.
func NewGameStore(seed ...models.Game) *GameStore {
	s := &GameStore{games: make([]models.Game, 0, len(seed))}
	for _, g := range seed {
		if g.ID == uuid.Nil {
			g.ID = uuid.New()
		}
		s.games = append(s.games, g)
	}
	return s
}

// DefaultGames returns the records loaded at startup.
func DefaultGames() []models.Game {
	return []models.Game{
		{Name: "Street Fighter II", Genre: "Fighting", Price: 19.99, ReleaseDate: models.NewDate(1992, time.July, 15)},
		{Name: "Final Fantasy XIV", Genre: "Roleplaying", Price: 59.99, ReleaseDate: models.NewDate(2010, time.September, 30)},
		{Name: "FIFA 23", Genre: "Sports", Price: 69.99, ReleaseDate: models.NewDate(2022, time.September, 27)},
	}
}

// List returns all games in insertion order.
func (s *GameStore) List() []models.Game {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Game, len(s.games))
	copy(out, s.games)
	return out
}

// Get returns the game with the given id, or ErrGameNotFound.
func (s *GameStore) Get(id uuid.UUID) (models.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, g := range s.games {
		if g.ID == id {
			return g, nil
		}
	}
	return models.Game{}, ErrGameNotFound
}

// Create assigns a fresh id to the candidate, appends it and returns the
// stored game. Any client-supplied id is discarded.
func (s *GameStore) Create(game models.Game) models.Game {
	s.mu.Lock()
	defer s.mu.Unlock()

	game.ID = uuid.New()
	s.games = append(s.games, game)
	return game
}

// Update replaces every field except the id. The store is left untouched when
// no game with the id exists.
func (s *GameStore) Update(id uuid.UUID, game models.Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.games {
		if s.games[i].ID == id {
			game.ID = id
			s.games[i] = game
			return nil
		}
	}
	return ErrGameNotFound
}

// Delete removes the game with the given id, preserving the order of the rest.
func (s *GameStore) Delete(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.games {
		if s.games[i].ID == id {
			s.games = append(s.games[:i], s.games[i+1:]...)
			return nil
		}
	}
	return ErrGameNotFound
}

// Count reports the number of stored games.
func (s *GameStore) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.games)
}
