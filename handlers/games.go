package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"gamesapi/models"
	"gamesapi/monitoring"
	"gamesapi/store"
	"gamesapi/utils"
)

// GameHandler serves the /games routes against an injected store.
type GameHandler struct {
	Store *store.GameStore
}

func NewGameHandler(s *store.GameStore) *GameHandler {
	return &GameHandler{Store: s}
}

// parseGameID accepts only the canonical 36-char hyphenated uuid form.
// uuid.Parse alone would also take braced, urn and unhyphenated spellings.
func parseGameID(c *gin.Context) (uuid.UUID, bool) {
	raw := c.Param("id")
	if len(raw) != 36 {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

func (h *GameHandler) GetGames(c *gin.Context) {
	c.JSON(http.StatusOK, h.Store.List())
}

func (h *GameHandler) GetGameByID(c *gin.Context) {
	id, ok := parseGameID(c)
	if !ok {
		// Malformed ids never reach the store
		c.Status(http.StatusNotFound)
		return
	}

	game, err := h.Store.Get(id)
	if err != nil {
		c.Status(http.StatusNotFound)
		return
	}
	c.JSON(http.StatusOK, game)
}

func (h *GameHandler) CreateGame(c *gin.Context) {
	var input models.GameInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := utils.ValidateStruct(input); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	created := h.Store.Create(input.Game())
	monitoring.GamesTotal.Set(float64(h.Store.Count()))

	c.Header("Location", "/games/"+created.ID.String())
	c.JSON(http.StatusCreated, created)
}

func (h *GameHandler) UpdateGame(c *gin.Context) {
	id, ok := parseGameID(c)
	if !ok {
		c.Status(http.StatusNotFound)
		return
	}
	if _, err := h.Store.Get(id); err != nil {
		c.Status(http.StatusNotFound)
		return
	}

	var input models.GameInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := utils.ValidateStruct(input); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	if err := h.Store.Update(id, input.Game()); err != nil {
		c.Status(http.StatusNotFound)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *GameHandler) DeleteGame(c *gin.Context) {
	id, ok := parseGameID(c)
	if !ok {
		c.Status(http.StatusNotFound)
		return
	}

	if err := h.Store.Delete(id); errors.Is(err, store.ErrGameNotFound) {
		c.Status(http.StatusNotFound)
		return
	}
	monitoring.GamesTotal.Set(float64(h.Store.Count()))

	c.Status(http.StatusNoContent)
}
