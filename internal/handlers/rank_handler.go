package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skillradar/skillradar/internal/models"
	"github.com/skillradar/skillradar/internal/services"
	apperrors "github.com/skillradar/skillradar/pkg/errors"
	"github.com/skillradar/skillradar/pkg/response"
)

// RankHandler exposes the career-level reference table.
type RankHandler struct {
	ranks *services.RankService
}

// NewRankHandler constructs a RankHandler.
func NewRankHandler(ranks *services.RankService) *RankHandler {
	return &RankHandler{ranks: ranks}
}

type createRankRequest struct {
	Category    string `json:"category" validate:"required"`
	Level       string `json:"level" validate:"required"`
	Name        string `json:"name" validate:"required,max=64"`
	Years       string `json:"years" validate:"max=32"`
	Description string `json:"description"`
}

type updateRankRequest struct {
	Name        string `json:"name" validate:"required,max=64"`
	Years       string `json:"years" validate:"max=32"`
	Description string `json:"description"`
}

// List returns every rank ordered by category and level.
func (h *RankHandler) List(c *gin.Context) {
	ranks, err := h.ranks.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, ranks)
}

// Get returns a single rank.
func (h *RankHandler) Get(c *gin.Context) {
	rank, err := h.ranks.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, rank)
}

// Create persists a new rank level.
func (h *RankHandler) Create(c *gin.Context) {
	payload, ok := bindJSON[createRankRequest](c)
	if !ok {
		return
	}
	if !models.ValidRankLevel(payload.Level) {
		response.Error(c, apperrors.NewBadRequest("level must match the F/E ladder, e.g. F1 or E3"))
		return
	}

	rank, err := h.ranks.Create(c.Request.Context(), services.CreateRankInput{
		Category:    payload.Category,
		Level:       payload.Level,
		Name:        payload.Name,
		Years:       payload.Years,
		Description: payload.Description,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusCreated, rank)
}

// Update replaces the rank's descriptive fields.
func (h *RankHandler) Update(c *gin.Context) {
	payload, ok := bindJSON[updateRankRequest](c)
	if !ok {
		return
	}

	rank, err := h.ranks.Update(c.Request.Context(), c.Param("id"), services.UpdateRankInput{
		Name:        payload.Name,
		Years:       payload.Years,
		Description: payload.Description,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, rank)
}

// Delete removes a rank level.
func (h *RankHandler) Delete(c *gin.Context) {
	if err := h.ranks.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, "rank deleted")
}
