package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skillradar/skillradar/internal/services"
	"github.com/skillradar/skillradar/pkg/response"
)

// AbilityDimensionHandler manages dimension rows outside the nested position flows.
type AbilityDimensionHandler struct {
	dimensions *services.AbilityDimensionService
}

// NewAbilityDimensionHandler constructs an AbilityDimensionHandler.
func NewAbilityDimensionHandler(dimensions *services.AbilityDimensionService) *AbilityDimensionHandler {
	return &AbilityDimensionHandler{dimensions: dimensions}
}

type createDimensionRequest struct {
	Code        string         `json:"code" validate:"required,max=32"`
	Title       string         `json:"title" validate:"required,max=64"`
	Description string         `json:"description"`
	Scores      map[string]int `json:"scores"`
	PositionID  string         `json:"positionId" validate:"required"`
}

type updateDimensionRequest struct {
	Title       string         `json:"title" validate:"required,max=64"`
	Description string         `json:"description"`
	Scores      map[string]int `json:"scores"`
}

// Create persists a standalone ability dimension.
func (h *AbilityDimensionHandler) Create(c *gin.Context) {
	payload, ok := bindJSON[createDimensionRequest](c)
	if !ok {
		return
	}
	if err := validateScoreStandards(payload.Scores); err != nil {
		response.Error(c, err)
		return
	}

	dimension, err := h.dimensions.Create(c.Request.Context(), services.CreateDimensionInput{
		Code:        payload.Code,
		Title:       payload.Title,
		Description: payload.Description,
		Scores:      payload.Scores,
		PositionID:  payload.PositionID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusCreated, dimension)
}

// Update replaces the dimension's title, description and score standards.
func (h *AbilityDimensionHandler) Update(c *gin.Context) {
	payload, ok := bindJSON[updateDimensionRequest](c)
	if !ok {
		return
	}
	if err := validateScoreStandards(payload.Scores); err != nil {
		response.Error(c, err)
		return
	}

	dimension, err := h.dimensions.Update(c.Request.Context(), c.Param("id"), services.UpdateDimensionInput{
		Title:       payload.Title,
		Description: payload.Description,
		Scores:      payload.Scores,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, dimension)
}

// Delete removes an ability dimension.
func (h *AbilityDimensionHandler) Delete(c *gin.Context) {
	if err := h.dimensions.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, "ability dimension deleted")
}
