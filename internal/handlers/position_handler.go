package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skillradar/skillradar/internal/services"
	"github.com/skillradar/skillradar/pkg/response"
)

// PositionHandler exposes position CRUD with nested ability dimensions.
type PositionHandler struct {
	positions *services.PositionService
}

// NewPositionHandler constructs a PositionHandler.
func NewPositionHandler(positions *services.PositionService) *PositionHandler {
	return &PositionHandler{positions: positions}
}

type dimensionPayload struct {
	Code        string         `json:"code" validate:"required,max=32"`
	Title       string         `json:"title" validate:"required,max=64"`
	Description string         `json:"description"`
	Scores      map[string]int `json:"scores"`
}

type createPositionRequest struct {
	Code              string             `json:"code" validate:"required,max=32"`
	Name              string             `json:"name" validate:"required,max=64"`
	Dimensions        int                `json:"dimensions" validate:"gte=0"`
	Ranks             string             `json:"ranks"`
	Status            string             `json:"status"`
	AbilityDimensions []dimensionPayload `json:"abilityDimensions" validate:"dive"`
}

type updatePositionRequest struct {
	Name              string             `json:"name" validate:"required,max=64"`
	Dimensions        int                `json:"dimensions" validate:"gte=0"`
	Ranks             string             `json:"ranks"`
	Status            string             `json:"status"`
	AbilityDimensions []dimensionPayload `json:"abilityDimensions" validate:"dive"`
}

func toDimensionInputs(c *gin.Context, payloads []dimensionPayload) ([]services.DimensionInput, bool) {
	inputs := make([]services.DimensionInput, 0, len(payloads))
	for _, dim := range payloads {
		if err := validateScoreStandards(dim.Scores); err != nil {
			response.Error(c, err)
			return nil, false
		}
		inputs = append(inputs, services.DimensionInput{
			Code:        dim.Code,
			Title:       dim.Title,
			Description: dim.Description,
			Scores:      dim.Scores,
		})
	}
	return inputs, true
}

// List returns every position with its ability dimensions.
func (h *PositionHandler) List(c *gin.Context) {
	positions, err := h.positions.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, positions)
}

// Get returns a single position.
func (h *PositionHandler) Get(c *gin.Context) {
	position, err := h.positions.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, position)
}

// Create persists a position with its nested dimensions.
func (h *PositionHandler) Create(c *gin.Context) {
	payload, ok := bindJSON[createPositionRequest](c)
	if !ok {
		return
	}

	dimensions, ok := toDimensionInputs(c, payload.AbilityDimensions)
	if !ok {
		return
	}

	position, err := h.positions.Create(c.Request.Context(), services.CreatePositionInput{
		Code:              payload.Code,
		Name:              payload.Name,
		Dimensions:        payload.Dimensions,
		Ranks:             payload.Ranks,
		Status:            payload.Status,
		AbilityDimensions: dimensions,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusCreated, position)
}

// Update replaces the position's fields and its full dimension set.
func (h *PositionHandler) Update(c *gin.Context) {
	payload, ok := bindJSON[updatePositionRequest](c)
	if !ok {
		return
	}

	dimensions, ok := toDimensionInputs(c, payload.AbilityDimensions)
	if !ok {
		return
	}

	position, err := h.positions.Update(c.Request.Context(), c.Param("id"), services.UpdatePositionInput{
		Name:              payload.Name,
		Dimensions:        payload.Dimensions,
		Ranks:             payload.Ranks,
		Status:            payload.Status,
		AbilityDimensions: dimensions,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, position)
}

// Delete removes a position and its dimensions.
func (h *PositionHandler) Delete(c *gin.Context) {
	if err := h.positions.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, "position deleted")
}
