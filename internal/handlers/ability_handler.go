package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skillradar/skillradar/internal/services"
	"github.com/skillradar/skillradar/pkg/response"
)

// AbilityHandler serves the caller's own ability profile.
type AbilityHandler struct {
	ability *services.AbilityService
}

// NewAbilityHandler constructs an AbilityHandler.
func NewAbilityHandler(ability *services.AbilityService) *AbilityHandler {
	return &AbilityHandler{ability: ability}
}

// MyScores returns the authenticated caller's ability profile.
func (h *AbilityHandler) MyScores(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	profile, err := h.ability.GetMyScores(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, profile)
}

// UpdateMyScores overwrites the caller's own score record.
func (h *AbilityHandler) UpdateMyScores(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	payload, ok := bindJSON[scoresRequest](c)
	if !ok {
		return
	}

	scores, err := h.ability.UpdateMyScores(c.Request.Context(), userID, payload.toModel())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{
		"message": "更新成功",
		"scores":  scores,
	})
}
