package handlers

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/skillradar/skillradar/internal/middleware"
	"github.com/skillradar/skillradar/internal/models"
	apperrors "github.com/skillradar/skillradar/pkg/errors"
	"github.com/skillradar/skillradar/pkg/response"
	"github.com/skillradar/skillradar/pkg/validator"
)

// bindJSON decodes the request body into T and runs struct validation,
// writing a 400 response on failure.
func bindJSON[T any](c *gin.Context) (*T, bool) {
	var payload T
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.Error(c, apperrors.NewBadRequest("invalid JSON payload"))
		return nil, false
	}
	if err := validator.ValidateStruct(&payload); err != nil {
		response.Error(c, apperrors.NewBadRequest(err.Error()))
		return nil, false
	}
	return &payload, true
}

// currentUserID returns the authenticated caller's id from the request context.
func currentUserID(c *gin.Context) (string, bool) {
	id := c.GetString(middleware.CtxUserIDKey)
	if id == "" {
		response.Error(c, apperrors.ErrUnauthorized)
		return "", false
	}
	return id, true
}

func parseIntQuery(c *gin.Context, key string, fallback int) int {
	raw := c.Query(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}

// validateScoreStandards checks a rank-level→score map: keys must be valid
// F/E rank levels and values must fall within 0..100.
func validateScoreStandards(scores map[string]int) error {
	for level, score := range scores {
		if !models.ValidRankLevel(level) {
			return apperrors.NewBadRequest(fmt.Sprintf("invalid rank level %q in scores", level))
		}
		if score < 0 || score > 100 {
			return apperrors.NewBadRequest(fmt.Sprintf("score for %s must be between 0 and 100", level))
		}
	}
	return nil
}
