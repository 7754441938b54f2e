package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/skillradar/skillradar/internal/models"
)

// Fallback labels rendered when the caller has no position or rank assigned.
// These strings are part of the wire contract with the frontend.
const (
	UnassignedPositionLabel = "未分配"
	UnsetRankLabel          = "未设置"
)

// MyScores is the self-service ability profile projection.
type MyScores struct {
	Name         string               `json:"name"`
	Position     string               `json:"position"`
	PositionName string               `json:"positionName"`
	Rank         string               `json:"rank"`
	Scores       models.AbilityScores `json:"scores"`
}

// AbilityService resolves and updates the caller's own ability scores.
type AbilityService struct {
	db *gorm.DB
}

// NewAbilityService constructs an AbilityService instance.
func NewAbilityService(db *gorm.DB) (*AbilityService, error) {
	if db == nil {
		return nil, errors.New("ability service: db is required")
	}
	return &AbilityService{db: db}, nil
}

// GetMyScores resolves the caller's five-axis score record, defaulting every
// axis to 0 when unset and falling back to the unassigned/unset labels for
// position and rank.
func (s *AbilityService) GetMyScores(ctx context.Context, userID string) (*MyScores, error) {
	ctx = ensureContext(ctx)

	var user models.User
	err := s.db.WithContext(ctx).First(&user, "id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("ability service: load user: %w", err)
	}

	result := &MyScores{
		Name:         user.Name,
		PositionName: UnassignedPositionLabel,
		Rank:         UnsetRankLabel,
	}

	if user.PositionID != nil {
		result.Position = *user.PositionID

		var position models.Position
		err := s.db.WithContext(ctx).First(&position, "id = ?", *user.PositionID).Error
		if err == nil {
			result.PositionName = position.Name
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("ability service: load position: %w", err)
		}
	}

	if user.Rank != "" {
		result.Rank = user.Rank
	}

	if user.AbilityScores != nil {
		result.Scores = *user.AbilityScores
	}

	return result, nil
}

// UpdateMyScores overwrites the caller's own score record wholesale.
func (s *AbilityService) UpdateMyScores(ctx context.Context, userID string, scores models.AbilityScores) (*models.AbilityScores, error) {
	ctx = ensureContext(ctx)

	var user models.User
	err := s.db.WithContext(ctx).First(&user, "id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("ability service: load user: %w", err)
	}

	user.AbilityScores = &scores
	if err := s.db.WithContext(ctx).Save(&user).Error; err != nil {
		return nil, fmt.Errorf("ability service: update scores: %w", err)
	}

	return &scores, nil
}
