package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/skillradar/skillradar/internal/models"
	apperrors "github.com/skillradar/skillradar/pkg/errors"
)

// ErrDimensionNotFound indicates the requested ability dimension does not exist.
var ErrDimensionNotFound = apperrors.New("DIMENSION_NOT_FOUND", "Ability dimension not found", http.StatusNotFound)

// CreateDimensionInput describes a standalone ability-dimension row.
type CreateDimensionInput struct {
	Code        string
	Title       string
	Description string
	Scores      map[string]int
	PositionID  string
}

// UpdateDimensionInput replaces the mutable fields of a dimension; the code
// and position binding are fixed at creation.
type UpdateDimensionInput struct {
	Title       string
	Description string
	Scores      map[string]int
}

// AbilityDimensionService manages ability-dimension rows outside the nested
// position flows.
type AbilityDimensionService struct {
	db *gorm.DB
}

// NewAbilityDimensionService constructs an AbilityDimensionService instance.
func NewAbilityDimensionService(db *gorm.DB) (*AbilityDimensionService, error) {
	if db == nil {
		return nil, errors.New("ability dimension service: db is required")
	}
	return &AbilityDimensionService{db: db}, nil
}

// Create persists a new ability dimension.
func (s *AbilityDimensionService) Create(ctx context.Context, input CreateDimensionInput) (*models.AbilityDimension, error) {
	ctx = ensureContext(ctx)

	code := strings.TrimSpace(input.Code)
	if code == "" {
		return nil, apperrors.NewBadRequest("code is required")
	}
	if strings.TrimSpace(input.PositionID) == "" {
		return nil, apperrors.NewBadRequest("positionId is required")
	}

	dimension := models.AbilityDimension{
		Code:        code,
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		Scores:      datatypes.NewJSONType(input.Scores),
		PositionID:  strings.TrimSpace(input.PositionID),
	}
	if err := s.db.WithContext(ctx).Create(&dimension).Error; err != nil {
		if isUniqueConstraintError(err) {
			return nil, apperrors.NewConflict(fmt.Sprintf("ability dimension code %q already exists", code))
		}
		return nil, fmt.Errorf("ability dimension service: create: %w", err)
	}
	return &dimension, nil
}

// Update replaces the title, description and score standards.
func (s *AbilityDimensionService) Update(ctx context.Context, id string, input UpdateDimensionInput) (*models.AbilityDimension, error) {
	ctx = ensureContext(ctx)

	var dimension models.AbilityDimension
	err := s.db.WithContext(ctx).First(&dimension, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrDimensionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("ability dimension service: load: %w", err)
	}

	dimension.Title = strings.TrimSpace(input.Title)
	dimension.Description = input.Description
	dimension.Scores = datatypes.NewJSONType(input.Scores)

	if err := s.db.WithContext(ctx).Save(&dimension).Error; err != nil {
		return nil, fmt.Errorf("ability dimension service: update: %w", err)
	}
	return &dimension, nil
}

// Delete removes an ability dimension.
func (s *AbilityDimensionService) Delete(ctx context.Context, id string) error {
	ctx = ensureContext(ctx)

	var dimension models.AbilityDimension
	err := s.db.WithContext(ctx).First(&dimension, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrDimensionNotFound
	}
	if err != nil {
		return fmt.Errorf("ability dimension service: load: %w", err)
	}

	if err := s.db.WithContext(ctx).Delete(&dimension).Error; err != nil {
		return fmt.Errorf("ability dimension service: delete: %w", err)
	}
	return nil
}
