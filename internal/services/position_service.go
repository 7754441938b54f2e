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

var (
	// ErrPositionNotFound indicates the requested position does not exist.
	ErrPositionNotFound = apperrors.New("POSITION_NOT_FOUND", "Position not found", http.StatusNotFound)
	// ErrPositionCodeExists signals a duplicate position code.
	ErrPositionCodeExists = apperrors.New("POSITION_CODE_EXISTS", "Position code already exists", http.StatusConflict)
)

// DimensionInput is a nested ability-dimension row submitted with a position.
// Ids submitted by the client are discarded; fresh rows get fresh identifiers.
type DimensionInput struct {
	Code        string
	Title       string
	Description string
	Scores      map[string]int
}

// CreatePositionInput describes a new position with its dimension standards.
type CreatePositionInput struct {
	Code              string
	Name              string
	Dimensions        int
	Ranks             string
	Status            string
	AbilityDimensions []DimensionInput
}

// UpdatePositionInput replaces the position's scalar fields and its full
// dimension set.
type UpdatePositionInput struct {
	Name              string
	Dimensions        int
	Ranks             string
	Status            string
	AbilityDimensions []DimensionInput
}

// PositionService owns positions and their nested ability dimensions.
type PositionService struct {
	db    *gorm.DB
	audit *AuditService
}

// NewPositionService constructs a PositionService instance.
func NewPositionService(db *gorm.DB, audit *AuditService) (*PositionService, error) {
	if db == nil {
		return nil, errors.New("position service: db is required")
	}
	return &PositionService{db: db, audit: audit}, nil
}

// List retrieves all positions with their ability dimensions eager-loaded.
func (s *PositionService) List(ctx context.Context) ([]models.Position, error) {
	ctx = ensureContext(ctx)

	var positions []models.Position
	if err := s.db.WithContext(ctx).
		Preload("AbilityDimensions").
		Order("created_at").
		Find(&positions).Error; err != nil {
		return nil, fmt.Errorf("position service: list positions: %w", err)
	}
	return positions, nil
}

// GetByID loads a position with its ability dimensions.
func (s *PositionService) GetByID(ctx context.Context, id string) (*models.Position, error) {
	ctx = ensureContext(ctx)

	var position models.Position
	err := s.db.WithContext(ctx).
		Preload("AbilityDimensions").
		First(&position, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrPositionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("position service: get position: %w", err)
	}
	return &position, nil
}

// Create persists the position, then each nested dimension row. The writes
// are sequential and not wrapped in a transaction; a crash in between
// leaves a position with partial dimensions (last write wins model).
func (s *PositionService) Create(ctx context.Context, input CreatePositionInput) (*models.Position, error) {
	ctx = ensureContext(ctx)

	code := strings.TrimSpace(input.Code)
	if code == "" {
		return nil, apperrors.NewBadRequest("code is required")
	}

	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Position{}).
		Where("code = ?", code).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("position service: check code: %w", err)
	}
	if count > 0 {
		return nil, ErrPositionCodeExists
	}

	position := models.Position{
		Code:       code,
		Name:       strings.TrimSpace(input.Name),
		Dimensions: input.Dimensions,
		Ranks:      strings.TrimSpace(input.Ranks),
		Status:     normaliseStatus(input.Status),
	}
	if err := s.db.WithContext(ctx).Create(&position).Error; err != nil {
		if isUniqueConstraintError(err) {
			return nil, ErrPositionCodeExists
		}
		return nil, fmt.Errorf("position service: create position: %w", err)
	}

	if err := s.insertDimensions(ctx, position.ID, input.AbilityDimensions); err != nil {
		return nil, err
	}

	recordAudit(s.audit, ctx, AuditEntry{
		Action:   "position.create",
		Resource: position.ID,
		Result:   "success",
		Metadata: map[string]any{"code": position.Code},
	})

	return s.GetByID(ctx, position.ID)
}

// Update replaces the position's scalar fields, then deletes every existing
// ability dimension and re-inserts the submitted set. This destructive
// full-replace is the persisted contract: client-submitted dimension ids are
// discarded and new ids assigned.
func (s *PositionService) Update(ctx context.Context, id string, input UpdatePositionInput) (*models.Position, error) {
	ctx = ensureContext(ctx)

	var position models.Position
	err := s.db.WithContext(ctx).First(&position, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrPositionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("position service: load position: %w", err)
	}

	position.Name = strings.TrimSpace(input.Name)
	position.Dimensions = input.Dimensions
	position.Ranks = strings.TrimSpace(input.Ranks)
	position.Status = normaliseStatus(input.Status)

	if err := s.db.WithContext(ctx).Save(&position).Error; err != nil {
		return nil, fmt.Errorf("position service: update position: %w", err)
	}

	if err := s.db.WithContext(ctx).
		Where("position_id = ?", position.ID).
		Delete(&models.AbilityDimension{}).Error; err != nil {
		return nil, fmt.Errorf("position service: clear dimensions: %w", err)
	}

	if err := s.insertDimensions(ctx, position.ID, input.AbilityDimensions); err != nil {
		return nil, err
	}

	recordAudit(s.audit, ctx, AuditEntry{
		Action:   "position.update",
		Resource: position.ID,
		Result:   "success",
	})

	return s.GetByID(ctx, position.ID)
}

// Delete removes all child ability dimensions first, then the position itself.
func (s *PositionService) Delete(ctx context.Context, id string) error {
	ctx = ensureContext(ctx)

	var position models.Position
	err := s.db.WithContext(ctx).First(&position, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrPositionNotFound
	}
	if err != nil {
		return fmt.Errorf("position service: load position: %w", err)
	}

	if err := s.db.WithContext(ctx).
		Where("position_id = ?", position.ID).
		Delete(&models.AbilityDimension{}).Error; err != nil {
		return fmt.Errorf("position service: delete dimensions: %w", err)
	}

	if err := s.db.WithContext(ctx).Delete(&position).Error; err != nil {
		return fmt.Errorf("position service: delete position: %w", err)
	}

	recordAudit(s.audit, ctx, AuditEntry{
		Action:   "position.delete",
		Resource: position.ID,
		Result:   "success",
		Metadata: map[string]any{"code": position.Code},
	})

	return nil
}

func (s *PositionService) insertDimensions(ctx context.Context, positionID string, inputs []DimensionInput) error {
	for _, dim := range inputs {
		row := models.AbilityDimension{
			Code:        strings.TrimSpace(dim.Code),
			Title:       strings.TrimSpace(dim.Title),
			Description: dim.Description,
			Scores:      datatypes.NewJSONType(dim.Scores),
			PositionID:  positionID,
		}
		if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
			if isUniqueConstraintError(err) {
				return apperrors.NewConflict(fmt.Sprintf("ability dimension code %q already exists", row.Code))
			}
			return fmt.Errorf("position service: create dimension %s: %w", row.Code, err)
		}
	}
	return nil
}

func normaliseStatus(status string) string {
	if strings.TrimSpace(status) == models.PositionStatusInactive {
		return models.PositionStatusInactive
	}
	return models.PositionStatusActive
}
