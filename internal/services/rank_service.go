package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"gorm.io/gorm"

	"github.com/skillradar/skillradar/internal/models"
	apperrors "github.com/skillradar/skillradar/pkg/errors"
)

// ErrRankNotFound indicates the requested rank does not exist.
var ErrRankNotFound = apperrors.New("RANK_NOT_FOUND", "Rank not found", http.StatusNotFound)

// CreateRankInput describes a new career level.
type CreateRankInput struct {
	Category    string
	Level       string
	Name        string
	Years       string
	Description string
}

// UpdateRankInput replaces the descriptive fields; category and level are
// fixed at creation.
type UpdateRankInput struct {
	Name        string
	Years       string
	Description string
}

// RankService manages the flat rank reference table.
type RankService struct {
	db *gorm.DB
}

// NewRankService constructs a RankService instance.
func NewRankService(db *gorm.DB) (*RankService, error) {
	if db == nil {
		return nil, errors.New("rank service: db is required")
	}
	return &RankService{db: db}, nil
}

// List retrieves all ranks, foundational track first, then by level.
func (s *RankService) List(ctx context.Context) ([]models.Rank, error) {
	ctx = ensureContext(ctx)

	// "F" sorts after "E" lexically, so the category order is descending.
	var ranks []models.Rank
	if err := s.db.WithContext(ctx).
		Order("category DESC").
		Order("level").
		Find(&ranks).Error; err != nil {
		return nil, fmt.Errorf("rank service: list ranks: %w", err)
	}
	return ranks, nil
}

// GetByID loads a single rank.
func (s *RankService) GetByID(ctx context.Context, id string) (*models.Rank, error) {
	ctx = ensureContext(ctx)

	var rank models.Rank
	err := s.db.WithContext(ctx).First(&rank, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRankNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("rank service: get rank: %w", err)
	}
	return &rank, nil
}

// Create persists a new rank level.
func (s *RankService) Create(ctx context.Context, input CreateRankInput) (*models.Rank, error) {
	ctx = ensureContext(ctx)

	category := strings.TrimSpace(input.Category)
	if category != models.RankCategoryFoundational && category != models.RankCategoryExpert {
		return nil, apperrors.NewBadRequest("category must be F or E")
	}

	rank := models.Rank{
		Category:    category,
		Level:       strings.TrimSpace(input.Level),
		Name:        strings.TrimSpace(input.Name),
		Years:       strings.TrimSpace(input.Years),
		Description: input.Description,
	}
	if err := s.db.WithContext(ctx).Create(&rank).Error; err != nil {
		return nil, fmt.Errorf("rank service: create rank: %w", err)
	}
	return &rank, nil
}

// Update replaces name, years and description.
func (s *RankService) Update(ctx context.Context, id string, input UpdateRankInput) (*models.Rank, error) {
	ctx = ensureContext(ctx)

	rank, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	rank.Name = strings.TrimSpace(input.Name)
	rank.Years = strings.TrimSpace(input.Years)
	rank.Description = input.Description

	if err := s.db.WithContext(ctx).Save(rank).Error; err != nil {
		return nil, fmt.Errorf("rank service: update rank: %w", err)
	}
	return rank, nil
}

// Delete removes a rank level.
func (s *RankService) Delete(ctx context.Context, id string) error {
	ctx = ensureContext(ctx)

	rank, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.db.WithContext(ctx).Delete(rank).Error; err != nil {
		return fmt.Errorf("rank service: delete rank: %w", err)
	}
	return nil
}
