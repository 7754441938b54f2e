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

// ErrDepartmentNotFound indicates the requested department does not exist.
var ErrDepartmentNotFound = apperrors.New("DEPARTMENT_NOT_FOUND", "Department not found", http.StatusNotFound)

// CreateDepartmentInput describes a new department.
type CreateDepartmentInput struct {
	Name        string
	Description string
	ManagerID   *string
}

// UpdateDepartmentInput mutates department fields when provided.
type UpdateDepartmentInput struct {
	Name        *string
	Description *string
	ManagerID   *string
}

// DepartmentService manages departments and their membership.
type DepartmentService struct {
	db    *gorm.DB
	audit *AuditService
}

// NewDepartmentService constructs a DepartmentService instance.
func NewDepartmentService(db *gorm.DB, audit *AuditService) (*DepartmentService, error) {
	if db == nil {
		return nil, errors.New("department service: db is required")
	}
	return &DepartmentService{db: db, audit: audit}, nil
}

// List retrieves all departments.
func (s *DepartmentService) List(ctx context.Context) ([]models.Department, error) {
	ctx = ensureContext(ctx)

	var departments []models.Department
	if err := s.db.WithContext(ctx).
		Order("created_at").
		Find(&departments).Error; err != nil {
		return nil, fmt.Errorf("department service: list departments: %w", err)
	}
	return departments, nil
}

// GetByID loads a department together with its members.
func (s *DepartmentService) GetByID(ctx context.Context, id string) (*models.Department, error) {
	ctx = ensureContext(ctx)

	var department models.Department
	err := s.db.WithContext(ctx).
		Preload("Members").
		First(&department, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrDepartmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("department service: get department: %w", err)
	}
	return &department, nil
}

// Members returns the department's users with their role resolved.
func (s *DepartmentService) Members(ctx context.Context, id string) ([]models.User, error) {
	ctx = ensureContext(ctx)

	if _, err := s.GetByID(ctx, id); err != nil {
		return nil, err
	}

	var members []models.User
	if err := s.db.WithContext(ctx).
		Preload("Role").
		Where("department_id = ?", id).
		Find(&members).Error; err != nil {
		return nil, fmt.Errorf("department service: list members: %w", err)
	}
	return members, nil
}

// Create persists a new department.
func (s *DepartmentService) Create(ctx context.Context, input CreateDepartmentInput) (*models.Department, error) {
	ctx = ensureContext(ctx)

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apperrors.NewBadRequest("name is required")
	}

	department := models.Department{
		Name:        name,
		Description: input.Description,
		ManagerID:   normaliseOptionalID(input.ManagerID),
	}
	if err := s.db.WithContext(ctx).Create(&department).Error; err != nil {
		return nil, fmt.Errorf("department service: create department: %w", err)
	}

	recordAudit(s.audit, ctx, AuditEntry{
		Action:   "department.create",
		Resource: department.ID,
		Result:   "success",
		Metadata: map[string]any{"name": department.Name},
	})

	return &department, nil
}

// Update mutates the provided department fields.
func (s *DepartmentService) Update(ctx context.Context, id string, input UpdateDepartmentInput) (*models.Department, error) {
	ctx = ensureContext(ctx)

	department, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		department.Name = strings.TrimSpace(*input.Name)
	}
	if input.Description != nil {
		department.Description = *input.Description
	}
	if input.ManagerID != nil {
		department.ManagerID = normaliseOptionalID(input.ManagerID)
	}

	if err := s.db.WithContext(ctx).Save(department).Error; err != nil {
		return nil, fmt.Errorf("department service: update department: %w", err)
	}
	return department, nil
}

// UpdateMembers replaces the department's membership wholesale: every current
// member is detached first, then exactly the submitted ids are attached. The
// two updates are sequential with no transaction (last write wins model).
func (s *DepartmentService) UpdateMembers(ctx context.Context, id string, memberIDs []string) (*models.Department, error) {
	ctx = ensureContext(ctx)

	if _, err := s.GetByID(ctx, id); err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).Model(&models.User{}).
		Where("department_id = ?", id).
		Update("department_id", nil).Error; err != nil {
		return nil, fmt.Errorf("department service: detach members: %w", err)
	}

	memberIDs = normaliseIDs(memberIDs)
	if len(memberIDs) > 0 {
		if err := s.db.WithContext(ctx).Model(&models.User{}).
			Where("id IN ?", memberIDs).
			Update("department_id", id).Error; err != nil {
			return nil, fmt.Errorf("department service: attach members: %w", err)
		}
	}

	recordAudit(s.audit, ctx, AuditEntry{
		Action:   "department.update_members",
		Resource: id,
		Result:   "success",
		Metadata: map[string]any{"members": len(memberIDs)},
	})

	return s.GetByID(ctx, id)
}

// Delete nulls out member associations, then removes the department row.
func (s *DepartmentService) Delete(ctx context.Context, id string) error {
	ctx = ensureContext(ctx)

	department, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.db.WithContext(ctx).Model(&models.User{}).
		Where("department_id = ?", id).
		Update("department_id", nil).Error; err != nil {
		return fmt.Errorf("department service: detach members: %w", err)
	}

	if err := s.db.WithContext(ctx).Delete(department).Error; err != nil {
		return fmt.Errorf("department service: delete department: %w", err)
	}

	recordAudit(s.audit, ctx, AuditEntry{
		Action:   "department.delete",
		Resource: id,
		Result:   "success",
		Metadata: map[string]any{"name": department.Name},
	})

	return nil
}
