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

var (
	// ErrRoleNotFound indicates the requested role does not exist.
	ErrRoleNotFound = apperrors.New("ROLE_NOT_FOUND", "Role not found", http.StatusNotFound)
	// ErrRoleNameExists signals a duplicate role name.
	ErrRoleNameExists = apperrors.New("ROLE_NAME_EXISTS", "Role name already exists", http.StatusConflict)
	// ErrRoleInUse blocks deletion while users still reference the role.
	ErrRoleInUse = apperrors.New("ROLE_IN_USE", "Role is still assigned to users", http.StatusConflict)
)

// CreateRoleInput describes a new role with its permission grants.
type CreateRoleInput struct {
	Name          string
	Description   string
	PermissionIDs []string
}

// UpdateRoleInput mutates role fields; a non-nil PermissionIDs replaces the
// full permission set (not additive).
type UpdateRoleInput struct {
	Name          *string
	Description   *string
	PermissionIDs []string
}

// RoleService manages roles and the permission catalog.
type RoleService struct {
	db    *gorm.DB
	audit *AuditService
}

// NewRoleService constructs a RoleService instance.
func NewRoleService(db *gorm.DB, audit *AuditService) (*RoleService, error) {
	if db == nil {
		return nil, errors.New("role service: db is required")
	}
	return &RoleService{db: db, audit: audit}, nil
}

// List retrieves all roles with their permissions eager-loaded.
func (s *RoleService) List(ctx context.Context) ([]models.Role, error) {
	ctx = ensureContext(ctx)

	var roles []models.Role
	if err := s.db.WithContext(ctx).
		Preload("Permissions").
		Order("created_at").
		Find(&roles).Error; err != nil {
		return nil, fmt.Errorf("role service: list roles: %w", err)
	}
	return roles, nil
}

// GetByID loads a role with its permissions.
func (s *RoleService) GetByID(ctx context.Context, id string) (*models.Role, error) {
	ctx = ensureContext(ctx)

	var role models.Role
	err := s.db.WithContext(ctx).
		Preload("Permissions").
		First(&role, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRoleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("role service: get role: %w", err)
	}
	return &role, nil
}

// Create persists a role and binds the resolved permission records.
func (s *RoleService) Create(ctx context.Context, input CreateRoleInput) (*models.Role, error) {
	ctx = ensureContext(ctx)

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apperrors.NewBadRequest("name is required")
	}

	permissions, err := s.resolvePermissions(ctx, input.PermissionIDs)
	if err != nil {
		return nil, err
	}

	role := models.Role{
		Name:        name,
		Description: input.Description,
		Permissions: permissions,
	}
	if err := s.db.WithContext(ctx).Create(&role).Error; err != nil {
		if isUniqueConstraintError(err) {
			return nil, ErrRoleNameExists
		}
		return nil, fmt.Errorf("role service: create role: %w", err)
	}

	recordAudit(s.audit, ctx, AuditEntry{
		Action:   "role.create",
		Resource: role.ID,
		Result:   "success",
		Metadata: map[string]any{"name": role.Name, "permissions": len(permissions)},
	})

	return s.GetByID(ctx, role.ID)
}

// Update mutates role fields and, when permission ids are submitted, replaces
// the role's full permission set.
func (s *RoleService) Update(ctx context.Context, id string, input UpdateRoleInput) (*models.Role, error) {
	ctx = ensureContext(ctx)

	role, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		role.Name = strings.TrimSpace(*input.Name)
	}
	if input.Description != nil {
		role.Description = *input.Description
	}

	if err := s.db.WithContext(ctx).Save(role).Error; err != nil {
		if isUniqueConstraintError(err) {
			return nil, ErrRoleNameExists
		}
		return nil, fmt.Errorf("role service: update role: %w", err)
	}

	if input.PermissionIDs != nil {
		permissions, err := s.resolvePermissions(ctx, input.PermissionIDs)
		if err != nil {
			return nil, err
		}

		refs := make([]any, len(permissions))
		for i := range permissions {
			refs[i] = &permissions[i]
		}
		if err := s.db.WithContext(ctx).Model(role).Association("Permissions").Replace(refs...); err != nil {
			return nil, fmt.Errorf("role service: replace permissions: %w", err)
		}
	}

	recordAudit(s.audit, ctx, AuditEntry{
		Action:   "role.update",
		Resource: role.ID,
		Result:   "success",
	})

	return s.GetByID(ctx, role.ID)
}

// Delete removes a role. Deletion is refused while users still reference it
// so the user→role foreign key stays meaningful.
func (s *RoleService) Delete(ctx context.Context, id string) error {
	ctx = ensureContext(ctx)

	role, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	var assigned int64
	if err := s.db.WithContext(ctx).Model(&models.User{}).
		Where("role_id = ?", role.ID).Count(&assigned).Error; err != nil {
		return fmt.Errorf("role service: count assignments: %w", err)
	}
	if assigned > 0 {
		return ErrRoleInUse
	}

	if err := s.db.WithContext(ctx).Model(role).Association("Permissions").Clear(); err != nil {
		return fmt.Errorf("role service: clear permissions: %w", err)
	}
	if err := s.db.WithContext(ctx).Delete(role).Error; err != nil {
		return fmt.Errorf("role service: delete role: %w", err)
	}

	recordAudit(s.audit, ctx, AuditEntry{
		Action:   "role.delete",
		Resource: role.ID,
		Result:   "success",
		Metadata: map[string]any{"name": role.Name},
	})

	return nil
}

// Permissions returns the full, unfiltered permission catalog. Grouping into
// page/action sets is a presentation concern of the caller.
func (s *RoleService) Permissions(ctx context.Context) ([]models.Permission, error) {
	ctx = ensureContext(ctx)

	var permissions []models.Permission
	if err := s.db.WithContext(ctx).
		Order("type").
		Order("name").
		Find(&permissions).Error; err != nil {
		return nil, fmt.Errorf("role service: list permissions: %w", err)
	}
	return permissions, nil
}

func (s *RoleService) resolvePermissions(ctx context.Context, ids []string) ([]models.Permission, error) {
	ids = normaliseIDs(ids)
	if len(ids) == 0 {
		return nil, nil
	}

	var permissions []models.Permission
	if err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&permissions).Error; err != nil {
		return nil, fmt.Errorf("role service: resolve permissions: %w", err)
	}
	return permissions, nil
}
