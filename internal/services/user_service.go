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
	"github.com/skillradar/skillradar/pkg/crypto"
	apperrors "github.com/skillradar/skillradar/pkg/errors"
)

var (
	// ErrUserNotFound indicates the requested user does not exist.
	ErrUserNotFound = apperrors.New("USER_NOT_FOUND", "User not found", http.StatusNotFound)
	// ErrUsernameExists signals a duplicate username on creation.
	ErrUsernameExists = apperrors.New("USER_USERNAME_EXISTS", "Username already exists", http.StatusConflict)
)

// CreateUserInput describes the fields accepted when creating a user.
type CreateUserInput struct {
	Username string
	Password string
	Name     string
	Email    string
	RoleID   string
}

// UpdateUserInput enumerates mutable user attributes. Name, email and role are
// replaced wholesale; the remaining profile fields update only when provided.
type UpdateUserInput struct {
	Name         string
	Email        string
	RoleID       string
	PositionID   *string
	DepartmentID *string
	Rank         *string
	IsActive     *bool
}

// BatchUserInput is a single row of a bulk import. The password defaults to
// the username.
type BatchUserInput struct {
	Username string
	Name     string
	Email    string
}

// UserService manages the CRUD lifecycle for users including bulk import and
// admin-side ability scoring.
type UserService struct {
	db    *gorm.DB
	audit *AuditService
}

// NewUserService constructs a UserService instance.
func NewUserService(db *gorm.DB, audit *AuditService) (*UserService, error) {
	if db == nil {
		return nil, errors.New("user service: db is required")
	}
	return &UserService{db: db, audit: audit}, nil
}

// List retrieves all users with their role and department resolved.
func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	ctx = ensureContext(ctx)

	var users []models.User
	if err := s.db.WithContext(ctx).
		Preload("Role").
		Preload("Department").
		Order("created_at").
		Find(&users).Error; err != nil {
		return nil, fmt.Errorf("user service: list users: %w", err)
	}
	return users, nil
}

// GetByID loads a user by identifier including associations.
func (s *UserService) GetByID(ctx context.Context, id string) (*models.User, error) {
	ctx = ensureContext(ctx)

	var user models.User
	err := s.db.WithContext(ctx).
		Preload("Role.Permissions").
		Preload("Department").
		Preload("Position").
		First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("user service: get user: %w", err)
	}
	return &user, nil
}

// Create provisions a new user with a hashed password.
func (s *UserService) Create(ctx context.Context, input CreateUserInput) (*models.User, error) {
	ctx = ensureContext(ctx)

	username := strings.TrimSpace(input.Username)
	if username == "" {
		return nil, apperrors.NewBadRequest("username is required")
	}
	if strings.TrimSpace(input.Password) == "" {
		return nil, apperrors.NewBadRequest("password is required")
	}

	var count int64
	if err := s.db.WithContext(ctx).Model(&models.User{}).
		Where("username = ?", username).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("user service: check username: %w", err)
	}
	if count > 0 {
		return nil, ErrUsernameExists
	}

	hashed, err := crypto.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("user service: hash password: %w", err)
	}

	user := &models.User{
		Username:    username,
		Password:    hashed,
		Name:        strings.TrimSpace(input.Name),
		Email:       strings.TrimSpace(input.Email),
		RoleID:      strings.TrimSpace(input.RoleID),
		Permissions: datatypes.JSONSlice[string]{},
		IsActive:    true,
	}

	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		if isUniqueConstraintError(err) {
			return nil, ErrUsernameExists
		}
		return nil, fmt.Errorf("user service: create user: %w", err)
	}

	recordAudit(s.audit, ctx, AuditEntry{
		UserID:   &user.ID,
		Username: user.Username,
		Action:   "user.create",
		Resource: user.ID,
		Result:   "success",
	})

	return user, nil
}

// Update persists mutable attributes for an existing user.
func (s *UserService) Update(ctx context.Context, id string, input UpdateUserInput) (*models.User, error) {
	ctx = ensureContext(ctx)

	var user models.User
	err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("user service: load user: %w", err)
	}

	user.Name = strings.TrimSpace(input.Name)
	user.Email = strings.TrimSpace(input.Email)
	user.RoleID = strings.TrimSpace(input.RoleID)
	if input.PositionID != nil {
		user.PositionID = normaliseOptionalID(input.PositionID)
	}
	if input.DepartmentID != nil {
		user.DepartmentID = normaliseOptionalID(input.DepartmentID)
	}
	if input.Rank != nil {
		user.Rank = strings.TrimSpace(*input.Rank)
	}
	if input.IsActive != nil {
		user.IsActive = *input.IsActive
	}

	if err := s.db.WithContext(ctx).Save(&user).Error; err != nil {
		return nil, fmt.Errorf("user service: update user: %w", err)
	}

	return s.GetByID(ctx, user.ID)
}

// Delete removes a user permanently.
func (s *UserService) Delete(ctx context.Context, id string) error {
	ctx = ensureContext(ctx)

	var user models.User
	err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrUserNotFound
	}
	if err != nil {
		return fmt.Errorf("user service: load user: %w", err)
	}

	if err := s.db.WithContext(ctx).Delete(&user).Error; err != nil {
		return fmt.Errorf("user service: delete user: %w", err)
	}

	recordAudit(s.audit, ctx, AuditEntry{
		Username: user.Username,
		Action:   "user.delete",
		Resource: user.ID,
		Result:   "success",
	})

	return nil
}

// BatchCreate imports users in bulk, silently skipping usernames that already
// exist and defaulting each new user's password to their username. Only the
// successfully created subset is returned.
func (s *UserService) BatchCreate(ctx context.Context, items []BatchUserInput, roleID string) ([]models.User, error) {
	ctx = ensureContext(ctx)

	created := make([]models.User, 0, len(items))
	for _, item := range items {
		username := strings.TrimSpace(item.Username)
		if username == "" {
			continue
		}

		var count int64
		if err := s.db.WithContext(ctx).Model(&models.User{}).
			Where("username = ?", username).Count(&count).Error; err != nil {
			return nil, fmt.Errorf("user service: check username: %w", err)
		}
		if count > 0 {
			continue
		}

		hashed, err := crypto.HashPassword(username)
		if err != nil {
			return nil, fmt.Errorf("user service: hash password: %w", err)
		}

		user := models.User{
			Username:    username,
			Password:    hashed,
			Name:        strings.TrimSpace(item.Name),
			Email:       strings.TrimSpace(item.Email),
			RoleID:      strings.TrimSpace(roleID),
			Permissions: datatypes.JSONSlice[string]{},
			IsActive:    true,
		}
		if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
			if isUniqueConstraintError(err) {
				continue
			}
			return nil, fmt.Errorf("user service: create user %s: %w", username, err)
		}
		created = append(created, user)
	}

	recordAudit(s.audit, ctx, AuditEntry{
		Action:   "user.batch_create",
		Result:   "success",
		Metadata: map[string]any{"submitted": len(items), "created": len(created)},
	})

	return created, nil
}

// UpdateScores replaces a user's five-axis ability score record wholesale.
func (s *UserService) UpdateScores(ctx context.Context, id string, scores models.AbilityScores) (*models.User, error) {
	ctx = ensureContext(ctx)

	var user models.User
	err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("user service: load user: %w", err)
	}

	user.AbilityScores = &scores
	if err := s.db.WithContext(ctx).Save(&user).Error; err != nil {
		return nil, fmt.Errorf("user service: update scores: %w", err)
	}

	recordAudit(s.audit, ctx, AuditEntry{
		Username: user.Username,
		Action:   "user.update_scores",
		Resource: user.ID,
		Result:   "success",
	})

	return &user, nil
}

func normaliseOptionalID(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
