package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	iauth "github.com/skillradar/skillradar/internal/auth"
	"github.com/skillradar/skillradar/internal/models"
	"github.com/skillradar/skillradar/pkg/crypto"
	apperrors "github.com/skillradar/skillradar/pkg/errors"
	"github.com/skillradar/skillradar/pkg/metrics"
)

var (
	// ErrUnknownUsername indicates no account exists for the submitted username.
	ErrUnknownUsername = apperrors.New("AUTH_UNKNOWN_USERNAME", "User not found", http.StatusNotFound)
	// ErrAccountDisabled rejects logins for deactivated accounts.
	ErrAccountDisabled = apperrors.New("AUTH_ACCOUNT_DISABLED", "Account is disabled", http.StatusUnauthorized)
	// ErrUsernameTaken signals a registration conflict.
	ErrUsernameTaken = apperrors.New("AUTH_USERNAME_TAKEN", "Username already exists", http.StatusConflict)
)

// LogoutMessage is the stateless-logout acknowledgement; token invalidation is
// the caller's responsibility.
const LogoutMessage = "logged out"

// LoginUser is the sanitized identity projection returned on login.
type LoginUser struct {
	ID          string   `json:"id"`
	Username    string   `json:"username"`
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Role        string   `json:"role"`
	Permissions []string `json:"permissions"`
}

// LoginResult bundles the issued token with the sanitized user projection.
type LoginResult struct {
	AccessToken string    `json:"access_token"`
	User        LoginUser `json:"user"`
}

// RegisterInput describes the self-registration payload.
type RegisterInput struct {
	Username string
	Password string
	Name     string
	Email    string
	RoleID   string
}

// AuthService verifies credentials and issues access tokens.
type AuthService struct {
	db    *gorm.DB
	jwt   *iauth.JWTService
	audit *AuditService
}

// NewAuthService constructs an AuthService instance.
func NewAuthService(db *gorm.DB, jwt *iauth.JWTService, audit *AuditService) (*AuthService, error) {
	if db == nil {
		return nil, errors.New("auth service: db is required")
	}
	if jwt == nil {
		return nil, errors.New("auth service: jwt service is required")
	}
	return &AuthService{db: db, jwt: jwt, audit: audit}, nil
}

// ValidateCredentials checks a username/password pair and returns the account
// with its role relation loaded. Unknown usernames map to 404, wrong passwords
// and disabled accounts to 401.
func (s *AuthService) ValidateCredentials(ctx context.Context, username, password string) (*models.User, error) {
	ctx = ensureContext(ctx)

	username = strings.TrimSpace(username)
	if username == "" {
		return nil, apperrors.NewBadRequest("username is required")
	}

	var user models.User
	err := s.db.WithContext(ctx).
		Preload("Role.Permissions").
		First(&user, "username = ?", username).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUnknownUsername
	}
	if err != nil {
		return nil, fmt.Errorf("auth service: load user: %w", err)
	}

	if !crypto.VerifyPassword(user.Password, password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, ErrAccountDisabled
	}

	return &user, nil
}

// Login validates credentials and issues a signed access token alongside the
// sanitized user projection.
func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	ctx = ensureContext(ctx)

	user, err := s.ValidateCredentials(ctx, username, password)
	if err != nil {
		metrics.AuthAttempts.WithLabelValues("failure").Inc()
		recordAudit(s.audit, ctx, AuditEntry{
			Username: strings.TrimSpace(username),
			Action:   "auth.login",
			Result:   "failure",
		})
		return nil, err
	}
	metrics.AuthAttempts.WithLabelValues("success").Inc()

	role := user.RoleName()
	token, err := s.jwt.GenerateAccessToken(iauth.AccessTokenInput{
		UserID:   user.ID,
		Username: user.Username,
		Role:     role,
	})
	if err != nil {
		return nil, fmt.Errorf("auth service: issue token: %w", err)
	}

	recordAudit(s.audit, ctx, AuditEntry{
		UserID:   &user.ID,
		Username: user.Username,
		Action:   "auth.login",
		Result:   "success",
	})

	return &LoginResult{
		AccessToken: token,
		User: LoginUser{
			ID:          user.ID,
			Username:    user.Username,
			Name:        user.Name,
			Email:       user.Email,
			Role:        role,
			Permissions: user.EffectivePermissions(),
		},
	}, nil
}

// Register provisions a new account with a hashed password and an empty legacy
// permission list.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*models.User, error) {
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
		return nil, fmt.Errorf("auth service: check username: %w", err)
	}
	if count > 0 {
		return nil, ErrUsernameTaken
	}

	hashed, err := crypto.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth service: hash password: %w", err)
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
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("auth service: create user: %w", err)
	}

	recordAudit(s.audit, ctx, AuditEntry{
		UserID:   &user.ID,
		Username: user.Username,
		Action:   "auth.register",
		Result:   "success",
	})

	return user, nil
}
