package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	iauth "github.com/skillradar/skillradar/internal/auth"
	"github.com/skillradar/skillradar/internal/models"
	apperrors "github.com/skillradar/skillradar/pkg/errors"
)

func newTestAuthService(t *testing.T) (*AuthService, *iauth.JWTService) {
	t.Helper()

	db := openTestDB(t)
	jwtService, err := iauth.NewJWTService(iauth.JWTConfig{Secret: "test-secret", Issuer: "skillradar-test"})
	require.NoError(t, err)

	svc, err := NewAuthService(db, jwtService, newTestAuditService(t, db))
	require.NoError(t, err)
	return svc, jwtService
}

func TestLoginUnknownUsernameReturnsNotFound(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, err := svc.Login(context.Background(), "ghost", "whatever")
	require.ErrorIs(t, err, ErrUnknownUsername)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, 404, appErr.StatusCode)
}

func TestLoginWrongPasswordReturnsUnauthorized(t *testing.T) {
	svc, _ := newTestAuthService(t)
	createTestUser(t, svc.db, "alice", "correct-horse")

	_, err := svc.Login(context.Background(), "alice", "wrong-horse")
	require.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLoginDisabledAccountReturnsUnauthorized(t *testing.T) {
	svc, _ := newTestAuthService(t)

	user := createTestUser(t, svc.db, "bob", "secret123")
	require.NoError(t, svc.db.Model(user).Update("is_active", false).Error)

	_, err := svc.Login(context.Background(), "bob", "secret123")
	require.ErrorIs(t, err, ErrAccountDisabled)
}

func TestLoginIssuesValidTokenAndProjection(t *testing.T) {
	svc, jwtService := newTestAuthService(t)

	role := models.Role{Name: "hr", Description: "HR operations"}
	require.NoError(t, svc.db.Create(&role).Error)
	perm := models.Permission{Name: "user:view", Type: models.PermissionTypePage, Path: "/users"}
	require.NoError(t, svc.db.Create(&perm).Error)
	require.NoError(t, svc.db.Model(&role).Association("Permissions").Append(&perm))

	user := createTestUser(t, svc.db, "carol", "secret123")
	require.NoError(t, svc.db.Model(user).Update("role_id", role.ID).Error)

	result, err := svc.Login(context.Background(), "carol", "secret123")
	require.NoError(t, err)
	require.NotEmpty(t, result.AccessToken)
	require.Equal(t, "carol", result.User.Username)
	require.Equal(t, "hr", result.User.Role)
	require.Equal(t, []string{"user:view"}, result.User.Permissions)

	claims, err := jwtService.ValidateAccessToken(result.AccessToken)
	require.NoError(t, err)
	require.Equal(t, user.ID, claims.UserID)
	require.Equal(t, "hr", claims.Role)
}

func TestLoginRecordsAuditTrail(t *testing.T) {
	svc, _ := newTestAuthService(t)
	createTestUser(t, svc.db, "dave", "secret123")

	_, err := svc.Login(context.Background(), "dave", "nope")
	require.Error(t, err)

	_, err = svc.Login(context.Background(), "dave", "secret123")
	require.NoError(t, err)

	logs, total, err := svc.audit.List(context.Background(), AuditListOptions{Action: "auth.login"})
	require.NoError(t, err)
	require.EqualValues(t, 2, total)

	results := map[string]int{}
	for _, log := range logs {
		results[log.Result]++
	}
	require.Equal(t, 1, results["failure"])
	require.Equal(t, 1, results["success"])
}

func TestRegisterRejectsDuplicateUsername(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, err := svc.Register(context.Background(), RegisterInput{Username: "erin", Password: "secret123"})
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), RegisterInput{Username: "erin", Password: "other456"})
	require.ErrorIs(t, err, ErrUsernameTaken)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, 409, appErr.StatusCode)
}

func TestRegisterHashesPassword(t *testing.T) {
	svc, _ := newTestAuthService(t)

	user, err := svc.Register(context.Background(), RegisterInput{Username: "frank", Password: "secret123"})
	require.NoError(t, err)
	require.NotEqual(t, "secret123", user.Password)

	_, err = svc.ValidateCredentials(context.Background(), "frank", "secret123")
	require.NoError(t, err)
}
