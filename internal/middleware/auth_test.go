package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	iauth "github.com/skillradar/skillradar/internal/auth"
)

func newAuthTestEngine(t *testing.T) (*gin.Engine, *iauth.JWTService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtService, err := iauth.NewJWTService(iauth.JWTConfig{Secret: "test-secret"})
	require.NoError(t, err)

	engine := gin.New()
	engine.GET("/protected", Auth(jwtService), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"userID":   c.GetString(CtxUserIDKey),
			"username": c.GetString(CtxUsernameKey),
			"role":     c.GetString(CtxRoleKey),
		})
	})
	return engine, jwtService
}

func TestAuthRejectsMissingHeader(t *testing.T) {
	engine, _ := newAuthTestEngine(t)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthRejectsMalformedToken(t *testing.T) {
	engine, _ := newAuthTestEngine(t)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, "Bearer", rec.Header().Get("WWW-Authenticate"))
}

func TestAuthPropagatesClaims(t *testing.T) {
	engine, jwtService := newAuthTestEngine(t)

	token, err := jwtService.GenerateAccessToken(iauth.AccessTokenInput{
		UserID:   "user-1",
		Username: "alice",
		Role:     "hr",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"userID":"user-1"`)
	require.Contains(t, rec.Body.String(), `"username":"alice"`)
	require.Contains(t, rec.Body.String(), `"role":"hr"`)
}
