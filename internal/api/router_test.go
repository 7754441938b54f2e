package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	iauth "github.com/skillradar/skillradar/internal/auth"
	"github.com/skillradar/skillradar/internal/database"
)

func newTestRouter(t *testing.T) *Router {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrateAndSeed(db))

	jwtService, err := iauth.NewJWTService(iauth.JWTConfig{Secret: "test-secret", Issuer: "skillradar-test"})
	require.NoError(t, err)

	router, err := NewRouter(db, jwtService, Options{})
	require.NoError(t, err)
	return router
}

func doJSON(t *testing.T, router *Router, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.Engine().ServeHTTP(rec, req)
	return rec
}

func loginAsAdmin(t *testing.T, router *Router) string {
	t.Helper()

	rec := doJSON(t, router, http.MethodPost, "/api/auth/login", "", map[string]string{
		"username": "admin",
		"password": "admin123",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var result struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	require.NotEmpty(t, result.AccessToken)
	return result.AccessToken
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/users", "", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/positions", "garbage-token", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLoginWithSeededAdmin(t *testing.T) {
	router := newTestRouter(t)

	token := loginAsAdmin(t, router)

	rec := doJSON(t, router, http.MethodGet, "/api/users", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestLoginUnknownUserReturns404(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/auth/login", "", map[string]string{
		"username": "ghost",
		"password": "whatever",
	})
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPositionLifecycleOverHTTP(t *testing.T) {
	router := newTestRouter(t)
	token := loginAsAdmin(t, router)

	createBody := map[string]any{
		"code":  "FE",
		"name":  "前端工程师",
		"ranks": "F1-E3",
		"abilityDimensions": []map[string]any{
			{"code": "FE-D1", "title": "工程能力", "scores": map[string]int{"F1": 60, "F2": 70}},
		},
	}

	rec := doJSON(t, router, http.MethodPost, "/api/positions", token, createBody)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created struct {
		ID                string `json:"id"`
		Code              string `json:"code"`
		AbilityDimensions []struct {
			ID   string `json:"id"`
			Code string `json:"code"`
		} `json:"abilityDimensions"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.Equal(t, "FE", created.Code)
	require.Len(t, created.AbilityDimensions, 1)

	// duplicate code is refused
	rec = doJSON(t, router, http.MethodPost, "/api/positions", token, createBody)
	require.Equal(t, http.StatusConflict, rec.Code)

	// invalid rank level in dimension scores is refused
	rec = doJSON(t, router, http.MethodPost, "/api/positions", token, map[string]any{
		"code": "BE",
		"name": "后端工程师",
		"abilityDimensions": []map[string]any{
			{"code": "BE-D1", "title": "工程能力", "scores": map[string]int{"Z9": 50}},
		},
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodDelete, "/api/positions/"+created.ID, token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/positions/"+created.ID, token, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMyScoresDefaultsForSeededAdmin(t *testing.T) {
	router := newTestRouter(t)
	token := loginAsAdmin(t, router)

	rec := doJSON(t, router, http.MethodGet, "/api/ability/my-scores", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var profile struct {
		PositionName string         `json:"positionName"`
		Rank         string         `json:"rank"`
		Scores       map[string]int `json:"scores"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &profile))
	require.Equal(t, "未分配", profile.PositionName)
	require.Equal(t, "未设置", profile.Rank)
	require.Equal(t, 0, profile.Scores["tech"])
}

func TestUpdateMyScoresOverHTTP(t *testing.T) {
	router := newTestRouter(t)
	token := loginAsAdmin(t, router)

	rec := doJSON(t, router, http.MethodPut, "/api/ability/my-scores", token, map[string]int{
		"tech": 80, "engineering": 70, "uiux": 60, "communication": 75, "problem": 85,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var result struct {
		Message string         `json:"message"`
		Scores  map[string]int `json:"scores"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	require.Equal(t, "更新成功", result.Message)
	require.Equal(t, 80, result.Scores["tech"])

	rec = doJSON(t, router, http.MethodGet, "/api/ability/my-scores", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var profile struct {
		Scores map[string]int `json:"scores"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &profile))
	require.Equal(t, 80, profile.Scores["tech"])
}

func TestUserScoreValidationOverHTTP(t *testing.T) {
	router := newTestRouter(t)
	token := loginAsAdmin(t, router)

	rec := doJSON(t, router, http.MethodPost, "/api/users", token, map[string]any{
		"username": "carol",
		"password": "secret123",
		"name":     "Carol",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec = doJSON(t, router, http.MethodPut, "/api/users/"+created.ID+"/scores", token, map[string]any{
		"abilityScores": map[string]int{"tech": 120},
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodPut, "/api/users/"+created.ID+"/scores", token, map[string]any{
		"abilityScores": map[string]int{
			"tech": 88, "engineering": 70, "uiux": 60, "communication": 75, "problem": 80,
		},
	})
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestPermissionCatalogIsFlat(t *testing.T) {
	router := newTestRouter(t)
	token := loginAsAdmin(t, router)

	rec := doJSON(t, router, http.MethodGet, "/api/roles/permissions/all", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var catalog []struct {
		Name string `json:"name"`
		Type string `json:"type"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &catalog))
	require.NotEmpty(t, catalog)

	types := make(map[string]bool)
	for _, perm := range catalog {
		require.NotEmpty(t, perm.Name)
		types[perm.Type] = true
	}
	require.True(t, types["page"])
	require.True(t, types["action"])
}
