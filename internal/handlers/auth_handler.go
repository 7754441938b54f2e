package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skillradar/skillradar/internal/services"
	"github.com/skillradar/skillradar/pkg/response"
)

// AuthHandler exposes login, registration and logout endpoints.
type AuthHandler struct {
	auth *services.AuthService
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(auth *services.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type registerRequest struct {
	Username string `json:"username" validate:"required,min=2,max=64"`
	Password string `json:"password" validate:"required,min=6,max=128"`
	Name     string `json:"name" validate:"max=64"`
	Email    string `json:"email" validate:"omitempty,email"`
	RoleID   string `json:"roleId"`
}

// Login validates credentials and issues an access token.
func (h *AuthHandler) Login(c *gin.Context) {
	payload, ok := bindJSON[loginRequest](c)
	if !ok {
		return
	}

	result, err := h.auth.Login(c.Request.Context(), payload.Username, payload.Password)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, result)
}

// Register provisions a new account.
func (h *AuthHandler) Register(c *gin.Context) {
	payload, ok := bindJSON[registerRequest](c)
	if !ok {
		return
	}

	user, err := h.auth.Register(c.Request.Context(), services.RegisterInput{
		Username: payload.Username,
		Password: payload.Password,
		Name:     payload.Name,
		Email:    payload.Email,
		RoleID:   payload.RoleID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusCreated, user)
}

// Logout acknowledges a stateless logout; clients discard the token.
func (h *AuthHandler) Logout(c *gin.Context) {
	response.Message(c, http.StatusOK, services.LogoutMessage)
}
