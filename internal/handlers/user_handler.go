package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skillradar/skillradar/internal/models"
	"github.com/skillradar/skillradar/internal/services"
	"github.com/skillradar/skillradar/pkg/response"
)

// UserHandler exposes user CRUD, bulk import and admin scoring endpoints.
type UserHandler struct {
	users *services.UserService
}

// NewUserHandler constructs a UserHandler.
func NewUserHandler(users *services.UserService) *UserHandler {
	return &UserHandler{users: users}
}

type createUserRequest struct {
	Username string `json:"username" validate:"required,min=2,max=64"`
	Password string `json:"password" validate:"required,min=6,max=128"`
	Name     string `json:"name" validate:"max=64"`
	Email    string `json:"email" validate:"omitempty,email"`
	RoleID   string `json:"roleId"`
}

type updateUserRequest struct {
	Name         string  `json:"name" validate:"max=64"`
	Email        string  `json:"email" validate:"omitempty,email"`
	RoleID       string  `json:"roleId"`
	PositionID   *string `json:"positionId"`
	DepartmentID *string `json:"departmentId"`
	Rank         *string `json:"rank"`
	IsActive     *bool   `json:"isActive"`
}

type batchUserRow struct {
	Username string `json:"username" validate:"required,min=2,max=64"`
	Name     string `json:"name" validate:"max=64"`
	Email    string `json:"email" validate:"omitempty,email"`
}

type batchCreateRequest struct {
	Users  []batchUserRow `json:"users" validate:"required,min=1,dive"`
	RoleID string         `json:"roleId"`
}

// updateUserScoresRequest wraps the score record the way the admin UI submits
// it; the self-service endpoint takes the flat record instead.
type updateUserScoresRequest struct {
	AbilityScores scoresRequest `json:"abilityScores"`
}

type scoresRequest struct {
	Tech          int `json:"tech" validate:"gte=0,lte=100"`
	Engineering   int `json:"engineering" validate:"gte=0,lte=100"`
	UIUX          int `json:"uiux" validate:"gte=0,lte=100"`
	Communication int `json:"communication" validate:"gte=0,lte=100"`
	Problem       int `json:"problem" validate:"gte=0,lte=100"`
}

func (r scoresRequest) toModel() models.AbilityScores {
	return models.AbilityScores{
		Tech:          r.Tech,
		Engineering:   r.Engineering,
		UIUX:          r.UIUX,
		Communication: r.Communication,
		Problem:       r.Problem,
	}
}

// List returns every user with role and department resolved.
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, users)
}

// Get returns a single user.
func (h *UserHandler) Get(c *gin.Context) {
	user, err := h.users.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, user)
}

// Create provisions a single user.
func (h *UserHandler) Create(c *gin.Context) {
	payload, ok := bindJSON[createUserRequest](c)
	if !ok {
		return
	}

	user, err := h.users.Create(c.Request.Context(), services.CreateUserInput{
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

// Update persists profile changes for an existing user.
func (h *UserHandler) Update(c *gin.Context) {
	payload, ok := bindJSON[updateUserRequest](c)
	if !ok {
		return
	}

	user, err := h.users.Update(c.Request.Context(), c.Param("id"), services.UpdateUserInput{
		Name:         payload.Name,
		Email:        payload.Email,
		RoleID:       payload.RoleID,
		PositionID:   payload.PositionID,
		DepartmentID: payload.DepartmentID,
		Rank:         payload.Rank,
		IsActive:     payload.IsActive,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, user)
}

// Delete removes a user.
func (h *UserHandler) Delete(c *gin.Context) {
	if err := h.users.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, "user deleted")
}

// BatchCreate imports users in bulk, returning only the created subset.
func (h *UserHandler) BatchCreate(c *gin.Context) {
	payload, ok := bindJSON[batchCreateRequest](c)
	if !ok {
		return
	}

	rows := make([]services.BatchUserInput, 0, len(payload.Users))
	for _, row := range payload.Users {
		rows = append(rows, services.BatchUserInput{
			Username: row.Username,
			Name:     row.Name,
			Email:    row.Email,
		})
	}

	created, err := h.users.BatchCreate(c.Request.Context(), rows, payload.RoleID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusCreated, created)
}

// UpdateScores replaces a user's ability score record.
func (h *UserHandler) UpdateScores(c *gin.Context) {
	payload, ok := bindJSON[updateUserScoresRequest](c)
	if !ok {
		return
	}

	user, err := h.users.UpdateScores(c.Request.Context(), c.Param("id"), payload.AbilityScores.toModel())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, user)
}
