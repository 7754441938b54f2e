package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skillradar/skillradar/internal/services"
	"github.com/skillradar/skillradar/pkg/response"
)

// RoleHandler exposes role management and the permission catalog.
type RoleHandler struct {
	roles *services.RoleService
}

// NewRoleHandler constructs a RoleHandler.
func NewRoleHandler(roles *services.RoleService) *RoleHandler {
	return &RoleHandler{roles: roles}
}

type createRoleRequest struct {
	Name          string   `json:"name" validate:"required,max=64"`
	Description   string   `json:"description"`
	PermissionIDs []string `json:"permissionIds"`
}

type updateRoleRequest struct {
	Name          *string  `json:"name" validate:"omitempty,max=64"`
	Description   *string  `json:"description"`
	PermissionIDs []string `json:"permissionIds"`
}

// List returns every role with its permission grants.
func (h *RoleHandler) List(c *gin.Context) {
	roles, err := h.roles.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, roles)
}

// Get returns a single role.
func (h *RoleHandler) Get(c *gin.Context) {
	role, err := h.roles.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, role)
}

// Create persists a role with the submitted permission grants.
func (h *RoleHandler) Create(c *gin.Context) {
	payload, ok := bindJSON[createRoleRequest](c)
	if !ok {
		return
	}

	role, err := h.roles.Create(c.Request.Context(), services.CreateRoleInput{
		Name:          payload.Name,
		Description:   payload.Description,
		PermissionIDs: payload.PermissionIDs,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusCreated, role)
}

// Update mutates role fields and optionally replaces the permission set.
func (h *RoleHandler) Update(c *gin.Context) {
	payload, ok := bindJSON[updateRoleRequest](c)
	if !ok {
		return
	}

	role, err := h.roles.Update(c.Request.Context(), c.Param("id"), services.UpdateRoleInput{
		Name:          payload.Name,
		Description:   payload.Description,
		PermissionIDs: payload.PermissionIDs,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, role)
}

// Delete removes a role unless users still reference it.
func (h *RoleHandler) Delete(c *gin.Context) {
	if err := h.roles.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, "role deleted")
}

// Permissions returns the full, unfiltered permission catalog. Splitting it
// into page and action groups is left to the consumer.
func (h *RoleHandler) Permissions(c *gin.Context) {
	catalog, err := h.roles.Permissions(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, catalog)
}
