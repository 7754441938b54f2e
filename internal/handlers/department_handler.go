package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skillradar/skillradar/internal/services"
	"github.com/skillradar/skillradar/pkg/response"
)

// DepartmentHandler exposes department CRUD and membership management.
type DepartmentHandler struct {
	departments *services.DepartmentService
}

// NewDepartmentHandler constructs a DepartmentHandler.
func NewDepartmentHandler(departments *services.DepartmentService) *DepartmentHandler {
	return &DepartmentHandler{departments: departments}
}

type createDepartmentRequest struct {
	Name        string  `json:"name" validate:"required,max=64"`
	Description string  `json:"description"`
	ManagerID   *string `json:"managerId"`
}

type updateDepartmentRequest struct {
	Name        *string `json:"name" validate:"omitempty,max=64"`
	Description *string `json:"description"`
	ManagerID   *string `json:"managerId"`
}

type updateMembersRequest struct {
	MemberIDs []string `json:"memberIds"`
}

// List returns every department.
func (h *DepartmentHandler) List(c *gin.Context) {
	departments, err := h.departments.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, departments)
}

// Get returns a department with its members.
func (h *DepartmentHandler) Get(c *gin.Context) {
	department, err := h.departments.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, department)
}

// Members returns the department's users with roles resolved.
func (h *DepartmentHandler) Members(c *gin.Context) {
	members, err := h.departments.Members(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, members)
}

// Create persists a new department.
func (h *DepartmentHandler) Create(c *gin.Context) {
	payload, ok := bindJSON[createDepartmentRequest](c)
	if !ok {
		return
	}

	department, err := h.departments.Create(c.Request.Context(), services.CreateDepartmentInput{
		Name:        payload.Name,
		Description: payload.Description,
		ManagerID:   payload.ManagerID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusCreated, department)
}

// Update mutates the provided department fields.
func (h *DepartmentHandler) Update(c *gin.Context) {
	payload, ok := bindJSON[updateDepartmentRequest](c)
	if !ok {
		return
	}

	department, err := h.departments.Update(c.Request.Context(), c.Param("id"), services.UpdateDepartmentInput{
		Name:        payload.Name,
		Description: payload.Description,
		ManagerID:   payload.ManagerID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, department)
}

// UpdateMembers replaces the department membership wholesale.
func (h *DepartmentHandler) UpdateMembers(c *gin.Context) {
	payload, ok := bindJSON[updateMembersRequest](c)
	if !ok {
		return
	}

	department, err := h.departments.UpdateMembers(c.Request.Context(), c.Param("id"), payload.MemberIDs)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, department)
}

// Delete detaches members and removes the department.
func (h *DepartmentHandler) Delete(c *gin.Context) {
	if err := h.departments.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, "department deleted")
}
