package api

import (
	"github.com/gin-gonic/gin"

	"github.com/skillradar/skillradar/internal/handlers"
)

func (r *Router) registerDepartmentRoutes(group *gin.RouterGroup) {
	handler := handlers.NewDepartmentHandler(r.departments)

	departments := group.Group("/departments")
	departments.GET("", handler.List)
	departments.POST("", handler.Create)
	departments.GET("/:id", handler.Get)
	departments.PUT("/:id", handler.Update)
	departments.DELETE("/:id", handler.Delete)
	departments.GET("/:id/members", handler.Members)
	departments.PUT("/:id/members", handler.UpdateMembers)
}
