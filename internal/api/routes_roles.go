package api

import (
	"github.com/gin-gonic/gin"

	"github.com/skillradar/skillradar/internal/handlers"
)

func (r *Router) registerRoleRoutes(group *gin.RouterGroup) {
	handler := handlers.NewRoleHandler(r.roles)

	roles := group.Group("/roles")
	roles.GET("", handler.List)
	roles.POST("", handler.Create)
	roles.GET("/permissions/all", handler.Permissions)
	roles.GET("/:id", handler.Get)
	roles.PUT("/:id", handler.Update)
	roles.DELETE("/:id", handler.Delete)
}
