package api

import (
	"github.com/gin-gonic/gin"

	"github.com/skillradar/skillradar/internal/handlers"
)

func (r *Router) registerUserRoutes(group *gin.RouterGroup) {
	handler := handlers.NewUserHandler(r.users)

	users := group.Group("/users")
	users.GET("", handler.List)
	users.POST("", handler.Create)
	users.POST("/batch", handler.BatchCreate)
	users.GET("/:id", handler.Get)
	users.PUT("/:id", handler.Update)
	users.DELETE("/:id", handler.Delete)
	users.PUT("/:id/scores", handler.UpdateScores)
}
