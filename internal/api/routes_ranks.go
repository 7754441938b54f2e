package api

import (
	"github.com/gin-gonic/gin"

	"github.com/skillradar/skillradar/internal/handlers"
)

func (r *Router) registerRankRoutes(group *gin.RouterGroup) {
	handler := handlers.NewRankHandler(r.ranks)

	ranks := group.Group("/ranks")
	ranks.GET("", handler.List)
	ranks.POST("", handler.Create)
	ranks.GET("/:id", handler.Get)
	ranks.PUT("/:id", handler.Update)
	ranks.DELETE("/:id", handler.Delete)
}
