package api

import (
	"github.com/gin-gonic/gin"

	"github.com/skillradar/skillradar/internal/handlers"
)

func (r *Router) registerPositionRoutes(group *gin.RouterGroup) {
	positionHandler := handlers.NewPositionHandler(r.positions)

	positions := group.Group("/positions")
	positions.GET("", positionHandler.List)
	positions.POST("", positionHandler.Create)
	positions.GET("/:id", positionHandler.Get)
	positions.PUT("/:id", positionHandler.Update)
	positions.DELETE("/:id", positionHandler.Delete)

	dimensionHandler := handlers.NewAbilityDimensionHandler(r.dimensions)

	dimensions := group.Group("/ability-dimensions")
	dimensions.POST("", dimensionHandler.Create)
	dimensions.PUT("/:id", dimensionHandler.Update)
	dimensions.DELETE("/:id", dimensionHandler.Delete)
}
