package api

import (
	"github.com/gin-gonic/gin"

	"github.com/skillradar/skillradar/internal/handlers"
)

func (r *Router) registerAbilityRoutes(group *gin.RouterGroup) {
	handler := handlers.NewAbilityHandler(r.ability)

	ability := group.Group("/ability")
	ability.GET("/my-scores", handler.MyScores)
	ability.PUT("/my-scores", handler.UpdateMyScores)
}
