package api

import (
	"github.com/gin-gonic/gin"

	"github.com/skillradar/skillradar/internal/handlers"
)

func (r *Router) registerAuditRoutes(group *gin.RouterGroup) {
	handler := handlers.NewAuditHandler(r.audit)

	group.GET("/audit-logs", handler.List)
}
