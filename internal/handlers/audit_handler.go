package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skillradar/skillradar/internal/services"
	"github.com/skillradar/skillradar/pkg/response"
)

// AuditHandler exposes paginated audit-log queries.
type AuditHandler struct {
	audit *services.AuditService
}

// NewAuditHandler constructs an AuditHandler.
func NewAuditHandler(audit *services.AuditService) *AuditHandler {
	return &AuditHandler{audit: audit}
}

// List returns audit logs newest first, filtered by action and user.
func (h *AuditHandler) List(c *gin.Context) {
	logs, total, err := h.audit.List(c.Request.Context(), services.AuditListOptions{
		Page:     parseIntQuery(c, "page", 1),
		PageSize: parseIntQuery(c, "pageSize", 50),
		Action:   c.Query("action"),
		UserID:   c.Query("userId"),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, gin.H{
		"items": logs,
		"total": total,
	})
}
