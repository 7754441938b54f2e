package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/skillradar/skillradar/pkg/logger"
)

// recordAudit logs an audit entry without failing the calling operation.
func recordAudit(svc *AuditService, ctx context.Context, entry AuditEntry) {
	if svc == nil {
		return
	}
	if err := svc.Log(ctx, entry); err != nil {
		logger.WithModule("audit").Warn("record audit entry",
			zap.String("action", entry.Action),
			zap.Error(err),
		)
	}
}
