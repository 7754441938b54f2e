package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/skillradar/skillradar/internal/models"
)

func TestAuditLogRequiresActionAndResult(t *testing.T) {
	svc := newTestAuditService(t, openTestDB(t))

	require.Error(t, svc.Log(context.Background(), AuditEntry{Result: "success"}))
	require.Error(t, svc.Log(context.Background(), AuditEntry{Action: "user.create"}))
}

func TestAuditListFiltersByAction(t *testing.T) {
	svc := newTestAuditService(t, openTestDB(t))

	require.NoError(t, svc.Log(context.Background(), AuditEntry{Action: "auth.login", Result: "success"}))
	require.NoError(t, svc.Log(context.Background(), AuditEntry{Action: "auth.login", Result: "failure"}))
	require.NoError(t, svc.Log(context.Background(), AuditEntry{Action: "user.create", Result: "success"}))

	logs, total, err := svc.List(context.Background(), AuditListOptions{Action: "auth.login"})
	require.NoError(t, err)
	require.EqualValues(t, 2, total)
	require.Len(t, logs, 2)
}

func TestAuditLogSerialisesMetadata(t *testing.T) {
	svc := newTestAuditService(t, openTestDB(t))

	require.NoError(t, svc.Log(context.Background(), AuditEntry{
		Action:   "user.batch_create",
		Result:   "success",
		Metadata: map[string]any{"submitted": 3, "created": 2},
	}))

	logs, _, err := svc.List(context.Background(), AuditListOptions{})
	require.NoError(t, err)
	require.Len(t, logs, 1)
	require.Contains(t, logs[0].Metadata, `"submitted":3`)
}

func TestPurgeOlderThanRemovesOnlyStaleRows(t *testing.T) {
	svc := newTestAuditService(t, openTestDB(t))

	require.NoError(t, svc.Log(context.Background(), AuditEntry{Action: "auth.login", Result: "success"}))
	require.NoError(t, svc.Log(context.Background(), AuditEntry{Action: "auth.login", Result: "success"}))

	var first models.AuditLog
	require.NoError(t, svc.db.First(&first).Error)

	stale := time.Now().Add(-48 * time.Hour)
	require.NoError(t, svc.db.Model(&models.AuditLog{}).
		Where("id = ?", first.ID).
		Update("created_at", stale).Error)

	deleted, err := svc.PurgeOlderThan(context.Background(), time.Now().Add(-24*time.Hour))
	require.NoError(t, err)
	require.EqualValues(t, 1, deleted)

	_, total, err := svc.List(context.Background(), AuditListOptions{})
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
}
