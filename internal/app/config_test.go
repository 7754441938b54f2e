package app

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join("testdata")
	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	require.Equal(t, 9090, cfg.Server.Port)
	require.Equal(t, "debug", cfg.Server.LogLevel)
	require.False(t, cfg.Server.RateLimit.Enabled)

	require.Equal(t, "postgres", cfg.Database.Driver)
	require.Equal(t, "db.example.com", cfg.Database.Postgres.Host)
	require.Equal(t, 5432, cfg.Database.Postgres.Port)
	require.Equal(t, "skillradar", cfg.Database.Postgres.Database)

	require.False(t, cfg.Monitoring.Prometheus.Enabled)

	require.Equal(t, "jwt-secret", cfg.Auth.JWT.Secret)
	require.Equal(t, "skillradar-test", cfg.Auth.JWT.Issuer)
	require.Equal(t, 2*time.Hour, cfg.Auth.JWT.TTL)

	require.Equal(t, 30, cfg.Maintenance.AuditRetentionDays)
	require.Equal(t, "@hourly", cfg.Maintenance.AuditSchedule)
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	require.Equal(t, 8000, cfg.Server.Port)
	require.Equal(t, "info", cfg.Server.LogLevel)
	require.True(t, cfg.Server.RateLimit.Enabled)
	require.Equal(t, 300, cfg.Server.RateLimit.Requests)
	require.Equal(t, time.Minute, cfg.Server.RateLimit.Window)

	require.Equal(t, "sqlite", cfg.Database.Driver)
	require.Equal(t, "./data/skillradar.sqlite", cfg.Database.Path)

	require.True(t, cfg.Monitoring.Prometheus.Enabled)
	require.Equal(t, "/metrics", cfg.Monitoring.Prometheus.Endpoint)

	require.Equal(t, "skillradar", cfg.Auth.JWT.Issuer)
	require.Equal(t, 24*time.Hour, cfg.Auth.JWT.TTL)

	require.Equal(t, 90, cfg.Maintenance.AuditRetentionDays)
	require.Equal(t, "@daily", cfg.Maintenance.AuditSchedule)
}

func TestDatabaseOptionsForPostgres(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join("testdata"))
	require.NoError(t, err)

	opts := cfg.DatabaseOptions()
	require.Equal(t, "postgres", opts.Driver)
	require.Equal(t, "db.example.com", opts.Host)
	require.Equal(t, "radar", opts.User)
	require.Equal(t, "skillradar", opts.Name)
}
