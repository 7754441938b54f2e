package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/skillradar/skillradar/internal/database"
	"github.com/skillradar/skillradar/internal/models"
	"github.com/skillradar/skillradar/pkg/crypto"
)

// openTestDB returns an isolated in-memory database migrated to the current
// schema. Each test gets its own shared-cache namespace so gorm's connection
// pool always sees the same data.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	return db
}

func newTestAuditService(t *testing.T, db *gorm.DB) *AuditService {
	t.Helper()

	audit, err := NewAuditService(db)
	require.NoError(t, err)
	return audit
}

// createTestUser inserts a user row with a bcrypt-hashed password.
func createTestUser(t *testing.T, db *gorm.DB, username, password string) *models.User {
	t.Helper()

	hashed, err := crypto.HashPassword(password)
	require.NoError(t, err)

	user := &models.User{
		Username: username,
		Password: hashed,
		Name:     username,
		IsActive: true,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}
