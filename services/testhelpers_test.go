package services

import (
	"fmt"
	"testing"

	"finbot/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// setupTestDB opens a fresh in-memory database migrated with the full
// schema. Each test gets its own database, named after the test.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "failed to open test database")

	err = db.AutoMigrate(&models.User{}, &models.Expense{}, &models.ChatMessage{})
	require.NoError(t, err, "failed to migrate test database")

	return db
}
