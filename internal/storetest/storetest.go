// Package storetest opens throwaway in-memory databases for tests.
package storetest

import (
	"testing"

	"github.com/saulo-duarte/trivia-lambda/internal/config"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Open returns a migrated SQLite database living in memory. The pool is
// pinned to one connection because every new :memory: connection would
// start with an empty database.
func Open(t testing.TB, models ...interface{}) *gorm.DB {
	t.Helper()

	db, err := config.Open("sqlite", ":memory:")
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if len(models) > 0 {
		require.NoError(t, db.AutoMigrate(models...))
	}
	return db
}
