// Package testdb opens throwaway SQLite databases with the production schema
// for tests that exercise the gorm repositories.
package testdb

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	dbpkg "github.com/SumitSharma2000/Car-Wash-APP/internal/db"
)

// Open returns a migrated in-memory database. The pool is pinned to one
// connection so every query sees the same in-memory file and concurrent
// callers are serialized the way row locks would serialize them.
func Open(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, dbpkg.Migrate(db))

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return db
}
