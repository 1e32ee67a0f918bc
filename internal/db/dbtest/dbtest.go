// Package dbtest opens throwaway in-memory databases for tests.
package dbtest

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	dbpkg "github.com/BruksfildServices01/service-marketplace/internal/db"
)

// Open returns a migrated sqlite database that lives for the duration of t.
// Foreign keys are enforced as on postgres. The pool is capped at one
// connection: the in-memory database is bound to it, and concurrent
// transactions queue behind each other.
func Open(t testing.TB) *gorm.DB {
	t.Helper()

	opts := dbpkg.Options()
	opts.PrepareStmt = false
	opts.Logger = logger.Default.LogMode(logger.Silent)

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), opts)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := dbpkg.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return db
}
