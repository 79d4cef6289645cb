// Package testutils provides helpers shared by database-backed tests.
package testutils

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/justsurfingit/jobboard/internal/catalog"
	"github.com/justsurfingit/jobboard/internal/config"
	"github.com/justsurfingit/jobboard/internal/database"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// MemoryDSN returns a SQLite DSN for a private in-memory database.
func MemoryDSN() string {
	return fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
}

// NewDB opens a migrated, empty in-memory database closed at test cleanup.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := database.Connect(config.DatabaseConfig{Driver: "sqlite", DSN: MemoryDSN()}, zap.NewNop())
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}

// NewSeededDB is NewDB loaded with the default catalog.
func NewSeededDB(t testing.TB) *gorm.DB {
	t.Helper()

	db := NewDB(t)
	if _, err := database.Seed(context.Background(), db, catalog.Default()); err != nil {
		t.Fatalf("seed test database: %v", err)
	}
	return db
}
