package sqldb_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/ghuser/inventoryd/pkg/database"
	"github.com/ghuser/inventoryd/services/inventory/domain/repositories"
	"github.com/ghuser/inventoryd/services/inventory/infrastructure/persistence/repotest"
	"github.com/ghuser/inventoryd/services/inventory/infrastructure/persistence/sqldb"
)

// newTestDB opens a throwaway SQLite database. A file in t.TempDir() rather
// than :memory: because the pool may open more than one connection, and each
// in-memory connection would see its own empty database.
func newTestDB(t *testing.T) *database.Database {
	t.Helper()
	db, err := database.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := sqldb.EnsureSchema(context.Background(), db); err != nil {
		t.Fatalf("EnsureSchema: %v", err)
	}
	return db
}

func TestItemRepository_Contract(t *testing.T) {
	repotest.Run(t, func(t *testing.T) repositories.ItemRepository {
		return sqldb.NewItemRepository(newTestDB(t))
	})
}

func TestEnsureSchema_Idempotent(t *testing.T) {
	db := newTestDB(t)
	if err := sqldb.EnsureSchema(context.Background(), db); err != nil {
		t.Fatalf("second EnsureSchema: %v", err)
	}
}

func TestItemRepository_EmptyPhotoRefStoredAsNull(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := sqldb.NewItemRepository(db)

	created, err := repo.Create(ctx, "Laptop", "", "")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	var photoRef sql.NullString
	err = db.DB().QueryRowContext(ctx,
		db.Rebind(`SELECT photo_ref FROM items WHERE id = ?`), created.ID,
	).Scan(&photoRef)
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if photoRef.Valid {
		t.Fatalf("expected NULL photo_ref, got %q", photoRef.String)
	}
}
