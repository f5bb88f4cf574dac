package sqldb

import (
	"context"
	"fmt"

	"github.com/ghuser/inventoryd/pkg/database"
)

// The single items table. description is NOT NULL with an empty-string
// default; photo_ref NULL means the item has no photo.
const (
	schemaSQLite = `
CREATE TABLE IF NOT EXISTS items (
    id          INTEGER PRIMARY KEY AUTOINCREMENT,
    name        TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    photo_ref   TEXT
);`

	schemaPostgres = `
CREATE TABLE IF NOT EXISTS items (
    id          BIGSERIAL PRIMARY KEY,
    name        TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    photo_ref   TEXT
);`
)

// EnsureSchema creates the items table if it does not already exist.
// AUTOINCREMENT (SQLite) and BIGSERIAL (Postgres) both guarantee ids are
// never reused after deletion.
func EnsureSchema(ctx context.Context, db *database.Database) error {
	schema := schemaSQLite
	if db.Driver() == "pgx" {
		schema = schemaPostgres
	}
	if _, err := db.DB().ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}
