// Package database wraps database/sql with driver selection for the two
// supported engines: PostgreSQL (via the pgx stdlib driver) and SQLite
// (via the pure-Go modernc driver). The repository layer is written against
// database/sql placeholders rewritten per driver, so both engines share one
// implementation.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// Database wraps a *sql.DB together with the driver it was opened with.
type Database struct {
	db     *sql.DB
	driver string
}

// Open connects to the database named by url. URLs with a postgres:// or
// postgresql:// scheme use the pgx driver; everything else (file paths,
// file: URLs, :memory:) opens SQLite.
func Open(url string) (*Database, error) {
	driver := "sqlite"
	if strings.HasPrefix(url, "postgres://") || strings.HasPrefix(url, "postgresql://") {
		driver = "pgx"
	}

	db, err := sql.Open(driver, url)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if driver == "sqlite" {
		if err := setSQLitePragmas(db); err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	return &Database{db: db, driver: driver}, nil
}

func setSQLitePragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA foreign_keys=ON",
		"PRAGMA synchronous=NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("setting pragma %q: %w", p, err)
		}
	}
	return nil
}

// DB returns the underlying *sql.DB.
func (d *Database) DB() *sql.DB {
	return d.db
}

// Driver returns the driver name the connection was opened with
// ("pgx" or "sqlite").
func (d *Database) Driver() string {
	return d.driver
}

// Rebind rewrites ? placeholders to the positional $N form when the active
// driver is pgx. SQLite accepts ? natively.
func (d *Database) Rebind(query string) string {
	if d.driver != "pgx" {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			fmt.Fprintf(&b, "$%d", n)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// WithTx runs fn inside a transaction, committing on nil error and rolling
// back otherwise.
func (d *Database) WithTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// Ping verifies the connection is alive. Satisfies httpx.HealthChecker.
func (d *Database) Ping(ctx context.Context) error {
	return d.db.PingContext(ctx)
}

// Close closes the underlying connection pool.
func (d *Database) Close() error {
	return d.db.Close()
}
