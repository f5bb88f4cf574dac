// Package sqldb implements the item repository against a relational table,
// using parameterized queries throughout. One implementation serves both
// supported engines; pkg/database rewrites placeholders per driver.
package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ghuser/inventoryd/pkg/database"
	invdomain "github.com/ghuser/inventoryd/services/inventory/domain"
	"github.com/ghuser/inventoryd/services/inventory/domain/models"
	"github.com/ghuser/inventoryd/services/inventory/domain/repositories"
)

// ItemRepository implements repositories.ItemRepository against the items
// table. Backend failures are wrapped in domain.ErrRepository; a missing
// row is always domain.ErrItemNotFound.
type ItemRepository struct {
	db *database.Database
}

// NewItemRepository returns an ItemRepository backed by the given database.
// Callers must have run EnsureSchema first.
func NewItemRepository(db *database.Database) *ItemRepository {
	return &ItemRepository{db: db}
}

// Create inserts a new item and returns it with the engine-assigned id.
func (r *ItemRepository) Create(ctx context.Context, name, description, photoRef string) (*models.Item, error) {
	var id int64
	err := r.db.DB().QueryRowContext(ctx,
		r.db.Rebind(`INSERT INTO items (name, description, photo_ref) VALUES (?, ?, ?) RETURNING id`),
		name, description, nullable(photoRef),
	).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("%w: insert item: %w", invdomain.ErrRepository, err)
	}

	return &models.Item{ID: id, Name: name, Description: description, PhotoRef: photoRef}, nil
}

// List returns all items in primary-key order.
func (r *ItemRepository) List(ctx context.Context) ([]*models.Item, error) {
	rows, err := r.db.DB().QueryContext(ctx,
		`SELECT id, name, description, photo_ref FROM items ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: query items: %w", invdomain.ErrRepository, err)
	}
	defer rows.Close()

	var items []*models.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scan item: %w", invdomain.ErrRepository, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate items: %w", invdomain.ErrRepository, err)
	}
	return items, nil
}

// GetByID returns a single item by id.
func (r *ItemRepository) GetByID(ctx context.Context, id int64) (*models.Item, error) {
	return r.getByID(ctx, r.db.DB(), id)
}

// UpdateFields applies the partial-update rule inside a transaction: each
// provided field replaces the stored value only when non-empty.
func (r *ItemRepository) UpdateFields(ctx context.Context, id int64, patch repositories.FieldPatch) (*models.Item, error) {
	var updated *models.Item
	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		item, err := r.getByID(ctx, tx, id)
		if err != nil {
			return err
		}
		if patch.Name != "" {
			item.Name = patch.Name
		}
		if patch.Description != "" {
			item.Description = patch.Description
		}
		if _, err := tx.ExecContext(ctx,
			r.db.Rebind(`UPDATE items SET name = ?, description = ? WHERE id = ?`),
			item.Name, item.Description, id,
		); err != nil {
			return fmt.Errorf("%w: update item: %w", invdomain.ErrRepository, err)
		}
		updated = item
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// SetPhoto replaces the photo reference and returns the previous one.
func (r *ItemRepository) SetPhoto(ctx context.Context, id int64, photoRef string) (*models.Item, string, error) {
	var (
		updated  *models.Item
		previous string
	)
	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		item, err := r.getByID(ctx, tx, id)
		if err != nil {
			return err
		}
		previous = item.PhotoRef
		item.PhotoRef = photoRef
		if _, err := tx.ExecContext(ctx,
			r.db.Rebind(`UPDATE items SET photo_ref = ? WHERE id = ?`),
			nullable(photoRef), id,
		); err != nil {
			return fmt.Errorf("%w: update photo ref: %w", invdomain.ErrRepository, err)
		}
		updated = item
		return nil
	})
	if err != nil {
		return nil, "", err
	}
	return updated, previous, nil
}

// Delete removes the item and returns the removed record.
func (r *ItemRepository) Delete(ctx context.Context, id int64) (*models.Item, error) {
	var removed *models.Item
	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		item, err := r.getByID(ctx, tx, id)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx,
			r.db.Rebind(`DELETE FROM items WHERE id = ?`), id,
		); err != nil {
			return fmt.Errorf("%w: delete item: %w", invdomain.ErrRepository, err)
		}
		removed = item
		return nil
	})
	if err != nil {
		return nil, err
	}
	return removed, nil
}

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (r *ItemRepository) getByID(ctx context.Context, q querier, id int64) (*models.Item, error) {
	item := &models.Item{}
	var photoRef sql.NullString
	err := q.QueryRowContext(ctx,
		r.db.Rebind(`SELECT id, name, description, photo_ref FROM items WHERE id = ?`), id,
	).Scan(&item.ID, &item.Name, &item.Description, &photoRef)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, invdomain.ErrItemNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: query item: %w", invdomain.ErrRepository, err)
	}
	item.PhotoRef = photoRef.String
	return item, nil
}

// scanner abstracts *sql.Rows for scanItem.
type scanner interface {
	Scan(dest ...any) error
}

func scanItem(s scanner) (*models.Item, error) {
	item := &models.Item{}
	var photoRef sql.NullString
	if err := s.Scan(&item.ID, &item.Name, &item.Description, &photoRef); err != nil {
		return nil, err
	}
	item.PhotoRef = photoRef.String
	return item, nil
}

// nullable maps the empty "no photo" reference to a NULL column value.
func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
