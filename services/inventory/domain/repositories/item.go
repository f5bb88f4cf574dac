package repositories

import (
	"context"

	"github.com/ghuser/inventoryd/services/inventory/domain/models"
)

// FieldPatch carries the optional fields of a partial update. The zero value
// of either field means "leave unchanged" — this is a deliberate truthiness
// rule, not a PATCH-with-null-clears semantic, so a field can be replaced
// but never cleared.
type FieldPatch struct {
	Name        string
	Description string
}

// ItemRepository is the persistence interface for the Item aggregate.
// Two interchangeable implementations exist: a volatile in-memory store and
// a SQL-backed one, selected by configuration at process start.
//
// All methods return domain.ErrItemNotFound for a missing id; the SQL
// variant wraps backend failures in domain.ErrRepository, distinct from
// not-found.
type ItemRepository interface {
	// Create persists a new item and returns it with the assigned id.
	// Ids are positive and never reused, even after deletion. Name
	// validation happens in the coordinator before reaching the repository.
	Create(ctx context.Context, name, description, photoRef string) (*models.Item, error)

	// List returns all items: insertion order for the volatile variant,
	// primary-key order for the persistent one.
	List(ctx context.Context) ([]*models.Item, error)

	// GetByID returns a single item by id.
	GetByID(ctx context.Context, id int64) (*models.Item, error)

	// UpdateFields applies a partial update and returns the updated item.
	UpdateFields(ctx context.Context, id int64, patch FieldPatch) (*models.Item, error)

	// SetPhoto replaces the item's photo reference and returns the updated
	// item together with the previous reference, so the caller can
	// garbage-collect the old blob.
	SetPhoto(ctx context.Context, id int64, photoRef string) (item *models.Item, previousRef string, err error)

	// Delete removes the item and returns the removed record.
	Delete(ctx context.Context, id int64) (*models.Item, error)
}
