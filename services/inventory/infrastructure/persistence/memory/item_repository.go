// Package memory implements the item repository as a volatile in-process
// list. All state lives on the injected store instance — there is no
// package-level list or counter — so tests can run stores side by side.
package memory

import (
	"context"
	"sync"

	invdomain "github.com/ghuser/inventoryd/services/inventory/domain"
	"github.com/ghuser/inventoryd/services/inventory/domain/models"
	"github.com/ghuser/inventoryd/services/inventory/domain/repositories"
)

// ItemRepository implements repositories.ItemRepository backed by an
// ordered in-memory slice. Ids are assigned by a monotonically increasing
// counter starting at 1 and are never reused, even after deletion.
type ItemRepository struct {
	mu     sync.Mutex
	items  []*models.Item
	nextID int64
}

// NewItemRepository returns an empty repository.
func NewItemRepository() *ItemRepository {
	return &ItemRepository{nextID: 1}
}

// Create persists a new item and returns it with the assigned id.
func (r *ItemRepository) Create(ctx context.Context, name, description, photoRef string) (*models.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	item := &models.Item{
		ID:          r.nextID,
		Name:        name,
		Description: description,
		PhotoRef:    photoRef,
	}
	r.nextID++
	r.items = append(r.items, item)
	return clone(item), nil
}

// List returns all items in insertion order.
func (r *ItemRepository) List(ctx context.Context) ([]*models.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*models.Item, len(r.items))
	for i, item := range r.items {
		out[i] = clone(item)
	}
	return out, nil
}

// GetByID returns a single item by id.
func (r *ItemRepository) GetByID(ctx context.Context, id int64) (*models.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	item := r.find(id)
	if item == nil {
		return nil, invdomain.ErrItemNotFound
	}
	return clone(item), nil
}

// UpdateFields replaces each stored field only when the patch value is
// non-empty; empty patch fields leave the stored value unchanged.
func (r *ItemRepository) UpdateFields(ctx context.Context, id int64, patch repositories.FieldPatch) (*models.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	item := r.find(id)
	if item == nil {
		return nil, invdomain.ErrItemNotFound
	}
	if patch.Name != "" {
		item.Name = patch.Name
	}
	if patch.Description != "" {
		item.Description = patch.Description
	}
	return clone(item), nil
}

// SetPhoto replaces the photo reference and returns the previous one.
func (r *ItemRepository) SetPhoto(ctx context.Context, id int64, photoRef string) (*models.Item, string, error) {
	if err := ctx.Err(); err != nil {
		return nil, "", err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	item := r.find(id)
	if item == nil {
		return nil, "", invdomain.ErrItemNotFound
	}
	previous := item.PhotoRef
	item.PhotoRef = photoRef
	return clone(item), previous, nil
}

// Delete removes the item and returns the removed record.
func (r *ItemRepository) Delete(ctx context.Context, id int64) (*models.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, item := range r.items {
		if item.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return clone(item), nil
		}
	}
	return nil, invdomain.ErrItemNotFound
}

// find returns the stored item or nil. Callers must hold r.mu.
func (r *ItemRepository) find(id int64) *models.Item {
	for _, item := range r.items {
		if item.ID == id {
			return item
		}
	}
	return nil
}

// clone copies an item so callers never alias repository-owned state.
func clone(item *models.Item) *models.Item {
	c := *item
	return &c
}
