package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/inventoryd/pkg/blobstore"
	pkgevents "github.com/ghuser/inventoryd/pkg/events"
	"github.com/ghuser/inventoryd/pkg/logger"
	invdomain "github.com/ghuser/inventoryd/services/inventory/domain"
	domainevents "github.com/ghuser/inventoryd/services/inventory/domain/events"
	"github.com/ghuser/inventoryd/services/inventory/domain/models"
	"github.com/ghuser/inventoryd/services/inventory/domain/repositories"
	domainsvcs "github.com/ghuser/inventoryd/services/inventory/domain/services"
)

// Upload is an uploaded photo payload, already extracted from the request
// by the HTTP surface. Filename only contributes its extension to the
// generated blob reference.
type Upload struct {
	Filename string
	Content  io.Reader
}

// InventoryService coordinates the item repository and the blob store so an
// item's photo reference and the file on disk never diverge: a non-empty
// reference always names an existing blob, and no blob outlives the last
// item referencing it. Partial failures are handled with compensating
// deletes — there is no two-phase commit across disk and database, so
// best-effort cleanup is the policy.
//
// ReplacePhoto and Delete are serialized per item id. Without that, two
// concurrent replaces could each collect only the reference they swapped
// out, stranding the loser's blob.
type InventoryService struct {
	repo  repositories.ItemRepository
	blobs blobstore.BlobStore
	bus   *pkgevents.Bus
	log   logger.Logger

	// locks holds one *sync.Mutex per item id. Entries are tiny and ids
	// increase monotonically, so they are not reclaimed on delete.
	locks sync.Map
}

// NewInventoryService wires the coordinator. bus may be nil (tests).
func NewInventoryService(repo repositories.ItemRepository, blobs blobstore.BlobStore, bus *pkgevents.Bus, log logger.Logger) *InventoryService {
	return &InventoryService{repo: repo, blobs: blobs, bus: bus, log: log}
}

// Register validates the name, stores the photo blob if one was uploaded,
// and creates the item record referencing it. Validation runs before the
// blob write, so a rejected registration never leaves a file behind; if
// record creation fails after the blob was written, the orphan is deleted
// before the error propagates.
func (s *InventoryService) Register(ctx context.Context, name, description string, photo *Upload) (*models.Item, error) {
	if err := domainsvcs.ValidateName(name); err != nil {
		return nil, fmt.Errorf("%w: %w", invdomain.ErrValidation, err)
	}

	var ref string
	if photo != nil {
		var err error
		ref, err = s.blobs.Store(ctx, photo.Content, photo.Filename)
		if err != nil {
			return nil, fmt.Errorf("store photo: %w", err)
		}
	}

	item, err := s.repo.Create(ctx, name, description, ref)
	if err != nil {
		s.collectBlob(ctx, ref)
		return nil, fmt.Errorf("create item: %w", err)
	}

	s.publish(ctx, domainevents.TopicItemCreated, domainevents.ItemCreatedEvent{
		EventID:    uuid.New(),
		Version:    1,
		ItemID:     item.ID,
		Name:       item.Name,
		HasPhoto:   item.HasPhoto(),
		OccurredAt: time.Now().UTC(),
	})
	return item, nil
}

// List returns all items.
func (s *InventoryService) List(ctx context.Context) ([]*models.Item, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return items, nil
}

// GetByID returns a single item.
func (s *InventoryService) GetByID(ctx context.Context, id int64) (*models.Item, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}
	return item, nil
}

// UpdateFields applies a partial update: each provided field replaces the
// stored value only when non-empty. The truthiness rule lives in the
// repository so both backends share it.
func (s *InventoryService) UpdateFields(ctx context.Context, id int64, name, description string) (*models.Item, error) {
	item, err := s.repo.UpdateFields(ctx, id, repositories.FieldPatch{Name: name, Description: description})
	if err != nil {
		return nil, fmt.Errorf("update item: %w", err)
	}
	return item, nil
}

// ReplacePhoto stores the new blob, swaps the item's reference, and only
// then deletes the old blob. Delete-after-swap is mandatory: deleting first
// would open a window with no retrievable photo if the swap failed. If the
// item is gone, the just-stored blob is collected before returning.
func (s *InventoryService) ReplacePhoto(ctx context.Context, id int64, photo *Upload) (*models.Item, error) {
	if photo == nil {
		return nil, fmt.Errorf("%w: no photo uploaded", invdomain.ErrValidation)
	}

	unlock := s.lock(id)
	defer unlock()

	ref, err := s.blobs.Store(ctx, photo.Content, photo.Filename)
	if err != nil {
		return nil, fmt.Errorf("store photo: %w", err)
	}

	item, previous, err := s.repo.SetPhoto(ctx, id, ref)
	if err != nil {
		s.collectBlob(ctx, ref)
		return nil, fmt.Errorf("swap photo ref: %w", err)
	}

	s.collectBlob(ctx, previous)

	s.publish(ctx, domainevents.TopicItemPhotoReplaced, domainevents.ItemPhotoReplacedEvent{
		EventID:    uuid.New(),
		Version:    1,
		ItemID:     item.ID,
		OccurredAt: time.Now().UTC(),
	})
	return item, nil
}

// GetPhoto returns the photo bytes for streaming. The caller owns the
// returned reader. An item whose blob was removed externally surfaces as
// photo-not-found, not as a failure of the item itself.
func (s *InventoryService) GetPhoto(ctx context.Context, id int64) (io.ReadCloser, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}
	if !item.HasPhoto() {
		return nil, invdomain.ErrPhotoNotFound
	}

	rc, err := s.blobs.Open(ctx, item.PhotoRef)
	if err != nil {
		if errors.Is(err, blobstore.ErrNotFound) {
			return nil, fmt.Errorf("%w: blob missing", invdomain.ErrPhotoNotFound)
		}
		return nil, fmt.Errorf("open photo: %w", err)
	}
	return rc, nil
}

// Delete removes the record first, then best-effort deletes the owned
// blob. If the blob delete fails the item is still gone and the blob is
// unreachable; that is logged, never surfaced, matching the blob store's
// idempotent-delete contract.
func (s *InventoryService) Delete(ctx context.Context, id int64) (*models.Item, error) {
	unlock := s.lock(id)
	defer unlock()

	removed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("delete item: %w", err)
	}

	s.collectBlob(ctx, removed.PhotoRef)

	s.publish(ctx, domainevents.TopicItemDeleted, domainevents.ItemDeletedEvent{
		EventID:    uuid.New(),
		Version:    1,
		ItemID:     removed.ID,
		Name:       removed.Name,
		OccurredAt: time.Now().UTC(),
	})
	return removed, nil
}

// SearchByID parses raw as an item id and looks it up. A non-numeric input
// is a validation failure, distinct from a missing item.
func (s *InventoryService) SearchByID(ctx context.Context, raw string) (*models.Item, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: id %q is not numeric", invdomain.ErrValidation, raw)
	}
	return s.GetByID(ctx, id)
}

// lock acquires the per-item mutex and returns the unlock func.
func (s *InventoryService) lock(id int64) func() {
	v, _ := s.locks.LoadOrStore(id, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

// collectBlob deletes a blob that no item references anymore. Failures are
// logged, not surfaced: the item state is already consistent and a leaked
// file is recoverable by manual cleanup.
func (s *InventoryService) collectBlob(ctx context.Context, ref string) {
	if ref == "" {
		return
	}
	if err := s.blobs.Delete(ctx, ref); err != nil {
		s.log.ErrorContext(ctx, "failed to collect blob", "ref", ref, "error", err)
	}
}

// publish sends a lifecycle event. Publishing is best-effort: the state
// change is already durable, so a bus failure is logged and dropped.
func (s *InventoryService) publish(ctx context.Context, topic string, v any) {
	if s.bus == nil {
		return
	}
	msg, err := pkgevents.NewJSONMessage(v)
	if err != nil {
		s.log.ErrorContext(ctx, "failed to build event", "topic", topic, "error", err)
		return
	}
	if err := s.bus.Publish(ctx, topic, msg); err != nil {
		s.log.ErrorContext(ctx, "failed to publish event", "topic", topic, "error", err)
	}
}
