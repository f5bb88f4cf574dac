// Package repotest holds the behavioral contract every item repository
// implementation must satisfy. Backend packages run it from their own tests
// so the volatile and SQL variants stay interchangeable.
package repotest

import (
	"context"
	"errors"
	"testing"

	invdomain "github.com/ghuser/inventoryd/services/inventory/domain"
	"github.com/ghuser/inventoryd/services/inventory/domain/repositories"
)

// Factory returns a fresh, empty repository for each subtest.
type Factory func(t *testing.T) repositories.ItemRepository

// Run executes the full repository contract against the given factory.
func Run(t *testing.T, newRepo Factory) {
	ctx := context.Background()

	t.Run("create assigns positive increasing ids", func(t *testing.T) {
		repo := newRepo(t)

		first, err := repo.Create(ctx, "Laptop", "Dell XPS 13", "")
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if first.ID <= 0 {
			t.Fatalf("expected positive id, got %d", first.ID)
		}
		second, err := repo.Create(ctx, "Monitor", "", "")
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if second.ID <= first.ID {
			t.Fatalf("expected increasing ids, got %d then %d", first.ID, second.ID)
		}
	})

	t.Run("ids are not reused after delete", func(t *testing.T) {
		repo := newRepo(t)

		first, err := repo.Create(ctx, "Laptop", "", "")
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if _, err := repo.Delete(ctx, first.ID); err != nil {
			t.Fatalf("Delete: %v", err)
		}
		second, err := repo.Create(ctx, "Monitor", "", "")
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if second.ID <= first.ID {
			t.Fatalf("id %d reused after deleting %d", second.ID, first.ID)
		}
	})

	t.Run("get by id round trip", func(t *testing.T) {
		repo := newRepo(t)

		created, err := repo.Create(ctx, "Laptop", "Dell XPS 13", "blob-1.jpg")
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		got, err := repo.GetByID(ctx, created.ID)
		if err != nil {
			t.Fatalf("GetByID: %v", err)
		}
		if got.Name != "Laptop" || got.Description != "Dell XPS 13" || got.PhotoRef != "blob-1.jpg" {
			t.Fatalf("unexpected item %+v", got)
		}
	})

	t.Run("get missing id", func(t *testing.T) {
		repo := newRepo(t)

		if _, err := repo.GetByID(ctx, 12345); !errors.Is(err, invdomain.ErrItemNotFound) {
			t.Fatalf("expected ErrItemNotFound, got %v", err)
		}
	})

	t.Run("list returns items in id order", func(t *testing.T) {
		repo := newRepo(t)

		names := []string{"Laptop", "Monitor", "Keyboard"}
		for _, n := range names {
			if _, err := repo.Create(ctx, n, "", ""); err != nil {
				t.Fatalf("Create(%q): %v", n, err)
			}
		}
		items, err := repo.List(ctx)
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if len(items) != len(names) {
			t.Fatalf("expected %d items, got %d", len(names), len(items))
		}
		for i, item := range items {
			if item.Name != names[i] {
				t.Fatalf("position %d: expected %q, got %q", i, names[i], item.Name)
			}
			if i > 0 && items[i-1].ID >= item.ID {
				t.Fatalf("ids out of order: %d then %d", items[i-1].ID, item.ID)
			}
		}
	})

	t.Run("list on empty repository", func(t *testing.T) {
		repo := newRepo(t)

		items, err := repo.List(ctx)
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if len(items) != 0 {
			t.Fatalf("expected no items, got %d", len(items))
		}
	})

	t.Run("update fields truthiness", func(t *testing.T) {
		tests := []struct {
			name     string
			patch    repositories.FieldPatch
			wantName string
			wantDesc string
		}{
			{"both set", repositories.FieldPatch{Name: "New", Description: "new desc"}, "New", "new desc"},
			{"name only", repositories.FieldPatch{Name: "New"}, "New", "old desc"},
			{"description only", repositories.FieldPatch{Description: "new desc"}, "Old", "new desc"},
			{"neither set leaves all unchanged", repositories.FieldPatch{}, "Old", "old desc"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				repo := newRepo(t)
				created, err := repo.Create(ctx, "Old", "old desc", "")
				if err != nil {
					t.Fatalf("Create: %v", err)
				}

				updated, err := repo.UpdateFields(ctx, created.ID, tt.patch)
				if err != nil {
					t.Fatalf("UpdateFields: %v", err)
				}
				if updated.Name != tt.wantName || updated.Description != tt.wantDesc {
					t.Fatalf("got (%q, %q), want (%q, %q)",
						updated.Name, updated.Description, tt.wantName, tt.wantDesc)
				}

				stored, err := repo.GetByID(ctx, created.ID)
				if err != nil {
					t.Fatalf("GetByID: %v", err)
				}
				if stored.Name != tt.wantName || stored.Description != tt.wantDesc {
					t.Fatalf("stored (%q, %q), want (%q, %q)",
						stored.Name, stored.Description, tt.wantName, tt.wantDesc)
				}
			})
		}
	})

	t.Run("update missing id", func(t *testing.T) {
		repo := newRepo(t)

		_, err := repo.UpdateFields(ctx, 999, repositories.FieldPatch{Name: "x"})
		if !errors.Is(err, invdomain.ErrItemNotFound) {
			t.Fatalf("expected ErrItemNotFound, got %v", err)
		}
	})

	t.Run("set photo returns previous ref", func(t *testing.T) {
		repo := newRepo(t)

		created, err := repo.Create(ctx, "Laptop", "", "")
		if err != nil {
			t.Fatalf("Create: %v", err)
		}

		item, previous, err := repo.SetPhoto(ctx, created.ID, "blob-1.jpg")
		if err != nil {
			t.Fatalf("SetPhoto: %v", err)
		}
		if previous != "" {
			t.Fatalf("expected empty previous ref, got %q", previous)
		}
		if item.PhotoRef != "blob-1.jpg" {
			t.Fatalf("expected blob-1.jpg, got %q", item.PhotoRef)
		}

		item, previous, err = repo.SetPhoto(ctx, created.ID, "blob-2.jpg")
		if err != nil {
			t.Fatalf("SetPhoto: %v", err)
		}
		if previous != "blob-1.jpg" {
			t.Fatalf("expected previous blob-1.jpg, got %q", previous)
		}
		if item.PhotoRef != "blob-2.jpg" {
			t.Fatalf("expected blob-2.jpg, got %q", item.PhotoRef)
		}
	})

	t.Run("set photo clears with empty ref", func(t *testing.T) {
		repo := newRepo(t)

		created, err := repo.Create(ctx, "Laptop", "", "blob-1.jpg")
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		item, previous, err := repo.SetPhoto(ctx, created.ID, "")
		if err != nil {
			t.Fatalf("SetPhoto: %v", err)
		}
		if previous != "blob-1.jpg" {
			t.Fatalf("expected previous blob-1.jpg, got %q", previous)
		}
		if item.HasPhoto() {
			t.Fatalf("expected photo cleared, got %q", item.PhotoRef)
		}
	})

	t.Run("set photo on missing id", func(t *testing.T) {
		repo := newRepo(t)

		_, _, err := repo.SetPhoto(ctx, 999, "blob.jpg")
		if !errors.Is(err, invdomain.ErrItemNotFound) {
			t.Fatalf("expected ErrItemNotFound, got %v", err)
		}
	})

	t.Run("delete returns removed record", func(t *testing.T) {
		repo := newRepo(t)

		created, err := repo.Create(ctx, "Laptop", "Dell XPS 13", "blob-1.jpg")
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		removed, err := repo.Delete(ctx, created.ID)
		if err != nil {
			t.Fatalf("Delete: %v", err)
		}
		if removed.PhotoRef != "blob-1.jpg" {
			t.Fatalf("removed record missing photo ref: %+v", removed)
		}
		if _, err := repo.GetByID(ctx, created.ID); !errors.Is(err, invdomain.ErrItemNotFound) {
			t.Fatalf("expected ErrItemNotFound after delete, got %v", err)
		}
		if _, err := repo.Delete(ctx, created.ID); !errors.Is(err, invdomain.ErrItemNotFound) {
			t.Fatalf("expected ErrItemNotFound on second delete, got %v", err)
		}
	})

	t.Run("returned items do not alias stored state", func(t *testing.T) {
		repo := newRepo(t)

		created, err := repo.Create(ctx, "Laptop", "", "")
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		created.Name = "mutated"

		stored, err := repo.GetByID(ctx, created.ID)
		if err != nil {
			t.Fatalf("GetByID: %v", err)
		}
		if stored.Name != "Laptop" {
			t.Fatalf("mutation of returned item leaked into store: %q", stored.Name)
		}
	})
}
