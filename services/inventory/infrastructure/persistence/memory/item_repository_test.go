package memory_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/ghuser/inventoryd/services/inventory/domain/repositories"
	"github.com/ghuser/inventoryd/services/inventory/infrastructure/persistence/memory"
	"github.com/ghuser/inventoryd/services/inventory/infrastructure/persistence/repotest"
)

func TestItemRepository_Contract(t *testing.T) {
	repotest.Run(t, func(t *testing.T) repositories.ItemRepository {
		return memory.NewItemRepository()
	})
}

func TestItemRepository_ConcurrentCreates(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewItemRepository()

	const n = 50
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if _, err := repo.Create(ctx, fmt.Sprintf("item-%d", i), "", ""); err != nil {
				t.Errorf("Create: %v", err)
			}
		}(i)
	}
	wg.Wait()

	items, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(items) != n {
		t.Fatalf("expected %d items, got %d", n, len(items))
	}
	seen := make(map[int64]bool, n)
	for _, item := range items {
		if seen[item.ID] {
			t.Fatalf("duplicate id %d", item.ID)
		}
		seen[item.ID] = true
	}
}
