package services

import (
	"github.com/ghuser/inventoryd/pkg/app"
	"github.com/ghuser/inventoryd/services/inventory/domain/repositories"
	"github.com/ghuser/inventoryd/services/inventory/infrastructure/persistence/memory"
	"github.com/ghuser/inventoryd/services/inventory/infrastructure/persistence/sqldb"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Inventory *InventoryService
}

// New wires the inventory service with infrastructure from the Application
// container. The repository variant follows the configured backend: SQL
// when a database connection is present, the volatile in-memory store
// otherwise. Both satisfy the same repository contract.
func New(a *app.Application) *Services {
	var repo repositories.ItemRepository
	if a.Db != nil {
		repo = sqldb.NewItemRepository(a.Db)
	} else {
		repo = memory.NewItemRepository()
	}
	return &Services{
		Inventory: NewInventoryService(repo, a.Blobs, a.EventBus, a.Logger),
	}
}
