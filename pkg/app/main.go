package app

import (
	"github.com/ghuser/inventoryd/pkg/blobstore"
	"github.com/ghuser/inventoryd/pkg/database"
	"github.com/ghuser/inventoryd/pkg/events"
	"github.com/ghuser/inventoryd/pkg/logger"
)

// Application holds shared infrastructure dependencies for all services.
// Pass to each service's route registration during server initialization.
//
// Db is nil when the in-memory storage backend is active; service wiring
// selects the repository implementation accordingly.
//
// Logging: app.Logger is backed by a trace-aware handler — use slog's
// context methods and trace_id, span_id, and request_id are injected
// automatically:
//
//	app.Logger.InfoContext(ctx, "replacing photo", "item_id", id)
//	app.Logger.ErrorContext(ctx, "failed to save", "error", err)
//
// Use app.Logger.Info/Error (no context) only for startup and shutdown messages.
type Application struct {
	Db         *database.Database
	Logger     logger.Logger
	EventBus   *events.Bus
	Blobs      blobstore.BlobStore
	Production bool
}
