package httpx

import (
	"context"
	"net/http"
	"time"
)

// HealthChecker is satisfied by any infrastructure dependency that exposes
// a Ping method (database.Database, the disk blob store, and the event bus
// all qualify).
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// HealthChecks holds the set of dependencies to probe in the health endpoint.
// Database is nil when the in-memory backend is active and is then skipped.
type HealthChecks struct {
	Database  HealthChecker
	BlobStore HealthChecker
	EventBus  HealthChecker
}

type healthResponse struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	BlobStore string `json:"blob_store"`
	EventBus  string `json:"event_bus"`
}

// HealthHandler returns an http.HandlerFunc that probes all registered
// HealthCheckers and reports degraded status if any of them fail.
func HealthHandler(checks HealthChecks) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		resp := healthResponse{
			Status:    "ok",
			Database:  "ok",
			BlobStore: "ok",
			EventBus:  "ok",
		}

		if checks.Database == nil {
			resp.Database = "memory"
		} else if err := checks.Database.Ping(ctx); err != nil {
			resp.Status = "degraded"
			resp.Database = "unreachable"
		}
		if err := checks.BlobStore.Ping(ctx); err != nil {
			resp.Status = "degraded"
			resp.BlobStore = "unreachable"
		}
		if err := checks.EventBus.Ping(ctx); err != nil {
			resp.Status = "degraded"
			resp.EventBus = "unreachable"
		}

		status := http.StatusOK
		if resp.Status != "ok" {
			status = http.StatusServiceUnavailable
		}
		JSON(w, status, resp)
	}
}
