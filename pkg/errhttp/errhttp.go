// Package errhttp maps domain sentinel errors to HTTP status codes.
// Add a case to StatusOf for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/ghuser/inventoryd/pkg/blobstore"
	"github.com/ghuser/inventoryd/pkg/httpx"
	"github.com/ghuser/inventoryd/pkg/logger"
	invdomain "github.com/ghuser/inventoryd/services/inventory/domain"
)

// Writer converts errors to JSON error responses. 5xx failures are logged
// with full detail and, in production, returned to the caller as an opaque
// message.
type Writer struct {
	log        logger.Logger
	production bool
}

// NewWriter returns a Writer. production controls whether 5xx bodies are
// sanitized.
func NewWriter(log logger.Logger, production bool) *Writer {
	return &Writer{log: log, production: production}
}

// Write maps err to an HTTP status code and writes a JSON error response.
func (wr *Writer) Write(w http.ResponseWriter, r *http.Request, err error) {
	status := StatusOf(err)
	if status >= http.StatusInternalServerError {
		wr.log.ErrorContext(r.Context(), "request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"status", status,
			"error", err,
		)
	}
	httpx.JSONError(w, status, httpx.SafeError(err, status, wr.production))
}

// StatusOf maps err to an HTTP status code. Uses errors.Is() so wrapped
// sentinel errors are matched correctly. Defaults to 500 Internal Server
// Error for unrecognized errors.
func StatusOf(err error) int {
	switch {
	case errors.Is(err, invdomain.ErrValidation):
		return http.StatusBadRequest // 400
	case errors.Is(err, invdomain.ErrItemNotFound),
		errors.Is(err, invdomain.ErrPhotoNotFound),
		errors.Is(err, blobstore.ErrNotFound):
		return http.StatusNotFound // 404
	case errors.Is(err, invdomain.ErrRepository),
		errors.Is(err, blobstore.ErrWrite):
		return http.StatusInternalServerError // 500
	default:
		return http.StatusInternalServerError // 500
	}
}
