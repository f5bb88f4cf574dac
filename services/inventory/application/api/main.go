package api

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/inventoryd/pkg/app"
	"github.com/ghuser/inventoryd/pkg/errhttp"
	"github.com/ghuser/inventoryd/pkg/httpx"
	"github.com/ghuser/inventoryd/services/inventory/application/handlers"
	appsvcs "github.com/ghuser/inventoryd/services/inventory/application/services"
)

// InventoryRoutes registers the inventory endpoints on the provided chi
// router. Routes are mounted at the router root because photo URLs are
// advertised as /inventory/{id}/photo.
func InventoryRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	ew := errhttp.NewWriter(a.Logger, a.Production)

	r.Route("/register", func(r chi.Router) {
		r.MethodNotAllowed(methodNotAllowed(http.MethodPost))
		r.Post("/", handlers.NewRegisterHandler(svcs, ew).Execute)
	})

	r.Route("/search", func(r chi.Router) {
		r.MethodNotAllowed(methodNotAllowed(http.MethodPost))
		r.Post("/", handlers.NewSearchHandler(svcs, ew).Execute)
	})

	r.Route("/inventory", func(r chi.Router) {
		r.MethodNotAllowed(methodNotAllowed(http.MethodGet))
		r.Get("/", handlers.NewListItemsHandler(svcs, ew).Execute)

		r.Route("/{id}", func(r chi.Router) {
			r.MethodNotAllowed(methodNotAllowed(http.MethodGet, http.MethodPut, http.MethodDelete))
			r.Get("/", handlers.NewGetItemHandler(svcs, ew).Execute)
			r.Put("/", handlers.NewUpdateItemHandler(svcs, ew).Execute)
			r.Delete("/", handlers.NewDeleteItemHandler(svcs, ew).Execute)

			r.Route("/photo", func(r chi.Router) {
				r.MethodNotAllowed(methodNotAllowed(http.MethodGet, http.MethodPut))
				r.Get("/", handlers.NewGetPhotoHandler(svcs, ew).Execute)
				r.Put("/", handlers.NewReplacePhotoHandler(svcs, ew).Execute)
			})
		})
	})
}

// methodNotAllowed returns a 405 handler advertising the supported methods
// in the Allow header.
func methodNotAllowed(allowed ...string) http.HandlerFunc {
	allow := strings.Join(allowed, ", ")
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Allow", allow)
		httpx.JSONError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}
