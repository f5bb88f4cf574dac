package handlers

import (
	"net/http"

	"github.com/ghuser/inventoryd/pkg/errhttp"
	"github.com/ghuser/inventoryd/pkg/httpx"
	appsvcs "github.com/ghuser/inventoryd/services/inventory/application/services"
)

// ListItemsHandler handles GET /inventory requests.
type ListItemsHandler struct {
	svc *appsvcs.Services
	err *errhttp.Writer
}

// NewListItemsHandler returns a ListItemsHandler backed by the given services.
func NewListItemsHandler(svc *appsvcs.Services, err *errhttp.Writer) *ListItemsHandler {
	return &ListItemsHandler{svc: svc, err: err}
}

// Execute lists all inventory items.
//
//	@Summary		List items
//	@Description	Returns all inventory items with derived photo URLs
//	@Tags			inventory
//	@Produce		json
//	@Success		200	{array}		ItemResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/inventory [get]
func (h *ListItemsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.Inventory.List(r.Context())
	if err != nil {
		h.err.Write(w, r, err)
		return
	}

	out := make([]ItemResponse, len(items))
	for i, item := range items {
		out[i] = itemResponse(item)
	}
	httpx.JSON(w, http.StatusOK, out)
}
