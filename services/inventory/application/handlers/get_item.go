package handlers

import (
	"net/http"

	"github.com/ghuser/inventoryd/pkg/errhttp"
	"github.com/ghuser/inventoryd/pkg/httpx"
	appsvcs "github.com/ghuser/inventoryd/services/inventory/application/services"
)

// GetItemHandler handles GET /inventory/{id} requests.
type GetItemHandler struct {
	svc *appsvcs.Services
	err *errhttp.Writer
}

// NewGetItemHandler returns a GetItemHandler backed by the given services.
func NewGetItemHandler(svc *appsvcs.Services, err *errhttp.Writer) *GetItemHandler {
	return &GetItemHandler{svc: svc, err: err}
}

// Execute fetches a single inventory item by id.
//
//	@Summary		Get item
//	@Description	Returns one inventory item by id
//	@Tags			inventory
//	@Produce		json
//	@Param			id	path		int	true	"Item id"
//	@Success		200	{object}	ItemResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/inventory/{id} [get]
func (h *GetItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := itemID(r)
	if err != nil {
		h.err.Write(w, r, err)
		return
	}

	item, err := h.svc.Inventory.GetByID(r.Context(), id)
	if err != nil {
		h.err.Write(w, r, err)
		return
	}

	httpx.JSON(w, http.StatusOK, itemResponse(item))
}
