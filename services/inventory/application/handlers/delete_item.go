package handlers

import (
	"net/http"

	"github.com/ghuser/inventoryd/pkg/errhttp"
	"github.com/ghuser/inventoryd/pkg/httpx"
	appsvcs "github.com/ghuser/inventoryd/services/inventory/application/services"
)

// DeleteItemResponse confirms a deletion.
type DeleteItemResponse struct {
	Message string       `json:"message" example:"item deleted"`
	Item    ItemResponse `json:"item"`
} // @name DeleteItemResponse

// DeleteItemHandler handles DELETE /inventory/{id} requests.
type DeleteItemHandler struct {
	svc *appsvcs.Services
	err *errhttp.Writer
}

// NewDeleteItemHandler returns a DeleteItemHandler backed by the given services.
func NewDeleteItemHandler(svc *appsvcs.Services, err *errhttp.Writer) *DeleteItemHandler {
	return &DeleteItemHandler{svc: svc, err: err}
}

// Execute deletes an item and its owned photo blob.
//
//	@Summary		Delete item
//	@Description	Deletes an item; its photo blob is removed with it
//	@Tags			inventory
//	@Produce		json
//	@Param			id	path		int	true	"Item id"
//	@Success		200	{object}	DeleteItemResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/inventory/{id} [delete]
func (h *DeleteItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := itemID(r)
	if err != nil {
		h.err.Write(w, r, err)
		return
	}

	removed, err := h.svc.Inventory.Delete(r.Context(), id)
	if err != nil {
		h.err.Write(w, r, err)
		return
	}

	httpx.JSON(w, http.StatusOK, DeleteItemResponse{
		Message: "item deleted",
		Item:    itemResponse(removed),
	})
}
