package handlers

import (
	"net/http"

	"github.com/ghuser/inventoryd/pkg/errhttp"
	"github.com/ghuser/inventoryd/pkg/httpx"
	appsvcs "github.com/ghuser/inventoryd/services/inventory/application/services"
)

// ReplacePhotoHandler handles PUT /inventory/{id}/photo requests.
type ReplacePhotoHandler struct {
	svc *appsvcs.Services
	err *errhttp.Writer
}

// NewReplacePhotoHandler returns a ReplacePhotoHandler backed by the given services.
func NewReplacePhotoHandler(svc *appsvcs.Services, err *errhttp.Writer) *ReplacePhotoHandler {
	return &ReplacePhotoHandler{svc: svc, err: err}
}

// Execute replaces the item's photo. The old blob is deleted only after
// the new reference is recorded.
//
//	@Summary		Replace photo
//	@Description	Uploads a new photo for the item, replacing any previous one
//	@Tags			inventory
//	@Accept			mpfd
//	@Produce		json
//	@Param			id		path		int		true	"Item id"
//	@Param			photo	formData	file	true	"New photo"
//	@Success		200	{object}	ItemResponse
//	@Failure		400	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/inventory/{id}/photo [put]
func (h *ReplacePhotoHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := itemID(r)
	if err != nil {
		h.err.Write(w, r, err)
		return
	}

	upload, cleanup, ok := photoUpload(w, r)
	if !ok {
		return
	}
	defer cleanup()

	item, err := h.svc.Inventory.ReplacePhoto(r.Context(), id, upload)
	if err != nil {
		h.err.Write(w, r, err)
		return
	}

	httpx.JSON(w, http.StatusOK, itemResponse(item))
}
