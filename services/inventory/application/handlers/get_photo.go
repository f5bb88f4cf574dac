package handlers

import (
	"io"
	"net/http"

	"github.com/ghuser/inventoryd/pkg/errhttp"
	appsvcs "github.com/ghuser/inventoryd/services/inventory/application/services"
)

// GetPhotoHandler handles GET /inventory/{id}/photo requests.
type GetPhotoHandler struct {
	svc *appsvcs.Services
	err *errhttp.Writer
}

// NewGetPhotoHandler returns a GetPhotoHandler backed by the given services.
func NewGetPhotoHandler(svc *appsvcs.Services, err *errhttp.Writer) *GetPhotoHandler {
	return &GetPhotoHandler{svc: svc, err: err}
}

// Execute streams the item's photo bytes.
//
// The content type is always image/jpeg regardless of the uploaded format.
// The stored MIME type is not recorded and the bytes are not sniffed —
// a known limitation carried over from the upload contract.
//
//	@Summary		Get photo
//	@Description	Streams the item's photo as image/jpeg
//	@Tags			inventory
//	@Produce		jpeg
//	@Param			id	path	int	true	"Item id"
//	@Success		200	{file}		file
//	@Failure		404	{object}	ErrorResponse
//	@Router			/inventory/{id}/photo [get]
func (h *GetPhotoHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := itemID(r)
	if err != nil {
		h.err.Write(w, r, err)
		return
	}

	rc, err := h.svc.Inventory.GetPhoto(r.Context(), id)
	if err != nil {
		h.err.Write(w, r, err)
		return
	}
	defer rc.Close()

	w.Header().Set("Content-Type", "image/jpeg")
	w.WriteHeader(http.StatusOK)
	_, _ = io.Copy(w, rc)
}
