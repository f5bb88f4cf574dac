package handlers

import (
	"errors"
	"net/http"

	"github.com/ghuser/inventoryd/pkg/errhttp"
	"github.com/ghuser/inventoryd/pkg/httpx"
	appsvcs "github.com/ghuser/inventoryd/services/inventory/application/services"
)

// RegisterHandler handles POST /register requests.
type RegisterHandler struct {
	svc *appsvcs.Services
	err *errhttp.Writer
}

// NewRegisterHandler returns a RegisterHandler backed by the given services.
func NewRegisterHandler(svc *appsvcs.Services, err *errhttp.Writer) *RegisterHandler {
	return &RegisterHandler{svc: svc, err: err}
}

// Execute registers a new inventory item.
//
//	@Summary		Register item
//	@Description	Registers a new inventory item with an optional photo
//	@Tags			inventory
//	@Accept			mpfd
//	@Produce		json
//	@Param			name		formData	string	true	"Item name"
//	@Param			description	formData	string	false	"Item description"
//	@Param			photo		formData	file	false	"Item photo"
//	@Success		201	{object}	ItemResponse
//	@Failure		400	{object}	ErrorResponse
//	@Router			/register [post]
func (h *RegisterHandler) Execute(w http.ResponseWriter, r *http.Request) {
	upload, cleanup, ok := photoUpload(w, r)
	if !ok {
		return
	}
	defer cleanup()

	item, err := h.svc.Inventory.Register(r.Context(), r.FormValue("name"), r.FormValue("description"), upload)
	if err != nil {
		h.err.Write(w, r, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, itemResponse(item))
}

// photoUpload extracts the optional "photo" part from a multipart form.
// Returns the upload (nil when the part is absent), a cleanup func for the
// open file, and whether the request should proceed. A malformed multipart
// body is a 400; whether a missing photo is acceptable is the
// coordinator's decision, not this helper's.
func photoUpload(w http.ResponseWriter, r *http.Request) (*appsvcs.Upload, func(), bool) {
	noop := func() {}

	file, header, err := r.FormFile("photo")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, noop, true
		}
		httpx.JSONError(w, http.StatusBadRequest, "malformed multipart body")
		return nil, noop, false
	}

	return &appsvcs.Upload{Filename: header.Filename, Content: file},
		func() { _ = file.Close() }, true
}
