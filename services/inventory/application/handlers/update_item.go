package handlers

import (
	"net/http"

	"github.com/ghuser/inventoryd/pkg/errhttp"
	"github.com/ghuser/inventoryd/pkg/httpx"
	pkgvalidator "github.com/ghuser/inventoryd/pkg/validator"
	appsvcs "github.com/ghuser/inventoryd/services/inventory/application/services"
)

// UpdateItemRequest is the request body for PUT /inventory/{id}. Both
// fields are optional; an omitted or empty field leaves the stored value
// unchanged (partial-update rule — fields can be replaced, never cleared).
type UpdateItemRequest struct {
	Name        string `json:"name" validate:"omitempty,max=255" example:"Laptop"`
	Description string `json:"description" validate:"omitempty,max=4096" example:"Dell XPS 13"`
} // @name UpdateItemRequest

// UpdateItemHandler handles PUT /inventory/{id} requests.
type UpdateItemHandler struct {
	svc *appsvcs.Services
	err *errhttp.Writer
}

// NewUpdateItemHandler returns an UpdateItemHandler backed by the given services.
func NewUpdateItemHandler(svc *appsvcs.Services, err *errhttp.Writer) *UpdateItemHandler {
	return &UpdateItemHandler{svc: svc, err: err}
}

// Execute applies a partial update to an item's name and description.
//
//	@Summary		Update item
//	@Description	Replaces name and/or description; empty fields are left unchanged
//	@Tags			inventory
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int					true	"Item id"
//	@Param			request	body		UpdateItemRequest	true	"Fields to update"
//	@Success		200		{object}	ItemResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/inventory/{id} [put]
func (h *UpdateItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := itemID(r)
	if err != nil {
		h.err.Write(w, r, err)
		return
	}

	req, ok := pkgvalidator.ValidateRequest[UpdateItemRequest](w, r)
	if !ok {
		return
	}

	item, err := h.svc.Inventory.UpdateFields(r.Context(), id, req.Name, req.Description)
	if err != nil {
		h.err.Write(w, r, err)
		return
	}

	httpx.JSON(w, http.StatusOK, itemResponse(item))
}
