package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/ghuser/inventoryd/pkg/errhttp"
	"github.com/ghuser/inventoryd/pkg/httpx"
	appsvcs "github.com/ghuser/inventoryd/services/inventory/application/services"
)

// SearchHandler handles POST /search requests. The id arrives either as a
// form field or as a JSON body ({"id": 1} and {"id": "1"} both work); it is
// parsed by the coordinator so non-numeric input is a 400, distinct from a
// missing item's 404.
type SearchHandler struct {
	svc *appsvcs.Services
	err *errhttp.Writer
}

// NewSearchHandler returns a SearchHandler backed by the given services.
func NewSearchHandler(svc *appsvcs.Services, err *errhttp.Writer) *SearchHandler {
	return &SearchHandler{svc: svc, err: err}
}

// Execute looks up an item by id.
//
//	@Summary		Search by id
//	@Description	Looks up one item by numeric id supplied as form or JSON
//	@Tags			inventory
//	@Accept			json
//	@Produce		json
//	@Param			id	formData	string	false	"Item id"
//	@Success		201	{object}	ItemResponse
//	@Failure		400	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/search [post]
func (h *SearchHandler) Execute(w http.ResponseWriter, r *http.Request) {
	raw, ok := searchID(w, r)
	if !ok {
		return
	}

	item, err := h.svc.Inventory.SearchByID(r.Context(), raw)
	if err != nil {
		h.err.Write(w, r, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, itemResponse(item))
}

// searchID extracts the raw id from a JSON or form body without judging
// whether it is numeric.
func searchID(w http.ResponseWriter, r *http.Request) (string, bool) {
	ct := r.Header.Get("Content-Type")
	if strings.HasPrefix(ct, "application/json") {
		var body struct {
			ID any `json:"id"`
		}
		dec := json.NewDecoder(r.Body)
		dec.UseNumber()
		if err := dec.Decode(&body); err != nil {
			httpx.JSONError(w, http.StatusBadRequest, "Invalid JSON")
			return "", false
		}
		switch v := body.ID.(type) {
		case string:
			return v, true
		case json.Number:
			return v.String(), true
		default:
			httpx.JSONError(w, http.StatusBadRequest, "id is required")
			return "", false
		}
	}

	return r.FormValue("id"), true
}
