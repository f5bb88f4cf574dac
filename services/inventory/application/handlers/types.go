package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	invdomain "github.com/ghuser/inventoryd/services/inventory/domain"
	"github.com/ghuser/inventoryd/services/inventory/domain/models"
)

// ItemResponse is the wire representation of an item. PhotoURL is derived
// from the item id and omitted when the item has no photo; the internal
// storage reference is never exposed.
type ItemResponse struct {
	ID          int64  `json:"id"          example:"1"`
	Name        string `json:"name"        example:"Laptop"`
	Description string `json:"description" example:"Dell XPS 13"`
	PhotoURL    string `json:"photo_url,omitempty" example:"/inventory/1/photo"`
} // @name ItemResponse

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"item not found"`
} // @name ErrorResponse

func itemResponse(item *models.Item) ItemResponse {
	return ItemResponse{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		PhotoURL:    item.PhotoURL(),
	}
}

// itemID extracts the {id} URL parameter. A non-numeric id maps to
// not-found: no item can live at such a path. Only POST /search
// distinguishes a 400 for unparseable ids.
func itemID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: id %q", invdomain.ErrItemNotFound, raw)
	}
	return id, nil
}
