package domain

import "errors"

// Sentinel errors for the inventory domain. Use errors.Is() to check these.
var (
	// ErrItemNotFound indicates the requested item does not exist.
	ErrItemNotFound = errors.New("item not found")

	// ErrPhotoNotFound indicates the item has no photo, or the stored photo
	// file is missing. Deliberately distinct from ErrItemNotFound so callers
	// can tell "no such item" from "item without a retrievable photo",
	// though both map to 404.
	ErrPhotoNotFound = errors.New("photo not found")

	// ErrValidation indicates bad or missing caller input.
	ErrValidation = errors.New("invalid input")

	// ErrRepository indicates a persistence backend failure (connectivity,
	// query error). Never returned for a missing row.
	ErrRepository = errors.New("repository failure")
)
