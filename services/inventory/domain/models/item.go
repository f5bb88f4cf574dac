package models

import "fmt"

// Item is the core aggregate for the inventory bounded context.
//
// PhotoRef is an opaque blob-store key; the empty string means the item has
// no photo. The invariant maintained by the lifecycle coordinator is that a
// non-empty PhotoRef always names a blob that exists in the store, and that
// a blob is owned by exactly one item for its lifetime.
type Item struct {
	ID          int64
	Name        string
	Description string
	PhotoRef    string
}

// HasPhoto reports whether the item currently owns a photo blob.
func (i *Item) HasPhoto() bool {
	return i.PhotoRef != ""
}

// PhotoURL returns the public URL of the item's photo, or the empty string
// when the item has none. The URL never exposes the storage key.
func (i *Item) PhotoURL() string {
	if !i.HasPhoto() {
		return ""
	}
	return fmt.Sprintf("/inventory/%d/photo", i.ID)
}
