// Package blobstore persists item photo payloads as opaque blobs keyed by
// generated references. The only shipping implementation stores blobs as
// flat files on local disk.
package blobstore

import (
	"context"
	"errors"
	"io"
)

// Sentinel errors returned by BlobStore implementations.
var (
	// ErrNotFound indicates the reference is empty or names a blob that
	// does not exist.
	ErrNotFound = errors.New("blob not found")

	// ErrWrite indicates an I/O failure while persisting a blob.
	ErrWrite = errors.New("blob write failed")
)

// BlobStore is the byte-storage abstraction used by the lifecycle
// coordinator. A stored blob is immutable: Store never overwrites an
// existing reference, and replacement is modeled as store-new + delete-old.
type BlobStore interface {
	// Store writes the payload under a newly generated unique reference,
	// preserving the extension of originalName. Failures wrap ErrWrite.
	Store(ctx context.Context, r io.Reader, originalName string) (ref string, err error)

	// Open returns a reader for the blob's content. Returns ErrNotFound for
	// an empty reference or a missing blob.
	Open(ctx context.Context, ref string) (io.ReadCloser, error)

	// Delete removes the blob. Deleting an empty reference or an already
	// absent blob is not an error — delete is idempotent, since the caller
	// may race with manual cleanup.
	Delete(ctx context.Context, ref string) error
}
