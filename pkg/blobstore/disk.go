package blobstore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Disk stores blobs as flat files inside a root directory. References are
// generated from a UTC timestamp plus a random component and keep the
// uploaded file's extension, so a reference like
// 20260830T101501.123456789-7f3a52c9.jpg is unique without coordination.
type Disk struct {
	root string
}

// NewDisk creates a disk blob store rooted at root, creating the directory
// recursively if absent.
func NewDisk(root string) (*Disk, error) {
	root = strings.TrimSpace(root)
	if root == "" {
		return nil, fmt.Errorf("blob store root is required")
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("create blob root: %w", err)
	}
	return &Disk{root: abs}, nil
}

// Store writes the payload under a fresh reference. The file is created
// with O_EXCL so an existing blob is never overwritten.
func (d *Disk) Store(ctx context.Context, r io.Reader, originalName string) (string, error) {
	if r == nil {
		return "", fmt.Errorf("%w: reader is required", ErrWrite)
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	ref := newRef(originalName)
	f, err := os.OpenFile(filepath.Join(d.root, ref), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("%w: create %s: %w", ErrWrite, ref, err)
	}

	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		_ = os.Remove(f.Name())
		return "", fmt.Errorf("%w: write %s: %w", ErrWrite, ref, err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(f.Name())
		return "", fmt.Errorf("%w: close %s: %w", ErrWrite, ref, err)
	}

	return ref, nil
}

// Open returns a reader for the blob's content.
func (d *Disk) Open(ctx context.Context, ref string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path, err := d.pathFromRef(ref)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, ref)
		}
		return nil, fmt.Errorf("open blob %s: %w", ref, err)
	}
	return f, nil
}

// Delete removes the blob. An empty reference or a missing file is ignored.
func (d *Disk) Delete(ctx context.Context, ref string) error {
	if ref == "" {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	path, err := d.pathFromRef(ref)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("delete blob %s: %w", ref, err)
	}
	return nil
}

// Ping verifies the root directory is still accessible. Satisfies
// httpx.HealthChecker.
func (d *Disk) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	info, err := os.Stat(d.root)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("blob root %s is not a directory", d.root)
	}
	return nil
}

// newRef builds a unique blob reference from a UTC timestamp and a random
// component, preserving the sanitized extension of originalName.
func newRef(originalName string) string {
	ts := time.Now().UTC().Format("20060102T150405.000000000")
	rnd := strings.SplitN(uuid.NewString(), "-", 2)[0]
	return ts + "-" + rnd + sanitizeExt(originalName)
}

// sanitizeExt extracts a safe lowercase extension from the uploaded
// filename. Anything that is not a short alphanumeric suffix is dropped.
func sanitizeExt(name string) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(name)))
	if len(ext) < 2 || len(ext) > 8 {
		return ""
	}
	for _, r := range ext[1:] {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return ""
		}
	}
	return ext
}

// pathFromRef resolves a reference inside the root, rejecting traversal.
func (d *Disk) pathFromRef(ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", fmt.Errorf("%w: empty reference", ErrNotFound)
	}
	clean := filepath.Clean(filepath.FromSlash(ref))
	if filepath.IsAbs(clean) || clean == "." || strings.HasPrefix(clean, "..") || strings.ContainsRune(clean, filepath.Separator) {
		return "", fmt.Errorf("%w: invalid reference %q", ErrNotFound, ref)
	}
	return filepath.Join(d.root, clean), nil
}
