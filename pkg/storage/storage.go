// Package storage stores uploaded lecture materials as opaque blobs.
package storage

import (
	"context"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// BlobStore is implemented by the S3 client and the local disk store.
type BlobStore interface {
	// Put stores body under key and returns the public URL of the blob.
	Put(ctx context.Context, key string, body io.ReadSeeker, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
}

// Object is a stored blob.
type Object struct {
	Key string
	URL string
}

// NewKey builds a collision-free key under prefix, keeping the lower-cased
// extension of the original filename.
func NewKey(prefix, filename string) string {
	return path.Join(prefix, uuid.New().String()+Extension(filename))
}

// Extension returns ".ext" in lower case, or "" when filename has none.
func Extension(filename string) string {
	ext := strings.ToLower(path.Ext(strings.ReplaceAll(filename, "\\", "/")))
	if ext == "." {
		return ""
	}
	return ext
}

// FileType is the extension without its dot, used as the material type.
func FileType(filename string) string {
	return strings.TrimPrefix(Extension(filename), ".")
}

func validateKey(key string) error {
	if key == "" || strings.HasPrefix(key, "/") {
		return errors.Errorf("invalid blob key %q", key)
	}
	for _, part := range strings.Split(key, "/") {
		if part == ".." || part == "." || part == "" {
			return errors.Errorf("invalid blob key %q", key)
		}
	}
	return nil
}
