// Package storage abstracts where uploaded media bytes live. Two backends
// are provided: an S3-compatible object store and a local filesystem store
// for development.
package storage

import "context"

// ObjectStore stores and retrieves media blobs by key.
type ObjectStore interface {
	Put(ctx context.Context, key string, contentType string, data []byte) error

	// Get returns the blob and its content type. Returns
	// common.ErrorNotFound when no object has the key.
	Get(ctx context.Context, key string) ([]byte, string, error)
}
