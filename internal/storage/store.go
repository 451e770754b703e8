// Package storage defines the interface for object store access.
package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when the object does not exist.
var ErrNotFound = errors.New("object not found")

// ObjectStore is the narrow object store surface the pipeline needs.
// Keys are bucket-relative; two jobs never write the same job-scoped key.
type ObjectStore interface {
	// Get fetches an object. Returns ErrNotFound if the key does not exist.
	Get(ctx context.Context, bucket, key string) ([]byte, error)

	// Put writes an object, overwriting any existing content.
	Put(ctx context.Context, bucket, key string, body []byte) error
}
