// Package memory provides an in-memory storage.ObjectStore for tests and
// the local runner.
package memory

import (
	"context"
	"fmt"
	"sync"

	"audio-summarizer-pipeline/internal/storage"
)

// Store implements storage.ObjectStore with an in-process map.
// Safe for concurrent use.
type Store struct {
	mu      sync.RWMutex
	objects map[string][]byte

	// FailGet and FailPut, when set, force the corresponding operation to
	// return an error. Used to exercise storage failure paths in tests.
	FailGet bool
	FailPut bool
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{objects: make(map[string][]byte)}
}

func objectKey(bucket, key string) string {
	return bucket + "/" + key
}

// Get returns a copy of the stored object.
func (s *Store) Get(ctx context.Context, bucket, key string) ([]byte, error) {
	if s.FailGet {
		return nil, fmt.Errorf("get s3://%s/%s: injected failure", bucket, key)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	body, ok := s.objects[objectKey(bucket, key)]
	if !ok {
		return nil, storage.ErrNotFound
	}
	out := make([]byte, len(body))
	copy(out, body)
	return out, nil
}

// Put stores a copy of body.
func (s *Store) Put(ctx context.Context, bucket, key string, body []byte) error {
	if s.FailPut {
		return fmt.Errorf("put s3://%s/%s: injected failure", bucket, key)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]byte, len(body))
	copy(stored, body)
	s.objects[objectKey(bucket, key)] = stored
	return nil
}

// Len returns the number of stored objects.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.objects)
}
