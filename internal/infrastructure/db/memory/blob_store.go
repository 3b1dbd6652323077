// Package memory provides an in-process BlobStore for development and tests.
package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/worklog/report-dashboard/internal/core/domain"
)

// BlobStore keeps blobs in a map guarded by a RWMutex.
type BlobStore struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

func NewBlobStore() *BlobStore {
	return &BlobStore{blobs: make(map[string][]byte)}
}

func (s *BlobStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.blobs[key]
	if !ok {
		return nil, domain.ErrBlobNotFound
	}
	return slices.Clone(v), nil
}

func (s *BlobStore) Put(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blobs[key] = slices.Clone(value)
	return nil
}

func (s *BlobStore) Ping(context.Context) error { return nil }
