package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/worklog/report-dashboard/internal/core/domain"
)

// BlobStore keeps each report array as a plain string value.
// Key format: <prefix><storage key>, e.g. "timesheetReports".
type BlobStore struct {
	client *redis.Client
	prefix string
}

// NewBlobStore creates a BlobStore wrapping the given Redis client.
func NewBlobStore(client *redis.Client, prefix string) *BlobStore {
	return &BlobStore{client: client, prefix: prefix}
}

// Get returns the stored blob or domain.ErrBlobNotFound.
func (s *BlobStore) Get(ctx context.Context, key string) ([]byte, error) {
	b, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrBlobNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s: %w", key, err)
	}
	return b, nil
}

// Put overwrites the blob. Values never expire.
func (s *BlobStore) Put(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, s.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (s *BlobStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
