package ports

import "context"

// BlobStore is the key/value boundary the dashboard persists report arrays in.
// Get returns domain.ErrBlobNotFound when the key has never been written.
type BlobStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Ping(ctx context.Context) error
}
