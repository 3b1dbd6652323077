package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const defaultTimeout = 10 * time.Second

// Config names the server and database holding the report_blobs collection.
type Config struct {
	URI      string
	Database string
}

// Open connects, pings, ensures the collection indexes and returns a
// BlobStore. Close disconnects the client.
func Open(ctx context.Context, cfg Config) (*BlobStore, error) {
	connectCtx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().
		ApplyURI(cfg.URI).
		SetAppName("report-dashboard"))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(connectCtx)
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	store := NewBlobStore(client.Database(cfg.Database))
	if err := store.EnsureIndexes(ctx); err != nil {
		_ = client.Disconnect(connectCtx)
		return nil, fmt.Errorf("mongo indexes: %w", err)
	}
	return store, nil
}

// Close disconnects the client behind the store.
func (s *BlobStore) Close(ctx context.Context) error {
	return s.col.Database().Client().Disconnect(ctx)
}
