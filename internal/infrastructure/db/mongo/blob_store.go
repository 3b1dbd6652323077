package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/worklog/report-dashboard/internal/core/domain"
)

const collectionBlobs = "report_blobs"

type blobDocument struct {
	Key       string    `bson:"_id"`
	Payload   string    `bson:"payload"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// BlobStore keeps one document per storage key in the report_blobs collection.
type BlobStore struct {
	col *mongo.Collection
}

func NewBlobStore(db *mongo.Database) *BlobStore {
	return &BlobStore{col: db.Collection(collectionBlobs)}
}

// Get retrieves the payload stored under key.
func (s *BlobStore) Get(ctx context.Context, key string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc blobDocument
	err := s.col.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrBlobNotFound
		}
		return nil, fmt.Errorf("mongo find %s: %w", key, err)
	}
	return []byte(doc.Payload), nil
}

// Put upserts the payload under key.
func (s *BlobStore) Put(ctx context.Context, key string, value []byte) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"payload":    string(value),
		"updated_at": time.Now().UTC(),
	}}
	_, err := s.col.UpdateOne(ctx, bson.M{"_id": key}, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("mongo upsert %s: %w", key, err)
	}
	return nil
}

// Ping checks the server behind the collection.
func (s *BlobStore) Ping(ctx context.Context) error {
	return s.col.Database().Client().Ping(ctx, nil)
}

// EnsureIndexes creates necessary indexes on the blobs collection.
func (s *BlobStore) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := s.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "updated_at", Value: -1}},
	})
	return err
}
