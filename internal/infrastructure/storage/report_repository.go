// Package storage persists report arrays as JSON blobs, one per category,
// falling back to seed data when a blob is absent or unreadable.
package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/worklog/report-dashboard/internal/core/catalog"
	"github.com/worklog/report-dashboard/internal/core/domain"
	"github.com/worklog/report-dashboard/internal/core/ports"
	"github.com/worklog/report-dashboard/internal/pkg/metrics"
)

// SeedSource supplies the records written on a category's first read.
type SeedSource interface {
	Records(c domain.Category) []domain.Record
}

// ReportRepository implements ports.ReportRepository over a BlobStore.
type ReportRepository struct {
	store ports.BlobStore
	seeds SeedSource
	log   zerolog.Logger

	// seedMu serialises seed-and-persist so concurrent first reads write once.
	seedMu sync.Mutex
}

// NewReportRepository wires a repository to its blob store and seed source.
func NewReportRepository(store ports.BlobStore, seeds SeedSource, log zerolog.Logger) *ReportRepository {
	return &ReportRepository{store: store, seeds: seeds, log: log}
}

// Load returns the stored records of category in storage order.
func (r *ReportRepository) Load(ctx context.Context, category domain.Category) ([]domain.Record, error) {
	d, err := catalog.Lookup(category)
	if err != nil {
		return nil, err
	}

	records, reason, err := r.read(ctx, d)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", category, err)
	}
	if reason == "" {
		return records, nil
	}
	return r.seed(ctx, d, reason)
}

// read returns the decoded blob, or a non-empty fallback reason when the
// blob is absent, empty or corrupt.
func (r *ReportRepository) read(ctx context.Context, d *catalog.Descriptor) ([]domain.Record, string, error) {
	data, err := r.store.Get(ctx, d.Category.StorageKey())
	if errors.Is(err, domain.ErrBlobNotFound) {
		return nil, "absent", nil
	}
	if err != nil {
		return nil, "", err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, "empty", nil
	}

	records, err := d.Decode(data)
	if err != nil {
		r.log.Warn().Err(err).Str("category", string(d.Category)).Msg("stored reports unreadable, using seed data")
		return nil, "corrupt", nil
	}
	return records, "", nil
}

func (r *ReportRepository) seed(ctx context.Context, d *catalog.Descriptor, reason string) ([]domain.Record, error) {
	r.seedMu.Lock()
	defer r.seedMu.Unlock()

	// Another request may have seeded while this one waited.
	if records, again, err := r.read(ctx, d); err == nil && again == "" {
		return records, nil
	}

	metrics.StoreFallbacksTotal.WithLabelValues(string(d.Category), reason).Inc()
	records := r.seeds.Records(d.Category)

	if err := r.put(ctx, d.Category, records); err != nil {
		r.log.Warn().Err(err).Str("category", string(d.Category)).Msg("failed to persist seed data")
	} else {
		r.log.Info().Str("category", string(d.Category)).Str("reason", reason).Int("records", len(records)).Msg("seeded report storage")
	}
	return records, nil
}

// Save replaces the stored array of category. Record ids must be unique.
func (r *ReportRepository) Save(ctx context.Context, category domain.Category, records []domain.Record) error {
	if !category.Valid() {
		return fmt.Errorf("save %q: %w", category, domain.ErrUnknownCategory)
	}
	seen := make(map[string]struct{}, len(records))
	for _, rec := range records {
		if _, dup := seen[rec.RecordID()]; dup {
			return fmt.Errorf("save %s: %w: %s", category, domain.ErrDuplicateRecord, rec.RecordID())
		}
		seen[rec.RecordID()] = struct{}{}
	}
	return r.put(ctx, category, records)
}

func (r *ReportRepository) put(ctx context.Context, category domain.Category, records []domain.Record) error {
	if records == nil {
		records = []domain.Record{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode %s: %w", category, err)
	}
	return r.store.Put(ctx, category.StorageKey(), data)
}
