package ports

import (
	"context"

	"github.com/worklog/report-dashboard/internal/core/domain"
)

// ReportRepository loads and stores a category's whole record array.
// Load never returns an empty result for an absent or unreadable blob: it
// substitutes the seed data and persists it.
type ReportRepository interface {
	Load(ctx context.Context, category domain.Category) ([]domain.Record, error)
	Save(ctx context.Context, category domain.Category, records []domain.Record) error
}
