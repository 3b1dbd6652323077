package ports

import (
	"context"

	"github.com/worklog/report-dashboard/internal/core/domain"
)

// Sort direction values.
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// FilterAll is the dropdown value that disables a field filter.
const FilterAll = "all"

// SortSpec orders a list by one field.
type SortSpec struct {
	Field     string
	Direction string // SortAsc or SortDesc
}

// ListQuery carries everything a report tab sends: the date window, the
// free-text search, per-field equality filters, sort and page.
type ListQuery struct {
	Category  domain.Category
	Date      *domain.DateFilter
	Search    string
	Filters   map[string]string // field -> value; "" or FilterAll = no filter
	Sort      *SortSpec
	PageIndex int // 0-based
	PageSize  int // <= 0 means every matching record
}

// FilterOption lists the selectable values for one filterable field.
type FilterOption struct {
	Field  string
	Label  string
	Values []string
}

// ListResult is one page of a filtered, sorted category list.
type ListResult struct {
	Category   domain.Category
	Items      []domain.Record
	Total      int
	PageIndex  int
	PageSize   int
	TotalPages int
	Options    []FilterOption
}

// Download is a rendered file ready to stream to the client.
type Download struct {
	Filename    string
	ContentType string
	Body        []byte
}

// ReportService is the report query surface shared by the HTTP API, the CLI
// and the tab state machine.
type ReportService interface {
	List(ctx context.Context, category domain.Category, filter *domain.DateFilter) ([]domain.Record, error)
	Stats(ctx context.Context, category domain.Category) (domain.Stats, error)
	Query(ctx context.Context, q ListQuery) (*ListResult, error)
	Export(ctx context.Context, category domain.Category, format domain.ExportFormat, filter *domain.DateFilter) (string, error)
	Schedule(ctx context.Context, req domain.ScheduleRequest) (*domain.ScheduleAck, error)
	Download(ctx context.Context, q ListQuery, format domain.ExportFormat) (*Download, error)
}
