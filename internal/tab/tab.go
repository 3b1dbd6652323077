// Package tab holds the client-side state of the report page: one Tab per
// category with its search, filters, sort and page, and the Shell that
// owns the shared date range and decides which tab loads.
package tab

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/rs/zerolog"

	"github.com/worklog/report-dashboard/internal/core/catalog"
	"github.com/worklog/report-dashboard/internal/core/domain"
	"github.com/worklog/report-dashboard/internal/core/listquery"
	"github.com/worklog/report-dashboard/internal/core/ports"
	"github.com/worklog/report-dashboard/internal/listview"
)

type State string

const (
	StateLoading State = "loading"
	StateReady   State = "ready"
)

// DefaultPageSize is the page size a new tab starts with.
const DefaultPageSize = 10

var ErrInvalidPageSize = fmt.Errorf("page size must be one of %v", listview.PageSizes)

// Tab is one report category's list state. It loads the date-narrowed list
// through the service and then searches, filters, sorts and pages it locally.
type Tab struct {
	svc  ports.ReportService
	desc *catalog.Descriptor
	log  zerolog.Logger

	mu        sync.Mutex
	state     State
	seq       uint64
	inflight  int
	loaded    bool
	date      *domain.DateFilter
	records   []domain.Record
	options   []ports.FilterOption
	search    string
	filters   map[string]string
	sort      *listview.Sort
	pageIndex int
	pageSize  int
}

// View is a snapshot of a tab ready to draw.
type View struct {
	Category domain.Category      `json:"category"`
	Title    string               `json:"title"`
	State    State                `json:"state"`
	Search   string               `json:"search"`
	Filters  map[string]string    `json:"filters"`
	Options  []ports.FilterOption `json:"options"`
	Table    listview.Table       `json:"table"`
}

func New(svc ports.ReportService, category domain.Category, log zerolog.Logger) (*Tab, error) {
	d, err := catalog.Lookup(category)
	if err != nil {
		return nil, err
	}
	return &Tab{
		svc:      svc,
		desc:     d,
		log:      log.With().Str("tab", string(category)).Logger(),
		state:    StateLoading,
		filters:  make(map[string]string),
		pageSize: DefaultPageSize,
	}, nil
}

func (t *Tab) Category() domain.Category { return t.desc.Category }

func (t *Tab) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Loaded reports whether a load has completed since the last date change.
func (t *Tab) Loaded() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.loaded
}

// Loading reports whether a Load call is still waiting on the service.
func (t *Tab) Loading() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.inflight > 0
}

// SetDateFilter changes the window the next Load asks for and marks the tab
// as needing a reload. A Load already in flight for the old window is dropped
// when it returns.
func (t *Tab) SetDateFilter(f *domain.DateFilter) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.date = f
	t.seq++
	t.loaded = false
	t.pageIndex = 0
}

// Load fetches the list and moves the tab to ready. A service error leaves
// an empty list. It returns false when a newer Load started meanwhile, in
// which case the response is dropped.
func (t *Tab) Load(ctx context.Context) bool {
	t.mu.Lock()
	t.seq++
	seq := t.seq
	date := t.date
	t.state = StateLoading
	t.inflight++
	t.mu.Unlock()

	records, err := t.svc.List(ctx, t.desc.Category, date)

	t.mu.Lock()
	defer t.mu.Unlock()
	t.inflight--
	if seq != t.seq {
		t.log.Debug().Uint64("seq", seq).Uint64("current", t.seq).Msg("discarding stale load")
		return false
	}
	if err != nil {
		t.log.Error().Err(err).Msg("failed to load reports")
		records = nil
	}
	t.records = records
	t.options = listquery.Options(t.desc, records)
	t.state = StateReady
	t.loaded = true
	t.clampPage()
	return true
}

func (t *Tab) SetSearch(s string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.search = s
	t.pageIndex = 0
}

// SetFilter selects value for field; "" or "all" clears it.
func (t *Tab) SetFilter(field, value string) error {
	if _, ok := t.desc.Filter(field); !ok {
		return fmt.Errorf("filter %q: %w", field, domain.ErrInvalidFilterField)
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if value == "" || value == ports.FilterAll {
		delete(t.filters, field)
	} else {
		t.filters[field] = value
	}
	t.pageIndex = 0
	return nil
}

// ResetFilters clears the search and every filter.
func (t *Tab) ResetFilters() {
	t.mu.Lock()
	defer t.mu.Unlock()
	clear(t.filters)
	t.search = ""
	t.pageIndex = 0
}

func (t *Tab) SetPageSize(n int) error {
	if !slices.Contains(listview.PageSizes, n) {
		return ErrInvalidPageSize
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.pageSize = n
	t.pageIndex = 0
	return nil
}

// SetPage moves to the 0-based page index, clamped to the available pages.
func (t *Tab) SetPage(index int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.pageIndex = index
	t.clampPage()
}

// ToggleSort applies a header click on field.
func (t *Tab) ToggleSort(field string) error {
	col, ok := t.desc.Column(field)
	if !ok || !col.Sortable {
		return fmt.Errorf("sort %q: %w", field, domain.ErrInvalidSort)
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	var current listview.Sort
	if t.sort != nil {
		current = *t.sort
	}
	next := listview.ToggleSort(current, field)
	t.sort = &next
	return nil
}

// View renders the current page.
func (t *Tab) View() View {
	t.mu.Lock()
	defer t.mu.Unlock()

	matched := t.matched()
	pagination := listview.NewPagination(len(matched), t.pageSize, t.pageIndex)

	var sort *listview.Sort
	if t.sort != nil {
		s := *t.sort
		sort = &s
	}

	table := listview.Render(listview.Props{
		Columns:    t.desc.Columns,
		Data:       listquery.Paginate(matched, t.pageIndex, t.pageSize),
		Sort:       sort,
		Pagination: pagination,
	})
	// The empty state belongs to a finished load only.
	if t.state == StateLoading {
		table.Empty = false
		table.EmptyMessage = ""
	}

	return View{
		Category: t.desc.Category,
		Title:    t.desc.Title,
		State:    t.state,
		Search:   t.search,
		Filters:  maps.Clone(t.filters),
		Options:  slices.Clone(t.options),
		Table:    table,
	}
}

func (t *Tab) matched() []domain.Record {
	out := listquery.Filter(t.records, t.filters, t.desc.NameField, t.search)
	if t.sort != nil {
		out = listquery.Sort(out, ports.SortSpec{Field: t.sort.Field, Direction: t.sort.Direction})
	}
	return out
}

// clampPage keeps pageIndex on an existing page. Callers hold mu.
func (t *Tab) clampPage() {
	last := listview.TotalPages(len(t.matched()), t.pageSize) - 1
	t.pageIndex = max(0, min(t.pageIndex, last))
}
