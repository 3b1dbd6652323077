package tab

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worklog/report-dashboard/internal/core/domain"
	"github.com/worklog/report-dashboard/internal/core/ports"
	"github.com/worklog/report-dashboard/internal/listview"
)

// ---------------------------------------------------------------------------
// Stub service
// ---------------------------------------------------------------------------

type stubService struct {
	mu      sync.Mutex
	data    map[domain.Category][]domain.Record
	err     error
	calls   map[domain.Category]int
	filters []*domain.DateFilter

	// When set, the first List call signals started and waits on release.
	started chan struct{}
	release chan struct{}
	first   []domain.Record
}

func newStubService(data map[domain.Category][]domain.Record) *stubService {
	return &stubService{data: data, calls: make(map[domain.Category]int)}
}

func (s *stubService) List(_ context.Context, c domain.Category, f *domain.DateFilter) ([]domain.Record, error) {
	s.mu.Lock()
	s.calls[c]++
	n := s.calls[c]
	s.filters = append(s.filters, f)
	records, err := s.data[c], s.err
	s.mu.Unlock()

	if n == 1 && s.release != nil {
		s.started <- struct{}{}
		<-s.release
		return s.first, nil
	}
	return records, err
}

func (s *stubService) callCount(c domain.Category) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[c]
}

func (s *stubService) Stats(context.Context, domain.Category) (domain.Stats, error) {
	return domain.Stats{}, nil
}

func (s *stubService) Query(context.Context, ports.ListQuery) (*ports.ListResult, error) {
	return nil, errors.New("not used")
}

func (s *stubService) Export(context.Context, domain.Category, domain.ExportFormat, *domain.DateFilter) (string, error) {
	return "", nil
}

func (s *stubService) Schedule(context.Context, domain.ScheduleRequest) (*domain.ScheduleAck, error) {
	return nil, nil
}

func (s *stubService) Download(context.Context, ports.ListQuery, domain.ExportFormat) (*ports.Download, error) {
	return nil, nil
}

func tasks(n int) []domain.Record {
	out := make([]domain.Record, n)
	for i := range out {
		status := domain.TaskToDo
		if i%3 == 0 {
			status = domain.StatusCompleted
		}
		out[i] = domain.TaskReport{
			ID:       fmt.Sprintf("TKR-%03d", i+1),
			Name:     fmt.Sprintf("Task %02d", i+1),
			Priority: domain.PriorityHigh,
			Status:   status,
			Activity: "Development",
		}
	}
	return out
}

func newTaskTab(t *testing.T, n int) (*Tab, *stubService) {
	t.Helper()
	svc := newStubService(map[domain.Category][]domain.Record{domain.CategoryTask: tasks(n)})
	tab, err := New(svc, domain.CategoryTask, zerolog.Nop())
	require.NoError(t, err)
	return tab, svc
}

// ---------------------------------------------------------------------------
// Load
// ---------------------------------------------------------------------------

func TestTab_LoadMovesToReady(t *testing.T) {
	tab, _ := newTaskTab(t, 25)
	assert.Equal(t, StateLoading, tab.State())

	assert.True(t, tab.Load(context.Background()))

	v := tab.View()
	assert.Equal(t, StateReady, v.State)
	assert.Len(t, v.Table.Rows, DefaultPageSize)
	assert.Equal(t, 3, v.Table.Pagination.TotalPages)
}

func TestTab_LoadErrorShowsEmptyList(t *testing.T) {
	tab, svc := newTaskTab(t, 5)
	svc.err = errors.New("backend down")

	tab.Load(context.Background())

	v := tab.View()
	assert.Equal(t, StateReady, v.State)
	assert.True(t, v.Table.Empty)
	assert.Equal(t, listview.EmptyMessage, v.Table.EmptyMessage)
	assert.Equal(t, 1, svc.callCount(domain.CategoryTask), "no retry")
}

func TestTab_StaleLoadIsDiscarded(t *testing.T) {
	tab, svc := newTaskTab(t, 4)
	svc.started = make(chan struct{}, 1)
	svc.release = make(chan struct{})
	svc.first = tasks(30)

	firstApplied := make(chan bool)
	go func() { firstApplied <- tab.Load(context.Background()) }()
	<-svc.started

	require.True(t, tab.Load(context.Background()))
	close(svc.release)
	assert.False(t, <-firstApplied)

	v := tab.View()
	assert.Equal(t, 4, v.Table.Pagination.TotalItems, "older response must not overwrite the newer one")
}

func TestTab_DateChangeDropsInFlightLoad(t *testing.T) {
	tab, svc := newTaskTab(t, 4)
	svc.started = make(chan struct{}, 1)
	svc.release = make(chan struct{})
	svc.first = tasks(30)

	applied := make(chan bool)
	go func() { applied <- tab.Load(context.Background()) }()
	<-svc.started
	assert.True(t, tab.Loading())

	tab.SetDateFilter(&domain.DateFilter{Range: domain.RangeLastMonth})
	close(svc.release)

	assert.False(t, <-applied, "response for the old window must be dropped")
	assert.False(t, tab.Loaded())
	assert.False(t, tab.Loading())
	assert.Equal(t, StateLoading, tab.State())
}

func TestTab_ViewBeforeFirstLoadIsNotEmptyState(t *testing.T) {
	tab, _ := newTaskTab(t, 4)

	v := tab.View()
	assert.Equal(t, StateLoading, v.State)
	assert.False(t, v.Table.Empty)
	assert.Empty(t, v.Table.EmptyMessage)
}

// ---------------------------------------------------------------------------
// Search, filters and paging
// ---------------------------------------------------------------------------

func TestTab_SearchIsCaseInsensitiveAndResetsPage(t *testing.T) {
	tab, _ := newTaskTab(t, 25)
	tab.Load(context.Background())
	tab.SetPage(2)

	tab.SetSearch("TASK 1")

	v := tab.View()
	assert.Equal(t, 0, v.Table.Pagination.PageIndex)
	// Task 10 through Task 19
	assert.Equal(t, 10, v.Table.Pagination.TotalItems)
}

func TestTab_FilterResetsPage(t *testing.T) {
	tab, _ := newTaskTab(t, 30)
	tab.Load(context.Background())
	tab.SetPage(1)

	require.NoError(t, tab.SetFilter("status", domain.StatusCompleted))

	v := tab.View()
	assert.Equal(t, 0, v.Table.Pagination.PageIndex)
	assert.Equal(t, 10, v.Table.Pagination.TotalItems)
	for _, row := range v.Table.Rows {
		assert.Equal(t, domain.StatusCompleted, row.Record.StatusValue())
	}
}

func TestTab_FilterAllClearsPredicate(t *testing.T) {
	tab, _ := newTaskTab(t, 12)
	tab.Load(context.Background())

	require.NoError(t, tab.SetFilter("status", domain.TaskToDo))
	require.NoError(t, tab.SetFilter("status", ports.FilterAll))

	v := tab.View()
	assert.Equal(t, 12, v.Table.Pagination.TotalItems)
	assert.Empty(t, v.Filters)
}

func TestTab_UnknownFilterField(t *testing.T) {
	tab, _ := newTaskTab(t, 1)
	err := tab.SetFilter("department", "Sales")
	assert.ErrorIs(t, err, domain.ErrInvalidFilterField)
}

func TestTab_ResetFilters(t *testing.T) {
	tab, _ := newTaskTab(t, 12)
	tab.Load(context.Background())
	tab.SetSearch("nothing matches this")
	require.NoError(t, tab.SetFilter("priority", domain.PriorityLow))

	tab.ResetFilters()

	v := tab.View()
	assert.Equal(t, "", v.Search)
	assert.Equal(t, 12, v.Table.Pagination.TotalItems)
}

func TestTab_PageSize(t *testing.T) {
	tab, _ := newTaskTab(t, 45)
	tab.Load(context.Background())
	tab.SetPage(3)

	require.NoError(t, tab.SetPageSize(20))
	assert.ErrorIs(t, tab.SetPageSize(15), ErrInvalidPageSize)

	v := tab.View()
	assert.Equal(t, 0, v.Table.Pagination.PageIndex)
	assert.Equal(t, 3, v.Table.Pagination.TotalPages)
	assert.Len(t, v.Table.Rows, 20)
}

func TestTab_SetPageClamps(t *testing.T) {
	tab, _ := newTaskTab(t, 25)
	tab.Load(context.Background())

	tab.SetPage(99)
	assert.Equal(t, 2, tab.View().Table.Pagination.PageIndex)

	tab.SetPage(-1)
	assert.Equal(t, 0, tab.View().Table.Pagination.PageIndex)
}

func TestTab_OptionsIncludeFixedValues(t *testing.T) {
	tab, _ := newTaskTab(t, 3)
	tab.Load(context.Background())

	v := tab.View()
	require.NotEmpty(t, v.Options)
	assert.Equal(t, "priority", v.Options[0].Field)
	assert.Equal(t, domain.TaskPriorities, v.Options[0].Values)
}

// ---------------------------------------------------------------------------
// Sort
// ---------------------------------------------------------------------------

func TestTab_ToggleSortOnlyOnSortableColumns(t *testing.T) {
	tab, _ := newTaskTab(t, 3)
	assert.ErrorIs(t, tab.ToggleSort("name"), domain.ErrInvalidSort)
}

func TestTab_TimesheetSortToggles(t *testing.T) {
	svc := newStubService(map[domain.Category][]domain.Record{
		domain.CategoryTimesheet: {
			domain.TimesheetReport{ID: "TS-1", User: domain.Person{Name: "Bea"}, TotalHours: 30},
			domain.TimesheetReport{ID: "TS-2", User: domain.Person{Name: "Al"}, TotalHours: 45},
		},
	})
	tab, err := New(svc, domain.CategoryTimesheet, zerolog.Nop())
	require.NoError(t, err)
	tab.Load(context.Background())

	require.NoError(t, tab.ToggleSort("totalHours"))
	v := tab.View()
	assert.Equal(t, listview.Asc, v.Table.Sort.Direction)
	assert.Equal(t, "TS-1", v.Table.Rows[0].ID)

	require.NoError(t, tab.ToggleSort("totalHours"))
	v = tab.View()
	assert.Equal(t, listview.Desc, v.Table.Sort.Direction)
	assert.Equal(t, "TS-2", v.Table.Rows[0].ID)
}
