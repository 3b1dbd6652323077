package tab

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/worklog/report-dashboard/internal/core/domain"
	"github.com/worklog/report-dashboard/internal/core/ports"
)

// DefaultDateRange is the selector value the page opens with.
const DefaultDateRange = domain.RangeThisMonth

// Shell is the report page: a date-range selector shared by five tabs of
// which one is active. Tabs load lazily on first selection.
type Shell struct {
	mu     sync.Mutex
	date   domain.DateFilter
	tabs   map[domain.Category]*Tab
	active domain.Category
}

func NewShell(svc ports.ReportService, log zerolog.Logger) *Shell {
	s := &Shell{
		date:   domain.DateFilter{Range: DefaultDateRange},
		tabs:   make(map[domain.Category]*Tab, len(domain.Categories)),
		active: domain.Categories[0],
	}
	for _, c := range domain.Categories {
		t, _ := New(svc, c, log)
		filter := s.date
		t.SetDateFilter(&filter)
		s.tabs[c] = t
	}
	return s
}

func (s *Shell) Active() *Tab {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tabs[s.active]
}

func (s *Shell) Tab(c domain.Category) (*Tab, bool) {
	t, ok := s.tabs[c]
	return t, ok
}

func (s *Shell) DateFilter() domain.DateFilter {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.date
}

// Select makes c the active tab, loading it when it has not been loaded
// for the current date range.
func (s *Shell) Select(ctx context.Context, c domain.Category) (*Tab, error) {
	t, ok := s.tabs[c]
	if !ok {
		return nil, domain.ErrUnknownCategory
	}
	s.mu.Lock()
	s.active = c
	s.mu.Unlock()

	if !t.Loaded() {
		t.Load(ctx)
	}
	return t, nil
}

// SetDateRange changes the shared window. The active tab reloads at once
// when it is showing data or still loading; the others reload when next
// selected.
func (s *Shell) SetDateRange(ctx context.Context, f domain.DateFilter) {
	s.mu.Lock()
	s.date = f
	active := s.tabs[s.active]
	s.mu.Unlock()

	showing := active.Loaded() || active.Loading()
	for _, t := range s.tabs {
		filter := f
		t.SetDateFilter(&filter)
	}
	if showing {
		active.Load(ctx)
	}
}
