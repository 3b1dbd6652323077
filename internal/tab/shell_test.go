package tab

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worklog/report-dashboard/internal/core/domain"
)

func newTestShell() (*Shell, *stubService) {
	svc := newStubService(map[domain.Category][]domain.Record{
		domain.CategoryTimesheet: {domain.TimesheetReport{ID: "TS-1"}},
		domain.CategoryTask:      tasks(3),
	})
	return NewShell(svc, zerolog.Nop()), svc
}

func TestShell_SelectLoadsLazily(t *testing.T) {
	shell, svc := newTestShell()
	ctx := context.Background()

	_, err := shell.Select(ctx, domain.CategoryTask)
	require.NoError(t, err)
	_, err = shell.Select(ctx, domain.CategoryTask)
	require.NoError(t, err)

	assert.Equal(t, 1, svc.callCount(domain.CategoryTask))
	assert.Equal(t, 0, svc.callCount(domain.CategoryUser))
	assert.Equal(t, domain.CategoryTask, shell.Active().Category())
}

func TestShell_SelectUnknownCategory(t *testing.T) {
	shell, _ := newTestShell()
	_, err := shell.Select(context.Background(), domain.Category("invoice"))
	assert.ErrorIs(t, err, domain.ErrUnknownCategory)
}

func TestShell_DateChangeReloadsActiveAndMarksOthersStale(t *testing.T) {
	shell, svc := newTestShell()
	ctx := context.Background()

	_, _ = shell.Select(ctx, domain.CategoryTask)
	_, _ = shell.Select(ctx, domain.CategoryTimesheet)

	shell.SetDateRange(ctx, domain.DateFilter{Range: domain.RangeLastMonth})

	assert.Equal(t, 2, svc.callCount(domain.CategoryTimesheet))
	assert.Equal(t, 1, svc.callCount(domain.CategoryTask))

	taskTab, _ := shell.Tab(domain.CategoryTask)
	assert.False(t, taskTab.Loaded())

	_, _ = shell.Select(ctx, domain.CategoryTask)
	assert.Equal(t, 2, svc.callCount(domain.CategoryTask))

	last := svc.filters[len(svc.filters)-1]
	require.NotNil(t, last)
	assert.Equal(t, domain.RangeLastMonth, last.Range)
}

func TestShell_DefaultDateRange(t *testing.T) {
	shell, svc := newTestShell()
	_, _ = shell.Select(context.Background(), domain.CategoryTimesheet)

	assert.Equal(t, DefaultDateRange, shell.DateFilter().Range)
	require.Len(t, svc.filters, 1)
	assert.Equal(t, DefaultDateRange, svc.filters[0].Range)
}

func TestShell_DateChangeBeforeFirstSelectDoesNotLoad(t *testing.T) {
	shell, svc := newTestShell()
	ctx := context.Background()

	shell.SetDateRange(ctx, domain.DateFilter{Range: domain.RangeYearToDate})
	assert.Equal(t, 0, svc.callCount(domain.CategoryTimesheet))

	_, err := shell.Select(ctx, domain.CategoryTask)
	require.NoError(t, err)
	require.Len(t, svc.filters, 1)
	assert.Equal(t, domain.RangeYearToDate, svc.filters[0].Range)
}

func TestShell_DateChangeDuringFirstLoadReloadsActive(t *testing.T) {
	svc := newStubService(map[domain.Category][]domain.Record{
		domain.CategoryTimesheet: {domain.TimesheetReport{ID: "TS-LAST-MONTH"}},
	})
	svc.started = make(chan struct{}, 1)
	svc.release = make(chan struct{})
	svc.first = []domain.Record{domain.TimesheetReport{ID: "TS-THIS-MONTH"}}

	shell := NewShell(svc, zerolog.Nop())
	ctx := context.Background()

	selected := make(chan struct{})
	go func() {
		_, _ = shell.Select(ctx, domain.CategoryTimesheet)
		close(selected)
	}()
	<-svc.started

	shell.SetDateRange(ctx, domain.DateFilter{Range: domain.RangeLastMonth})
	close(svc.release)
	<-selected

	active := shell.Active()
	assert.True(t, active.Loaded())
	assert.Equal(t, 2, svc.callCount(domain.CategoryTimesheet))

	v := active.View()
	require.Len(t, v.Table.Rows, 1)
	assert.Equal(t, "TS-LAST-MONTH", v.Table.Rows[0].ID)
}
