package service

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/worklog/report-dashboard/internal/core/catalog"
	"github.com/worklog/report-dashboard/internal/core/domain"
	"github.com/worklog/report-dashboard/internal/core/listquery"
	"github.com/worklog/report-dashboard/internal/core/ports"
	"github.com/worklog/report-dashboard/internal/pkg/metrics"
)

const defaultExportBaseURL = "https://exports.worklog.local/reports"

// Options tunes the simulated export and schedule backends.
type Options struct {
	ExportBaseURL   string
	ExportLatency   time.Duration
	ScheduleLatency time.Duration
	// Clock defaults to time.Now. Its location is used for date presets.
	Clock     func() time.Time
	Renderers map[domain.ExportFormat]ports.Renderer
}

type ReportService struct {
	repo   ports.ReportRepository
	opts   Options
	logger zerolog.Logger
}

func NewReportService(repo ports.ReportRepository, opts Options, logger zerolog.Logger) *ReportService {
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.ExportBaseURL == "" {
		opts.ExportBaseURL = defaultExportBaseURL
	}
	opts.ExportBaseURL = strings.TrimRight(opts.ExportBaseURL, "/")
	return &ReportService{repo: repo, opts: opts, logger: logger}
}

// List returns every record of the category whose date falls in filter.
// Records without any date field are kept; records with an unreadable date
// are dropped. The returned slice is never the stored one.
func (s *ReportService) List(ctx context.Context, category domain.Category, filter *domain.DateFilter) ([]domain.Record, error) {
	d, err := catalog.Lookup(category)
	if err != nil {
		return nil, err
	}
	metrics.QueriesTotal.WithLabelValues(string(category), "list").Inc()

	records, err := s.load(ctx, category)
	if err != nil {
		return nil, err
	}
	out, err := s.narrow(d, records, filter)
	if err != nil {
		metrics.QueryErrorsTotal.WithLabelValues(string(category), "invalid_date_range").Inc()
		return nil, err
	}
	return out, nil
}

// Stats counts the category's records by bucket. Date filters never apply.
func (s *ReportService) Stats(ctx context.Context, category domain.Category) (domain.Stats, error) {
	d, err := catalog.Lookup(category)
	if err != nil {
		return domain.Stats{}, err
	}
	metrics.QueriesTotal.WithLabelValues(string(category), "stats").Inc()

	records, err := s.load(ctx, category)
	if err != nil {
		return domain.Stats{}, err
	}

	stats := d.NewStats()
	stats.TotalRecords = len(records)
	for _, r := range records {
		if b, ok := d.Buckets[r.StatusValue()]; ok {
			stats.Add(b)
		}
	}
	return stats, nil
}

// Query runs the date filter and then the search, filter, sort and page
// pipeline.
func (s *ReportService) Query(ctx context.Context, q ports.ListQuery) (*ports.ListResult, error) {
	start := time.Now()
	d, err := catalog.Lookup(q.Category)
	if err != nil {
		return nil, err
	}
	if err := listquery.Validate(d, q); err != nil {
		metrics.QueryErrorsTotal.WithLabelValues(string(q.Category), "invalid_query").Inc()
		return nil, err
	}
	metrics.QueriesTotal.WithLabelValues(string(q.Category), "query").Inc()

	records, err := s.load(ctx, q.Category)
	if err != nil {
		return nil, err
	}
	dated, err := s.narrow(d, records, q.Date)
	if err != nil {
		metrics.QueryErrorsTotal.WithLabelValues(string(q.Category), "invalid_date_range").Inc()
		return nil, err
	}

	result := listquery.Apply(d, dated, q)
	metrics.QueryDuration.WithLabelValues(string(q.Category)).Observe(time.Since(start).Seconds())
	return result, nil
}

// Export simulates handing the list to an export backend and returns the
// download URL it would publish.
func (s *ReportService) Export(ctx context.Context, category domain.Category, format domain.ExportFormat, filter *domain.DateFilter) (string, error) {
	if !category.Valid() {
		return "", domain.ErrUnknownCategory
	}
	if _, err := domain.ParseExportFormat(string(format)); err != nil {
		return "", err
	}
	if filter != nil {
		if _, _, err := filter.Interval(s.opts.Clock()); err != nil {
			return "", err
		}
	}

	if err := wait(ctx, s.opts.ExportLatency); err != nil {
		return "", err
	}

	now := s.opts.Clock()
	url := fmt.Sprintf("%s/%s-%s-%s.%s",
		s.opts.ExportBaseURL,
		category,
		now.Format("20060102150405"),
		strings.ReplaceAll(uuid.NewString(), "-", "")[:12],
		format.Extension(),
	)

	metrics.ExportsTotal.WithLabelValues(string(category), string(format)).Inc()
	s.logger.Info().Str("category", string(category)).Str("format", string(format)).Str("url", url).Msg("report export requested")
	return url, nil
}

// Schedule validates and acknowledges a periodic delivery. Nothing is
// actually sent; the acknowledgement carries the next run time.
func (s *ReportService) Schedule(ctx context.Context, req domain.ScheduleRequest) (*domain.ScheduleAck, error) {
	if !req.Category.Valid() {
		return nil, domain.ErrUnknownCategory
	}
	spec, err := req.Cadence.CronSpec()
	if err != nil {
		return nil, err
	}
	recipients := cleanRecipients(req.Recipients)
	if len(recipients) == 0 {
		return nil, domain.ErrNoRecipients
	}
	if _, err := domain.ParseExportFormat(string(req.Format)); err != nil {
		return nil, err
	}
	if req.Filters != nil {
		if _, _, err := req.Filters.Interval(s.opts.Clock()); err != nil {
			return nil, err
		}
	}

	sched, err := cron.ParseStandard(spec)
	if err != nil {
		return nil, fmt.Errorf("parse cadence %q: %w", req.Cadence, err)
	}

	if err := wait(ctx, s.opts.ScheduleLatency); err != nil {
		return nil, err
	}

	next := sched.Next(s.opts.Clock())
	ack := &domain.ScheduleAck{
		ID: uuid.NewString(),
		Message: fmt.Sprintf("%s report scheduled %s as %s for %d recipient(s)",
			req.Category, req.Cadence, req.Format.Extension(), len(recipients)),
		NextRun: next,
	}

	metrics.SchedulesTotal.WithLabelValues(string(req.Cadence)).Inc()
	s.logger.Info().
		Str("schedule_id", ack.ID).
		Str("category", string(req.Category)).
		Str("cadence", string(req.Cadence)).
		Strs("recipients", recipients).
		Str("requested_by", req.RequestedBy).
		Time("next_run", next).
		Msg("report schedule accepted")
	return ack, nil
}

// Download renders every record matching q (paging ignored) in format.
func (s *ReportService) Download(ctx context.Context, q ports.ListQuery, format domain.ExportFormat) (*ports.Download, error) {
	r, ok := s.opts.Renderers[format]
	if !ok {
		return nil, fmt.Errorf("download %q: %w", format, domain.ErrUnsupportedFormat)
	}
	d, err := catalog.Lookup(q.Category)
	if err != nil {
		return nil, err
	}

	q.PageIndex, q.PageSize = 0, 0
	result, err := s.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	metrics.QueriesTotal.WithLabelValues(string(q.Category), "download").Inc()

	body, err := r.Render(d.Title, d.Columns, result.Items)
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", format, err)
	}

	return &ports.Download{
		Filename:    fmt.Sprintf("%s-report-%s.%s", q.Category, s.opts.Clock().Format("20060102"), format.Extension()),
		ContentType: r.ContentType(),
		Body:        body,
	}, nil
}

func (s *ReportService) load(ctx context.Context, category domain.Category) ([]domain.Record, error) {
	records, err := s.repo.Load(ctx, category)
	if err != nil {
		metrics.QueryErrorsTotal.WithLabelValues(string(category), "load_failed").Inc()
		s.logger.Error().Err(err).Str("category", string(category)).Msg("failed to load reports")
		return nil, err
	}
	return records, nil
}

func (s *ReportService) narrow(d *catalog.Descriptor, records []domain.Record, filter *domain.DateFilter) ([]domain.Record, error) {
	if filter == nil || d.DateField == "" {
		return slices.Clone(records), nil
	}

	now := s.opts.Clock()
	window, ok, err := filter.Interval(now)
	if err != nil {
		return nil, err
	}
	if !ok {
		return slices.Clone(records), nil
	}

	out := make([]domain.Record, 0, len(records))
	for _, r := range records {
		t, present, err := domain.RecordDate(r, d.DateField, now.Location())
		switch {
		case !present:
			out = append(out, r)
		case err != nil:
			continue
		case window.Contains(t):
			out = append(out, r)
		}
	}
	return out, nil
}

func cleanRecipients(in []string) []string {
	out := make([]string, 0, len(in))
	for _, r := range in {
		if r = strings.TrimSpace(r); r != "" {
			out = append(out, r)
		}
	}
	return out
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

var _ ports.ReportService = (*ReportService)(nil)

