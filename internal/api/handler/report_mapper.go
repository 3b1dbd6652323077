package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/worklog/report-dashboard/internal/core/catalog"
	"github.com/worklog/report-dashboard/internal/core/domain"
	"github.com/worklog/report-dashboard/internal/core/ports"
	"github.com/worklog/report-dashboard/internal/listview"
)

const (
	defaultPageSize = 10
	maxPageSize     = 500
)

// --- Request → ports ---

// toDomain maps the request onto a filter. Presets the service does not know
// pass through and narrow nothing.
func (r *dateFilterRequest) toDomain() (*domain.DateFilter, error) {
	if r == nil || r.DateRange == "" {
		return nil, nil
	}
	return &domain.DateFilter{
		Range:           domain.DateRange(r.DateRange),
		CustomStartDate: r.CustomStartDate,
		CustomEndDate:   r.CustomEndDate,
	}, nil
}

// dateFilterFromQuery reads date_range, custom_start_date and custom_end_date.
func dateFilterFromQuery(c echo.Context) (*domain.DateFilter, error) {
	req := dateFilterRequest{
		DateRange:       c.QueryParam("date_range"),
		CustomStartDate: c.QueryParam("custom_start_date"),
		CustomEndDate:   c.QueryParam("custom_end_date"),
	}
	return req.toDomain()
}

// listQueryFromRequest maps the tab query string onto a ListQuery. page is
// 1-based on the wire and 0-based in the query.
func listQueryFromRequest(c echo.Context, category domain.Category) (ports.ListQuery, error) {
	q := ports.ListQuery{Category: category}

	date, err := dateFilterFromQuery(c)
	if err != nil {
		return q, err
	}
	q.Date = date
	q.Search = c.QueryParam("search")

	page, pageSize := 1, defaultPageSize
	var sortField, order string
	if err := echo.QueryParamsBinder(c).
		Int("page", &page).
		Int("page_size", &pageSize).
		String("sort", &sortField).
		String("order", &order).
		BindError(); err != nil {
		return q, echo.NewHTTPError(http.StatusBadRequest, "page and page_size must be integers")
	}
	if page < 1 {
		return q, echo.NewHTTPError(http.StatusBadRequest, "page must be at least 1")
	}
	if pageSize < 1 || pageSize > maxPageSize {
		return q, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("page_size must be between 1 and %d", maxPageSize))
	}
	q.PageIndex, q.PageSize = page-1, pageSize

	if sortField != "" {
		switch order = strings.ToLower(order); order {
		case "":
			order = ports.SortAsc
		case ports.SortAsc, ports.SortDesc:
		default:
			return q, echo.NewHTTPError(http.StatusBadRequest, "order must be asc or desc")
		}
		q.Sort = &ports.SortSpec{Field: sortField, Direction: order}
	}

	for _, raw := range c.QueryParams()["filter"] {
		field, value, ok := strings.Cut(raw, ":")
		if !ok || field == "" {
			return q, echo.NewHTTPError(http.StatusBadRequest, "filter must look like field:value")
		}
		if q.Filters == nil {
			q.Filters = make(map[string]string)
		}
		q.Filters[field] = value
	}
	return q, nil
}

// --- ports → Response ---

func toFilterResponses(opts []ports.FilterOption) []filterResponse {
	out := make([]filterResponse, len(opts))
	for i, o := range opts {
		out[i] = filterResponse{Field: o.Field, Label: o.Label, Values: o.Values}
	}
	return out
}

func toCategoryResponse(d *catalog.Descriptor) categoryResponse {
	cols := make([]columnResponse, len(d.Columns))
	for i, c := range d.Columns {
		cols[i] = columnResponse{Header: c.Header, Field: c.Field, Sortable: c.Sortable}
	}
	filters := make([]filterResponse, len(d.Filters))
	for i, f := range d.Filters {
		filters[i] = filterResponse{Field: f.Field, Label: f.Label, Values: f.Fixed}
	}
	return categoryResponse{
		Name:       string(d.Category),
		Title:      d.Title,
		StorageKey: d.Category.StorageKey(),
		DateField:  d.DateField,
		NameField:  d.NameField,
		Columns:    cols,
		Filters:    filters,
	}
}

func toViewResponse(d *catalog.Descriptor, res *ports.ListResult, q ports.ListQuery) viewResponse {
	var sort *listview.Sort
	if q.Sort != nil {
		sort = &listview.Sort{Field: q.Sort.Field, Direction: q.Sort.Direction}
	}
	table := listview.Render(listview.Props{
		Columns:    d.Columns,
		Data:       res.Items,
		Sort:       sort,
		Pagination: listview.NewPagination(res.Total, res.PageSize, res.PageIndex),
	})

	return viewResponse{
		Category: string(d.Category),
		Title:    d.Title,
		Filters:  toFilterResponses(res.Options),
		Table:    toTableResponse(table),
	}
}

func toTableResponse(t listview.Table) tableResponse {
	headers := make([]headerResponse, len(t.Headers))
	for i, h := range t.Headers {
		headers[i] = headerResponse{Label: h.Label, Field: h.Field, Sortable: h.Sortable, Direction: h.Direction}
	}
	rows := make([]rowResponse, len(t.Rows))
	for i, r := range t.Rows {
		rows[i] = rowResponse{ID: r.ID, Cells: r.Cells, Striped: r.Striped, Record: r.Record}
	}

	out := tableResponse{
		Headers:      headers,
		Rows:         rows,
		Empty:        t.Empty,
		EmptyMessage: t.EmptyMessage,
	}
	if t.Sort != nil {
		out.Sort = &sortResponse{Field: t.Sort.Field, Direction: t.Sort.Direction}
	}
	if p := t.Pagination; p != nil {
		out.Pagination = paginationResponse{
			Page:         p.PageIndex + 1,
			PageSize:     p.PageSize,
			TotalItems:   p.TotalItems,
			TotalPages:   p.TotalPages,
			Pages:        p.Pages,
			PrevDisabled: p.PrevDisabled,
			NextDisabled: p.NextDisabled,
		}
	}
	return out
}

func toStatsResponse(category domain.Category, s domain.Stats) statsResponse {
	return statsResponse{
		Category:         string(category),
		TotalRecords:     s.TotalRecords,
		ActiveRecords:    s.ActiveRecords,
		InactiveRecords:  s.InactiveRecords,
		CompletedRecords: s.CompletedRecords,
		PendingRecords:   s.PendingRecords,
	}
}
