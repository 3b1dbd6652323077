package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/worklog/report-dashboard/internal/core/catalog"
	"github.com/worklog/report-dashboard/internal/core/domain"
	"github.com/worklog/report-dashboard/internal/core/ports"
)

// ReportHandler serves the report dashboard endpoints.
type ReportHandler struct {
	service ports.ReportService
}

func NewReportHandler(service ports.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

// Categories handles GET /v1/reports/categories.
//
// @Summary      List report categories with their columns and filters
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   categoryResponse
// @Router       /v1/reports/categories [get]
func (h *ReportHandler) Categories(c echo.Context) error {
	all := catalog.All()
	out := make([]categoryResponse, len(all))
	for i, d := range all {
		out[i] = toCategoryResponse(d)
	}
	return c.JSON(http.StatusOK, out)
}

// View handles GET /v1/reports/:category.
//
// @Summary      Render one page of a report tab
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Param        category           path      string  true   "timesheet, user, client, project or task"
// @Param        date_range         query     string  false  "last7days, thisMonth, lastMonth, yearToDate or custom"
// @Param        custom_start_date  query     string  false  "ISO date, with date_range=custom"
// @Param        custom_end_date    query     string  false  "ISO date, with date_range=custom"
// @Param        search             query     string  false  "Case-insensitive name search"
// @Param        filter             query     []string  false  "field:value, repeatable"
// @Param        sort               query     string  false  "Sortable column field"
// @Param        order              query     string  false  "asc or desc"
// @Param        page               query     int     false  "1-based page"
// @Param        page_size          query     int     false  "Rows per page"
// @Success      200                {object}  viewResponse
// @Failure      400                {object}  errorResponse
// @Failure      404                {object}  errorResponse
// @Router       /v1/reports/{category} [get]
func (h *ReportHandler) View(c echo.Context) error {
	category, err := pathCategory(c)
	if err != nil {
		return err
	}
	d, err := catalog.Lookup(category)
	if err != nil {
		return err
	}
	q, err := listQueryFromRequest(c, category)
	if err != nil {
		return err
	}

	res, err := h.service.Query(c.Request().Context(), q)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toViewResponse(d, res, q))
}

// Records handles GET /v1/reports/:category/records.
//
// @Summary      List every record of a category in the date window
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Param        category           path      string  true   "Report category"
// @Param        date_range         query     string  false  "Date range preset"
// @Param        custom_start_date  query     string  false  "ISO date"
// @Param        custom_end_date    query     string  false  "ISO date"
// @Success      200                {object}  recordsResponse
// @Failure      400                {object}  errorResponse
// @Failure      404                {object}  errorResponse
// @Router       /v1/reports/{category}/records [get]
func (h *ReportHandler) Records(c echo.Context) error {
	category, err := pathCategory(c)
	if err != nil {
		return err
	}
	filter, err := dateFilterFromQuery(c)
	if err != nil {
		return err
	}

	items, err := h.service.List(c.Request().Context(), category, filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, recordsResponse{
		Category: string(category),
		Total:    len(items),
		Items:    items,
	})
}

// Stats handles GET /v1/reports/:category/stats.
//
// @Summary      Status counters of a category
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Param        category  path      string  true  "Report category"
// @Success      200       {object}  statsResponse
// @Failure      404       {object}  errorResponse
// @Router       /v1/reports/{category}/stats [get]
func (h *ReportHandler) Stats(c echo.Context) error {
	category, err := pathCategory(c)
	if err != nil {
		return err
	}

	stats, err := h.service.Stats(c.Request().Context(), category)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toStatsResponse(category, stats))
}

// Export handles POST /v1/reports/:category/export.
//
// @Summary      Request an export of a category
// @Tags         exports
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        category  path      string         true  "Report category"
// @Param        body      body      exportRequest  true  "Export format and date window"
// @Success      202       {object}  exportResponse
// @Failure      400       {object}  errorResponse
// @Failure      403       {object}  errorResponse
// @Failure      404       {object}  errorResponse
// @Router       /v1/reports/{category}/export [post]
func (h *ReportHandler) Export(c echo.Context) error {
	category, err := pathCategory(c)
	if err != nil {
		return err
	}
	var req exportRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	format, err := domain.ParseExportFormat(req.Format)
	if err != nil {
		return err
	}
	filter, err := req.dateFilterRequest.toDomain()
	if err != nil {
		return err
	}

	url, err := h.service.Export(c.Request().Context(), category, format, filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusAccepted, exportResponse{URL: url})
}

// Schedule handles POST /v1/reports/:category/schedule.
//
// @Summary      Schedule periodic delivery of a report
// @Tags         exports
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        category  path      string           true  "Report category"
// @Param        body      body      scheduleRequest  true  "Cadence, recipients and format"
// @Success      201       {object}  scheduleResponse
// @Failure      400       {object}  errorResponse
// @Failure      403       {object}  errorResponse
// @Failure      422       {object}  errorResponse
// @Router       /v1/reports/{category}/schedule [post]
func (h *ReportHandler) Schedule(c echo.Context) error {
	category, err := pathCategory(c)
	if err != nil {
		return err
	}
	var req scheduleRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	format, err := domain.ParseExportFormat(req.Format)
	if err != nil {
		return err
	}
	filter, err := req.Filters.toDomain()
	if err != nil {
		return err
	}

	ack, err := h.service.Schedule(c.Request().Context(), domain.ScheduleRequest{
		Category:    category,
		Cadence:     domain.Cadence(req.Cadence),
		Recipients:  req.Recipients,
		Format:      format,
		Filters:     filter,
		RequestedBy: requestedBy(c),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, scheduleResponse{
		ID:      ack.ID,
		Message: ack.Message,
		NextRun: ack.NextRun,
	})
}

// Download handles GET /v1/reports/:category/download.
//
// @Summary      Download the filtered list as CSV or XLSX
// @Tags         exports
// @Produce      octet-stream
// @Security     BearerAuth
// @Param        category  path      string  true   "Report category"
// @Param        format    query     string  true   "csv or excel"
// @Success      200       {file}    file
// @Failure      400       {object}  errorResponse
// @Failure      404       {object}  errorResponse
// @Failure      422       {object}  errorResponse
// @Router       /v1/reports/{category}/download [get]
func (h *ReportHandler) Download(c echo.Context) error {
	category, err := pathCategory(c)
	if err != nil {
		return err
	}
	format, err := domain.ParseExportFormat(c.QueryParam("format"))
	if err != nil {
		return err
	}
	q, err := listQueryFromRequest(c, category)
	if err != nil {
		return err
	}

	dl, err := h.service.Download(c.Request().Context(), q, format)
	if err != nil {
		return err
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", dl.Filename))
	return c.Blob(http.StatusOK, dl.ContentType, dl.Body)
}
