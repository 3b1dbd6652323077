package handler

import (
	"time"

	"github.com/worklog/report-dashboard/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

type dateFilterRequest struct {
	DateRange       string `json:"date_range"`
	CustomStartDate string `json:"custom_start_date"`
	CustomEndDate   string `json:"custom_end_date"`
}

type exportRequest struct {
	Format string `json:"format" validate:"required,oneof=csv excel xlsx pdf"`
	dateFilterRequest
}

type scheduleRequest struct {
	Cadence    string             `json:"cadence"    validate:"required,oneof=daily weekly monthly"`
	Recipients []string           `json:"recipients" validate:"required,min=1,dive,email"`
	Format     string             `json:"format"     validate:"required,oneof=csv excel xlsx pdf"`
	Filters    *dateFilterRequest `json:"filters"`
}

// --- Response types ---

type columnResponse struct {
	Header   string `json:"header"`
	Field    string `json:"field"`
	Sortable bool   `json:"sortable"`
}

type filterResponse struct {
	Field  string   `json:"field"`
	Label  string   `json:"label"`
	Values []string `json:"values"`
}

type categoryResponse struct {
	Name       string           `json:"name"`
	Title      string           `json:"title"`
	StorageKey string           `json:"storage_key"`
	DateField  string           `json:"date_field,omitempty"`
	NameField  string           `json:"name_field"`
	Columns    []columnResponse `json:"columns"`
	Filters    []filterResponse `json:"filters"`
}

type headerResponse struct {
	Label     string `json:"label"`
	Field     string `json:"field"`
	Sortable  bool   `json:"sortable"`
	Direction string `json:"direction,omitempty"`
}

type rowResponse struct {
	ID      string        `json:"id"`
	Cells   []string      `json:"cells"`
	Striped bool          `json:"striped"`
	Record  domain.Record `json:"record"`
}

type sortResponse struct {
	Field     string `json:"field"`
	Direction string `json:"direction"`
}

// paginationResponse uses 1-based page numbers throughout.
type paginationResponse struct {
	Page         int   `json:"page"`
	PageSize     int   `json:"page_size"`
	TotalItems   int   `json:"total_items"`
	TotalPages   int   `json:"total_pages"`
	Pages        []int `json:"pages"`
	PrevDisabled bool  `json:"prev_disabled"`
	NextDisabled bool  `json:"next_disabled"`
}

type tableResponse struct {
	Headers      []headerResponse   `json:"headers"`
	Rows         []rowResponse      `json:"rows"`
	Empty        bool               `json:"empty"`
	EmptyMessage string             `json:"empty_message,omitempty"`
	Sort         *sortResponse      `json:"sort,omitempty"`
	Pagination   paginationResponse `json:"pagination"`
}

type viewResponse struct {
	Category string           `json:"category"`
	Title    string           `json:"title"`
	Filters  []filterResponse `json:"filters"`
	Table    tableResponse    `json:"table"`
}

type recordsResponse struct {
	Category string          `json:"category"`
	Total    int             `json:"total"`
	Items    []domain.Record `json:"items"`
}

type statsResponse struct {
	Category         string `json:"category"`
	TotalRecords     int    `json:"total_records"`
	ActiveRecords    int    `json:"active_records"`
	InactiveRecords  int    `json:"inactive_records"`
	CompletedRecords *int   `json:"completed_records,omitempty"`
	PendingRecords   *int   `json:"pending_records,omitempty"`
}

type exportResponse struct {
	URL string `json:"url"`
}

type scheduleResponse struct {
	ID      string    `json:"id"`
	Message string    `json:"message"`
	NextRun time.Time `json:"next_run"`
}
