package domain

import (
	"strings"
	"time"
)

// ExportFormat is a file type offered by the export and download actions.
type ExportFormat string

const (
	FormatCSV   ExportFormat = "csv"
	FormatExcel ExportFormat = "excel"
	FormatPDF   ExportFormat = "pdf"
)

// ParseExportFormat accepts "xlsx" as an alias for excel.
func ParseExportFormat(s string) (ExportFormat, error) {
	switch f := ExportFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatCSV, FormatExcel, FormatPDF:
		return f, nil
	case "xlsx":
		return FormatExcel, nil
	}
	return "", ErrUnsupportedFormat
}

// Extension returns the file extension without a dot.
func (f ExportFormat) Extension() string {
	if f == FormatExcel {
		return "xlsx"
	}
	return string(f)
}

// Cadence is how often a scheduled report is delivered.
type Cadence string

const (
	CadenceDaily   Cadence = "daily"
	CadenceWeekly  Cadence = "weekly"
	CadenceMonthly Cadence = "monthly"
)

// CronSpec returns the cron descriptor for the cadence.
func (c Cadence) CronSpec() (string, error) {
	switch c {
	case CadenceDaily:
		return "@daily", nil
	case CadenceWeekly:
		return "@weekly", nil
	case CadenceMonthly:
		return "@monthly", nil
	}
	return "", ErrInvalidCadence
}

// ScheduleRequest asks for a report to be delivered periodically.
type ScheduleRequest struct {
	Category    Category
	Cadence     Cadence
	Recipients  []string
	Format      ExportFormat
	Filters     *DateFilter
	RequestedBy string // authenticated subject, empty when auth is off
}

// ScheduleAck acknowledges a ScheduleRequest.
type ScheduleAck struct {
	ID      string    `json:"id"`
	Message string    `json:"message"`
	NextRun time.Time `json:"nextRun"`
}
