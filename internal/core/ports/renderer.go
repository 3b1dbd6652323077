package ports

import (
	"github.com/worklog/report-dashboard/internal/core/domain"
	"github.com/worklog/report-dashboard/internal/listview"
)

// Renderer turns a report list into file bytes.
type Renderer interface {
	ContentType() string
	Render(sheet string, columns []listview.Column, records []domain.Record) ([]byte, error)
}
