package listview

import (
	"fmt"
	"strconv"

	"github.com/worklog/report-dashboard/internal/core/domain"
)

// Column describes one table column. Render, when set, replaces the raw
// field value in the cell.
type Column struct {
	Header   string
	Field    string
	Render   func(domain.Record) string
	Sortable bool
}

// Cell returns the rendered text of the column for r.
func (c Column) Cell(r domain.Record) string {
	if c.Render != nil {
		return c.Render(r)
	}
	v, ok := r.Value(c.Field)
	if !ok {
		return ""
	}
	return FormatValue(v)
}

// FormatValue prints a raw record value without any column formatting.
func FormatValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	default:
		return fmt.Sprint(t)
	}
}
