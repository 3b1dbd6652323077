package catalog

import (
	"fmt"
	"time"

	"github.com/worklog/report-dashboard/internal/core/domain"
)

// hours renders a float field as "12.5 h".
func hours(field string) func(domain.Record) string {
	return func(r domain.Record) string {
		v, _ := r.Value(field)
		f, _ := v.(float64)
		return fmt.Sprintf("%.1f h", f)
	}
}

// money renders a float field as "$1234.50".
func money(field string) func(domain.Record) string {
	return func(r domain.Record) string {
		v, _ := r.Value(field)
		f, _ := v.(float64)
		return fmt.Sprintf("$%.2f", f)
	}
}

// date renders an ISO field as "Jan 02, 2006", leaving unparseable values as stored.
func date(field string) func(domain.Record) string {
	return func(r domain.Record) string {
		v, ok := r.Value(field)
		if !ok {
			return ""
		}
		s, _ := v.(string)
		t, _, err := domain.ParseDate(s, time.UTC)
		if err != nil {
			return s
		}
		return t.Format("Jan 02, 2006")
	}
}
