// Package export renders report lists into downloadable files.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/worklog/report-dashboard/internal/core/domain"
	"github.com/worklog/report-dashboard/internal/listview"
)

// CSV writes a header row of column labels followed by one row per record.
type CSV struct{}

func (CSV) ContentType() string { return "text/csv" }

func (CSV) Render(_ string, columns []listview.Column, records []domain.Record) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	headers := make([]string, len(columns))
	for i, c := range columns {
		headers[i] = c.Header
	}
	if err := w.Write(headers); err != nil {
		return nil, fmt.Errorf("csv header: %w", err)
	}

	row := make([]string, len(columns))
	for _, rec := range records {
		for i, c := range columns {
			row[i] = c.Cell(rec)
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("csv row %s: %w", rec.RecordID(), err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
