// Package listview builds the table model every report tab renders:
// rendered cells, striped rows, the empty state, sortable headers and the
// windowed pagination control. It never filters or sorts data itself.
package listview

import "github.com/worklog/report-dashboard/internal/core/domain"

const (
	Asc  = "asc"
	Desc = "desc"

	EmptyMessage = "No records found"
)

// Sort is the active sort column of a table.
type Sort struct {
	Field     string `json:"field"`
	Direction string `json:"direction"`
}

// ToggleSort returns the sort after a click on field's header: ascending
// when switching fields or when currently descending, descending when
// already ascending on field.
func ToggleSort(current Sort, field string) Sort {
	if current.Field == field && current.Direction == Asc {
		return Sort{Field: field, Direction: Desc}
	}
	return Sort{Field: field, Direction: Asc}
}

// Header is a rendered column header.
type Header struct {
	Label     string `json:"label"`
	Field     string `json:"field"`
	Sortable  bool   `json:"sortable"`
	Direction string `json:"direction,omitempty"`
}

// Row is one rendered record.
type Row struct {
	ID      string        `json:"id"`
	Cells   []string      `json:"cells"`
	Striped bool          `json:"striped"`
	Record  domain.Record `json:"record"`
}

// Table is the full render model.
type Table struct {
	Headers      []Header    `json:"headers"`
	Rows         []Row       `json:"rows"`
	Empty        bool        `json:"empty"`
	EmptyMessage string      `json:"emptyMessage,omitempty"`
	Sort         *Sort       `json:"sort,omitempty"`
	Pagination   *Pagination `json:"pagination,omitempty"`
}

// Props are the inputs of Render. Data is rendered as given.
type Props struct {
	Columns    []Column
	Data       []domain.Record
	Sort       *Sort
	Pagination *Pagination
}

// Render builds the table model for p.
func Render(p Props) Table {
	t := Table{
		Headers:    make([]Header, len(p.Columns)),
		Rows:       make([]Row, 0, len(p.Data)),
		Sort:       p.Sort,
		Pagination: p.Pagination,
	}

	for i, col := range p.Columns {
		h := Header{Label: col.Header, Field: col.Field, Sortable: col.Sortable}
		if col.Sortable && p.Sort != nil && p.Sort.Field == col.Field {
			h.Direction = p.Sort.Direction
		}
		t.Headers[i] = h
	}

	if len(p.Data) == 0 {
		t.Empty = true
		t.EmptyMessage = EmptyMessage
		return t
	}

	for i, rec := range p.Data {
		cells := make([]string, len(p.Columns))
		for j, col := range p.Columns {
			cells[j] = col.Cell(rec)
		}
		t.Rows = append(t.Rows, Row{
			ID:      rec.RecordID(),
			Cells:   cells,
			Striped: i%2 == 1,
			Record:  rec,
		})
	}
	return t
}
