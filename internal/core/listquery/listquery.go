// Package listquery is the search, filter, sort and paginate pipeline shared
// by every report category.
package listquery

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/worklog/report-dashboard/internal/core/catalog"
	"github.com/worklog/report-dashboard/internal/core/domain"
	"github.com/worklog/report-dashboard/internal/core/ports"
	"github.com/worklog/report-dashboard/internal/listview"
)

// Validate rejects filters and sorts on fields the category does not expose.
func Validate(d *catalog.Descriptor, q ports.ListQuery) error {
	for field := range q.Filters {
		if _, ok := d.Filter(field); !ok {
			return fmt.Errorf("filter %q: %w", field, domain.ErrInvalidFilterField)
		}
	}
	if q.Sort != nil && q.Sort.Field != "" {
		col, ok := d.Column(q.Sort.Field)
		if !ok || !col.Sortable {
			return fmt.Errorf("sort %q: %w", q.Sort.Field, domain.ErrInvalidSort)
		}
	}
	return nil
}

// Apply runs the whole pipeline over records, which are not modified.
func Apply(d *catalog.Descriptor, records []domain.Record, q ports.ListQuery) *ports.ListResult {
	matched := Filter(records, q.Filters, d.NameField, q.Search)
	if q.Sort != nil && q.Sort.Field != "" {
		matched = Sort(matched, *q.Sort)
	}

	pageSize := q.PageSize
	if pageSize <= 0 {
		pageSize = max(len(matched), 1)
	}

	return &ports.ListResult{
		Category:   d.Category,
		Items:      Paginate(matched, q.PageIndex, pageSize),
		Total:      len(matched),
		PageIndex:  q.PageIndex,
		PageSize:   pageSize,
		TotalPages: listview.TotalPages(len(matched), pageSize),
		Options:    Options(d, records),
	}
}

// Filter keeps records matching every equality filter and, when search is
// non-empty, whose nameField contains search case-insensitively. The result
// is a new slice in input order.
func Filter(records []domain.Record, filters map[string]string, nameField, search string) []domain.Record {
	needle := strings.ToLower(strings.TrimSpace(search))
	out := make([]domain.Record, 0, len(records))
	for _, r := range records {
		if !matchesFilters(r, filters) {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(stringValue(r, nameField)), needle) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func matchesFilters(r domain.Record, filters map[string]string) bool {
	for field, want := range filters {
		if want == "" || want == ports.FilterAll {
			continue
		}
		if stringValue(r, field) != want {
			return false
		}
	}
	return true
}

// Sort returns a stably sorted copy of records.
func Sort(records []domain.Record, spec ports.SortSpec) []domain.Record {
	out := slices.Clone(records)
	slices.SortStableFunc(out, func(a, b domain.Record) int {
		av, _ := a.Value(spec.Field)
		bv, _ := b.Value(spec.Field)
		c := compareValues(av, bv)
		if spec.Direction == ports.SortDesc {
			return -c
		}
		return c
	})
	return out
}

func compareValues(a, b any) int {
	af, aNum := number(a)
	bf, bNum := number(b)
	if aNum && bNum {
		return cmp.Compare(af, bf)
	}
	if a == nil || b == nil {
		switch {
		case a == nil && b == nil:
			return 0
		case a == nil:
			return -1
		default:
			return 1
		}
	}
	return strings.Compare(strings.ToLower(listview.FormatValue(a)), strings.ToLower(listview.FormatValue(b)))
}

func number(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case int:
		return float64(t), true
	}
	return 0, false
}

// Paginate returns page pageIndex of size pageSize. Pages past the end are
// empty; concatenating every page reproduces records exactly.
func Paginate(records []domain.Record, pageIndex, pageSize int) []domain.Record {
	if pageSize < 1 || pageIndex < 0 {
		return []domain.Record{}
	}
	start := pageIndex * pageSize
	if start >= len(records) {
		return []domain.Record{}
	}
	end := min(start+pageSize, len(records))
	return slices.Clone(records[start:end])
}

// Options derives each dropdown's values from the loaded records: the fixed
// domain values first, then the remaining observed values sorted.
func Options(d *catalog.Descriptor, records []domain.Record) []ports.FilterOption {
	opts := make([]ports.FilterOption, 0, len(d.Filters))
	for _, f := range d.Filters {
		seen := make(map[string]struct{}, len(f.Fixed))
		values := make([]string, 0, len(f.Fixed))
		for _, v := range f.Fixed {
			seen[v] = struct{}{}
			values = append(values, v)
		}

		var observed []string
		for _, r := range records {
			v := stringValue(r, f.Field)
			if v == "" {
				continue
			}
			if _, dup := seen[v]; dup {
				continue
			}
			seen[v] = struct{}{}
			observed = append(observed, v)
		}
		slices.Sort(observed)

		opts = append(opts, ports.FilterOption{
			Field:  f.Field,
			Label:  f.Label,
			Values: append(values, observed...),
		})
	}
	return opts
}

func stringValue(r domain.Record, field string) string {
	v, ok := r.Value(field)
	if !ok {
		return ""
	}
	return listview.FormatValue(v)
}
