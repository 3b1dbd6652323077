// Package catalog holds the per-category metadata that turns the generic
// list, filter and stats code into the five report tabs.
package catalog

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/worklog/report-dashboard/internal/core/domain"
	"github.com/worklog/report-dashboard/internal/listview"
)

var errNullArray = errors.New("stored value is not an array")

// FilterField is one dropdown of a report tab. Fixed values are offered
// even when no loaded record carries them.
type FilterField struct {
	Field string
	Label string
	Fixed []string
}

// Descriptor describes one report category.
type Descriptor struct {
	Category  domain.Category
	Title     string
	DateField string // empty: never date filtered
	NameField string // target of the free-text search
	Columns   []listview.Column
	Filters   []FilterField
	Buckets   map[string]domain.Bucket

	decode func([]byte) ([]domain.Record, error)
}

// Lookup returns the descriptor of c.
func Lookup(c domain.Category) (*Descriptor, error) {
	d, ok := registry[c]
	if !ok {
		return nil, fmt.Errorf("catalog lookup %q: %w", c, domain.ErrUnknownCategory)
	}
	return d, nil
}

// All returns the descriptors in tab order.
func All() []*Descriptor {
	out := make([]*Descriptor, 0, len(domain.Categories))
	for _, c := range domain.Categories {
		out = append(out, registry[c])
	}
	return out
}

// Decode parses a stored JSON array into records of the category's type.
func (d *Descriptor) Decode(data []byte) ([]domain.Record, error) {
	return d.decode(data)
}

// Column returns the column bound to field.
func (d *Descriptor) Column(field string) (listview.Column, bool) {
	for _, c := range d.Columns {
		if c.Field == field {
			return c, true
		}
	}
	return listview.Column{}, false
}

// Filter returns the filter dropdown bound to field.
func (d *Descriptor) Filter(field string) (FilterField, bool) {
	for _, f := range d.Filters {
		if f.Field == field {
			return f, true
		}
	}
	return FilterField{}, false
}

// NewStats returns zeroed stats carrying exactly the buckets this category uses.
func (d *Descriptor) NewStats() domain.Stats {
	var s domain.Stats
	for _, b := range d.Buckets {
		switch b {
		case domain.BucketCompleted:
			if s.CompletedRecords == nil {
				s.CompletedRecords = new(int)
			}
		case domain.BucketPending:
			if s.PendingRecords == nil {
				s.PendingRecords = new(int)
			}
		}
	}
	return s
}

func decodeAs[T domain.Record](data []byte) ([]domain.Record, error) {
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, err
	}
	if items == nil {
		return nil, errNullArray
	}
	out := make([]domain.Record, len(items))
	for i, item := range items {
		out[i] = item
	}
	return out, nil
}
