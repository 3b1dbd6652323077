package domain

import (
	"fmt"
	"time"
)

// DateRange is the preset chosen in the dashboard's date selector.
type DateRange string

const (
	RangeLast7Days  DateRange = "last7days"
	RangeThisMonth  DateRange = "thisMonth"
	RangeLastMonth  DateRange = "lastMonth"
	RangeYearToDate DateRange = "yearToDate"
	RangeCustom     DateRange = "custom"
)

// DateRanges lists the presets in selector order.
var DateRanges = []DateRange{RangeLast7Days, RangeThisMonth, RangeLastMonth, RangeYearToDate, RangeCustom}

// Fallback date fields consulted when a record lacks its category's date field.
const (
	FieldSubmittedDate = "submittedDate"
	FieldCreatedAt     = "createdAt"
)

// DateFilter narrows a report list to a date window.
type DateFilter struct {
	Range           DateRange `json:"dateRange"`
	CustomStartDate string    `json:"customStartDate,omitempty"`
	CustomEndDate   string    `json:"customEndDate,omitempty"`
}

// Interval is a closed time window.
type Interval struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t lies in [Start, End].
func (i Interval) Contains(t time.Time) bool {
	return !t.Before(i.Start) && !t.After(i.End)
}

// Interval computes the window relative to now. ok is false when the filter
// does not narrow anything: unknown presets, or custom without both bounds.
func (f DateFilter) Interval(now time.Time) (Interval, bool, error) {
	loc := now.Location()
	y, m, _ := now.Date()

	switch f.Range {
	case RangeLast7Days:
		return Interval{Start: now.AddDate(0, 0, -7), End: now}, true, nil
	case RangeThisMonth:
		start := time.Date(y, m, 1, 0, 0, 0, 0, loc)
		return Interval{Start: start, End: start.AddDate(0, 1, 0).Add(-time.Nanosecond)}, true, nil
	case RangeLastMonth:
		start := time.Date(y, m-1, 1, 0, 0, 0, 0, loc)
		return Interval{Start: start, End: start.AddDate(0, 1, 0).Add(-time.Nanosecond)}, true, nil
	case RangeYearToDate:
		return Interval{Start: time.Date(y, time.January, 1, 0, 0, 0, 0, loc), End: now}, true, nil
	case RangeCustom:
		if f.CustomStartDate == "" || f.CustomEndDate == "" {
			return Interval{}, false, nil
		}
		start, _, err := ParseDate(f.CustomStartDate, loc)
		if err != nil {
			return Interval{}, false, fmt.Errorf("custom start date: %w", ErrInvalidDateRange)
		}
		end, dateOnly, err := ParseDate(f.CustomEndDate, loc)
		if err != nil {
			return Interval{}, false, fmt.Errorf("custom end date: %w", ErrInvalidDateRange)
		}
		if dateOnly {
			end = end.AddDate(0, 0, 1).Add(-time.Nanosecond)
		}
		if end.Before(start) {
			return Interval{}, false, fmt.Errorf("end before start: %w", ErrInvalidDateRange)
		}
		return Interval{Start: start, End: end}, true, nil
	}
	return Interval{}, false, nil
}

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// ParseDate parses the ISO forms the dashboard stores. dateOnly is true for
// bare "2006-01-02" values, which are read in loc.
func ParseDate(s string, loc *time.Location) (t time.Time, dateOnly bool, err error) {
	if t, err := time.ParseInLocation(time.DateOnly, s, loc); err == nil {
		return t, true, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, false, nil
		}
	}
	return time.Time{}, false, fmt.Errorf("parse date %q: %w", s, ErrInvalidDateRange)
}

// RecordDate resolves the date a record is filtered on: field, then
// submittedDate, then createdAt. present is false when none of them exist.
func RecordDate(r Record, field string, loc *time.Location) (t time.Time, present bool, err error) {
	for _, name := range []string{field, FieldSubmittedDate, FieldCreatedAt} {
		if name == "" {
			continue
		}
		v, ok := r.Value(name)
		if !ok {
			continue
		}
		s, _ := v.(string)
		if s == "" {
			continue
		}
		t, _, err := ParseDate(s, loc)
		return t, true, err
	}
	return time.Time{}, false, nil
}
