package domain

import "errors"

var (
	ErrUnknownCategory    = errors.New("unknown report category")
	ErrUnsupportedFormat  = errors.New("unsupported export format")
	ErrInvalidCadence     = errors.New("invalid schedule cadence")
	ErrNoRecipients       = errors.New("at least one recipient is required")
	ErrInvalidDateRange   = errors.New("invalid date range")
	ErrInvalidSort        = errors.New("column is not sortable")
	ErrInvalidFilterField = errors.New("field is not filterable")
	ErrDuplicateRecord    = errors.New("duplicate record id")
	ErrBlobNotFound       = errors.New("blob not found")
)
