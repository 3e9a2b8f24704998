package validation

import (
	"strconv"
	"time"

	"pytick/internal/errors"
)

// DateFormat is the calendar date layout the service uses everywhere.
const DateFormat = "2006-01-02"

// EntryValidator validates and parses entry-related command input.
type EntryValidator struct{}

// NewEntryValidator creates a new entry validator
func NewEntryValidator() *EntryValidator {
	return &EntryValidator{}
}

// ValidateDate checks that s is an ISO-8601 calendar date (YYYY-MM-DD).
func (v *EntryValidator) ValidateDate(field string, s string) error {
	if _, err := time.Parse(DateFormat, s); err != nil {
		return errors.NewInvalidInputError(field, s, "must be a date in the format YYYY-MM-DD")
	}
	return nil
}

// ParseHours parses a decimal hours value.
func (v *EntryValidator) ParseHours(s string) (float64, error) {
	hours, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.NewInvalidInputError("hours", s, "must be a decimal number")
	}
	return hours, nil
}

// ParseID parses a positive integer identifier for the named field.
func (v *EntryValidator) ParseID(field string, s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.NewInvalidInputError(field, s, "must be a positive integer")
	}
	return id, nil
}

// ParseBoolFilter parses an optional billed/billable filter value. Empty
// input means the filter is absent. Anything other than the literal strings
// "true" and "false" is rejected rather than silently dropped.
func (v *EntryValidator) ParseBoolFilter(field string, s string) (*bool, error) {
	switch s {
	case "":
		return nil, nil
	case "true":
		b := true
		return &b, nil
	case "false":
		b := false
		return &b, nil
	default:
		return nil, errors.NewInvalidInputError(field, s, `must be "true" or "false"`)
	}
}

// ParseTargetHours parses the daily report target, defaulting when empty.
func (v *EntryValidator) ParseTargetHours(s string, fallback float64) (float64, error) {
	if s == "" {
		return fallback, nil
	}
	target, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.NewInvalidInputError("target_hours", s, "must be a decimal number")
	}
	return target, nil
}
