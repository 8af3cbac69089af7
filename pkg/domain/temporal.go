package domain

import (
	"fmt"
	"time"

	"tender/pkg/validation"
)

// ExpiryDate is a card expiry month that has not yet passed.
//
// Invariants:
//   - month is in 1..12
//   - the (year, month) pair is the reference month or later; a card is
//     usable through the end of its expiry month
//
// Both rules are evaluated independently: an out-of-range month is clamped
// into 1..12 for the temporal comparison so that callers see the range
// violation and the past-date violation together instead of one at a time.
type ExpiryDate struct {
	month int
	year  int
}

// NewExpiryDate constructs an ExpiryDate, comparing against the supplied
// reference instant.
func NewExpiryDate(field string, month, year int, now time.Time) (ExpiryDate, error) {
	var acc validation.Accumulator
	if month < 1 || month > 12 {
		acc.Add(field, validation.RuleRange,
			fmt.Sprintf("month must be between 1 and 12, got %d", month))
	}

	clamped := min(max(month, 1), 12)
	if year < now.Year() || (year == now.Year() && clamped < int(now.Month())) {
		acc.Add(field, validation.RuleTemporal,
			fmt.Sprintf("%d/%d is in the past", clamped, year))
	}

	if err := acc.Err(); err != nil {
		return ExpiryDate{}, err
	}
	return ExpiryDate{month: month, year: year}, nil
}

// Month returns the expiry month (1..12).
func (e ExpiryDate) Month() int {
	return e.month
}

// Year returns the expiry year.
func (e ExpiryDate) Year() int {
	return e.year
}

// String renders the expiry as MM/YYYY.
func (e ExpiryDate) String() string {
	return fmt.Sprintf("%02d/%04d", e.month, e.year)
}

// FutureDate is an instant strictly after its reference instant.
type FutureDate struct {
	value time.Time
}

// NewFutureDate constructs a FutureDate, rejecting values at or before the
// reference instant.
func NewFutureDate(field string, value, now time.Time) (FutureDate, error) {
	if !value.After(now) {
		return FutureDate{}, validation.Single(field, validation.RuleTemporal,
			fmt.Sprintf("must be after %s", now.Format(time.RFC3339)))
	}
	return FutureDate{value: value}, nil
}

// Time returns the underlying instant.
func (f FutureDate) Time() time.Time {
	return f.value
}
