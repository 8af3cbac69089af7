package domain

import (
	"fmt"
	"strings"

	"tender/pkg/validation"
)

// NonEmptyString is a trimmed string with a guaranteed minimum length.
//
// Invariant: len(value) >= the configured minimum (default 1) after
// trimming surrounding whitespace.
type NonEmptyString struct {
	value string
}

type textConfig struct {
	minLength int
}

// TextOption configures NonEmptyString validation.
type TextOption func(*textConfig)

// MinLength sets the minimum length required after trimming. Values below
// one are ignored.
func MinLength(n int) TextOption {
	return func(c *textConfig) {
		if n > 1 {
			c.minLength = n
		}
	}
}

// NewNonEmptyString constructs a NonEmptyString from raw input. Whitespace
// is trimmed before the length check.
func NewNonEmptyString(field, raw string, opts ...TextOption) (NonEmptyString, error) {
	cfg := textConfig{minLength: 1}
	for _, opt := range opts {
		opt(&cfg)
	}

	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return NonEmptyString{}, validation.Single(field, validation.RuleShape, "must not be blank")
	}
	if len(trimmed) < cfg.minLength {
		return NonEmptyString{}, validation.Single(field, validation.RuleShape,
			fmt.Sprintf("must be at least %d characters", cfg.minLength))
	}
	return NonEmptyString{value: trimmed}, nil
}

// String returns the trimmed underlying value.
func (s NonEmptyString) String() string {
	return s.value
}

// EmailAddress is a minimally validated email address.
//
// Invariant: the trimmed value is non-blank and contains an '@'. The check
// is deliberately this weak; upgrading it to a full syntax check changes
// which addresses existing callers accept.
type EmailAddress struct {
	value string
}

// NewEmailAddress constructs an EmailAddress from raw input.
func NewEmailAddress(field, raw string) (EmailAddress, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return EmailAddress{}, validation.Single(field, validation.RuleShape, "must not be blank")
	}
	if !strings.Contains(trimmed, "@") {
		return EmailAddress{}, validation.Single(field, validation.RuleShape, "must contain '@'")
	}
	return EmailAddress{value: trimmed}, nil
}

// String returns the trimmed underlying address.
func (e EmailAddress) String() string {
	return e.value
}
