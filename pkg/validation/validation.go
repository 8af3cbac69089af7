// Package validation defines the error model shared by every smart
// constructor in this module: a failed rule is always reported as a
// FieldError naming the offending field, and operations that run several
// independent checks return every failure at once as an Errors list.
//
// The package deliberately has no "fatal" class. However malformed the
// input, constructors resolve to a normal error value; panics are reserved
// for programming-contract violations that the type system already rules
// out in correct callers.
package validation

import (
	"errors"
	"fmt"
	"strings"
)

// Rule identifies which kind of validation rule rejected a value.
//
// The set is closed: every constructor in this module tags its failures
// with exactly one of these, so callers can branch on rule kind without
// string matching.
type Rule string

const (
	// RuleShape covers wrong primitive shape: empty strings, non-digit
	// characters, wrong length.
	RuleShape Rule = "shape"

	// RuleRange covers numeric values outside their required range.
	RuleRange Rule = "range"

	// RuleChecksum covers shape-valid values failing a checksum (MOD10, ABA).
	RuleChecksum Rule = "checksum"

	// RuleTemporal covers date/time values not satisfying a temporal
	// constraint relative to a reference instant.
	RuleTemporal Rule = "temporal"

	// RuleComposition covers a composite constraint distinct from a single
	// scalar rule, such as password character-class requirements.
	RuleComposition Rule = "composition"
)

// FieldError is a single rule violation on a single named field.
type FieldError struct {
	Field   string
	Rule    Rule
	Message string
}

// NewFieldError constructs a FieldError.
func NewFieldError(field string, rule Rule, message string) *FieldError {
	return &FieldError{Field: field, Rule: rule, Message: message}
}

// Error implements the error interface.
func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Errors is an ordered, non-empty collection of rule violations. Order is
// the evaluation order of the rules that produced them, which is stable for
// a given constructor: callers may rely on it in user-facing output.
//
// Constructors return Errors (not a bare FieldError) even for a single
// violation so that callers have one shape to handle.
type Errors []*FieldError

// Error implements the error interface.
func (e Errors) Error() string {
	switch len(e) {
	case 0:
		return "no validation errors"
	case 1:
		return e[0].Error()
	}
	msgs := make([]string, len(e))
	for i, fe := range e {
		msgs[i] = fe.Error()
	}
	return fmt.Sprintf("%d validation errors: %s", len(e), strings.Join(msgs, "; "))
}

// Unwrap exposes the individual field errors to errors.Is / errors.As.
func (e Errors) Unwrap() []error {
	errs := make([]error, len(e))
	for i, fe := range e {
		errs[i] = fe
	}
	return errs
}

// Single wraps one violation in an Errors list.
func Single(field string, rule Rule, message string) Errors {
	return Errors{NewFieldError(field, rule, message)}
}

// AsErrors extracts the Errors list from err. It unwraps a lone *FieldError
// into a one-element list so callers always receive the same shape.
func AsErrors(err error) (Errors, bool) {
	if err == nil {
		return nil, false
	}
	var list Errors
	if errors.As(err, &list) {
		return list, true
	}
	var fe *FieldError
	if errors.As(err, &fe) {
		return Errors{fe}, true
	}
	return nil, false
}

// HasRule reports whether err carries at least one violation of the given
// rule kind.
func HasRule(err error, rule Rule) bool {
	list, ok := AsErrors(err)
	if !ok {
		return false
	}
	for _, fe := range list {
		if fe.Rule == rule {
			return true
		}
	}
	return false
}

// Fields returns the distinct field names mentioned by err, in first-seen
// order.
func Fields(err error) []string {
	list, ok := AsErrors(err)
	if !ok {
		return nil
	}
	seen := make(map[string]bool, len(list))
	var fields []string
	for _, fe := range list {
		if !seen[fe.Field] {
			seen[fe.Field] = true
			fields = append(fields, fe.Field)
		}
	}
	return fields
}
