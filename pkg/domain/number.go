package domain

import (
	"fmt"

	"tender/pkg/validation"
)

// Number constrains the numeric primitives the generic wrappers accept.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Positive wraps a numeric value guaranteed to be strictly greater than
// zero.
type Positive[T Number] struct {
	value T
}

// NewPositive constructs a Positive wrapper, rejecting zero and negative
// values.
func NewPositive[T Number](field string, value T) (Positive[T], error) {
	if value <= 0 {
		return Positive[T]{}, validation.Single(field, validation.RuleRange,
			fmt.Sprintf("must be greater than zero, got %v", value))
	}
	return Positive[T]{value: value}, nil
}

// Value returns the underlying number.
func (p Positive[T]) Value() T {
	return p.value
}

// NonNegative wraps a numeric value guaranteed to be zero or greater.
type NonNegative[T Number] struct {
	value T
}

// NewNonNegative constructs a NonNegative wrapper, rejecting negative
// values.
func NewNonNegative[T Number](field string, value T) (NonNegative[T], error) {
	if value < 0 {
		return NonNegative[T]{}, validation.Single(field, validation.RuleRange,
			fmt.Sprintf("must not be negative, got %v", value))
	}
	return NonNegative[T]{value: value}, nil
}

// Value returns the underlying number.
func (n NonNegative[T]) Value() T {
	return n.value
}
