package domain

import (
	"fmt"
	"strings"

	"tender/pkg/validation"
)

// DigitString is a normalized string of decimal digits.
//
// Invariants:
//   - the value is non-empty after stripping interior spaces
//   - every character is in '0'..'9'
//   - length is within the configured bounds, when set
//
// Normalization strips every space before validating, so "4532 0151" and
// "45320151" construct equal values.
type DigitString struct {
	value string
}

type digitConfig struct {
	minDigits int
	maxDigits int
}

// DigitOption configures digit-bearing constructors.
type DigitOption func(*digitConfig)

// MinDigits requires at least n digits after normalization.
func MinDigits(n int) DigitOption {
	return func(c *digitConfig) { c.minDigits = n }
}

// MaxDigits allows at most n digits after normalization.
func MaxDigits(n int) DigitOption {
	return func(c *digitConfig) { c.maxDigits = n }
}

// NewDigitString constructs a DigitString from raw input.
//
// Every applicable rule is evaluated, so input that is both non-numeric and
// too long reports both violations.
func NewDigitString(field, raw string, opts ...DigitOption) (DigitString, error) {
	cfg := digitConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	normalized := normalizeDigits(raw)
	var acc validation.Accumulator
	checkDigitShape(&acc, field, normalized, cfg)
	if err := acc.Err(); err != nil {
		return DigitString{}, err
	}
	return DigitString{value: normalized}, nil
}

// String returns the normalized digit string.
func (d DigitString) String() string {
	return d.value
}

// Len returns the number of digits.
func (d DigitString) Len() int {
	return len(d.value)
}

// LuhnString is a digit string that additionally passes the MOD10 (Luhn)
// checksum, the shape used by payment card numbers.
//
// The checksum is only computed once the digit-shape rules pass; a checksum
// over malformed input is undefined, not a missing error.
type LuhnString struct {
	value string
}

// NewLuhnString constructs a LuhnString from raw input. Interior spaces are
// stripped before validation, matching how card numbers are typically
// entered.
func NewLuhnString(field, raw string, opts ...DigitOption) (LuhnString, error) {
	cfg := digitConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	normalized := normalizeDigits(raw)
	var acc validation.Accumulator
	shapeOK := checkDigitShape(&acc, field, normalized, cfg)
	if shapeOK && !luhnValid(normalized) {
		acc.Add(field, validation.RuleChecksum, "failed MOD10 checksum")
	}
	if err := acc.Err(); err != nil {
		return LuhnString{}, err
	}
	return LuhnString{value: normalized}, nil
}

// String returns the normalized digit string.
func (l LuhnString) String() string {
	return l.value
}

// routingNumberLength is fixed by the ABA routing number format.
const routingNumberLength = 9

// RoutingNumber is an ABA bank routing number: exactly nine digits passing
// the ABA weighted checksum.
type RoutingNumber struct {
	value string
}

// NewRoutingNumber constructs a RoutingNumber from raw input.
func NewRoutingNumber(field, raw string) (RoutingNumber, error) {
	normalized := normalizeDigits(raw)
	var acc validation.Accumulator
	shapeOK := checkDigitShape(&acc, field, normalized, digitConfig{
		minDigits: routingNumberLength,
		maxDigits: routingNumberLength,
	})
	if shapeOK && !abaValid(normalized) {
		acc.Add(field, validation.RuleChecksum, "failed ABA routing checksum")
	}
	if err := acc.Err(); err != nil {
		return RoutingNumber{}, err
	}
	return RoutingNumber{value: normalized}, nil
}

// String returns the nine-digit routing number.
func (r RoutingNumber) String() string {
	return r.value
}

// normalizeDigits strips surrounding whitespace and interior spaces.
func normalizeDigits(raw string) string {
	return strings.ReplaceAll(strings.TrimSpace(raw), " ", "")
}

// checkDigitShape runs the digit-shape rules over an already normalized
// string, accumulating every violation. It reports whether all shape rules
// passed, which gates the checksum rules. A blank value reports only the
// blank violation; the remaining rules are meaningless without content.
func checkDigitShape(acc *validation.Accumulator, field, normalized string, cfg digitConfig) bool {
	if normalized == "" {
		acc.Add(field, validation.RuleShape, "must not be blank")
		return false
	}

	ok := true
	if !allDigits(normalized) {
		acc.Add(field, validation.RuleShape, "must contain only digits")
		ok = false
	}
	if cfg.minDigits > 0 && len(normalized) < cfg.minDigits {
		acc.Add(field, validation.RuleShape,
			fmt.Sprintf("must have at least %d digits, got %d", cfg.minDigits, len(normalized)))
		ok = false
	}
	if cfg.maxDigits > 0 && len(normalized) > cfg.maxDigits {
		acc.Add(field, validation.RuleShape,
			fmt.Sprintf("must have at most %d digits, got %d", cfg.maxDigits, len(normalized)))
		ok = false
	}
	return ok
}

func allDigits(s string) bool {
	for _, ch := range s {
		if ch < '0' || ch > '9' {
			return false
		}
	}
	return true
}

// luhnValid applies the MOD10 checksum: walking from the rightmost digit,
// every second digit is doubled and reduced by nine when it exceeds nine;
// the value is valid when the digit sum is divisible by ten. Assumes the
// input is non-empty and all digits.
func luhnValid(s string) bool {
	sum := 0
	double := false
	for i := len(s) - 1; i >= 0; i-- {
		digit := int(s[i] - '0')
		if double {
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
		}
		sum += digit
		double = !double
	}
	return sum%10 == 0
}

// abaWeights are applied to the first eight digits of a routing number.
var abaWeights = [8]int{3, 7, 1, 3, 7, 1, 3, 7}

// abaValid applies the ABA checksum: the weighted sum of the first eight
// digits determines the expected ninth check digit. Assumes the input is
// exactly nine digits.
func abaValid(s string) bool {
	sum := 0
	for i, w := range abaWeights {
		sum += int(s[i]-'0') * w
	}
	expected := (10 - sum%10) % 10
	return expected == int(s[8]-'0')
}
