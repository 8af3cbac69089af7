package domain

import (
	"fmt"
	"strings"
	"unicode"

	"tender/pkg/validation"
)

// defaultPasswordMinLength applies when no explicit minimum is configured.
const defaultPasswordMinLength = 8

// Password is a plaintext password that satisfied the configured strength
// rules at construction time. It exists to be validated and immediately
// hashed; it is never persisted or serialized as-is, and String redacts the
// value so it cannot leak through logs.
type Password struct {
	value string
}

type passwordConfig struct {
	minLength     int
	requireUpper  bool
	requireLower  bool
	requireDigit  bool
	requireSymbol bool
}

// PasswordOption configures password strength requirements.
type PasswordOption func(*passwordConfig)

// MinPasswordLength sets the minimum password length.
func MinPasswordLength(n int) PasswordOption {
	return func(c *passwordConfig) { c.minLength = n }
}

// RequireUpper demands at least one uppercase letter.
func RequireUpper() PasswordOption {
	return func(c *passwordConfig) { c.requireUpper = true }
}

// RequireLower demands at least one lowercase letter.
func RequireLower() PasswordOption {
	return func(c *passwordConfig) { c.requireLower = true }
}

// RequireDigit demands at least one decimal digit.
func RequireDigit() PasswordOption {
	return func(c *passwordConfig) { c.requireDigit = true }
}

// RequireSymbol demands at least one character that is neither a letter nor
// a digit.
func RequireSymbol() PasswordOption {
	return func(c *passwordConfig) { c.requireSymbol = true }
}

// NewPassword constructs a Password from raw input. The raw value is not
// trimmed: surrounding whitespace is part of a password. Every violated
// rule is reported, so a short password missing two character classes
// yields three errors.
func NewPassword(field, raw string, opts ...PasswordOption) (Password, error) {
	cfg := passwordConfig{minLength: defaultPasswordMinLength}
	for _, opt := range opts {
		opt(&cfg)
	}

	var acc validation.Accumulator
	if len(raw) < cfg.minLength {
		acc.Add(field, validation.RuleShape,
			fmt.Sprintf("must be at least %d characters", cfg.minLength))
	}

	var hasUpper, hasLower, hasDigit, hasSymbol bool
	for _, ch := range raw {
		switch {
		case unicode.IsUpper(ch):
			hasUpper = true
		case unicode.IsLower(ch):
			hasLower = true
		case unicode.IsDigit(ch):
			hasDigit = true
		default:
			hasSymbol = true
		}
	}
	if cfg.requireUpper && !hasUpper {
		acc.Add(field, validation.RuleComposition, "must contain an uppercase letter")
	}
	if cfg.requireLower && !hasLower {
		acc.Add(field, validation.RuleComposition, "must contain a lowercase letter")
	}
	if cfg.requireDigit && !hasDigit {
		acc.Add(field, validation.RuleComposition, "must contain a digit")
	}
	if cfg.requireSymbol && !hasSymbol {
		acc.Add(field, validation.RuleComposition, "must contain a symbol")
	}

	if err := acc.Err(); err != nil {
		return Password{}, err
	}
	return Password{value: raw}, nil
}

// Secret returns the plaintext password for hashing. Call sites should hash
// and drop the value promptly.
func (p Password) Secret() string {
	return p.value
}

// String implements fmt.Stringer with a redacted value.
func (p Password) String() string {
	return strings.Repeat("*", 8)
}
