// Package credentials validates and hashes user sign-up credentials.
package credentials

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"tender/pkg/domain"
	"tender/pkg/validation"
)

// Credentials is a validated email and strong-password pair. Both fields
// are checked together so a sign-up form learns about a malformed email and
// a weak password in the same response.
type Credentials struct {
	email    domain.EmailAddress
	password domain.Password
}

// New validates both credential fields, accumulating failures across them.
// Password options configure the strength policy; the email check stays the
// minimal non-blank-with-'@' rule.
func New(email, password string, opts ...domain.PasswordOption) (Credentials, error) {
	var acc validation.Accumulator

	addr, err := domain.NewEmailAddress("email", email)
	acc.Collect(err)

	pw, err := domain.NewPassword("password", password, opts...)
	acc.Collect(err)

	if err := acc.Err(); err != nil {
		return Credentials{}, err
	}
	return Credentials{email: addr, password: pw}, nil
}

// Email returns the validated email address.
func (c Credentials) Email() domain.EmailAddress {
	return c.email
}

// Password returns the validated plaintext password for hashing.
func (c Credentials) Password() domain.Password {
	return c.password
}

// HashPassword creates a bcrypt hash of a validated password. Store the
// hash, drop the plaintext.
func HashPassword(password domain.Password) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password.Secret()), bcrypt.DefaultCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", validation.Single("password", validation.RuleShape, "is too long to hash")
		}
		return "", fmt.Errorf("could not hash password: %w", err)
	}
	return string(hashed), nil
}

// VerifyPassword checks a plaintext secret against a stored bcrypt hash.
func VerifyPassword(secret, hash string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return validation.Single("password", validation.RuleComposition, "does not match")
		}
		return fmt.Errorf("could not verify password: %w", err)
	}
	return nil
}
