package models

import (
	"github.com/google/uuid"

	"tender/pkg/validation"
)

// PaymentID uniquely identifies a payment across its whole lifecycle. It is
// a struct-incompatible wrapper over uuid.UUID so IDs of other entities
// cannot be passed where a payment ID is expected.
type PaymentID uuid.UUID

// NewPaymentID generates a fresh random PaymentID.
func NewPaymentID() PaymentID {
	return PaymentID(uuid.New())
}

// ParsePaymentID constructs a PaymentID from external input, rejecting
// empty, malformed, and nil UUIDs.
func ParsePaymentID(s string) (PaymentID, error) {
	if s == "" {
		return PaymentID{}, validation.Single("payment_id", validation.RuleShape, "must not be blank")
	}
	parsed, err := uuid.Parse(s)
	if err != nil {
		return PaymentID{}, validation.Single("payment_id", validation.RuleShape, "must be a valid uuid")
	}
	if parsed == uuid.Nil {
		return PaymentID{}, validation.Single("payment_id", validation.RuleShape, "must not be the nil uuid")
	}
	return PaymentID(parsed), nil
}

// String returns the canonical uuid form.
func (id PaymentID) String() string {
	return uuid.UUID(id).String()
}

// IsZero reports whether the ID is unset.
func (id PaymentID) IsZero() bool {
	return uuid.UUID(id) == uuid.Nil
}
