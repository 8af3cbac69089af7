package models

import (
	"time"

	"tender/pkg/domain"
)

// Status names the payment lifecycle states for logging and metrics.
type Status string

const (
	StatusPending  Status = "pending"
	StatusPaid     Status = "paid"
	StatusVoid     Status = "void"
	StatusRefunded Status = "refunded"
)

// Payment is the closed set of payment lifecycle states. A payment is
// always exactly one of PendingPayment, PaidPayment, VoidPayment, or
// RefundedPayment; each variant carries only the fields legal in that
// state, so contradictory combinations such as "paid and voided" have no
// representation at all.
//
// Transitions are methods on the variants they are legal from, never on
// this interface. There is no way to mark an arbitrary Payment paid;
// asking for it is a compile error, not a runtime check.
type Payment interface {
	isPayment()

	// ID returns the payment's identity, stable across transitions.
	ID() PaymentID

	// Amount returns the validated amount, unchanged by transitions.
	Amount() domain.Amount

	// Method returns the validated instrument, unchanged by transitions.
	Method() Method

	// Status names the current state.
	Status() Status
}

// PendingPayment is a payment awaiting settlement. It is the entry state:
// every payment starts here, built from already-validated parts.
type PendingPayment struct {
	id     PaymentID
	amount domain.Amount
	method Method
}

// NewPendingPayment assembles a pending payment from validated parts.
//
// Contract: method must be one of the variants in this package; passing a
// nil Method is a programming error, not an input error.
func NewPendingPayment(id PaymentID, amount domain.Amount, method Method) PendingPayment {
	return PendingPayment{id: id, amount: amount, method: method}
}

func (PendingPayment) isPayment() {}

func (p PendingPayment) ID() PaymentID         { return p.id }
func (p PendingPayment) Amount() domain.Amount { return p.amount }
func (p PendingPayment) Method() Method        { return p.method }

// Status implements Payment.
func (PendingPayment) Status() Status { return StatusPending }

// MarkPaid consumes the pending payment and produces the paid state. The
// function is total: the receiver type already guarantees the payment is
// pending, so there is nothing left to check at runtime.
func (p PendingPayment) MarkPaid(at time.Time) PaidPayment {
	return PaidPayment{id: p.id, amount: p.amount, method: p.method, paidAt: at}
}

// MarkVoided consumes the pending payment and produces the void state.
func (p PendingPayment) MarkVoided(at time.Time) VoidPayment {
	return VoidPayment{id: p.id, amount: p.amount, method: p.method, voidedAt: at}
}

// PaidPayment is a settled payment. The only transition out is a refund.
type PaidPayment struct {
	id     PaymentID
	amount domain.Amount
	method Method
	paidAt time.Time
}

func (PaidPayment) isPayment() {}

func (p PaidPayment) ID() PaymentID         { return p.id }
func (p PaidPayment) Amount() domain.Amount { return p.amount }
func (p PaidPayment) Method() Method        { return p.method }

// Status implements Payment.
func (PaidPayment) Status() Status { return StatusPaid }

// PaidAt returns when the payment settled.
func (p PaidPayment) PaidAt() time.Time { return p.paidAt }

// MarkRefunded consumes the paid payment and produces the refunded state.
// Only settled money can be refunded, which is why this method lives on
// PaidPayment and nowhere else.
func (p PaidPayment) MarkRefunded(at time.Time) RefundedPayment {
	return RefundedPayment{id: p.id, amount: p.amount, method: p.method, refundedAt: at}
}

// VoidPayment is a payment cancelled before settlement. Terminal.
type VoidPayment struct {
	id       PaymentID
	amount   domain.Amount
	method   Method
	voidedAt time.Time
}

func (VoidPayment) isPayment() {}

func (p VoidPayment) ID() PaymentID         { return p.id }
func (p VoidPayment) Amount() domain.Amount { return p.amount }
func (p VoidPayment) Method() Method        { return p.method }

// Status implements Payment.
func (VoidPayment) Status() Status { return StatusVoid }

// VoidedAt returns when the payment was cancelled.
func (p VoidPayment) VoidedAt() time.Time { return p.voidedAt }

// RefundedPayment is a settled payment whose money was returned. Terminal.
type RefundedPayment struct {
	id         PaymentID
	amount     domain.Amount
	method     Method
	refundedAt time.Time
}

func (RefundedPayment) isPayment() {}

func (p RefundedPayment) ID() PaymentID         { return p.id }
func (p RefundedPayment) Amount() domain.Amount { return p.amount }
func (p RefundedPayment) Method() Method        { return p.method }

// Status implements Payment.
func (RefundedPayment) Status() Status { return StatusRefunded }

// RefundedAt returns when the money was returned.
func (p RefundedPayment) RefundedAt() time.Time { return p.refundedAt }
