package models

import (
	"time"

	"tender/pkg/domain"
	"tender/pkg/validation"
)

// MethodKind names the payment method variants for logging and metrics.
type MethodKind string

const (
	MethodKindCash       MethodKind = "cash"
	MethodKindCreditCard MethodKind = "credit_card"
	MethodKindCheck      MethodKind = "check"
)

// Method is the closed set of payment instruments. The unexported marker
// keeps the set sealed: only the variants in this package implement it, so
// a type switch over Cash, CreditCard, and Check is exhaustive.
type Method interface {
	isMethod()

	// Kind names the variant.
	Kind() MethodKind
}

// Cash is payment in cash; it carries no instrument details.
type Cash struct{}

func (Cash) isMethod() {}

// Kind implements Method.
func (Cash) Kind() MethodKind { return MethodKindCash }

// cardNumberMaxDigits caps card numbers at the ISO/IEC 7812 maximum.
const cardNumberMaxDigits = 19

// CreditCard is a validated card instrument.
//
// Invariants, guaranteed by construction:
//   - number is all digits, at most 19, and passes the MOD10 checksum
//   - expiry is a real month that has not passed
//   - cvv is three or four digits
type CreditCard struct {
	number domain.LuhnString
	expiry domain.ExpiryDate
	cvv    domain.DigitString
}

// NewCreditCard validates every field of a card and only constructs the
// instrument when all of them pass. Each field resolves fully before the
// next is evaluated, so a response carries every invalid field at once:
// a bad checksum, an out-of-range month, and a non-numeric cvv surface as
// three errors in one list, in field order.
func NewCreditCard(number string, month, year int, cvv string, now time.Time) (CreditCard, error) {
	var acc validation.Accumulator

	num, err := domain.NewLuhnString("card_number", number, domain.MaxDigits(cardNumberMaxDigits))
	acc.Collect(err)

	expiry, err := domain.NewExpiryDate("expiry", month, year, now)
	acc.Collect(err)

	code, err := domain.NewDigitString("cvv", cvv, domain.MinDigits(3), domain.MaxDigits(4))
	acc.Collect(err)

	if err := acc.Err(); err != nil {
		return CreditCard{}, err
	}
	return CreditCard{number: num, expiry: expiry, cvv: code}, nil
}

func (CreditCard) isMethod() {}

// Kind implements Method.
func (CreditCard) Kind() MethodKind { return MethodKindCreditCard }

// Number returns the validated card number.
func (c CreditCard) Number() domain.LuhnString { return c.number }

// Expiry returns the validated expiry month.
func (c CreditCard) Expiry() domain.ExpiryDate { return c.expiry }

// CVV returns the validated card verification value.
func (c CreditCard) CVV() domain.DigitString { return c.cvv }

// Check is a validated paper-check instrument.
//
// Invariants, guaranteed by construction:
//   - routingNumber is nine digits passing the ABA checksum
//   - accountNumber is a non-empty digit string
type Check struct {
	routingNumber domain.RoutingNumber
	accountNumber domain.DigitString
}

// NewCheck validates both fields of a check and accumulates their failures.
func NewCheck(routingNumber, accountNumber string) (Check, error) {
	var acc validation.Accumulator

	routing, err := domain.NewRoutingNumber("routing_number", routingNumber)
	acc.Collect(err)

	account, err := domain.NewDigitString("account_number", accountNumber)
	acc.Collect(err)

	if err := acc.Err(); err != nil {
		return Check{}, err
	}
	return Check{routingNumber: routing, accountNumber: account}, nil
}

func (Check) isMethod() {}

// Kind implements Method.
func (Check) Kind() MethodKind { return MethodKindCheck }

// RoutingNumber returns the validated ABA routing number.
func (c Check) RoutingNumber() domain.RoutingNumber { return c.routingNumber }

// AccountNumber returns the validated account number.
func (c Check) AccountNumber() domain.DigitString { return c.accountNumber }
