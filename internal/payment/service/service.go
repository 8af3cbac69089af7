// Package service exposes the payment core to collaborators: raw primitive
// input goes in, fully validated payment values or a complete error list
// come out. The service holds no state between calls and performs no I/O;
// logging and metrics are the only side channels, and both are optional.
package service

import (
	"context"
	"io"
	"log/slog"
	"time"

	"tender/internal/payment/metrics"
	"tender/internal/payment/models"
	"tender/pkg/credentials"
	"tender/pkg/domain"
	"tender/pkg/requestclock"
	"tender/pkg/validation"
)

//go:generate mockgen -source=service.go -destination=mock_idsource_test.go -package=service

// IDSource produces payment identifiers. Injected so tests can pin IDs.
type IDSource interface {
	NextPaymentID() models.PaymentID
}

type uuidSource struct{}

func (uuidSource) NextPaymentID() models.PaymentID { return models.NewPaymentID() }

// Service validates raw payment input and drives the payment lifecycle.
type Service struct {
	ids     IDSource
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// Option configures a Service.
type Option func(s *Service)

// WithLogger attaches a structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithMetrics attaches payment metrics.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithIDSource overrides payment ID generation.
func WithIDSource(ids IDSource) Option {
	return func(s *Service) {
		s.ids = ids
	}
}

// New constructs a Service.
func New(opts ...Option) *Service {
	s := &Service{ids: uuidSource{}}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return s
}

// CardInput is the raw card data as entered by a user.
type CardInput struct {
	Number      string
	ExpiryMonth int
	ExpiryYear  int
	CVV         string
}

// CheckInput is the raw check data as entered by a user.
type CheckInput struct {
	RoutingNumber string
	AccountNumber string
}

// CreatePaymentRequest carries the raw primitives for a new payment. Method
// selects the instrument; exactly the matching input must be set.
type CreatePaymentRequest struct {
	Amount string
	Method models.MethodKind
	Card   *CardInput
	Check  *CheckInput
}

// CreatePayment validates the whole request and returns a pending payment,
// or every failed rule across amount and instrument fields in one error.
// The reference instant for expiry checks comes from the request context,
// so all temporal fields of one request are judged against the same "now".
func (s *Service) CreatePayment(ctx context.Context, req CreatePaymentRequest) (models.PendingPayment, error) {
	now := requestclock.Now(ctx)

	var acc validation.Accumulator

	amount, err := domain.NewAmountFromString("amount", req.Amount)
	acc.Collect(err)

	method, err := s.buildMethod(req, now)
	acc.Collect(err)

	if err := acc.Err(); err != nil {
		s.recordFailures(err)
		s.logger.Info("payment rejected",
			"method", string(req.Method),
			"error_count", acc.Len(),
			"fields", validation.Fields(err))
		return models.PendingPayment{}, err
	}

	payment := models.NewPendingPayment(s.ids.NextPaymentID(), amount, method)
	s.metrics.IncrementPaymentsCreated(string(method.Kind()))
	s.logger.Info("payment created",
		"payment_id", payment.ID().String(),
		"method", string(method.Kind()),
		"amount", amount.String())
	return payment, nil
}

// buildMethod dispatches on the requested method kind. A nil method error
// list means the instrument validated; an unknown kind or a missing input
// block is a composition failure on the method field itself.
func (s *Service) buildMethod(req CreatePaymentRequest, now time.Time) (models.Method, error) {
	switch req.Method {
	case models.MethodKindCash:
		return models.Cash{}, nil
	case models.MethodKindCreditCard:
		if req.Card == nil {
			return nil, validation.Single("method", validation.RuleComposition, "card details are required")
		}
		return models.NewCreditCard(req.Card.Number, req.Card.ExpiryMonth, req.Card.ExpiryYear, req.Card.CVV, now)
	case models.MethodKindCheck:
		if req.Check == nil {
			return nil, validation.Single("method", validation.RuleComposition, "check details are required")
		}
		return models.NewCheck(req.Check.RoutingNumber, req.Check.AccountNumber)
	default:
		return nil, validation.Single("method", validation.RuleComposition, "unknown payment method")
	}
}

// Pay settles a pending payment at the request-scoped time.
func (s *Service) Pay(ctx context.Context, payment models.PendingPayment) models.PaidPayment {
	paid := payment.MarkPaid(requestclock.Now(ctx))
	s.metrics.IncrementTransition(string(models.StatusPaid))
	s.logger.Info("payment paid", "payment_id", paid.ID().String())
	return paid
}

// Void cancels a pending payment at the request-scoped time.
func (s *Service) Void(ctx context.Context, payment models.PendingPayment) models.VoidPayment {
	voided := payment.MarkVoided(requestclock.Now(ctx))
	s.metrics.IncrementTransition(string(models.StatusVoid))
	s.logger.Info("payment voided", "payment_id", voided.ID().String())
	return voided
}

// Refund returns the money of a settled payment at the request-scoped time.
func (s *Service) Refund(ctx context.Context, payment models.PaidPayment) models.RefundedPayment {
	refunded := payment.MarkRefunded(requestclock.Now(ctx))
	s.metrics.IncrementTransition(string(models.StatusRefunded))
	s.logger.Info("payment refunded", "payment_id", refunded.ID().String())
	return refunded
}

// ValidateCredentials checks a sign-up email and password together and
// reports every failed rule at once.
func (s *Service) ValidateCredentials(email, password string, opts ...domain.PasswordOption) (credentials.Credentials, error) {
	creds, err := credentials.New(email, password, opts...)
	if err != nil {
		s.recordFailures(err)
		return credentials.Credentials{}, err
	}
	return creds, nil
}

// recordFailures counts each failed rule for observability.
func (s *Service) recordFailures(err error) {
	list, ok := validation.AsErrors(err)
	if !ok {
		return
	}
	for _, fe := range list {
		s.metrics.IncrementValidationFailure(fe.Field, string(fe.Rule))
	}
}
