package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the payment module.
type Metrics struct {
	// Payments successfully constructed, by method kind
	PaymentsCreated *prometheus.CounterVec

	// Validation failures, by field and failed rule
	ValidationFailures *prometheus.CounterVec

	// State transitions, by target state
	Transitions *prometheus.CounterVec
}

// New creates a Metrics instance with all payment module metrics registered
// on the default registry.
func New() *Metrics {
	return NewWith(prometheus.DefaultRegisterer)
}

// NewWith registers the payment module metrics on the given registerer.
// Tests pass a private registry so parallel suites do not collide.
func NewWith(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		PaymentsCreated: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "tender_payments_created_total",
			Help: "Total payments constructed, by payment method kind",
		}, []string{"method"}),

		ValidationFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "tender_payment_validation_failures_total",
			Help: "Total validation rule failures, by field and rule kind",
		}, []string{"field", "rule"}),

		Transitions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "tender_payment_transitions_total",
			Help: "Total payment state transitions, by target state",
		}, []string{"to"}),
	}
}

// IncrementPaymentsCreated records a successfully constructed payment.
func (m *Metrics) IncrementPaymentsCreated(method string) {
	if m != nil {
		m.PaymentsCreated.WithLabelValues(method).Inc()
	}
}

// IncrementValidationFailure records one failed validation rule.
func (m *Metrics) IncrementValidationFailure(field, rule string) {
	if m != nil {
		m.ValidationFailures.WithLabelValues(field, rule).Inc()
	}
}

// IncrementTransition records a state transition into the named state.
func (m *Metrics) IncrementTransition(to string) {
	if m != nil {
		m.Transitions.WithLabelValues(to).Inc()
	}
}
