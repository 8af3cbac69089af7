// Package domain provides validated scalar values for the payment core.
//
// Every type in this package wraps one primitive behind a private field and
// a single validating constructor. Construct via the New* functions at trust
// boundaries; there is no other way to obtain a value, so holding one is
// proof the invariant held at construction time.
//
// Constructors take the raw primitive plus a field name used in error
// messages, resolve fully to either a value or a validation.Errors list
// covering every violated rule for that field, and never panic on any
// input. They perform no I/O and read no ambient state: temporal
// constructors receive their reference instant explicitly.
package domain
