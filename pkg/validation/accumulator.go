package validation

// Accumulator gathers the failures of N independent validation steps so a
// caller can report all of them in one response.
//
// Contract: run every step regardless of earlier failures, Collect each
// step's error, and construct the combined value only when Err() returns
// nil. Step order is preserved, and within one step the order produced by
// that step is preserved. This is strictly different from short-circuiting:
// a composite constructor must never skip validating its second field
// because the first one failed.
//
// The zero value is ready to use.
type Accumulator struct {
	errs Errors
}

// Collect registers the outcome of one validation step. A nil err is a
// no-op. Errors lists and lone *FieldError values are flattened; any other
// error is recorded as a composition failure on an empty field name, which
// indicates a step that did not follow the package contract.
func (a *Accumulator) Collect(err error) {
	if err == nil {
		return
	}
	if list, ok := AsErrors(err); ok {
		a.errs = append(a.errs, list...)
		return
	}
	a.errs = append(a.errs, NewFieldError("", RuleComposition, err.Error()))
}

// Add records a single violation directly.
func (a *Accumulator) Add(field string, rule Rule, message string) {
	a.errs = append(a.errs, NewFieldError(field, rule, message))
}

// Len returns the number of violations collected so far.
func (a *Accumulator) Len() int {
	return len(a.errs)
}

// Err returns nil when every collected step succeeded, otherwise the merged
// non-empty Errors list in collection order.
func (a *Accumulator) Err() error {
	if len(a.errs) == 0 {
		return nil
	}
	return a.errs
}

// Join merges the errors of independent validation steps that have already
// run, preserving argument order. It returns nil when every err is nil.
func Join(errs ...error) error {
	var acc Accumulator
	for _, err := range errs {
		acc.Collect(err)
	}
	return acc.Err()
}
