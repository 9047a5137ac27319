package checkout

import "fmt"

// ValidationError reports missing or inconsistent client input. Surfaced as 400.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func newValidationError(format string, args ...interface{}) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// PersistenceError reports a store failure while creating the booking.
// Fatal to the request: no payment session exists for an unpersisted booking.
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failure: %v", e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// ProviderError reports a payment-session creation failure.
type ProviderError struct {
	Err error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("payment provider failure: %v", e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }
