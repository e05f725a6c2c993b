package viz

import "fmt"

// The orchestrator distinguishes three failure kinds. None of them is fatal:
// every failure leaves prior state intact and is surfaced through the
// Notifier.

// ValidationError is a locally detected precondition failure (missing file,
// missing X-axis, nothing to export). It never reaches the network.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func validationf(format string, a ...interface{}) error {
	return &ValidationError{Msg: fmt.Sprintf(format, a...)}
}

// ServiceError is a success=false reply from the service, carrying its
// human-readable message verbatim.
type ServiceError struct {
	Msg string
}

func (e *ServiceError) Error() string {
	if e.Msg == "" {
		return "service reported failure"
	}
	return e.Msg
}

// TransportError wraps a network-level failure or a non-2xx export status.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string { return e.Err.Error() }
func (e *TransportError) Unwrap() error { return e.Err }
