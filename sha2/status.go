package sha2

import "errors"

// Status is the corruption status of a Context. Anything other than Success
// is sticky: it is returned by every later operation until Reset.
type Status int

const (
	Success Status = iota
	// BadParam reports a final bit count outside [1, 7].
	BadParam
	// StateError reports input after finalization or a bit-length counter
	// overflow.
	StateError
)

// String returns the string representation of this status.
func (s Status) String() string {
	switch s {
	case Success:
		return "success"
	case BadParam:
		return "bad parameter"
	case StateError:
		return "invalid state"
	}
	return "unknown"
}

func (s Status) valid() bool {
	return s >= Success && s <= StateError
}

// err returns the sentinel error of the status, nil for Success.
func (s Status) err() error {
	switch s {
	case Success:
		return nil
	case BadParam:
		return ErrBadParam
	default:
		return ErrStateError
	}
}

type statusError struct {
	status Status
}

func (e statusError) Error() string {
	return e.status.String()
}

var (
	// ErrBadParam is returned when a final bit count is outside [1, 7].
	ErrBadParam error = statusError{BadParam}
	// ErrStateError is returned when a context is used after finalization or
	// its bit-length counter overflows.
	ErrStateError error = statusError{StateError}
	// ErrInvalidState is returned by Restore for a snapshot that can not
	// belong to the context's parameter set.
	ErrInvalidState = errors.New("invalid context snapshot")
)

// StatusOf returns the status carried by err. Errors that did not originate
// from a Context map to Success.
func StatusOf(err error) Status {
	var se statusError
	if errors.As(err, &se) {
		return se.status
	}
	return Success
}
