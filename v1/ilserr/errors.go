// Package ilserr defines the errors exchanged between ILS record code and
// its callers.
//
// Errors fall into two branches:
//   - ReceiveError: data arriving from the ILS was missing, malformed or
//     could not be parsed.
//   - TransmitError: a request to the ILS could not be built or sent.
//     HoldError and RenewError specialise it for hold and renewal requests.
//
// Every error carries a message, a wrapped lower-level error, or both. The
// wrapped error is available through errors.Unwrap, errors.Is and errors.As,
// and each branch matches its sentinel (ErrReceive, ErrTransmit, ErrHold,
// ErrRenew) with errors.Is.
package ilserr

import "errors"

var (
	// ErrReceive matches every ReceiveError.
	ErrReceive = errors.New("ils: receive error")

	// ErrTransmit matches every TransmitError, HoldError and RenewError.
	ErrTransmit = errors.New("ils: transmit error")

	// ErrHold matches every HoldError.
	ErrHold = errors.New("ils: hold request error")

	// ErrRenew matches every RenewError.
	ErrRenew = errors.New("ils: renew request error")
)

// ReceiveError reports a failure interpreting data received from the ILS.
type ReceiveError struct {
	Msg string
	Err error
}

// NewReceiveError creates a ReceiveError. Either argument may be empty.
func NewReceiveError(msg string, err error) *ReceiveError {
	return &ReceiveError{Msg: msg, Err: err}
}

func (e *ReceiveError) Error() string { return format("receive", e.Msg, e.Err) }
func (e *ReceiveError) Unwrap() error { return e.Err }
func (e *ReceiveError) Is(target error) bool {
	return target == ErrReceive
}

// TransmitError reports a failure building or sending an ILS request.
type TransmitError struct {
	Msg string
	Err error
}

// NewTransmitError creates a TransmitError. Either argument may be empty.
func NewTransmitError(msg string, err error) *TransmitError {
	return &TransmitError{Msg: msg, Err: err}
}

func (e *TransmitError) Error() string { return format("transmit", e.Msg, e.Err) }
func (e *TransmitError) Unwrap() error { return e.Err }
func (e *TransmitError) Is(target error) bool {
	return target == ErrTransmit
}

// HoldError reports a failure building or sending a hold request.
type HoldError struct {
	TransmitError
}

// NewHoldError creates a HoldError. Either argument may be empty.
func NewHoldError(msg string, err error) *HoldError {
	return &HoldError{TransmitError{Msg: msg, Err: err}}
}

func (e *HoldError) Error() string { return format("hold", e.Msg, e.Err) }
func (e *HoldError) Is(target error) bool {
	return target == ErrHold || target == ErrTransmit
}

// As exposes the embedded TransmitError to errors.As.
func (e *HoldError) As(target any) bool {
	t, ok := target.(**TransmitError)
	if ok {
		*t = &e.TransmitError
	}
	return ok
}

// RenewError reports a failure building or sending a renewal request.
type RenewError struct {
	TransmitError
}

// NewRenewError creates a RenewError. Either argument may be empty.
func NewRenewError(msg string, err error) *RenewError {
	return &RenewError{TransmitError{Msg: msg, Err: err}}
}

func (e *RenewError) Error() string { return format("renew", e.Msg, e.Err) }
func (e *RenewError) Is(target error) bool {
	return target == ErrRenew || target == ErrTransmit
}

// As exposes the embedded TransmitError to errors.As.
func (e *RenewError) As(target any) bool {
	t, ok := target.(**TransmitError)
	if ok {
		*t = &e.TransmitError
	}
	return ok
}

// IsReceiveError checks if the error is, or wraps, a ReceiveError.
func IsReceiveError(err error) bool {
	return errors.Is(err, ErrReceive)
}

// IsTransmitError checks if the error is, or wraps, a TransmitError of any kind.
func IsTransmitError(err error) bool {
	return errors.Is(err, ErrTransmit)
}

// IsHoldError checks if the error is, or wraps, a HoldError.
func IsHoldError(err error) bool {
	return errors.Is(err, ErrHold)
}

// IsRenewError checks if the error is, or wraps, a RenewError.
func IsRenewError(err error) bool {
	return errors.Is(err, ErrRenew)
}

// Cause returns the wrapped lower-level error of an ILS error, or err itself
// when it does not wrap anything.
func Cause(err error) error {
	if inner := errors.Unwrap(err); inner != nil {
		return inner
	}
	return err
}

func format(kind, msg string, err error) string {
	prefix := "ils " + kind + " error"
	switch {
	case msg != "" && err != nil:
		return prefix + ": " + msg + ": " + err.Error()
	case msg != "":
		return prefix + ": " + msg
	case err != nil:
		return prefix + ": " + err.Error()
	default:
		return prefix
	}
}
