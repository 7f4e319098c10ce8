package errs

import (
	"errors"
	"fmt"
)

// Sentinel errors for workflow failures. The API layer maps these to
// response codes; the core never retries them.
var (
	ErrInvalidState      = errors.New("invalid state")
	ErrConflict          = errors.New("conflict")
	ErrIllegalTransition = errors.New("illegal transition")
)

// InvalidStateError indicates that the aggregate's current status does not
// permit the requested operation.
type InvalidStateError struct {
	Operation    string
	CurrentState string
	Cause        error
}

// NewInvalidStateError creates an InvalidStateError without an underlying cause.
func NewInvalidStateError(operation, currentState string) *InvalidStateError {
	return &InvalidStateError{Operation: operation, CurrentState: currentState}
}

// NewInvalidStateErrorWithCause creates an InvalidStateError wrapping an underlying cause.
func NewInvalidStateErrorWithCause(operation, currentState string, cause error) *InvalidStateError {
	return &InvalidStateError{Operation: operation, CurrentState: currentState, Cause: cause}
}

func (e *InvalidStateError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s is not allowed while %s (cause: %s)",
			ErrInvalidState, e.Operation, e.CurrentState, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s is not allowed while %s", ErrInvalidState, e.Operation, e.CurrentState))
}

func (e *InvalidStateError) Unwrap() error {
	return ErrInvalidState
}

// ConflictError indicates that a pending request of the same kind already
// exists for the target object.
type ConflictError struct {
	Kind string
	ID   any
}

// NewConflictError creates a ConflictError for the given request kind and target ID.
func NewConflictError(kind string, id any) *ConflictError {
	return &ConflictError{Kind: kind, ID: id}
}

func (e *ConflictError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s already pending for %s", ErrConflict, e.Kind, e.ID))
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

// IllegalTransitionError indicates that an item-level production-state change
// is not one of the defined adjacency edges.
type IllegalTransitionError struct {
	From string
	To   string
}

// NewIllegalTransitionError creates an IllegalTransitionError for the rejected edge.
func NewIllegalTransitionError(from, to string) *IllegalTransitionError {
	return &IllegalTransitionError{From: from, To: to}
}

func (e *IllegalTransitionError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s -> %s", ErrIllegalTransition, e.From, e.To))
}

func (e *IllegalTransitionError) Unwrap() error {
	return ErrIllegalTransition
}
