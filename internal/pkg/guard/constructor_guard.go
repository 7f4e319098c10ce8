// Package guard provides a defensive construction check for commands and
// value objects. Embedding a ConstructorGuard lets a type detect whether it
// was created through its designated constructor or as a zero value.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a nil error is
// passed as the validation error, so validation always fails with a
// meaningful message.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as properly constructed. The zero value
// fails validation, preventing direct struct initialization from bypassing
// constructor invariants.
//
// Example usage:
//
//	type ReviewRefundCommand struct {
//	    refundID kernel.UUID
//	    guard    guard.ConstructorGuard
//	}
//
//	func NewReviewRefundCommand(refundID kernel.UUID) (ReviewRefundCommand, error) {
//	    return ReviewRefundCommand{refundID: refundID, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c ReviewRefundCommand) Validate() error {
//	    return c.guard.Validate(ErrReviewRefundCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks an object as properly
// constructed. Call it in every constructor of a guarded type.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the guarded object was created through its
// constructor. Otherwise it returns validationError, or
// ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
