package errs_test

import (
	"errors"
	"testing"

	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvalidStateError(t *testing.T) {
	t.Run("NewInvalidStateError", func(t *testing.T) {
		err := errs.NewInvalidStateError("request cancellation", "Shipped")

		assert.Equal(t, "request cancellation", err.Operation)
		assert.Equal(t, "Shipped", err.CurrentState)
		require.NoError(t, err.Cause)
		assert.Equal(t, "invalid state: request cancellation is not allowed while Shipped", err.Error())
		assert.Equal(t, errs.ErrInvalidState, err.Unwrap())
	})

	t.Run("NewInvalidStateErrorWithCause", func(t *testing.T) {
		cause := errors.New("order already paid")
		err := errs.NewInvalidStateErrorWithCause("request cancellation", "Confirmed", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"invalid state: request cancellation is not allowed while Confirmed (cause: order already paid)",
			err.Error())
	})
}

func TestConflictError(t *testing.T) {
	err := errs.NewConflictError("cancellation request", "order-1")

	assert.Equal(t, "cancellation request", err.Kind)
	assert.Equal(t, "order-1", err.ID)
	assert.Equal(t, "conflict: cancellation request already pending for order-1", err.Error())
	assert.Equal(t, errs.ErrConflict, err.Unwrap())
}

func TestIllegalTransitionError(t *testing.T) {
	err := errs.NewIllegalTransitionError("NeedDesign", "Shipped")

	assert.Equal(t, "NeedDesign", err.From)
	assert.Equal(t, "Shipped", err.To)
	assert.Equal(t, "illegal transition: NeedDesign -> Shipped", err.Error())
	assert.Equal(t, errs.ErrIllegalTransition, err.Unwrap())
}

func TestWorkflowErrorsCanBeUnwrapped(t *testing.T) {
	require.ErrorIs(t, errs.NewInvalidStateError("review refund", "Pending"), errs.ErrInvalidState)
	require.ErrorIs(t, errs.NewConflictError("refund", "order-2"), errs.ErrConflict)
	require.ErrorIs(t, errs.NewIllegalTransitionError("Designing", "Designing"), errs.ErrIllegalTransition)
}
