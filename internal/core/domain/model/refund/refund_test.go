package refund_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/refund"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createPendingRefund(t *testing.T) *refund.Refund {
	t.Helper()
	r, err := refund.NewRefund(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		150.0, "item arrived damaged", "https://blob.example.com/proof/1.jpg", time.Now(),
	)
	require.NoError(t, err)
	return r
}

func TestNewRefund(t *testing.T) {
	t.Run("should start pending with the snapshotted amount", func(t *testing.T) {
		r := createPendingRefund(t)

		assert.Equal(t, refund.Pending, r.Status())
		assert.Equal(t, 150.0, r.Amount())
		assert.Equal(t, "https://blob.example.com/proof/1.jpg", r.ProofURL())
		assert.Nil(t, r.ReviewedBy())
		assert.Empty(t, r.GatewayRef())
	})

	t.Run("should allow a zero amount", func(t *testing.T) {
		r, err := refund.NewRefund(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			0.0, "goodwill", "", time.Now(),
		)

		require.NoError(t, err)
		assert.Equal(t, 0.0, r.Amount())
	})

	t.Run("should reject a negative amount", func(t *testing.T) {
		_, err := refund.NewRefund(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			-1.0, "item arrived damaged", "", time.Now(),
		)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject a blank reason", func(t *testing.T) {
		_, err := refund.NewRefund(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			150.0, "  ", "", time.Now(),
		)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestRefund_Approve(t *testing.T) {
	t.Run("should record the gateway reference", func(t *testing.T) {
		r := createPendingRefund(t)
		staffID := kernel.NewUUID()

		require.NoError(t, r.Approve(staffID, "manual/"+r.ID().String()))

		assert.Equal(t, refund.Approved, r.Status())
		assert.Equal(t, "manual/"+r.ID().String(), r.GatewayRef())
		require.NotNil(t, r.ReviewedBy())
		assert.Equal(t, staffID, *r.ReviewedBy())
	})

	t.Run("should reject a second review", func(t *testing.T) {
		r := createPendingRefund(t)
		require.NoError(t, r.Approve(kernel.NewUUID(), "manual/ref"))

		err := r.Approve(kernel.NewUUID(), "manual/ref")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidState)
	})
}

func TestRefund_Reject(t *testing.T) {
	t.Run("should record the rejection reason", func(t *testing.T) {
		r := createPendingRefund(t)

		require.NoError(t, r.Reject(kernel.NewUUID(), "proof does not show a defect"))

		assert.Equal(t, refund.Rejected, r.Status())
		assert.Equal(t, "proof does not show a defect", r.RejectionReason())
	})

	t.Run("should require a rejection reason", func(t *testing.T) {
		r := createPendingRefund(t)

		err := r.Reject(kernel.NewUUID(), "")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Equal(t, refund.Pending, r.Status())
	})
}
