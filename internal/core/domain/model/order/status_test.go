package order_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemStatus_ValidateTransition(t *testing.T) {
	legalEdges := []struct {
		from order.ItemStatus
		to   order.ItemStatus
	}{
		{order.ItemNeedDesign, order.ItemDesigning},
		{order.ItemDesignRedo, order.ItemDesigning},
		{order.ItemDesigning, order.ItemCheckDesign},
		{order.ItemCheckDesign, order.ItemReadyProd},
		{order.ItemCheckDesign, order.ItemDesignRedo},
	}

	t.Run("should allow every edge of the design adjacency set", func(t *testing.T) {
		for _, edge := range legalEdges {
			assert.NoError(t, edge.from.ValidateTransition(edge.to),
				"%s -> %s should be legal", edge.from, edge.to)
		}
	})

	t.Run("should reject everything else, including no-op moves", func(t *testing.T) {
		legal := make(map[[2]order.ItemStatus]bool, len(legalEdges))
		for _, edge := range legalEdges {
			legal[[2]order.ItemStatus{edge.from, edge.to}] = true
		}

		all := []order.ItemStatus{
			order.ItemCreated, order.ItemNeedDesign, order.ItemDesigning,
			order.ItemCheckDesign, order.ItemDesignRedo, order.ItemReadyProd,
			order.ItemInProd, order.ItemQCDone, order.ItemProdRework,
			order.ItemFinished, order.ItemPacking, order.ItemShipping,
			order.ItemShipped, order.ItemHold, order.ItemHoldReprint,
			order.ItemCanceled,
		}

		for _, from := range all {
			for _, to := range all {
				if legal[[2]order.ItemStatus{from, to}] {
					continue
				}

				err := from.ValidateTransition(to)

				require.Error(t, err, "%s -> %s should be illegal", from, to)
				assert.ErrorIs(t, err, errs.ErrIllegalTransition)
			}
		}
	})

	t.Run("should reject skipping a review stage", func(t *testing.T) {
		err := order.ItemDesigning.ValidateTransition(order.ItemReadyProd)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrIllegalTransition)
	})
}

func TestItemStatus_Rank(t *testing.T) {
	t.Run("should rank the main sequence in ascending order", func(t *testing.T) {
		sequence := []order.ItemStatus{
			order.ItemCreated, order.ItemNeedDesign, order.ItemDesigning,
			order.ItemCheckDesign, order.ItemDesignRedo, order.ItemReadyProd,
			order.ItemInProd, order.ItemQCDone, order.ItemProdRework,
			order.ItemFinished, order.ItemPacking, order.ItemShipping,
			order.ItemShipped,
		}

		previous := 0
		for _, status := range sequence {
			rank, ok := status.Rank()

			require.True(t, ok, "%s should carry a rank", status)
			assert.Greater(t, rank, previous)
			previous = rank
		}
	})

	t.Run("should give no rank to side states", func(t *testing.T) {
		for _, status := range []order.ItemStatus{order.ItemHold, order.ItemHoldReprint, order.ItemCanceled} {
			_, ok := status.Rank()
			assert.False(t, ok, "%s should not carry a rank", status)
		}
	})
}

func TestItemStatusFromString(t *testing.T) {
	t.Run("should round-trip every named status", func(t *testing.T) {
		for _, status := range []order.ItemStatus{
			order.ItemCreated, order.ItemNeedDesign, order.ItemDesigning,
			order.ItemCheckDesign, order.ItemDesignRedo, order.ItemReadyProd,
			order.ItemShipped, order.ItemHold, order.ItemCanceled,
		} {
			parsed, err := order.ItemStatusFromString(status.String())

			require.NoError(t, err)
			assert.Equal(t, status, parsed)
		}
	})

	t.Run("should reject unknown names", func(t *testing.T) {
		_, err := order.ItemStatusFromString("Teleported")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestDeriveStatus(t *testing.T) {
	testCases := []struct {
		name     string
		statuses []order.ItemStatus
		expected order.Status
	}{
		{
			name:     "all items at the same stage",
			statuses: []order.ItemStatus{order.ItemDesigning, order.ItemDesigning},
			expected: order.StatusDesigning,
		},
		{
			name:     "least advanced item wins",
			statuses: []order.ItemStatus{order.ItemReadyProd, order.ItemNeedDesign, order.ItemShipped},
			expected: order.StatusNeedDesign,
		},
		{
			name:     "all items ready for production",
			statuses: []order.ItemStatus{order.ItemReadyProd, order.ItemReadyProd},
			expected: order.StatusConfirmed,
		},
		{
			name:     "canceled items are ignored",
			statuses: []order.ItemStatus{order.ItemCanceled, order.ItemShipped},
			expected: order.StatusShipped,
		},
		{
			name:     "held items are ignored",
			statuses: []order.ItemStatus{order.ItemHoldReprint, order.ItemShipped},
			expected: order.StatusShipped,
		},
		{
			name:     "single item",
			statuses: []order.ItemStatus{order.ItemPacking},
			expected: order.StatusPacking,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			derived, err := order.DeriveStatus(tc.statuses)

			require.NoError(t, err)
			assert.Equal(t, tc.expected, derived)
		})
	}

	t.Run("should fail when no item contributes a rank", func(t *testing.T) {
		_, err := order.DeriveStatus([]order.ItemStatus{order.ItemCanceled, order.ItemHold})

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_ValidateCancellable(t *testing.T) {
	t.Run("should allow Confirmed and the in-production codes", func(t *testing.T) {
		allowed := append([]order.Status{order.StatusConfirmed}, order.InProductionStatuses()...)

		for _, status := range allowed {
			assert.NoError(t, status.ValidateCancellable(), "%s should be cancellable", status)
		}
	})

	t.Run("should reject design-phase, shipping and terminal codes", func(t *testing.T) {
		for _, status := range []order.Status{
			order.StatusNeedDesign, order.StatusDesigning, order.StatusShipping,
			order.StatusShipped, order.StatusHold, order.StatusCancelled,
			order.StatusRefunded,
		} {
			err := status.ValidateCancellable()

			require.Error(t, err, "%s should not be cancellable", status)
			assert.ErrorIs(t, err, errs.ErrInvalidState)
		}
	})
}

func TestStatus_IsInProduction(t *testing.T) {
	for _, status := range order.InProductionStatuses() {
		assert.True(t, status.IsInProduction())
	}

	assert.False(t, order.StatusConfirmed.IsInProduction())
	assert.False(t, order.StatusShipping.IsInProduction())
	assert.False(t, order.StatusHold.IsInProduction())
}
