package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/plan"
	"fulfillment/internal/core/domain/model/shipment"
)

// PlanRepository defines the persistence contract for production plans.
type PlanRepository interface {
	// Add persists a new plan with its details.
	Add(ctx context.Context, aggregate *plan.Plan) error

	// PlannedItemIDs returns the subset of the given item IDs that are
	// already linked to a plan detail. The grouping workflow uses this to
	// stay idempotent.
	PlannedItemIDs(ctx context.Context, itemIDs []kernel.UUID) (map[kernel.UUID]bool, error)

	// UpdateDetailStatus sets the coarse status of one plan detail. Returns
	// false without error when the detail does not exist; polling UIs treat
	// that as a soft miss, not a failure.
	UpdateDetailStatus(ctx context.Context, detailID kernel.UUID, status plan.DetailStatus) (bool, error)

	// DeleteDetailsForOrder removes every plan detail referencing an item of
	// the given order. Used when an approved cancellation aborts production.
	DeleteDetailsForOrder(ctx context.Context, orderID kernel.UUID) error
}

// ShipmentRepository defines the persistence contract for the append-only
// shipment event log.
type ShipmentRepository interface {
	// Append records one immutable shipment event.
	Append(ctx context.Context, event *shipment.Event) error

	// ListByTrackingCode retrieves all events for a tracking code in
	// recording order.
	ListByTrackingCode(ctx context.Context, trackingCode string) ([]*shipment.Event, error)
}
