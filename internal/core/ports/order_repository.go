// Package ports defines the contracts between the core workflows and
// infrastructure: repositories, the unit of work, and the notification
// dispatcher. These interfaces enable dependency inversion and testability.
package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Every read loads the order together with all of its line items: the
// workflows mutate items and re-derive the order status from the full
// sibling set, so partial loads would race with concurrent partial loads of
// the same aggregate.
type OrderRepository interface {
	// Add persists a new order aggregate with its items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate and its items.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with all items by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForSeller retrieves an order scoped to its owning seller. An order
	// that exists but belongs to another seller is reported as not found so
	// existence does not leak across sellers.
	GetForSeller(ctx context.Context, id, sellerID kernel.UUID) (*order.Order, error)

	// GetByItemID retrieves the order owning the given line item.
	GetByItemID(ctx context.Context, itemID kernel.UUID) (*order.Order, error)

	// GetByItemIDs retrieves the distinct orders owning the given line items.
	// Used by reprint review to enforce the same-order batch invariant.
	GetByItemIDs(ctx context.Context, itemIDs []kernel.UUID) ([]*order.Order, error)

	// GetAllInStatus retrieves all orders currently in the given status.
	GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error)
}
