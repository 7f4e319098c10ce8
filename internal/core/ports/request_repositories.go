package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/cancellation"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/refund"
	"fulfillment/internal/core/domain/model/reprint"
)

// CancellationRepository defines the persistence contract for cancellation
// requests.
type CancellationRepository interface {
	// Add persists a new cancellation request.
	Add(ctx context.Context, request *cancellation.Request) error

	// Update persists changes to an existing cancellation request.
	Update(ctx context.Context, request *cancellation.Request) error

	// GetPendingByOrder retrieves the most recent pending request for an
	// order. Returns ObjectNotFoundError when none is pending.
	GetPendingByOrder(ctx context.Context, orderID kernel.UUID) (*cancellation.Request, error)

	// HasPending reports whether a pending request exists for the order.
	HasPending(ctx context.Context, orderID kernel.UUID) (bool, error)
}

// RefundRepository defines the persistence contract for refunds.
type RefundRepository interface {
	// Add persists a new refund.
	Add(ctx context.Context, rf *refund.Refund) error

	// Update persists changes to an existing refund.
	Update(ctx context.Context, rf *refund.Refund) error

	// Get retrieves a refund by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*refund.Refund, error)

	// HasPending reports whether a pending refund exists for the order.
	HasPending(ctx context.Context, orderID kernel.UUID) (bool, error)
}

// ReprintRepository defines the persistence contract for reprint requests.
type ReprintRepository interface {
	// Add persists a new reprint request.
	Add(ctx context.Context, rp *reprint.Reprint) error

	// Update persists changes to an existing reprint request.
	Update(ctx context.Context, rp *reprint.Reprint) error

	// GetPendingByItems retrieves the pending reprints referencing the given
	// line items.
	GetPendingByItems(ctx context.Context, itemIDs []kernel.UUID) ([]*reprint.Reprint, error)

	// HasPendingByItem reports whether a pending reprint exists for the item.
	HasPendingByItem(ctx context.Context, itemID kernel.UUID) (bool, error)
}

// InvoiceRepository answers invoice preconditions for the cancellation
// workflow. Invoicing itself is out of scope for this core.
type InvoiceRepository interface {
	// HasActiveInvoice reports whether the order is attached to a
	// non-canceled invoice.
	HasActiveInvoice(ctx context.Context, orderID kernel.UUID) (bool, error)
}
