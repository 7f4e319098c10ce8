package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrGetPendingRefundsQueryIsNotConstructed = errors.New(
	"GetPendingRefundsQuery must be created via NewGetPendingRefundsQuery constructor",
)

// GetPendingRefundsQuery retrieves the staff review queue of pending refunds,
// oldest first.
type GetPendingRefundsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPendingRefundsQuery creates a query for the refund queue.
func NewGetPendingRefundsQuery() GetPendingRefundsQuery {
	return GetPendingRefundsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetPendingRefundsQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingRefundsQueryIsNotConstructed)
}

// GetPendingRefundsQueryResponse represents one queued refund in the read
// model.
type GetPendingRefundsQueryResponse struct {
	RefundID    kernel.UUID
	OrderID     kernel.UUID
	OrderCode   string
	RequestedBy kernel.UUID
	Amount      float64
	Reason      string
	ProofURL    string
	CreatedAt   time.Time
}
