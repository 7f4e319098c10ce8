package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrGetPendingCancellationsQueryIsNotConstructed = errors.New(
	"GetPendingCancellationsQuery must be created via NewGetPendingCancellationsQuery constructor",
)

// GetPendingCancellationsQuery retrieves the staff review queue of pending
// cancellation requests, oldest first.
type GetPendingCancellationsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPendingCancellationsQuery creates a query for the cancellation queue.
func NewGetPendingCancellationsQuery() GetPendingCancellationsQuery {
	return GetPendingCancellationsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetPendingCancellationsQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingCancellationsQueryIsNotConstructed)
}

// GetPendingCancellationsQueryResponse represents one queued cancellation
// request in the read model.
type GetPendingCancellationsQueryResponse struct {
	RequestID      kernel.UUID
	OrderID        kernel.UUID
	OrderCode      string
	RequestedBy    kernel.UUID
	Reason         string
	PreviousStatus string
	CreatedAt      time.Time
}
