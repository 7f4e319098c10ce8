package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/cancellation"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPendingCancellationsQueryHandler retrieves the pending cancellation
// queue joined with the order codes staff review against.
type GetPendingCancellationsQueryHandler struct {
	db *gorm.DB
}

// NewGetPendingCancellationsQueryHandler creates a handler for the
// cancellation queue query.
func NewGetPendingCancellationsQueryHandler(db *gorm.DB) GetPendingCancellationsQueryHandler {
	return GetPendingCancellationsQueryHandler{db: db}
}

// Handle executes the query. Results are ordered oldest first so the queue is
// worked in arrival order.
func (h GetPendingCancellationsQueryHandler) Handle(
	ctx context.Context,
	query GetPendingCancellationsQuery,
) ([]GetPendingCancellationsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	requests := make([]GetPendingCancellationsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			r.id,
			r.order_id,
			o.code,
			r.requested_by,
			r.reason,
			r.previous_status,
			r.created_at
		FROM cancellation_requests r
		JOIN orders o ON o.id = r.order_id
		WHERE r.status = ?
		ORDER BY r.created_at
	`, int(cancellation.Pending)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var request GetPendingCancellationsQueryResponse
		var requestID, orderID, requestedBy uuid.UUID
		var previousStatus int

		err = rows.Scan(
			&requestID,
			&orderID,
			&request.OrderCode,
			&requestedBy,
			&request.Reason,
			&previousStatus,
			&request.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		if request.RequestID, err = kernel.UUIDFromBytes(requestID[:]); err != nil {
			return nil, err
		}
		if request.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
			return nil, err
		}
		if request.RequestedBy, err = kernel.UUIDFromBytes(requestedBy[:]); err != nil {
			return nil, err
		}
		request.PreviousStatus = order.Status(previousStatus).String()
		requests = append(requests, request)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return requests, nil
}
