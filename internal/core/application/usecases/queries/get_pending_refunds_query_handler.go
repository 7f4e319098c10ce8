package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/refund"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPendingRefundsQueryHandler retrieves the pending refund queue joined
// with the order codes staff review against.
type GetPendingRefundsQueryHandler struct {
	db *gorm.DB
}

// NewGetPendingRefundsQueryHandler creates a handler for the refund queue query.
func NewGetPendingRefundsQueryHandler(db *gorm.DB) GetPendingRefundsQueryHandler {
	return GetPendingRefundsQueryHandler{db: db}
}

// Handle executes the query. Results are ordered oldest first.
func (h GetPendingRefundsQueryHandler) Handle(
	ctx context.Context,
	query GetPendingRefundsQuery,
) ([]GetPendingRefundsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	refunds := make([]GetPendingRefundsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			r.id,
			r.order_id,
			o.code,
			r.requested_by,
			r.amount,
			r.reason,
			r.proof_url,
			r.created_at
		FROM refunds r
		JOIN orders o ON o.id = r.order_id
		WHERE r.status = ?
		ORDER BY r.created_at
	`, int(refund.Pending)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var pending GetPendingRefundsQueryResponse
		var refundID, orderID, requestedBy uuid.UUID

		err = rows.Scan(
			&refundID,
			&orderID,
			&pending.OrderCode,
			&requestedBy,
			&pending.Amount,
			&pending.Reason,
			&pending.ProofURL,
			&pending.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		if pending.RefundID, err = kernel.UUIDFromBytes(refundID[:]); err != nil {
			return nil, err
		}
		if pending.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
			return nil, err
		}
		if pending.RequestedBy, err = kernel.UUIDFromBytes(requestedBy[:]); err != nil {
			return nil, err
		}
		refunds = append(refunds, pending)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return refunds, nil
}
