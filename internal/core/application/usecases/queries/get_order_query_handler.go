package queries

import (
	"context"
	"database/sql"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves one order with its items from the database.
// Uses direct SQL for optimal read performance in the CQRS pattern; the
// numeric status columns are rendered with the domain enum names.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for order retrieval queries.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query to retrieve an order with its items.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	var response GetOrderQueryResponse
	var id, sellerID uuid.UUID
	var status, paymentStatus int

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			code,
			seller_id,
			customer_name,
			status,
			payment_status,
			production_label,
			total_cost,
			tracking_code
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	err := row.Scan(
		&id,
		&response.Code,
		&sellerID,
		&response.CustomerName,
		&status,
		&paymentStatus,
		&response.ProductionLabel,
		&response.TotalCost,
		&response.TrackingCode,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
		}
		return GetOrderQueryResponse{}, err
	}

	response.ID, err = kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	response.SellerID, err = kernel.UUIDFromBytes(sellerID[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	response.Status = order.Status(status).String()
	response.PaymentStatus = order.PaymentStatus(paymentStatus).String()

	response.Items, err = h.loadItems(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	return response, nil
}

func (h GetOrderQueryHandler) loadItems(ctx context.Context, orderID kernel.UUID) ([]GetOrderItemResponse, error) {
	items := make([]GetOrderItemResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			variant_id,
			category,
			quantity,
			unit_price,
			status,
			design_url,
			note
		FROM order_items
		WHERE order_id = ?
		ORDER BY variant_id
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item GetOrderItemResponse
		var id uuid.UUID
		var status int

		err = rows.Scan(
			&id,
			&item.VariantID,
			&item.Category,
			&item.Quantity,
			&item.UnitPrice,
			&status,
			&item.DesignURL,
			&item.Note,
		)
		if err != nil {
			return nil, err
		}

		item.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		item.Status = order.ItemStatus(status).String()
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
