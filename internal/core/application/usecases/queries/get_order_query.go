// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases and bypass the
// aggregate layer with direct SQL.
package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves one order with its line items for display.
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query to retrieve an order.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the requested order's identifier.
func (q GetOrderQuery) OrderID() kernel.UUID { return q.orderID }

// GetOrderQueryResponse represents an order in the read model.
type GetOrderQueryResponse struct {
	ID              kernel.UUID
	Code            string
	SellerID        kernel.UUID
	CustomerName    string
	Status          string
	PaymentStatus   string
	ProductionLabel string
	TotalCost       float64
	TrackingCode    string
	Items           []GetOrderItemResponse
}

// GetOrderItemResponse represents one line item in the read model.
type GetOrderItemResponse struct {
	ID        kernel.UUID
	VariantID string
	Category  string
	Quantity  int
	UnitPrice float64
	Status    string
	DesignURL string
	Note      string
}
