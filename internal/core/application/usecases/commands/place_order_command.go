package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// OrderItemSpec describes one line item of a new order.
type OrderItemSpec struct {
	VariantID string
	Category  string
	Quantity  int
	UnitPrice float64
	BaseCost  float64
	Artifacts order.Artifacts
	Note      string
}

// PlaceOrderCommand represents a seller's request to place a new multi-item
// order. Items start in the NeedDesign state.
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	code     string
	sellerID kernel.UUID
	customer order.Customer
	items    []OrderItemSpec

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place a new order.
func NewPlaceOrderCommand(
	orderID kernel.UUID,
	code string,
	sellerID kernel.UUID,
	customer order.Customer,
	items []OrderItemSpec,
) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		customer: customer,
		items:    items,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCode(code),
		cmd.setSellerID(sellerID),
		customer.Validate(),
		cmd.validateItems(),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// OrderID returns the identifier for the new order.
func (c PlaceOrderCommand) OrderID() kernel.UUID { return c.orderID }

// Code returns the human-facing order code.
func (c PlaceOrderCommand) Code() string { return c.code }

// SellerID returns the placing seller's identifier.
func (c PlaceOrderCommand) SellerID() kernel.UUID { return c.sellerID }

// Customer returns the shipping-destination snapshot.
func (c PlaceOrderCommand) Customer() order.Customer { return c.customer }

// Items returns the line item specifications.
func (c PlaceOrderCommand) Items() []OrderItemSpec { return c.items }

func (c *PlaceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *PlaceOrderCommand) setCode(code string) error {
	if code == "" {
		return errs.NewValueIsRequiredError("order code")
	}
	c.code = code
	return nil
}

func (c *PlaceOrderCommand) setSellerID(sellerID kernel.UUID) error {
	if err := sellerID.Validate(); err != nil {
		return err
	}
	c.sellerID = sellerID
	return nil
}

func (c *PlaceOrderCommand) validateItems() error {
	if len(c.items) == 0 {
		return errs.NewValueIsRequiredError("order items")
	}
	return nil
}
