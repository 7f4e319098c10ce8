package commands

import (
	"errors"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrRequestCancellationCommandIsNotConstructed = errors.New(
	"RequestCancellationCommand must be created via NewRequestCancellationCommand constructor",
)

// RequestCancellationCommand represents a seller's ask to halt an order
// before payment.
type RequestCancellationCommand struct { //nolint:recvcheck //using for validation
	requestID kernel.UUID
	orderID   kernel.UUID
	sellerID  kernel.UUID
	reason    string

	guard guard.ConstructorGuard
}

// NewRequestCancellationCommand creates a command to request a cancellation.
func NewRequestCancellationCommand(
	requestID kernel.UUID,
	orderID kernel.UUID,
	sellerID kernel.UUID,
	reason string,
) (RequestCancellationCommand, error) {
	cmd := RequestCancellationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRequestID(requestID),
		cmd.setOrderID(orderID),
		cmd.setSellerID(sellerID),
		cmd.setReason(reason),
	); err != nil {
		return RequestCancellationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RequestCancellationCommand) Validate() error {
	return c.guard.Validate(ErrRequestCancellationCommandIsNotConstructed)
}

// RequestID returns the identifier for the new cancellation request.
func (c RequestCancellationCommand) RequestID() kernel.UUID { return c.requestID }

// OrderID returns the target order's identifier.
func (c RequestCancellationCommand) OrderID() kernel.UUID { return c.orderID }

// SellerID returns the requesting seller's identifier.
func (c RequestCancellationCommand) SellerID() kernel.UUID { return c.sellerID }

// Reason returns the seller's cancellation reason.
func (c RequestCancellationCommand) Reason() string { return c.reason }

func (c *RequestCancellationCommand) setRequestID(requestID kernel.UUID) error {
	if err := requestID.Validate(); err != nil {
		return err
	}
	c.requestID = requestID
	return nil
}

func (c *RequestCancellationCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *RequestCancellationCommand) setSellerID(sellerID kernel.UUID) error {
	if err := sellerID.Validate(); err != nil {
		return err
	}
	c.sellerID = sellerID
	return nil
}

func (c *RequestCancellationCommand) setReason(reason string) error {
	if strings.TrimSpace(reason) == "" {
		return errs.NewValueIsRequiredError("cancellation reason")
	}
	c.reason = reason
	return nil
}
