package commands

import (
	"errors"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrRequestRefundCommandIsNotConstructed = errors.New(
	"RequestRefundCommand must be created via NewRequestRefundCommand constructor",
)

// RequestRefundCommand represents a seller's ask to return money for a paid
// order. The refund amount is not part of the command: it is snapshotted from
// the order's total cost when the request is created.
type RequestRefundCommand struct { //nolint:recvcheck //using for validation
	refundID kernel.UUID
	orderID  kernel.UUID
	sellerID kernel.UUID
	reason   string
	proofURL string

	guard guard.ConstructorGuard
}

// NewRequestRefundCommand creates a command to request a refund.
func NewRequestRefundCommand(
	refundID kernel.UUID,
	orderID kernel.UUID,
	sellerID kernel.UUID,
	reason string,
	proofURL string,
) (RequestRefundCommand, error) {
	cmd := RequestRefundCommand{
		proofURL: proofURL,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRefundID(refundID),
		cmd.setOrderID(orderID),
		cmd.setSellerID(sellerID),
		cmd.setReason(reason),
	); err != nil {
		return RequestRefundCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RequestRefundCommand) Validate() error {
	return c.guard.Validate(ErrRequestRefundCommandIsNotConstructed)
}

// RefundID returns the identifier for the new refund.
func (c RequestRefundCommand) RefundID() kernel.UUID { return c.refundID }

// OrderID returns the target order's identifier.
func (c RequestRefundCommand) OrderID() kernel.UUID { return c.orderID }

// SellerID returns the requesting seller's identifier.
func (c RequestRefundCommand) SellerID() kernel.UUID { return c.sellerID }

// Reason returns the seller's refund reason.
func (c RequestRefundCommand) Reason() string { return c.reason }

// ProofURL returns the proof-of-issue reference.
func (c RequestRefundCommand) ProofURL() string { return c.proofURL }

func (c *RequestRefundCommand) setRefundID(refundID kernel.UUID) error {
	if err := refundID.Validate(); err != nil {
		return err
	}
	c.refundID = refundID
	return nil
}

func (c *RequestRefundCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *RequestRefundCommand) setSellerID(sellerID kernel.UUID) error {
	if err := sellerID.Validate(); err != nil {
		return err
	}
	c.sellerID = sellerID
	return nil
}

func (c *RequestRefundCommand) setReason(reason string) error {
	if strings.TrimSpace(reason) == "" {
		return errs.NewValueIsRequiredError("refund reason")
	}
	c.reason = reason
	return nil
}
