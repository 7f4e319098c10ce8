package commands

import (
	"errors"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrReviewCancellationCommandIsNotConstructed = errors.New(
	"ReviewCancellationCommand must be created via NewReviewCancellationCommand constructor",
)

// ReviewCancellationCommand represents a staff decision on the pending
// cancellation request of an order. A rejection requires a reason.
type ReviewCancellationCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	staffID         kernel.UUID
	approved        bool
	rejectionReason string

	guard guard.ConstructorGuard
}

// NewReviewCancellationCommand creates a command to review a cancellation.
func NewReviewCancellationCommand(
	orderID kernel.UUID,
	staffID kernel.UUID,
	approved bool,
	rejectionReason string,
) (ReviewCancellationCommand, error) {
	cmd := ReviewCancellationCommand{
		approved: approved,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setStaffID(staffID),
		cmd.setRejectionReason(approved, rejectionReason),
	); err != nil {
		return ReviewCancellationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReviewCancellationCommand) Validate() error {
	return c.guard.Validate(ErrReviewCancellationCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c ReviewCancellationCommand) OrderID() kernel.UUID { return c.orderID }

// StaffID returns the reviewing staff member's identifier.
func (c ReviewCancellationCommand) StaffID() kernel.UUID { return c.staffID }

// Approved reports whether the request is approved.
func (c ReviewCancellationCommand) Approved() bool { return c.approved }

// RejectionReason returns the staff rejection reason, empty on approval.
func (c ReviewCancellationCommand) RejectionReason() string { return c.rejectionReason }

func (c *ReviewCancellationCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *ReviewCancellationCommand) setStaffID(staffID kernel.UUID) error {
	if err := staffID.Validate(); err != nil {
		return err
	}
	c.staffID = staffID
	return nil
}

func (c *ReviewCancellationCommand) setRejectionReason(approved bool, rejectionReason string) error {
	if !approved && strings.TrimSpace(rejectionReason) == "" {
		return errs.NewValueIsRequiredError("rejection reason")
	}
	c.rejectionReason = rejectionReason
	return nil
}
