package commands

import (
	"errors"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrReviewRefundCommandIsNotConstructed = errors.New(
	"ReviewRefundCommand must be created via NewReviewRefundCommand constructor",
)

// ReviewRefundCommand represents a staff decision on a pending refund. A
// rejection requires a reason.
type ReviewRefundCommand struct { //nolint:recvcheck //using for validation
	refundID        kernel.UUID
	staffID         kernel.UUID
	approved        bool
	rejectionReason string

	guard guard.ConstructorGuard
}

// NewReviewRefundCommand creates a command to review a refund.
func NewReviewRefundCommand(
	refundID kernel.UUID,
	staffID kernel.UUID,
	approved bool,
	rejectionReason string,
) (ReviewRefundCommand, error) {
	cmd := ReviewRefundCommand{
		approved: approved,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRefundID(refundID),
		cmd.setStaffID(staffID),
		cmd.setRejectionReason(approved, rejectionReason),
	); err != nil {
		return ReviewRefundCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReviewRefundCommand) Validate() error {
	return c.guard.Validate(ErrReviewRefundCommandIsNotConstructed)
}

// RefundID returns the target refund's identifier.
func (c ReviewRefundCommand) RefundID() kernel.UUID { return c.refundID }

// StaffID returns the reviewing staff member's identifier.
func (c ReviewRefundCommand) StaffID() kernel.UUID { return c.staffID }

// Approved reports whether the refund is approved.
func (c ReviewRefundCommand) Approved() bool { return c.approved }

// RejectionReason returns the staff rejection reason, empty on approval.
func (c ReviewRefundCommand) RejectionReason() string { return c.rejectionReason }

func (c *ReviewRefundCommand) setRefundID(refundID kernel.UUID) error {
	if err := refundID.Validate(); err != nil {
		return err
	}
	c.refundID = refundID
	return nil
}

func (c *ReviewRefundCommand) setStaffID(staffID kernel.UUID) error {
	if err := staffID.Validate(); err != nil {
		return err
	}
	c.staffID = staffID
	return nil
}

func (c *ReviewRefundCommand) setRejectionReason(approved bool, rejectionReason string) error {
	if !approved && strings.TrimSpace(rejectionReason) == "" {
		return errs.NewValueIsRequiredError("rejection reason")
	}
	c.rejectionReason = rejectionReason
	return nil
}
