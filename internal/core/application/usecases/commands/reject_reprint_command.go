package commands

import (
	"errors"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrRejectReprintCommandIsNotConstructed = errors.New(
	"RejectReprintCommand must be created via NewRejectReprintCommand constructor",
)

// RejectReprintCommand represents a manager declining a batch of pending
// reprint requests. All flagged items must belong to the same order.
type RejectReprintCommand struct { //nolint:recvcheck //using for validation
	itemIDs         []kernel.UUID
	managerID       kernel.UUID
	rejectionReason string

	guard guard.ConstructorGuard
}

// NewRejectReprintCommand creates a command to reject a reprint batch.
func NewRejectReprintCommand(
	itemIDs []kernel.UUID,
	managerID kernel.UUID,
	rejectionReason string,
) (RejectReprintCommand, error) {
	cmd := RejectReprintCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setItemIDs(itemIDs),
		cmd.setManagerID(managerID),
		cmd.setRejectionReason(rejectionReason),
	); err != nil {
		return RejectReprintCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RejectReprintCommand) Validate() error {
	return c.guard.Validate(ErrRejectReprintCommandIsNotConstructed)
}

// ItemIDs returns the flagged line items of the batch.
func (c RejectReprintCommand) ItemIDs() []kernel.UUID { return c.itemIDs }

// ManagerID returns the rejecting manager's identifier.
func (c RejectReprintCommand) ManagerID() kernel.UUID { return c.managerID }

// RejectionReason returns the manager's rejection reason.
func (c RejectReprintCommand) RejectionReason() string { return c.rejectionReason }

func (c *RejectReprintCommand) setItemIDs(itemIDs []kernel.UUID) error {
	if len(itemIDs) == 0 {
		return errs.NewValueIsRequiredError("item IDs")
	}
	for _, itemID := range itemIDs {
		if err := itemID.Validate(); err != nil {
			return err
		}
	}
	c.itemIDs = itemIDs
	return nil
}

func (c *RejectReprintCommand) setManagerID(managerID kernel.UUID) error {
	if err := managerID.Validate(); err != nil {
		return err
	}
	c.managerID = managerID
	return nil
}

func (c *RejectReprintCommand) setRejectionReason(rejectionReason string) error {
	if strings.TrimSpace(rejectionReason) == "" {
		return errs.NewValueIsRequiredError("rejection reason")
	}
	c.rejectionReason = rejectionReason
	return nil
}
