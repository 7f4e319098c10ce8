package commands

import (
	"errors"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrSubmitReprintCommandIsNotConstructed = errors.New(
	"SubmitReprintCommand must be created via NewSubmitReprintCommand constructor",
)

// SubmitReprintCommand represents a defect report asking to remanufacture one
// delivered line item.
type SubmitReprintCommand struct { //nolint:recvcheck //using for validation
	reprintID   kernel.UUID
	itemID      kernel.UUID
	requestedBy kernel.UUID
	reason      string
	proofURL    string

	guard guard.ConstructorGuard
}

// NewSubmitReprintCommand creates a command to submit a reprint request.
func NewSubmitReprintCommand(
	reprintID kernel.UUID,
	itemID kernel.UUID,
	requestedBy kernel.UUID,
	reason string,
	proofURL string,
) (SubmitReprintCommand, error) {
	cmd := SubmitReprintCommand{
		proofURL: proofURL,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setReprintID(reprintID),
		cmd.setItemID(itemID),
		cmd.setRequestedBy(requestedBy),
		cmd.setReason(reason),
	); err != nil {
		return SubmitReprintCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitReprintCommand) Validate() error {
	return c.guard.Validate(ErrSubmitReprintCommandIsNotConstructed)
}

// ReprintID returns the identifier for the new reprint request.
func (c SubmitReprintCommand) ReprintID() kernel.UUID { return c.reprintID }

// ItemID returns the flagged line item's identifier.
func (c SubmitReprintCommand) ItemID() kernel.UUID { return c.itemID }

// RequestedBy returns the requester's identifier.
func (c SubmitReprintCommand) RequestedBy() kernel.UUID { return c.requestedBy }

// Reason returns the defect description.
func (c SubmitReprintCommand) Reason() string { return c.reason }

// ProofURL returns the defect proof reference.
func (c SubmitReprintCommand) ProofURL() string { return c.proofURL }

func (c *SubmitReprintCommand) setReprintID(reprintID kernel.UUID) error {
	if err := reprintID.Validate(); err != nil {
		return err
	}
	c.reprintID = reprintID
	return nil
}

func (c *SubmitReprintCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}
	c.itemID = itemID
	return nil
}

func (c *SubmitReprintCommand) setRequestedBy(requestedBy kernel.UUID) error {
	if err := requestedBy.Validate(); err != nil {
		return err
	}
	c.requestedBy = requestedBy
	return nil
}

func (c *SubmitReprintCommand) setReason(reason string) error {
	if strings.TrimSpace(reason) == "" {
		return errs.NewValueIsRequiredError("reprint reason")
	}
	c.reason = reason
	return nil
}
