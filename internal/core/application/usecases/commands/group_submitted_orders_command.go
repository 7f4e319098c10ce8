package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrGroupSubmittedOrdersCommandIsNotConstructed = errors.New(
	"GroupSubmittedOrdersCommand must be created via NewGroupSubmittedOrdersCommand constructor",
)

// GroupSubmittedOrdersCommand represents a request to batch the items of all
// submitted orders into production plans, one plan per product category.
type GroupSubmittedOrdersCommand struct { //nolint:recvcheck //using for validation
	createdBy kernel.UUID

	guard guard.ConstructorGuard
}

// NewGroupSubmittedOrdersCommand creates a command to run plan grouping.
// createdBy is the staff member or system account the plans are attributed to.
func NewGroupSubmittedOrdersCommand(createdBy kernel.UUID) (GroupSubmittedOrdersCommand, error) {
	cmd := GroupSubmittedOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setCreatedBy(createdBy); err != nil {
		return GroupSubmittedOrdersCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c GroupSubmittedOrdersCommand) Validate() error {
	return c.guard.Validate(ErrGroupSubmittedOrdersCommandIsNotConstructed)
}

// CreatedBy returns the account the created plans are attributed to.
func (c GroupSubmittedOrdersCommand) CreatedBy() kernel.UUID { return c.createdBy }

func (c *GroupSubmittedOrdersCommand) setCreatedBy(createdBy kernel.UUID) error {
	if err := createdBy.Validate(); err != nil {
		return err
	}
	c.createdBy = createdBy
	return nil
}
