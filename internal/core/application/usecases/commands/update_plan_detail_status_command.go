package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/plan"
	"fulfillment/internal/pkg/guard"
)

var ErrUpdatePlanDetailStatusCommandIsNotConstructed = errors.New(
	"UpdatePlanDetailStatusCommand must be created via NewUpdatePlanDetailStatusCommand constructor",
)

// UpdatePlanDetailStatusCommand represents a factory progress update for one
// plan detail.
type UpdatePlanDetailStatusCommand struct { //nolint:recvcheck //using for validation
	detailID kernel.UUID
	status   plan.DetailStatus

	guard guard.ConstructorGuard
}

// NewUpdatePlanDetailStatusCommand creates a command to update a plan detail.
func NewUpdatePlanDetailStatusCommand(
	detailID kernel.UUID,
	status plan.DetailStatus,
) (UpdatePlanDetailStatusCommand, error) {
	cmd := UpdatePlanDetailStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDetailID(detailID),
		cmd.setStatus(status),
	); err != nil {
		return UpdatePlanDetailStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdatePlanDetailStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdatePlanDetailStatusCommandIsNotConstructed)
}

// DetailID returns the target plan detail's identifier.
func (c UpdatePlanDetailStatusCommand) DetailID() kernel.UUID { return c.detailID }

// Status returns the requested coarse progress status.
func (c UpdatePlanDetailStatusCommand) Status() plan.DetailStatus { return c.status }

func (c *UpdatePlanDetailStatusCommand) setDetailID(detailID kernel.UUID) error {
	if err := detailID.Validate(); err != nil {
		return err
	}
	c.detailID = detailID
	return nil
}

func (c *UpdatePlanDetailStatusCommand) setStatus(status plan.DetailStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}
