package commands

import (
	"context"
)

// UpdatePlanDetailStatusCommandHandler handles factory progress updates for
// plan details. A missing detail is a soft miss: the handler reports false
// without an error so polling factory UIs do not alarm on purged details.
type UpdatePlanDetailStatusCommandHandler struct {
	uowFactory PlanningUoWFactory
}

// NewUpdatePlanDetailStatusCommandHandler creates a handler for detail updates.
func NewUpdatePlanDetailStatusCommandHandler(uowFactory PlanningUoWFactory) UpdatePlanDetailStatusCommandHandler {
	return UpdatePlanDetailStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the detail update command. Returns false when the detail
// does not exist.
func (h UpdatePlanDetailStatusCommandHandler) Handle(ctx context.Context, cmd UpdatePlanDetailStatusCommand) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	updated, err := uow.PlanRepository().UpdateDetailStatus(ctx, cmd.DetailID(), cmd.Status())
	if err != nil {
		return false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	return updated, nil
}
