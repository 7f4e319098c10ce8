package jobs

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/robfig/cron/v3"
)

// ProductionGroupingJob periodically batches the items of submitted orders
// into production plans. Runs every minute; the grouping command is
// idempotent, so an overlap with a manual run is harmless.
type ProductionGroupingJob struct {
	handler      commands.GroupSubmittedOrdersCommandHandler
	systemUserID kernel.UUID
	cron         *cron.Cron
	logger       *slog.Logger
}

// NewProductionGroupingJob creates a new job for production grouping. Plans
// created by the job are attributed to the configured system account.
func NewProductionGroupingJob(
	handler commands.GroupSubmittedOrdersCommandHandler,
	systemUserID kernel.UUID,
	logger *slog.Logger,
) *ProductionGroupingJob {
	return &ProductionGroupingJob{
		handler:      handler,
		systemUserID: systemUserID,
		cron:         cron.New(cron.WithSeconds()),
		logger:       logger.With("component", "production_grouping_job"),
	}
}

// Start begins the production grouping job to run every minute.
func (j *ProductionGroupingJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		cmd, err := commands.NewGroupSubmittedOrdersCommand(j.systemUserID)
		if err != nil {
			j.logger.ErrorContext(ctx, "Production grouping command rejected", "error", err)
			return
		}

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Production grouping job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Production grouping job started (running every minute)")
	return nil
}

// Stop stops the production grouping job.
func (j *ProductionGroupingJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Production grouping job stopped")
}
