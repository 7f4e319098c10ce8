package jobs

import (
	"fmt"
	"log/slog"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	productionGroupingJob *ProductionGroupingJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	groupingHandler commands.GroupSubmittedOrdersCommandHandler,
	systemUserID kernel.UUID,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		productionGroupingJob: NewProductionGroupingJob(groupingHandler, systemUserID, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.productionGroupingJob.Start(); err != nil {
		return fmt.Errorf("failed to start production grouping job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.productionGroupingJob.Stop()
}
