// Package jobs provides scheduled background tasks for the fulfillment
// engine.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. ProductionGroupingJob - Runs every minute to batch submitted order items
// into production plans, one plan per product category.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(groupingHandler, systemUserID, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The grouping command is idempotent, so a failed run is simply retried on
// the next tick; errors are logged and never crash the scheduler.
package jobs
