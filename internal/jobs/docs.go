// Package jobs provides scheduled background tasks for the freight
// brokerage service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations.
//
// # Available Jobs
//
// 1. AgentMovementJob - Runs every two seconds to jitter simulated agent
// positions and publish movement updates on the agent feed
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with the simulated fleet
//	jobManager := jobs.NewJobManager(fleet, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - Movement job logs all errors as they indicate system issues
// - Failed job starts will stop any already running jobs
package jobs
