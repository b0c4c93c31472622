package jobs

import (
	"fmt"
	"log/slog"

	"freightdesk/internal/adapters/out/simulation"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	agentMovementJob *AgentMovementJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(fleet *simulation.Fleet, logger *slog.Logger) *JobManager {
	return &JobManager{
		agentMovementJob: NewAgentMovementJob(fleet, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.agentMovementJob.Start(); err != nil {
		return fmt.Errorf("failed to start agent movement job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.agentMovementJob.Stop()
}
