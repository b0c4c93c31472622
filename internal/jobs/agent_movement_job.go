package jobs

import (
	"context"
	"log/slog"
	"time"

	"freightdesk/internal/adapters/out/simulation"

	"github.com/robfig/cron/v3"
)

// AgentMovementJob drives the simulated delivery fleet. Runs every two
// seconds to jitter agent positions and publish movement on the feed.
type AgentMovementJob struct {
	fleet  *simulation.Fleet
	cron   *cron.Cron
	logger *slog.Logger
}

// NewAgentMovementJob creates a new job for moving delivery agents.
func NewAgentMovementJob(fleet *simulation.Fleet, logger *slog.Logger) *AgentMovementJob {
	return &AgentMovementJob{
		fleet:  fleet,
		cron:   cron.New(cron.WithSeconds()),
		logger: logger.With("component", "agent_movement_job"),
	}
}

// Start begins the agent movement job to run every two seconds.
func (j *AgentMovementJob) Start() error {
	_, err := j.cron.AddFunc("*/2 * * * * *", func() {
		ctx := context.Background()

		if err := j.fleet.Move(time.Now().UTC()); err != nil {
			j.logger.ErrorContext(ctx, "Agent movement job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Agent movement job started (running every two seconds)")
	return nil
}

// Stop stops the agent movement job.
func (j *AgentMovementJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Agent movement job stopped")
}
