package jobs

import (
	"fmt"
	"log/slog"

	"manufacturing/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	outboxRelayJob *OutboxRelayJob
}

// NewJobManager wires the relay job with a batch of batchSize messages per run.
func NewJobManager(relayer OutboxRelayer, batchSize int, logger *slog.Logger) (*JobManager, error) {
	cmd, err := commands.NewRelayOutboxCommand(batchSize)
	if err != nil {
		return nil, err
	}

	return &JobManager{
		outboxRelayJob: NewOutboxRelayJob(relayer, cmd, logger),
	}, nil
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.outboxRelayJob.Start(); err != nil {
		return fmt.Errorf("failed to start outbox relay job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.outboxRelayJob.Stop()
}
