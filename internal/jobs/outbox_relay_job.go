package jobs

import (
	"context"
	"log/slog"

	"manufacturing/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

const relaySchedule = "* * * * * *"

// OutboxRelayer delivers one batch of pending outbox messages.
type OutboxRelayer interface {
	Handle(ctx context.Context, cmd commands.RelayOutboxCommand) error
}

// OutboxRelayJob publishes pending order events every second.
type OutboxRelayJob struct {
	relayer OutboxRelayer
	cmd     commands.RelayOutboxCommand
	cron    *cron.Cron
	logger  *slog.Logger
}

func NewOutboxRelayJob(relayer OutboxRelayer, cmd commands.RelayOutboxCommand, logger *slog.Logger) *OutboxRelayJob {
	return &OutboxRelayJob{
		relayer: relayer,
		cmd:     cmd,
		cron:    cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:  logger.With("component", "outbox_relay_job"),
	}
}

func (j *OutboxRelayJob) Start() error {
	_, err := j.cron.AddFunc(relaySchedule, func() {
		ctx := context.Background()

		if err := j.relayer.Handle(ctx, j.cmd); err != nil {
			j.logger.ErrorContext(ctx, "Outbox relay job failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Outbox relay job started (running every second)")
	return nil
}

// Stop stops scheduling and waits for a running delivery to finish.
func (j *OutboxRelayJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Outbox relay job stopped")
}
