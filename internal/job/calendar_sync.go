package job

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"stayhub/internal/pkg/config"
	"stayhub/internal/usecase/commands"
)

// CalendarSyncJob periodically imports every enabled external calendar.
type CalendarSyncJob struct {
	sync     commands.CalendarSyncCommands
	interval time.Duration
	enabled  bool
	logger   *slog.Logger

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewCalendarSyncJob(syncCommands commands.CalendarSyncCommands, cfg config.CalendarConfig, logger *slog.Logger) *CalendarSyncJob {
	return &CalendarSyncJob{
		sync:     syncCommands,
		interval: cfg.SyncInterval,
		enabled:  cfg.SyncEnabled && cfg.SyncInterval > 0,
		logger:   logger,
	}
}

func (j *CalendarSyncJob) Start(_ context.Context) error {
	if !j.enabled {
		j.logger.Info("calendar sync job disabled")
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	j.cancel = cancel

	j.wg.Add(1)
	go j.loop(ctx)

	j.logger.Info("calendar sync job started", "interval", j.interval.String())
	return nil
}

// Stop waits for an in-flight run to observe cancellation.
func (j *CalendarSyncJob) Stop(ctx context.Context) error {
	if j.cancel == nil {
		return nil
	}
	j.cancel()

	done := make(chan struct{})
	go func() {
		j.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		j.logger.Info("calendar sync job stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (j *CalendarSyncJob) loop(ctx context.Context) {
	defer j.wg.Done()

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			j.RunOnce(ctx)
		}
	}
}

// RunOnce syncs all sources once. Per-source failures are already recorded
// on the sources; only a failure to list them surfaces here.
func (j *CalendarSyncJob) RunOnce(ctx context.Context) {
	started := time.Now()
	batch, err := j.sync.SyncAll(ctx)
	if err != nil {
		j.logger.Error("calendar sync batch failed", "error", err.Error())
		return
	}

	j.logger.Info("calendar sync batch finished",
		"sources", len(batch.Results),
		"failed", batch.Failed(),
		"duration", time.Since(started).String(),
	)
}
