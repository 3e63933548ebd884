// Package refresher periodically reloads the state from the service.
package refresher

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/finance-tracker/client/internal/application/usecase/bootstrap"
)

// Loader is the full reload run on every tick.
type Loader interface {
	Execute(ctx context.Context, input bootstrap.InitializeDataInput) *bootstrap.InitializeDataOutput
}

// WorkerConfig holds configuration for the refresh worker.
type WorkerConfig struct {
	// Schedule is a cron expression, e.g. "*/5 * * * *" or "@every 5m".
	Schedule         string
	TransactionLimit int
}

// DefaultWorkerConfig returns the default worker configuration.
func DefaultWorkerConfig() WorkerConfig {
	return WorkerConfig{
		Schedule: "@every 5m",
	}
}

// Worker re-runs the authoritative loads on a cron schedule. A run that is
// still in flight when the next tick fires causes that tick to be skipped.
type Worker struct {
	loader    Loader
	config    WorkerConfig
	onRefresh func(*bootstrap.InitializeDataOutput)
}

// NewWorker creates a new refresh worker. onRefresh, if not nil, is called
// after every run.
func NewWorker(loader Loader, config WorkerConfig, onRefresh func(*bootstrap.InitializeDataOutput)) *Worker {
	return &Worker{
		loader:    loader,
		config:    config,
		onRefresh: onRefresh,
	}
}

// Start runs a refresh immediately, then on the schedule. It blocks until
// the context is cancelled and the run in flight, if any, has finished.
func (w *Worker) Start(ctx context.Context) error {
	scheduler := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
	if _, err := scheduler.AddFunc(w.config.Schedule, func() { w.RunNow(ctx) }); err != nil {
		return fmt.Errorf("invalid refresh schedule %q: %w", w.config.Schedule, err)
	}

	slog.Info("Refresh worker started", "schedule", w.config.Schedule)

	// Refresh immediately on start, then on schedule
	w.RunNow(ctx)
	scheduler.Start()

	<-ctx.Done()
	slog.Info("Refresh worker shutting down")
	<-scheduler.Stop().Done()
	return nil
}

// RunNow performs a single refresh outside the schedule.
func (w *Worker) RunNow(ctx context.Context) *bootstrap.InitializeDataOutput {
	if ctx.Err() != nil {
		return nil
	}

	start := time.Now()
	output := w.loader.Execute(ctx, bootstrap.InitializeDataInput{TransactionLimit: w.config.TransactionLimit})

	slog.Debug("Refresh completed",
		"complete", output.Complete(),
		"duration", time.Since(start),
	)

	if w.onRefresh != nil {
		w.onRefresh(output)
	}
	return output
}
