// Package scheduler runs the periodic housekeeping jobs of the API process.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/ridecrew/ridecrew/internal/shared/logger"
)

// BatchJob defines the interface for a scheduled batch processing job.
// Each Execute call processes a batch and returns the number of items processed.
type BatchJob interface {
	Execute(ctx context.Context) (int, error)
}

// BatchJobFunc adapts a function to BatchJob.
type BatchJobFunc func(ctx context.Context) (int, error)

func (f BatchJobFunc) Execute(ctx context.Context) (int, error) { return f(ctx) }

// SchedulerManager owns one cron instance. Runs of the same job never overlap.
type SchedulerManager struct {
	cron   *cron.Cron
	logger logger.Interface

	started   bool
	startedMu sync.Mutex
}

func NewSchedulerManager(log logger.Interface) *SchedulerManager {
	return &SchedulerManager{
		cron: cron.New(
			cron.WithLocation(time.UTC),
			cron.WithChain(cron.Recover(cronLogger{log}), cron.SkipIfStillRunning(cronLogger{log})),
		),
		logger: log,
	}
}

// Register schedules job under spec ("@every 6h", "0 3 * * *", ...). Each run
// gets timeout as its deadline.
func (m *SchedulerManager) Register(name, spec string, timeout time.Duration, job BatchJob) error {
	_, err := m.cron.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		m.run(ctx, name, job)
	})
	if err != nil {
		return fmt.Errorf("failed to register job %s: %w", name, err)
	}

	m.logger.Infow("registered scheduled job", "job", name, "spec", spec)
	return nil
}

func (m *SchedulerManager) run(ctx context.Context, name string, job BatchJob) {
	startTime := time.Now()

	count, err := job.Execute(ctx)
	if err != nil {
		m.logger.Errorw("scheduled job failed",
			"job", name,
			"error", err,
			"duration", time.Since(startTime),
		)
		return
	}

	if count > 0 {
		m.logger.Infow("scheduled job processed items",
			"job", name,
			"count", count,
			"duration", time.Since(startTime),
		)
	} else {
		m.logger.Debugw("scheduled job had nothing to process",
			"job", name,
			"duration", time.Since(startTime),
		)
	}
}

func (m *SchedulerManager) Start() {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()

	if m.started {
		return
	}
	m.cron.Start()
	m.started = true
	m.logger.Infow("scheduler started", "jobs", len(m.cron.Entries()))
}

// Stop stops scheduling and waits for running jobs until ctx is done.
func (m *SchedulerManager) Stop(ctx context.Context) error {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()

	if !m.started {
		return nil
	}
	m.started = false

	select {
	case <-m.cron.Stop().Done():
		m.logger.Infow("scheduler stopped")
		return nil
	case <-ctx.Done():
		return fmt.Errorf("scheduler stop: %w", ctx.Err())
	}
}

// cronLogger adapts logger.Interface to cron.Logger.
type cronLogger struct {
	log logger.Interface
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Debugw(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.Errorw(msg, append(keysAndValues, "error", err)...)
}
