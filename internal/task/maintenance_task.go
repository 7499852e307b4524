package task

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// AuditPurger removes audit entries past retention.
type AuditPurger interface {
	Purge(ctx context.Context, retentionDays int) (int64, error)
}

// LimiterSweeper drops idle rate limiter keys.
type LimiterSweeper interface {
	Sweep(maxAge time.Duration) int
}

// MaintenanceTask runs the periodic housekeeping jobs:
//
//	audit retention  daily at 03:00
//	limiter sweep    every 10 minutes
type MaintenanceTask struct {
	purger        AuditPurger
	sweeper       LimiterSweeper
	retentionDays int
	logger        *zap.Logger
	Cron          *cron.Cron
}

func NewMaintenanceTask(purger AuditPurger, sweeper LimiterSweeper, retentionDays int, logger *zap.Logger) *MaintenanceTask {
	return &MaintenanceTask{
		purger:        purger,
		sweeper:       sweeper,
		retentionDays: retentionDays,
		logger:        logger,
		Cron:          cron.New(cron.WithSeconds()),
	}
}

// Start runs a first purge in the background, then schedules the jobs.
func (t *MaintenanceTask) Start() error {
	go t.PurgeAudit()

	if _, err := t.Cron.AddFunc("0 0 3 * * *", t.PurgeAudit); err != nil {
		return fmt.Errorf("schedule audit retention: %w", err)
	}
	if t.sweeper != nil {
		if _, err := t.Cron.AddFunc("0 */10 * * * *", t.SweepLimiter); err != nil {
			return fmt.Errorf("schedule limiter sweep: %w", err)
		}
	}

	t.Cron.Start()
	t.logger.Info("maintenance task started", zap.Int("audit_retention_days", t.retentionDays))
	return nil
}

// Stop waits for running jobs to finish.
func (t *MaintenanceTask) Stop() {
	<-t.Cron.Stop().Done()
}

func (t *MaintenanceTask) PurgeAudit() {
	if t.retentionDays <= 0 {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	n, err := t.purger.Purge(ctx, t.retentionDays)
	if err != nil {
		t.logger.Error("audit retention purge failed", zap.Error(err))
		return
	}
	if n > 0 {
		t.logger.Info("audit retention purge", zap.Int64("removed", n))
	}
}

func (t *MaintenanceTask) SweepLimiter() {
	if n := t.sweeper.Sweep(time.Hour); n > 0 {
		t.logger.Debug("rate limiter sweep", zap.Int("removed", n))
	}
}
