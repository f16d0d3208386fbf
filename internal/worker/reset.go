package worker

import (
	"context"
	"log/slog"
	"time"

	"condo-parking/internal/pkg/config"

	"github.com/robfig/cron/v3"
)

// QuotaResetter zeroes every unit's weekly usage tally and reports how many
// rows changed. Implemented by the unit repository.
type QuotaResetter interface {
	ResetWeeklyUsage(ctx context.Context) (int64, error)
}

// QuotaResetWorker runs the weekly usage reset on a cron schedule. The
// validator never resets usage itself; this worker owns that transition.
type QuotaResetWorker struct {
	cron     *cron.Cron
	schedule string
	units    QuotaResetter
	logger   *slog.Logger
}

func NewQuotaResetWorker(cfg config.WorkerConfig, units QuotaResetter, logger *slog.Logger) *QuotaResetWorker {
	return &QuotaResetWorker{
		cron:     cron.New(),
		schedule: cfg.QuotaResetSchedule,
		units:    units,
		logger:   logger,
	}
}

func (w *QuotaResetWorker) Start() error {
	if _, err := w.cron.AddFunc(w.schedule, w.run); err != nil {
		return err
	}
	w.cron.Start()
	w.logger.Info("quota reset worker started", "schedule", w.schedule)
	return nil
}

// Stop halts the scheduler and waits for an in-flight run to finish.
func (w *QuotaResetWorker) Stop() {
	ctx := w.cron.Stop()
	<-ctx.Done()
	w.logger.Info("quota reset worker stopped")
}

func (w *QuotaResetWorker) run() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	reset, err := w.units.ResetWeeklyUsage(ctx)
	if err != nil {
		w.logger.Error("weekly usage reset failed", "error", err)
		return
	}
	w.logger.Info("weekly usage reset completed", "units_reset", reset)
}
