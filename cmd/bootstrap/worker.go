package bootstrap

import (
	"context"
	"log/slog"

	"condo-parking/internal/pkg/config"
	"condo-parking/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		func(cfg config.Config, units worker.QuotaResetter, logger *slog.Logger) *worker.QuotaResetWorker {
			return worker.NewQuotaResetWorker(cfg.Worker, units, logger)
		},
	),
	fx.Invoke(startQuotaResetWorker),
)

func startQuotaResetWorker(lc fx.Lifecycle, w *worker.QuotaResetWorker) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			return w.Start()
		},
		OnStop: func(_ context.Context) error {
			w.Stop()
			return nil
		},
	})
}
