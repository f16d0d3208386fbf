package components

import (
	"log/slog"

	"condo-parking/internal/pkg/clock"
	"condo-parking/internal/pkg/config"
	"condo-parking/internal/usecase/commands"
	"condo-parking/internal/usecase/fairplay"
	"condo-parking/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewFairPlayConfig,
	fx.Annotate(
		fairplay.NewValidator,
		fx.As(new(commands.BookingValidator)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingCommands,
		commands.NewUnitCommands,
		commands.NewSpotCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookingQueries,
		queries.NewUnitQueries,
		queries.NewSpotQueries,
	),
)

func NewFairPlayConfig(cfg config.Config, logger *slog.Logger) fairplay.Config {
	fp := fairplay.Config{
		MinDuration:             cfg.FairPlay.MinDuration,
		MaxDuration:             cfg.FairPlay.MaxDuration,
		SlotIncrement:           cfg.FairPlay.SlotIncrement,
		Cooldown:                cfg.FairPlay.Cooldown,
		DefaultWeeklyQuotaHours: cfg.FairPlay.DefaultWeeklyQuotaHours,
	}
	logger.Info("fair-play policy loaded",
		"min_duration", fp.MinDuration,
		"max_duration", fp.MaxDuration,
		"slot_increment", fp.SlotIncrement,
		"cooldown", fp.Cooldown,
		"default_weekly_quota_hours", fp.DefaultWeeklyQuotaHours,
	)
	return fp
}
