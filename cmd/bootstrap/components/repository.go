package components

import (
	"condo-parking/internal/infra/readstore"
	"condo-parking/internal/infra/repository"
	"condo-parking/internal/usecase/commands"
	"condo-parking/internal/usecase/fairplay"
	"condo-parking/internal/usecase/queries"
	"condo-parking/internal/worker"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repository.NewBookingRepository,
			fx.As(new(commands.BookingRepository)),
		),
		fx.Annotate(
			repository.NewSpotRepository,
			fx.As(new(commands.SpotWriteRepository)),
		),
		fx.Annotate(
			repository.NewUnitRepository,
			fx.As(new(commands.UnitRepository)),
			fx.As(new(commands.UnitWriteRepository)),
			fx.As(new(worker.QuotaResetter)),
		),
		// Read-side stores double as the fair-play rule ports
		fx.Annotate(
			readstore.NewUnitReadStore,
			fx.As(new(fairplay.UnitReader)),
			fx.As(new(queries.UnitReadStore)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(fairplay.BookingHistoryReader)),
			fx.As(new(queries.BookingReadStore)),
		),
		fx.Annotate(
			readstore.NewSpotReadStore,
			fx.As(new(commands.SpotRepository)),
			fx.As(new(queries.SpotReadStore)),
		),
	),
)
