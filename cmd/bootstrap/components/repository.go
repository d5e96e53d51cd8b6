package components

import (
	"sportfields/internal/infra/readstore"
	"sportfields/internal/infra/writerepo"
	"sportfields/internal/usecase/commands"
	"sportfields/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		// Write side
		fx.Annotate(
			writerepo.NewUserRepository,
			fx.As(new(commands.UserRepository)),
		),
		fx.Annotate(
			writerepo.NewFieldRepository,
			fx.As(new(commands.FieldRepository)),
		),
		fx.Annotate(
			writerepo.NewReservationRepository,
			fx.As(new(commands.ReservationRepository)),
		),
		// Read side
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		fx.Annotate(
			readstore.NewFieldReadStore,
			fx.As(new(queries.FieldReadStore)),
		),
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
		),
	),
)
