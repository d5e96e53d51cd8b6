package components

import (
	"sportfields/internal/pkg/clock"
	"sportfields/internal/pkg/config"
	"sportfields/internal/pkg/jwt"
	"sportfields/internal/usecase/commands"
	"sportfields/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		func(users commands.UserRepository, mailer commands.Mailer, jwtService *jwt.Service, clk clock.Clock, cfg config.Config) commands.AuthCommands {
			return commands.NewAuthCommands(users, mailer, jwtService, clk, cfg.Server.FrontendURL)
		},
		commands.NewFieldCommands,
		commands.NewReservationCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewFieldQueries,
		queries.NewReservationQueries,
		queries.NewAvailabilityQueries,
	),
)
