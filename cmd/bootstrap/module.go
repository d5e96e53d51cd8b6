package bootstrap

import (
	"sportfields/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	RedisModule,
	JWTModule,
	ExternalModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
