package bootstrap

import (
	"stayhub/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	JWTModule,
	ValidatorModule,
	CalendarModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
	components.JobModule,
)
