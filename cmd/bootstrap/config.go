package bootstrap

import (
	"stayhub/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		func(cfg config.Config) config.CalendarConfig { return cfg.Calendar },
		func(cfg config.Config) config.ImportConfig { return cfg.Import },
	),
)
