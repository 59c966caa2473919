package bootstrap

import (
	"context"

	"stayhub/internal/infra/ical"
	"stayhub/internal/pkg/config"
	"stayhub/internal/usecase/commands"
	"stayhub/internal/usecase/queries"

	"go.uber.org/fx"
)

var CalendarModule = fx.Module("calendar",
	fx.Provide(
		fx.Annotate(
			ical.NewEncoder,
			fx.As(new(queries.CalendarEncoder)),
		),
		fx.Annotate(
			NewFeedReader,
			fx.As(new(commands.CalendarFeedReader)),
		),
	),
)

func NewFeedReader(lc fx.Lifecycle, cfg config.CalendarConfig) *ical.FeedReader {
	reader := ical.NewFeedReader(cfg)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			reader.Close()
			return nil
		},
	})
	return reader
}
