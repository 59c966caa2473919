package components

import (
	"stayhub/internal/job"

	"go.uber.org/fx"
)

var JobModule = fx.Module("job",
	fx.Provide(
		job.NewCalendarSyncJob,
	),
	fx.Invoke(RegisterCalendarSyncJob),
)

func RegisterCalendarSyncJob(lc fx.Lifecycle, j *job.CalendarSyncJob) {
	lc.Append(fx.Hook{
		OnStart: j.Start,
		OnStop:  j.Stop,
	})
}
