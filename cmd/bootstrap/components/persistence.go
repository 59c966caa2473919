package components

import (
	"stayhub/internal/infra/readstore"
	sqlc "stayhub/internal/infra/sqlc/generated"
	"stayhub/internal/infra/uow"
	"stayhub/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	unitOfWorkModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// User
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.UserReadQueries)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		// Property
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.PropertyReadQueries)),
		),
		fx.Annotate(
			readstore.NewPropertyReadStore,
			fx.As(new(queries.PropertyReadStore)),
		),
		// Booking
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.BookingReadQueries)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		// CalendarSource
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.CalendarSourceReadQueries)),
		),
		fx.Annotate(
			readstore.NewCalendarSourceReadStore,
			fx.As(new(queries.CalendarSourceReadStore)),
		),
		// Availability
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.AvailabilityReadQueries)),
		),
		fx.Annotate(
			readstore.NewAvailabilityReadStore,
			fx.As(new(queries.AvailabilityReadStore)),
		),
	),
)

// write repositories are built per transaction inside the unit of work
var unitOfWorkModule = fx.Module("persistence/uow",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
