package shared

import (
	"context"
	"time"

	"stayhub/internal/domain/booking"
	"stayhub/internal/domain/calendar"
	"stayhub/internal/domain/property"
	"stayhub/internal/domain/user"
	sqlc "stayhub/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinSerializable: Same as Within at SERIALIZABLE isolation
	WithinSerializable(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Users() UserRepository
	Properties() PropertyRepository
	Bookings() BookingRepository
	CalendarSources() CalendarSourceRepository
	Availabilities() AvailabilityRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	UserByEmail(ctx context.Context, email string) (*UserCredentials, error)
	UserByID(ctx context.Context, id uuid.UUID) (*UserCredentials, error)
	PropertyByID(ctx context.Context, id uuid.UUID) (*property.Property, error)
	BookingsByProperty(ctx context.Context, propertyID uuid.UUID) ([]*booking.Booking, error)
	BookingByID(ctx context.Context, propertyID, bookingID uuid.UUID) (*booking.Booking, error)
	CalendarSourceByID(ctx context.Context, propertyID, sourceID uuid.UUID) (*CalendarSourceSnapshot, error)
	EnabledCalendarSources(ctx context.Context) ([]*CalendarSourceSnapshot, error)
}

type UserRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, u *user.User) error
	UpdateLastLogin(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID, at time.Time) error
}

type PropertyRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, p *property.Property) error
	Update(ctx context.Context, tx sqlc.DBTX, p *property.Property) error
	Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
	// LockByID loads the property with a row lock held until the transaction ends.
	LockByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*property.Property, error)
}

type BookingRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error
	Update(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error
	Delete(ctx context.Context, tx sqlc.DBTX, propertyID, bookingID uuid.UUID) error
}

type CalendarSourceRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, s *calendar.Source) error
	Delete(ctx context.Context, tx sqlc.DBTX, propertyID, sourceID uuid.UUID) error
	MarkSyncing(ctx context.Context, tx sqlc.DBTX, sourceID uuid.UUID, at time.Time) error
	RecordSyncResult(ctx context.Context, tx sqlc.DBTX, result calendar.SyncResult) error
}

type AvailabilityRepository interface {
	// ReplaceForSource upserts events by uid and removes rows the feed no longer lists.
	ReplaceForSource(ctx context.Context, tx sqlc.DBTX, source *CalendarSourceSnapshot, events []calendar.Event, now time.Time) (stored int, removed int64, err error)
}
