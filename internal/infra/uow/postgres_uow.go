package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"stayhub/internal/domain/booking"
	"stayhub/internal/domain/property"
	"stayhub/internal/infra"
	"stayhub/internal/infra/repository"
	"stayhub/internal/infra/repository/converter"
	sqlc "stayhub/internal/infra/sqlc/generated"
	"stayhub/internal/pkg/errs"
	"stayhub/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
	q    *sqlc.Queries
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries) shared.UnitOfWork {
	return &PostgresUoW{
		pool: pool,
		q:    q,
	}
}

// ReadCommitted prevents dirty reads while allowing concurrent writes
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

// Serializable makes the booking conflict check and the write one atomic step;
// 40001 aborts are retried below.
func (u *PostgresUoW) WithinSerializable(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable}, fn)
}

// Read-only transaction for consistent multi-table snapshots
func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return u.runReadOnlyTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly}, fn)
}

func (u *PostgresUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, u.pool)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{uow: u, dbtx: u.pool}
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{
			dbtx: pgxTx,
			uow:  u,
		}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func (u *PostgresUoW) runReadOnlyTx(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, options)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	defer func() {
		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("failed to rollback read-only transaction", "error", rollbackErr.Error())
			}
		}
	}()

	if err := fn(ctx, pgxTx); err != nil {
		return err
	}

	return pgxTx.Commit(ctx)
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// Fallback to a simple calculation if crypto/rand fails
		return 0
	}
	// Safe conversion: mask high bit to ensure positive int64
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- Intentionally safe conversion after masking
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx sqlc.DBTX
	uow  *PostgresUoW

	// Lazy-initialized repositories
	userRepo           shared.UserRepository
	propertyRepo       shared.PropertyRepository
	bookingRepo        shared.BookingRepository
	calendarSourceRepo shared.CalendarSourceRepository
	availabilityRepo   shared.AvailabilityRepository
	commandReads       shared.CommandReads
}

func (t *pgTx) DB() sqlc.DBTX {
	return t.dbtx
}

func (t *pgTx) Users() shared.UserRepository {
	if t.userRepo == nil {
		t.userRepo = repository.NewUserRepository(t.uow.q, t.dbtx)
	}
	return t.userRepo
}

func (t *pgTx) Properties() shared.PropertyRepository {
	if t.propertyRepo == nil {
		t.propertyRepo = repository.NewPropertyRepository(t.uow.q, t.dbtx)
	}
	return t.propertyRepo
}

func (t *pgTx) Bookings() shared.BookingRepository {
	if t.bookingRepo == nil {
		t.bookingRepo = repository.NewBookingRepository(t.uow.q, t.dbtx)
	}
	return t.bookingRepo
}

func (t *pgTx) CalendarSources() shared.CalendarSourceRepository {
	if t.calendarSourceRepo == nil {
		t.calendarSourceRepo = repository.NewCalendarSourceRepository(t.uow.q, t.dbtx)
	}
	return t.calendarSourceRepo
}

func (t *pgTx) Availabilities() shared.AvailabilityRepository {
	if t.availabilityRepo == nil {
		t.availabilityRepo = repository.NewAvailabilityRepository(t.uow.q, t.dbtx)
	}
	return t.availabilityRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{
			uow:  t.uow,
			dbtx: t.dbtx,
		}
	}
	return t.commandReads
}

// commandReads loads write-side state as domain objects. Inside a tx it
// reads through the tx so checks see the same snapshot as the write.
type commandReads struct {
	uow  *PostgresUoW
	dbtx sqlc.DBTX
}

func (r *commandReads) UserByEmail(ctx context.Context, email string) (*shared.UserCredentials, error) {
	row, err := r.uow.q.FindUserByEmail(ctx, r.dbtx, email)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find user by email", err)
	}

	return toUserCredentials(row), nil
}

func (r *commandReads) UserByID(ctx context.Context, id uuid.UUID) (*shared.UserCredentials, error) {
	row, err := r.uow.q.FindUserByID(ctx, r.dbtx, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return toUserCredentials(row), nil
}

func toUserCredentials(row sqlc.Users) *shared.UserCredentials {
	return &shared.UserCredentials{
		ID:           row.ID,
		Email:        row.Email,
		PasswordHash: row.PasswordHash,
		IsActive:     row.IsActive,
	}
}

func (r *commandReads) PropertyByID(ctx context.Context, id uuid.UUID) (*property.Property, error) {
	row, err := r.uow.q.GetPropertyByID(ctx, r.dbtx, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find property", err)
	}
	return converter.PropertyFromInfra(row)
}

func (r *commandReads) BookingsByProperty(ctx context.Context, propertyID uuid.UUID) ([]*booking.Booking, error) {
	rows, err := r.uow.q.ListBookingsByProperty(ctx, r.dbtx, propertyID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	return converter.BookingsFromInfra(rows)
}

func (r *commandReads) BookingByID(ctx context.Context, propertyID, bookingID uuid.UUID) (*booking.Booking, error) {
	row, err := r.uow.q.GetBookingByID(ctx, r.dbtx, sqlc.GetBookingByIDParams{
		ID:         bookingID,
		PropertyID: propertyID,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}
	return converter.BookingFromInfra(row)
}

func (r *commandReads) CalendarSourceByID(ctx context.Context, propertyID, sourceID uuid.UUID) (*shared.CalendarSourceSnapshot, error) {
	row, err := r.uow.q.GetCalendarSourceByID(ctx, r.dbtx, sqlc.GetCalendarSourceByIDParams{
		ID:         sourceID,
		PropertyID: propertyID,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find calendar source", err)
	}
	return converter.CalendarSourceSnapshotFromInfra(row), nil
}

func (r *commandReads) EnabledCalendarSources(ctx context.Context) ([]*shared.CalendarSourceSnapshot, error) {
	rows, err := r.uow.q.ListEnabledCalendarSources(ctx, r.dbtx)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list enabled calendar sources", err)
	}
	return converter.CalendarSourceSnapshotsFromInfra(rows), nil
}
