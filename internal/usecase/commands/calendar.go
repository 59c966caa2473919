package commands

import (
	"context"
	"log/slog"

	"stayhub/internal/domain/calendar"
	"stayhub/internal/infra"
	"stayhub/internal/pkg/clock"
	"stayhub/internal/pkg/errs"
	"stayhub/internal/usecase/queries"
	"stayhub/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrCalendarSourceNotFound = errs.Mark(errs.New("calendar source not found"), errs.ErrNotFound)
	ErrCalendarSourceExists   = errs.Mark(errs.New("calendar source with this url already exists"), errs.ErrConflict)
)

type AddCalendarSourceInput struct {
	Name    string
	URL     string
	Enabled *bool
}

type CalendarSourceCommands interface {
	AddSource(ctx context.Context, callerUserID, propertyID uuid.UUID, in AddCalendarSourceInput) (*queries.CalendarSourceView, error)
	RemoveSource(ctx context.Context, callerUserID, propertyID, sourceID uuid.UUID) error
}

// CalendarSyncCommands imports external feeds as advisory availability.
// Imported ranges never go through the booking overlap check.
type CalendarSyncCommands interface {
	SyncSource(ctx context.Context, callerUserID, propertyID, sourceID uuid.UUID) (*calendar.SyncResult, error)
	SyncAll(ctx context.Context) (calendar.BatchResult, error)
}

type calendarSourceCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewCalendarSourceCommands(uow shared.UnitOfWork, clk clock.Clock) CalendarSourceCommands {
	return &calendarSourceCommandsImpl{uow: uow, clock: clk}
}

func (c *calendarSourceCommandsImpl) AddSource(ctx context.Context, callerUserID, propertyID uuid.UUID, in AddCalendarSourceInput) (*queries.CalendarSourceView, error) {
	enabled := true
	if in.Enabled != nil {
		enabled = *in.Enabled
	}
	src, err := calendar.NewSource(propertyID, in.Name, in.URL, enabled, c.clock.Now())
	if err != nil {
		return nil, err
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := lockOwnedProperty(ctx, tx, callerUserID, propertyID); err != nil {
			return err
		}
		err := tx.CalendarSources().Create(ctx, tx.DB(), src)
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return ErrCalendarSourceExists
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return calendarSourceView(src), nil
}

// RemoveSource drops the source together with its imported availability.
func (c *calendarSourceCommandsImpl) RemoveSource(ctx context.Context, callerUserID, propertyID, sourceID uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := lockOwnedProperty(ctx, tx, callerUserID, propertyID); err != nil {
			return err
		}
		err := tx.CalendarSources().Delete(ctx, tx.DB(), propertyID, sourceID)
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrCalendarSourceNotFound
		}
		return err
	})
}

type calendarSyncCommandsImpl struct {
	uow    shared.UnitOfWork
	reader CalendarFeedReader
	clock  clock.Clock
}

func NewCalendarSyncCommands(uow shared.UnitOfWork, reader CalendarFeedReader, clk clock.Clock) CalendarSyncCommands {
	return &calendarSyncCommandsImpl{uow: uow, reader: reader, clock: clk}
}

// SyncSource runs one source on demand. A feed failure is reported in the
// result, not as an error; errors are for lookup and authorization only.
func (c *calendarSyncCommandsImpl) SyncSource(ctx context.Context, callerUserID, propertyID, sourceID uuid.UUID) (*calendar.SyncResult, error) {
	reads := c.uow.CommandReads()

	p, err := reads.PropertyByID(ctx, propertyID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, queries.ErrPropertyNotFound
		}
		return nil, err
	}
	if !p.IsOwnedBy(callerUserID) {
		return nil, queries.ErrPropertyAccess
	}

	src, err := reads.CalendarSourceByID(ctx, propertyID, sourceID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCalendarSourceNotFound
		}
		return nil, err
	}

	result := c.syncOne(ctx, src)
	return &result, nil
}

// SyncAll walks every enabled source. One failing feed is logged and
// recorded on its source, then the batch moves on.
func (c *calendarSyncCommandsImpl) SyncAll(ctx context.Context) (calendar.BatchResult, error) {
	sources, err := c.uow.CommandReads().EnabledCalendarSources(ctx)
	if err != nil {
		return calendar.BatchResult{}, err
	}

	batch := calendar.BatchResult{Results: make([]calendar.SyncResult, 0, len(sources))}
	for _, src := range sources {
		if err := ctx.Err(); err != nil {
			return batch, err
		}
		batch.Results = append(batch.Results, c.syncOne(ctx, src))
	}

	slog.Info("calendar sync finished",
		"sources", len(batch.Results),
		"failed", batch.Failed(),
		"events_stored", batch.EventsStored())
	return batch, nil
}

func (c *calendarSyncCommandsImpl) syncOne(ctx context.Context, src *shared.CalendarSourceSnapshot) calendar.SyncResult {
	result := calendar.SyncResult{SourceID: src.ID, PropertyID: src.PropertyID}

	if err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.CalendarSources().MarkSyncing(ctx, tx.DB(), src.ID, c.clock.Now())
	}); err != nil {
		slog.Warn("failed to mark calendar source syncing", "source_id", src.ID, "error", err.Error())
	}

	events, err := c.reader.Read(ctx, src.URL)
	if err != nil {
		return c.fail(ctx, result, err)
	}
	result.EventsFound = len(events)

	valid := make([]calendar.Event, 0, len(events))
	for _, ev := range events {
		if n, ok := ev.Normalize(); ok {
			valid = append(valid, n)
		}
	}

	result.SyncedAt = c.clock.Now()
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		stored, removed, err := tx.Availabilities().ReplaceForSource(ctx, tx.DB(), src, valid, result.SyncedAt)
		if err != nil {
			return err
		}
		result.EventsStored = stored
		result.Removed = removed
		return tx.CalendarSources().RecordSyncResult(ctx, tx.DB(), result)
	})
	if err != nil {
		result.EventsStored, result.Removed = 0, 0
		return c.fail(ctx, result, err)
	}

	slog.Info("calendar source synced",
		"source_id", src.ID,
		"property_id", src.PropertyID,
		"events_found", result.EventsFound,
		"events_stored", result.EventsStored,
		"removed", result.Removed)
	return result
}

// fail records the error on the source and reports zero events.
func (c *calendarSyncCommandsImpl) fail(ctx context.Context, result calendar.SyncResult, cause error) calendar.SyncResult {
	result.Err = cause
	result.SyncedAt = c.clock.Now()
	slog.Warn("calendar source sync failed", "source_id", result.SourceID, "error", cause.Error())

	if err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.CalendarSources().RecordSyncResult(ctx, tx.DB(), result)
	}); err != nil {
		slog.Error("failed to record calendar sync failure", "source_id", result.SourceID, "error", err.Error())
	}
	return result
}
