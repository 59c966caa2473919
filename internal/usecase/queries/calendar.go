package queries

import (
	"context"
	"fmt"
	"time"

	"stayhub/internal/domain/booking"
	"stayhub/internal/domain/calendar"
	"stayhub/internal/infra"
	"stayhub/internal/pkg/errs"

	"github.com/google/uuid"
)

const eventUIDDomain = "stayhub"

var ErrExportTokenNotFound = errs.Mark(errs.New("calendar feed not found"), errs.ErrNotFound)

// CalendarDocument is the renderer-neutral form of an exported calendar.
type CalendarDocument struct {
	Name   string
	Events []CalendarEvent
}

type CalendarEvent struct {
	UID         string
	Summary     string
	Description string
	Start       time.Time
	End         time.Time
	UpdatedAt   time.Time
}

// CalendarFeed is a rendered text/calendar body ready to be served.
type CalendarFeed struct {
	Filename   string
	Content    string
	EventCount int
}

type CalendarEncoder interface {
	Encode(doc CalendarDocument) (string, error)
}

type CalendarSourceReadStore interface {
	ListByProperty(ctx context.Context, propertyID uuid.UUID) ([]*CalendarSourceView, error)
}

type CalendarQueries interface {
	ExportProperty(ctx context.Context, callerUserID, propertyID uuid.UUID) (*CalendarFeed, error)
	ExportByToken(ctx context.Context, token string) (*CalendarFeed, error)
	ListSources(ctx context.Context, callerUserID, propertyID uuid.UUID) ([]*CalendarSourceView, error)
}

type calendarQueriesImpl struct {
	properties PropertyReadStore
	bookings   BookingReadStore
	sources    CalendarSourceReadStore
	encoder    CalendarEncoder
}

func NewCalendarQueries(
	properties PropertyReadStore,
	bookings BookingReadStore,
	sources CalendarSourceReadStore,
	encoder CalendarEncoder,
) CalendarQueries {
	return &calendarQueriesImpl{
		properties: properties,
		bookings:   bookings,
		sources:    sources,
		encoder:    encoder,
	}
}

func (q *calendarQueriesImpl) ExportProperty(ctx context.Context, callerUserID, propertyID uuid.UUID) (*CalendarFeed, error) {
	p, err := authorizeProperty(ctx, q.properties, callerUserID, propertyID)
	if err != nil {
		return nil, err
	}
	return q.export(ctx, p)
}

// ExportByToken serves the unauthenticated feed OTAs subscribe to.
func (q *calendarQueriesImpl) ExportByToken(ctx context.Context, token string) (*CalendarFeed, error) {
	if token == "" {
		return nil, ErrExportTokenNotFound
	}
	p, err := q.properties.FindByExportToken(ctx, token)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrExportTokenNotFound
		}
		return nil, err
	}
	return q.export(ctx, p)
}

func (q *calendarQueriesImpl) ListSources(ctx context.Context, callerUserID, propertyID uuid.UUID) ([]*CalendarSourceView, error) {
	if _, err := authorizeProperty(ctx, q.properties, callerUserID, propertyID); err != nil {
		return nil, err
	}
	return q.sources.ListByProperty(ctx, propertyID)
}

func (q *calendarQueriesImpl) export(ctx context.Context, p *PropertyView) (*CalendarFeed, error) {
	bookings, err := q.bookings.ListByProperty(ctx, p.ID)
	if err != nil {
		return nil, err
	}

	doc := BuildCalendarDocument(p.Name, bookings)
	content, err := q.encoder.Encode(doc)
	if err != nil {
		return nil, errs.Wrap(err, "failed to encode calendar")
	}

	return &CalendarFeed{
		Filename:   fmt.Sprintf("%s.ics", p.ID),
		Content:    content,
		EventCount: len(doc.Events),
	}, nil
}

// BuildCalendarDocument maps each booking to exactly one all-day event.
func BuildCalendarDocument(name string, bookings []*BookingView) CalendarDocument {
	doc := CalendarDocument{
		Name:   name,
		Events: make([]CalendarEvent, 0, len(bookings)),
	}
	for _, b := range bookings {
		start, end := calendar.DayRange(b.StartDate, b.EndDate)
		ev := CalendarEvent{
			UID:       EventUID(b.ID),
			Summary:   eventSummary(b.Type),
			Start:     start,
			End:       end,
			UpdatedAt: b.UpdatedAt,
		}
		if b.Observations != nil {
			ev.Description = *b.Observations
		}
		doc.Events = append(doc.Events, ev)
	}
	return doc
}

func EventUID(bookingID uuid.UUID) string {
	return bookingID.String() + "@" + eventUIDDomain
}

func eventSummary(t string) string {
	switch booking.Type(t) {
	case booking.TypeReservation:
		return "Reserved"
	case booking.TypeBlocked:
		return "Blocked"
	case booking.TypeMaintenance:
		return "Maintenance"
	default:
		return "Not available"
	}
}
