//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"stayhub/internal/infra"
	"stayhub/internal/pkg/errs"
	"stayhub/internal/usecase/queries"
	queriesmock "stayhub/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CalendarQueriesTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	properties *queriesmock.MockPropertyReadStore
	bookings   *queriesmock.MockBookingReadStore
	sources    *queriesmock.MockCalendarSourceReadStore
	encoder    *queriesmock.MockCalendarEncoder
	queries    queries.CalendarQueries
	owner      uuid.UUID
	property   *queries.PropertyView
}

func (s *CalendarQueriesTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.properties = queriesmock.NewMockPropertyReadStore(s.ctrl)
	s.bookings = queriesmock.NewMockBookingReadStore(s.ctrl)
	s.sources = queriesmock.NewMockCalendarSourceReadStore(s.ctrl)
	s.encoder = queriesmock.NewMockCalendarEncoder(s.ctrl)
	s.queries = queries.NewCalendarQueries(s.properties, s.bookings, s.sources, s.encoder)
	s.owner = uuid.New()
	s.property = &queries.PropertyView{ID: uuid.New(), OwnerID: s.owner, Name: "Sea View", ExportToken: "tok"}
}

func (s *CalendarQueriesTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestCalendarQueriesTestSuite(t *testing.T) {
	suite.Run(t, new(CalendarQueriesTestSuite))
}

func dec(d, h int) time.Time {
	return time.Date(2025, time.December, d, h, 0, 0, 0, time.UTC)
}

func (s *CalendarQueriesTestSuite) TestExportProperty_OneEventPerBooking() {
	obs := "door code 1234"
	bookings := []*queries.BookingView{
		{ID: uuid.New(), PropertyID: s.property.ID, StartDate: dec(15, 0), EndDate: dec(20, 0), Type: "RESERVATION", Observations: &obs},
		{ID: uuid.New(), PropertyID: s.property.ID, StartDate: dec(22, 14), EndDate: dec(24, 11), Type: "MAINTENANCE"},
		{ID: uuid.New(), PropertyID: s.property.ID, StartDate: dec(26, 0), EndDate: dec(27, 0), Type: "BLOCKED"},
	}
	s.properties.EXPECT().FindByID(gomock.Any(), s.property.ID).Return(s.property, nil)
	s.bookings.EXPECT().ListByProperty(gomock.Any(), s.property.ID).Return(bookings, nil)

	var captured queries.CalendarDocument
	s.encoder.EXPECT().Encode(gomock.Any()).DoAndReturn(func(doc queries.CalendarDocument) (string, error) {
		captured = doc
		return "BEGIN:VCALENDAR\r\nEND:VCALENDAR\r\n", nil
	})

	feed, err := s.queries.ExportProperty(context.Background(), s.owner, s.property.ID)

	s.Require().NoError(err)
	s.Equal(3, feed.EventCount)
	s.Equal(s.property.ID.String()+".ics", feed.Filename)
	s.Equal("Sea View", captured.Name)
	s.Require().Len(captured.Events, 3)

	s.Equal(queries.EventUID(bookings[0].ID), captured.Events[0].UID)
	s.Equal("Reserved", captured.Events[0].Summary)
	s.Equal(obs, captured.Events[0].Description)
	s.Equal(dec(15, 0), captured.Events[0].Start)
	s.Equal(dec(20, 0), captured.Events[0].End)

	s.Equal("Maintenance", captured.Events[1].Summary)
	s.Equal(dec(22, 0), captured.Events[1].Start)
	s.Equal(dec(25, 0), captured.Events[1].End)

	s.Equal("Blocked", captured.Events[2].Summary)
}

func (s *CalendarQueriesTestSuite) TestExportProperty_NoBookingsStillRenders() {
	s.properties.EXPECT().FindByID(gomock.Any(), s.property.ID).Return(s.property, nil)
	s.bookings.EXPECT().ListByProperty(gomock.Any(), s.property.ID).Return([]*queries.BookingView{}, nil)
	s.encoder.EXPECT().Encode(gomock.Any()).Return("BEGIN:VCALENDAR\r\nEND:VCALENDAR\r\n", nil)

	feed, err := s.queries.ExportProperty(context.Background(), s.owner, s.property.ID)

	s.Require().NoError(err)
	s.Equal(0, feed.EventCount)
}

func (s *CalendarQueriesTestSuite) TestExportProperty_ForeignOwnerIsForbidden() {
	s.properties.EXPECT().FindByID(gomock.Any(), s.property.ID).Return(s.property, nil)

	_, err := s.queries.ExportProperty(context.Background(), uuid.New(), s.property.ID)

	s.True(errs.Is(err, errs.ErrForbidden))
}

func (s *CalendarQueriesTestSuite) TestExportByToken_UnknownTokenIsNotFound() {
	s.properties.EXPECT().FindByExportToken(gomock.Any(), "missing").
		Return(nil, infra.WrapRepoErr("property not found", nil, infra.KindNotFound))

	_, err := s.queries.ExportByToken(context.Background(), "missing")

	s.ErrorIs(err, queries.ErrExportTokenNotFound)
	s.True(errs.Is(err, errs.ErrNotFound))
}

func (s *CalendarQueriesTestSuite) TestExportByToken_EmptyToken() {
	_, err := s.queries.ExportByToken(context.Background(), "")

	s.True(errs.Is(err, errs.ErrNotFound))
}

func (s *CalendarQueriesTestSuite) TestListSources() {
	views := []*queries.CalendarSourceView{{ID: uuid.New(), PropertyID: s.property.ID, Name: "Airbnb"}}
	s.properties.EXPECT().FindByID(gomock.Any(), s.property.ID).Return(s.property, nil)
	s.sources.EXPECT().ListByProperty(gomock.Any(), s.property.ID).Return(views, nil)

	got, err := s.queries.ListSources(context.Background(), s.owner, s.property.ID)

	s.Require().NoError(err)
	s.Equal(views, got)
}
