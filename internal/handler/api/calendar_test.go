//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"stayhub/internal/domain/calendar"
	"stayhub/internal/handler/api"
	resdto "stayhub/internal/handler/dto/response"
	"stayhub/internal/pkg/errs"
	"stayhub/internal/pkg/validation"
	"stayhub/internal/usecase/commands"
	"stayhub/internal/usecase/queries"
	"stayhub/tests/common/builder"
	"stayhub/tests/common/httptest"
	commandsmock "stayhub/tests/mock/commands"
	queriesmock "stayhub/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CalendarHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	calendars    *queriesmock.MockCalendarQueries
	availability *queriesmock.MockAvailabilityQueries
	sources      *commandsmock.MockCalendarSourceCommands
	sync         *commandsmock.MockCalendarSyncCommands
	callerID     uuid.UUID
	propertyID   uuid.UUID
}

func (s *CalendarHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	v, ok := binding.Validator.Engine().(*validator.Validate)
	s.Require().True(ok)
	s.Require().NoError(validation.Register(v))

	s.router = gin.New()
	s.mockCtrl = gomock.NewController(s.T())
	s.calendars = queriesmock.NewMockCalendarQueries(s.mockCtrl)
	s.availability = queriesmock.NewMockAvailabilityQueries(s.mockCtrl)
	s.sources = commandsmock.NewMockCalendarSourceCommands(s.mockCtrl)
	s.sync = commandsmock.NewMockCalendarSyncCommands(s.mockCtrl)
	s.callerID = uuid.New()
	s.propertyID = uuid.New()

	h := api.NewCalendarHandler(s.calendars, s.availability, s.sources, s.sync)
	s.router.GET("/calendar/:token", h.ExportByToken)
	authed := s.router.Group("", func(c *gin.Context) {
		c.Set("user_id", s.callerID)
	})
	authed.GET("/properties/:id/calendar.ics", h.ExportProperty)
	authed.POST("/properties/:id/calendar-sources", h.AddSource)
	authed.POST("/properties/:id/calendar-sources/:sourceId/sync", h.SyncSource)
	authed.GET("/properties/:id/availabilities", h.ListAvailabilities)
}

func (s *CalendarHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCalendarHandlerSuite(t *testing.T) {
	suite.Run(t, new(CalendarHandlerTestSuite))
}

func (s *CalendarHandlerTestSuite) TestExportByToken() {
	feed := &queries.CalendarFeed{
		Filename:   s.propertyID.String() + ".ics",
		Content:    "BEGIN:VCALENDAR\r\nEND:VCALENDAR\r\n",
		EventCount: 2,
	}

	s.Run("success: .ics suffix is stripped", func() {
		s.calendars.EXPECT().ExportByToken(gomock.Any(), "abc").Return(feed, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/calendar/abc.ics", nil, "")

		s.Equal(http.StatusOK, rec.Code)
		httptest.AssertHeaders(s.T(), rec, map[string]string{
			"Content-Type":        "text/calendar; charset=utf-8",
			"Content-Disposition": `inline; filename="` + feed.Filename + `"`,
			"X-Event-Count":       "2",
		})
		s.Equal(feed.Content, rec.Body.String())
	})

	s.Run("unknown token: 404", func() {
		s.calendars.EXPECT().ExportByToken(gomock.Any(), "nope").Return(nil, queries.ErrExportTokenNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/calendar/nope", nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "calendar feed not found")
	})
}

func (s *CalendarHandlerTestSuite) TestExportProperty_Forbidden() {
	s.calendars.EXPECT().ExportProperty(gomock.Any(), s.callerID, s.propertyID).Return(nil, queries.ErrPropertyAccess)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/properties/"+s.propertyID.String()+"/calendar.ics", nil, "")

	httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
}

func (s *CalendarHandlerTestSuite) TestAddSource() {
	url := "/properties/" + s.propertyID.String() + "/calendar-sources"

	s.Run("success", func() {
		view := &queries.CalendarSourceView{
			ID:         uuid.New(),
			PropertyID: s.propertyID,
			Name:       "Airbnb",
			URL:        "https://example.com/a.ics",
			Enabled:    true,
			SyncStatus: "pending",
			CreatedAt:  builder.BaseTime,
		}
		s.sources.EXPECT().AddSource(gomock.Any(), s.callerID, s.propertyID, commands.AddCalendarSourceInput{
			Name: "Airbnb",
			URL:  "webcal://example.com/a.ics",
		}).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"name": "Airbnb", "url": "webcal://example.com/a.ics"}, "")

		var resp resdto.CalendarSourceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &resp)
		s.Equal(view.ID, resp.ID)
		s.Equal("https://example.com/a.ics", resp.URL)
	})

	s.Run("unsupported scheme is rejected before the use case", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"name": "Airbnb", "url": "ftp://example.com/a.ics"}, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("duplicate url: 409", func() {
		s.sources.EXPECT().AddSource(gomock.Any(), s.callerID, s.propertyID, gomock.Any()).
			Return(nil, commands.ErrCalendarSourceExists)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"name": "Airbnb", "url": "https://example.com/a.ics"}, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already exists")
	})
}

func (s *CalendarHandlerTestSuite) TestSyncSource_FailureIsReportedInBody() {
	sourceID := uuid.New()
	s.sync.EXPECT().SyncSource(gomock.Any(), s.callerID, s.propertyID, sourceID).Return(&calendar.SyncResult{
		SourceID:   sourceID,
		PropertyID: s.propertyID,
		Err:        errs.New("feed responded with status 500"),
		SyncedAt:   builder.BaseTime,
	}, nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost,
		"/properties/"+s.propertyID.String()+"/calendar-sources/"+sourceID.String()+"/sync", nil, "")

	var resp resdto.SyncResultResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
	s.Equal("error", resp.Status)
	s.Require().NotNil(resp.Error)
	s.Contains(*resp.Error, "status 500")
	s.Zero(resp.EventsStored)
}

func (s *CalendarHandlerTestSuite) TestListAvailabilities() {
	views := []*queries.AvailabilityView{{
		ID:         uuid.New(),
		PropertyID: s.propertyID,
		SourceID:   uuid.New(),
		SourceName: "Booking.com",
		UID:        "x@ota",
		StartDate:  builder.Day("2025-12-15"),
		EndDate:    builder.Day("2025-12-20"),
	}}
	s.availability.EXPECT().ListForProperty(gomock.Any(), s.callerID, s.propertyID).Return(views, nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/properties/"+s.propertyID.String()+"/availabilities", nil, "")

	var resp []resdto.AvailabilityResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
	s.Require().Len(resp, 1)
	s.Equal("x@ota", resp[0].UID)
}
