//go:build unit

package commands_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"stayhub/internal/domain/calendar"
	"stayhub/internal/domain/property"
	"stayhub/internal/infra"
	"stayhub/internal/infra/ical"
	sqlc "stayhub/internal/infra/sqlc/generated"
	"stayhub/internal/pkg/clock"
	"stayhub/internal/pkg/errs"
	"stayhub/internal/usecase/commands"
	"stayhub/internal/usecase/shared"
	"stayhub/tests/common/builder"
	commandsmock "stayhub/tests/mock/commands"
	sharedmock "stayhub/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CalendarCommandsTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	uow       *sharedmock.MockUnitOfWork
	tx        *sharedmock.MockTx
	reads     *sharedmock.MockCommandReads
	props     *sharedmock.MockPropertyRepository
	sources   *sharedmock.MockCalendarSourceRepository
	avail     *sharedmock.MockAvailabilityRepository
	reader    *commandsmock.MockCalendarFeedReader
	sync      commands.CalendarSyncCommands
	sourceCmd commands.CalendarSourceCommands

	ownerID  uuid.UUID
	property *property.Property
	recorded []calendar.SyncResult
}

func TestCalendarCommandsSuite(t *testing.T) {
	suite.Run(t, new(CalendarCommandsTestSuite))
}

func (s *CalendarCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.uow = sharedmock.NewMockUnitOfWork(s.ctrl)
	s.tx = sharedmock.NewMockTx(s.ctrl)
	s.reads = sharedmock.NewMockCommandReads(s.ctrl)
	s.props = sharedmock.NewMockPropertyRepository(s.ctrl)
	s.sources = sharedmock.NewMockCalendarSourceRepository(s.ctrl)
	s.avail = sharedmock.NewMockAvailabilityRepository(s.ctrl)
	s.reader = commandsmock.NewMockCalendarFeedReader(s.ctrl)

	clk := clock.NewMockClock(builder.BaseTime)
	s.sync = commands.NewCalendarSyncCommands(s.uow, s.reader, clk)
	s.sourceCmd = commands.NewCalendarSourceCommands(s.uow, clk)

	s.ownerID = uuid.New()
	p, err := builder.NewPropertyBuilder().WithOwner(s.ownerID).BuildDomain()
	s.Require().NoError(err)
	s.property = p
	s.recorded = nil

	s.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.tx)
		}).AnyTimes()
	s.uow.EXPECT().CommandReads().Return(s.reads).AnyTimes()
	s.tx.EXPECT().DB().Return(nil).AnyTimes()
	s.tx.EXPECT().Reads().Return(s.reads).AnyTimes()
	s.tx.EXPECT().Properties().Return(s.props).AnyTimes()
	s.tx.EXPECT().CalendarSources().Return(s.sources).AnyTimes()
	s.tx.EXPECT().Availabilities().Return(s.avail).AnyTimes()

	s.props.EXPECT().LockByID(gomock.Any(), gomock.Any(), s.property.ID()).Return(s.property, nil).AnyTimes()
	s.sources.EXPECT().MarkSyncing(gomock.Any(), gomock.Any(), gomock.Any(), builder.BaseTime).Return(nil).AnyTimes()
	s.sources.EXPECT().RecordSyncResult(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ sqlc.DBTX, r calendar.SyncResult) error {
			s.recorded = append(s.recorded, r)
			return nil
		}).AnyTimes()
}

func (s *CalendarCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *CalendarCommandsTestSuite) snapshot(url string) *shared.CalendarSourceSnapshot {
	return &shared.CalendarSourceSnapshot{
		ID:         uuid.New(),
		PropertyID: s.property.ID(),
		Name:       "OTA",
		URL:        url,
		Enabled:    true,
	}
}

func (s *CalendarCommandsTestSuite) TestSyncAll_FailureDoesNotStopBatch() {
	broken := s.snapshot("https://broken.example.com/a.ics")
	healthy := s.snapshot("https://ok.example.com/b.ics")
	s.reads.EXPECT().EnabledCalendarSources(gomock.Any()).
		Return([]*shared.CalendarSourceSnapshot{broken, healthy}, nil)

	events := []calendar.Event{
		{UID: "a", AllDay: true, Start: builder.BaseTime},
		{UID: "", Start: builder.BaseTime, End: builder.BaseTime.Add(time.Hour)},
	}
	s.reader.EXPECT().Read(gomock.Any(), broken.URL).Return(nil, errs.Mark(errs.New("dial tcp: timeout"), errs.ErrUnavailable))
	s.reader.EXPECT().Read(gomock.Any(), healthy.URL).Return(events, nil)
	s.avail.EXPECT().ReplaceForSource(gomock.Any(), gomock.Any(), healthy, gomock.Len(1), builder.BaseTime).
		Return(1, int64(2), nil)

	batch, err := s.sync.SyncAll(context.Background())

	s.Require().NoError(err)
	s.Require().Len(batch.Results, 2)
	s.Equal(1, batch.Failed())

	s.Error(batch.Results[0].Err)
	s.Equal(calendar.SyncStatusError, batch.Results[0].Status())
	s.Zero(batch.Results[0].EventsStored)

	s.NoError(batch.Results[1].Err)
	s.Equal(2, batch.Results[1].EventsFound)
	s.Equal(1, batch.Results[1].EventsStored)
	s.Equal(int64(2), batch.Results[1].Removed)

	s.Require().Len(s.recorded, 2)
	s.Equal(broken.ID, s.recorded[0].SourceID)
	s.Error(s.recorded[0].Err)
	s.Equal(healthy.ID, s.recorded[1].SourceID)
	s.NoError(s.recorded[1].Err)
}

func (s *CalendarCommandsTestSuite) TestSyncAll_StoreFailureIsRecorded() {
	src := s.snapshot("https://ok.example.com/b.ics")
	s.reads.EXPECT().EnabledCalendarSources(gomock.Any()).Return([]*shared.CalendarSourceSnapshot{src}, nil)
	s.reader.EXPECT().Read(gomock.Any(), src.URL).Return([]calendar.Event{}, nil)
	s.avail.EXPECT().ReplaceForSource(gomock.Any(), gomock.Any(), src, gomock.Any(), gomock.Any()).
		Return(0, int64(0), infra.WrapRepoErr("replace availabilities", nil, infra.KindDBFailure))

	batch, err := s.sync.SyncAll(context.Background())

	s.Require().NoError(err)
	s.Equal(1, batch.Failed())
	s.Require().Len(s.recorded, 1)
	s.Error(s.recorded[0].Err)
}

func (s *CalendarCommandsTestSuite) TestSyncAll_CancelledContext() {
	src := s.snapshot("https://ok.example.com/b.ics")
	s.reads.EXPECT().EnabledCalendarSources(gomock.Any()).Return([]*shared.CalendarSourceSnapshot{src}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	batch, err := s.sync.SyncAll(ctx)

	s.ErrorIs(err, context.Canceled)
	s.Empty(batch.Results)
}

func (s *CalendarCommandsTestSuite) TestSyncSource() {
	src := s.snapshot("https://ok.example.com/b.ics")

	s.Run("他人の物件はForbidden", func() {
		s.reads.EXPECT().PropertyByID(gomock.Any(), s.property.ID()).Return(s.property, nil)

		_, err := s.sync.SyncSource(context.Background(), uuid.New(), s.property.ID(), src.ID)

		s.True(errs.Is(err, errs.ErrForbidden))
	})

	s.Run("存在しないソースはNotFound", func() {
		s.reads.EXPECT().PropertyByID(gomock.Any(), s.property.ID()).Return(s.property, nil)
		s.reads.EXPECT().CalendarSourceByID(gomock.Any(), s.property.ID(), src.ID).
			Return(nil, infra.WrapRepoErr("calendar source not found", nil, infra.KindNotFound))

		_, err := s.sync.SyncSource(context.Background(), s.ownerID, s.property.ID(), src.ID)

		s.ErrorIs(err, commands.ErrCalendarSourceNotFound)
	})

	s.Run("フィード失敗は結果に含まれる", func() {
		s.reads.EXPECT().PropertyByID(gomock.Any(), s.property.ID()).Return(s.property, nil)
		s.reads.EXPECT().CalendarSourceByID(gomock.Any(), s.property.ID(), src.ID).Return(src, nil)
		s.reader.EXPECT().Read(gomock.Any(), src.URL).Return(nil, errs.New("boom"))

		result, err := s.sync.SyncSource(context.Background(), s.ownerID, s.property.ID(), src.ID)

		s.Require().NoError(err)
		s.Equal(calendar.SyncStatusError, result.Status())
	})
}

func (s *CalendarCommandsTestSuite) TestSyncSource_EmptyFeedKeepsAvailabilities() {
	src := s.snapshot("https://ota.example.com/empty.ics")
	s.reads.EXPECT().PropertyByID(gomock.Any(), s.property.ID()).Return(s.property, nil)
	s.reads.EXPECT().CalendarSourceByID(gomock.Any(), s.property.ID(), src.ID).Return(src, nil)
	s.reader.EXPECT().Read(gomock.Any(), src.URL).
		DoAndReturn(func(_ context.Context, _ string) ([]calendar.Event, error) {
			return ical.Parse(strings.NewReader(""))
		})
	s.avail.EXPECT().ReplaceForSource(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	result, err := s.sync.SyncSource(context.Background(), s.ownerID, s.property.ID(), src.ID)

	s.Require().NoError(err)
	s.Equal(calendar.SyncStatusError, result.Status())
	s.True(errs.Is(result.Err, ical.ErrMalformedFeed))
	s.Zero(result.EventsFound)
	s.Zero(result.EventsStored)
	s.Zero(result.Removed)
	s.Require().Len(s.recorded, 1)
	s.Equal(calendar.SyncStatusError, s.recorded[0].Status())
}

func (s *CalendarCommandsTestSuite) TestAddSource() {
	s.Run("重複URLはConflict", func() {
		s.sources.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(infra.WrapRepoErr("create calendar source", nil, infra.KindDuplicateKey))

		_, err := s.sourceCmd.AddSource(context.Background(), s.ownerID, s.property.ID(), commands.AddCalendarSourceInput{
			Name: "Airbnb",
			URL:  "webcal://example.com/a.ics",
		})

		s.ErrorIs(err, commands.ErrCalendarSourceExists)
	})

	s.Run("不正なURLはInvalidInput", func() {
		_, err := s.sourceCmd.AddSource(context.Background(), s.ownerID, s.property.ID(), commands.AddCalendarSourceInput{
			Name: "Airbnb",
			URL:  "ftp://example.com/a.ics",
		})

		s.True(errs.Is(err, errs.ErrInvalidInput))
	})

	s.Run("成功", func() {
		s.sources.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		disabled := false

		view, err := s.sourceCmd.AddSource(context.Background(), s.ownerID, s.property.ID(), commands.AddCalendarSourceInput{
			Name:    "Airbnb",
			URL:     "webcal://example.com/a.ics",
			Enabled: &disabled,
		})

		s.Require().NoError(err)
		s.Equal("https://example.com/a.ics", view.URL)
		s.False(view.Enabled)
	})
}
