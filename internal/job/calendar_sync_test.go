//go:build unit

package job_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"stayhub/internal/domain/calendar"
	"stayhub/internal/job"
	"stayhub/internal/pkg/config"
	commandsmock "stayhub/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCalendarSyncJob_RunOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	syncCmds := commandsmock.NewMockCalendarSyncCommands(ctrl)

	syncCmds.EXPECT().SyncAll(gomock.Any()).Return(calendar.BatchResult{
		Results: []calendar.SyncResult{
			{SourceID: uuid.New(), EventsFound: 3, EventsStored: 3},
			{SourceID: uuid.New(), Err: errors.New("feed unreachable")},
		},
	}, nil).Times(1)

	j := job.NewCalendarSyncJob(syncCmds, config.CalendarConfig{SyncEnabled: true, SyncInterval: time.Hour}, discardLogger())
	j.RunOnce(context.Background())
}

func TestCalendarSyncJob_DisabledDoesNotTick(t *testing.T) {
	ctrl := gomock.NewController(t)
	syncCmds := commandsmock.NewMockCalendarSyncCommands(ctrl)
	syncCmds.EXPECT().SyncAll(gomock.Any()).Times(0)

	j := job.NewCalendarSyncJob(syncCmds, config.CalendarConfig{SyncEnabled: false, SyncInterval: time.Millisecond}, discardLogger())
	require.NoError(t, j.Start(context.Background()))
	time.Sleep(20 * time.Millisecond)
	assert.NoError(t, j.Stop(context.Background()))
}

func TestCalendarSyncJob_TicksUntilStopped(t *testing.T) {
	ctrl := gomock.NewController(t)
	syncCmds := commandsmock.NewMockCalendarSyncCommands(ctrl)

	ran := make(chan struct{}, 1)
	syncCmds.EXPECT().SyncAll(gomock.Any()).DoAndReturn(func(ctx context.Context) (calendar.BatchResult, error) {
		select {
		case ran <- struct{}{}:
		default:
		}
		return calendar.BatchResult{}, nil
	}).MinTimes(1)

	j := job.NewCalendarSyncJob(syncCmds, config.CalendarConfig{SyncEnabled: true, SyncInterval: 5 * time.Millisecond}, discardLogger())
	require.NoError(t, j.Start(context.Background()))

	select {
	case <-ran:
	case <-time.After(time.Second):
		t.Fatal("sync job never ran")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NoError(t, j.Stop(ctx))
}
