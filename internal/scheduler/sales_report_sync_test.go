package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/market-sales-report/internal/config"
	"github.com/vfg2006/market-sales-report/internal/domain"
	"github.com/vfg2006/market-sales-report/internal/scheduler/mocks"
	"github.com/vfg2006/market-sales-report/internal/usecases/syncing"
	"github.com/vfg2006/market-sales-report/pkg/log"
	"go.uber.org/mock/gomock"
)

func newTestSyncService(t *testing.T, lookbackDays int) (*SalesReportSyncService, *mocks.MockPipelineRunner) {
	t.Helper()
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	runner := mocks.NewMockPipelineRunner(ctrl)

	service := NewSalesReportSyncService(runner, &config.Config{
		SalesReportSync: config.SalesReportSync{
			CronSchedule: "0 6 * * *",
			LookbackDays: lookbackDays,
			Enabled:      true,
		},
	})

	// Data de referência: 16 de outubro de 2025, 06:00
	service.now = func() time.Time {
		return time.Date(2025, 10, 16, 6, 0, 0, 0, time.UTC)
	}

	return service, runner
}

func TestSalesReportSyncService_getPeriodToProcess(t *testing.T) {
	tests := []struct {
		name         string
		lookbackDays int
		wantFrom     string
		wantTo       string
	}{
		{name: "Apenas ontem", lookbackDays: 1, wantFrom: "2025-10-15", wantTo: "2025-10-15"},
		{name: "Últimos sete dias", lookbackDays: 7, wantFrom: "2025-10-09", wantTo: "2025-10-15"},
		{name: "Valor inválido vira um dia", lookbackDays: 0, wantFrom: "2025-10-15", wantTo: "2025-10-15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _ := newTestSyncService(t, tt.lookbackDays)

			from, to := service.getPeriodToProcess()
			assert.Equal(t, tt.wantFrom, from.Format(time.DateOnly))
			assert.Equal(t, tt.wantTo, to.Format(time.DateOnly))
		})
	}
}

func TestSalesReportSyncService_syncSalesReport(t *testing.T) {
	service, runner := newTestSyncService(t, 3)

	runner.EXPECT().
		Run(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, req syncing.Request) (*domain.RunSummary, error) {
			assert.NotEmpty(t, log.GetRunID(ctx))
			assert.Equal(t, "2025-10-13", req.DateFrom.Format(time.DateOnly))
			assert.Equal(t, "2025-10-15", req.DateTo.Format(time.DateOnly))
			return &domain.RunSummary{ReportID: "rep-1", FilesLoaded: 2}, nil
		})

	require.NoError(t, service.syncSalesReport(context.Background()))

	status := service.GetStatus()
	assert.Equal(t, false, status["sync_running"])
	assert.Equal(t, "rep-1", status["last_report_id"])
	assert.Equal(t, 2, status["last_files_loaded"])
	assert.Equal(t, "", status["last_sync_error"])
}

func TestSalesReportSyncService_syncSalesReport_Error(t *testing.T) {
	service, runner := newTestSyncService(t, 1)

	runErr := domain.NewPipelineError(domain.ErrGenerationTimeout, domain.StagePolling, "")
	runner.EXPECT().Run(gomock.Any(), gomock.Any()).Return(nil, runErr)

	err := service.syncSalesReport(context.Background())
	assert.ErrorIs(t, err, domain.ErrGenerationTimeout)

	status := service.GetStatus()
	assert.Equal(t, runErr.Error(), status["last_sync_error"])
	assert.NotContains(t, status, "last_report_id")
}

func TestSalesReportSyncService_SkipsOverlappingRuns(t *testing.T) {
	service, runner := newTestSyncService(t, 1)

	started := make(chan struct{})
	release := make(chan struct{})

	runner.EXPECT().
		Run(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, syncing.Request) (*domain.RunSummary, error) {
			close(started)
			<-release
			return &domain.RunSummary{FilesLoaded: 1}, nil
		}).
		Times(1)

	done := make(chan error, 1)
	go func() {
		done <- service.syncSalesReport(context.Background())
	}()

	<-started
	assert.ErrorIs(t, service.syncSalesReport(context.Background()), ErrSyncAlreadyRunning)
	assert.Equal(t, true, service.GetStatus()["sync_running"])

	close(release)
	require.NoError(t, <-done)
}

func TestSalesReportSyncService_Start_Disabled(t *testing.T) {
	service, _ := newTestSyncService(t, 1)
	service.config.SyncEnabled = false

	require.NoError(t, service.Start(context.Background()))
	assert.False(t, service.scheduler.IsRunning())
}

func TestSalesReportSyncService_TriggerManualSync(t *testing.T) {
	service, runner := newTestSyncService(t, 1)

	done := make(chan struct{})
	runner.EXPECT().
		Run(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, syncing.Request) (*domain.RunSummary, error) {
			defer close(done)
			return &domain.RunSummary{ReportID: "rep-manual", FilesLoaded: 1}, nil
		})

	require.NoError(t, service.TriggerManualSync(context.Background()))
	<-done

	assert.Eventually(t, func() bool {
		return service.GetStatus()["last_report_id"] == "rep-manual"
	}, time.Second, 10*time.Millisecond)
}

func TestSalesReportSyncService_TriggerManualSync_AlreadyRunning(t *testing.T) {
	service, _ := newTestSyncService(t, 1)
	service.syncRunning = true

	assert.ErrorIs(t, service.TriggerManualSync(context.Background()), ErrSyncAlreadyRunning)
}
