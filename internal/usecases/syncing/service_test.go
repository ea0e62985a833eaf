package syncing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	repomocks "github.com/vfg2006/market-sales-report/infrastructure/repository/mocks"
	"github.com/vfg2006/market-sales-report/internal/config"
	"github.com/vfg2006/market-sales-report/internal/domain"
	"github.com/vfg2006/market-sales-report/internal/usecases/syncing/mocks"
	"github.com/vfg2006/market-sales-report/pkg/log"
	"github.com/vfg2006/market-sales-report/pkg/metrics"
	"go.uber.org/mock/gomock"
)

const (
	reportID   = "rep-1"
	fileLink   = "https://storage.example/report.zip"
	archiveLoc = "data/raw/sales/sales_20251011T060000.000.zip"
	datasetDir = "data/processed/sales/current"
)

type testDeps struct {
	generator *mocks.MockReportGenerator
	fetcher   *mocks.MockArchiveFetcher
	loader    *mocks.MockDatasetLoader
	jobRepo   *repomocks.MockReportJobRepository
	jobs      []domain.ReportStatus
}

func newTestService(t *testing.T) (*Service, *testDeps) {
	t.Helper()
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	deps := &testDeps{
		generator: mocks.NewMockReportGenerator(ctrl),
		fetcher:   mocks.NewMockArchiveFetcher(ctrl),
		loader:    mocks.NewMockDatasetLoader(ctrl),
		jobRepo:   repomocks.NewMockReportJobRepository(ctrl),
	}

	deps.jobRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, job *domain.ReportJob) error {
			job.ID = "job-1"
			deps.jobs = append(deps.jobs, job.Status)
			return nil
		}).
		AnyTimes()
	deps.jobRepo.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, job *domain.ReportJob) error {
			deps.jobs = append(deps.jobs, job.Status)
			return nil
		}).
		AnyTimes()

	cfg := &config.Config{
		Report: config.Report{
			Type:              "sales",
			Format:            "CSV",
			Grouping:          "OFFERS",
			PollInterval:      10 * time.Second,
			GenerationTimeout: 10 * time.Minute,
			BatchSize:         1000,
		},
	}

	service := NewService(cfg, deps.generator, deps.fetcher, deps.loader, deps.jobRepo, metrics.Nop())
	return service, deps
}

func validRequest() Request {
	return Request{
		DateFrom: time.Date(2025, 10, 10, 0, 0, 0, 0, time.UTC),
		DateTo:   time.Date(2025, 10, 10, 0, 0, 0, 0, time.UTC),
	}
}

func TestService_Run(t *testing.T) {
	service, deps := newTestService(t)

	gomock.InOrder(
		deps.generator.EXPECT().
			RequestGeneration(gomock.Any(), domain.GenerationRequest{
				DateFrom: validRequest().DateFrom,
				DateTo:   validRequest().DateTo,
				Format:   "CSV",
				Grouping: "OFFERS",
			}).
			Return(reportID, nil),
		deps.generator.EXPECT().
			AwaitCompletion(gomock.Any(), reportID, 10*time.Minute, 10*time.Second).
			Return(fileLink, nil),
		deps.fetcher.EXPECT().
			Fetch(gomock.Any(), fileLink, "sales").
			Return(&domain.Archive{LocalPath: archiveLoc, SizeBytes: 10, ReportType: "sales"}, nil),
		deps.fetcher.EXPECT().
			Extract(gomock.Any(), archiveLoc, "sales").
			Return(&domain.ExtractedDataset{Directory: datasetDir, ReportType: "sales"}, nil),
		deps.loader.EXPECT().
			ProcessDataset(gomock.Any(), datasetDir, 1000).
			Return(2, nil),
	)

	summary, err := service.Run(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, "job-1", summary.JobID)
	assert.Equal(t, reportID, summary.ReportID)
	assert.Equal(t, "sales", summary.ReportType)
	assert.Equal(t, archiveLoc, summary.ArchivePath)
	assert.Equal(t, datasetDir, summary.DatasetDirectory)
	assert.Equal(t, 2, summary.FilesLoaded)
	assert.False(t, summary.FinishedAt.Before(summary.StartedAt))

	assert.Equal(t, []domain.ReportStatus{
		domain.ReportStatusPending,
		domain.ReportStatusProcessing,
		domain.ReportStatusDone,
		domain.ReportStatusLoaded,
	}, deps.jobs)
}

func TestService_Run_Failures(t *testing.T) {
	archive := &domain.Archive{LocalPath: archiveLoc, ReportType: "sales"}
	dataset := &domain.ExtractedDataset{Directory: datasetDir, ReportType: "sales"}

	tests := []struct {
		name       string
		setup      func(d *testDeps)
		wantErr    error
		wantStatus domain.ReportStatus
	}{
		{
			name: "Geração rejeitada não consulta o status",
			setup: func(d *testDeps) {
				d.generator.EXPECT().RequestGeneration(gomock.Any(), gomock.Any()).
					Return("", domain.NewPipelineError(domain.ErrRemoteRequest, domain.StageGeneration, ""))
			},
			wantErr:    domain.ErrRemoteRequest,
			wantStatus: domain.ReportStatusAborted,
		},
		{
			name: "Tempo limite de geração",
			setup: func(d *testDeps) {
				d.generator.EXPECT().RequestGeneration(gomock.Any(), gomock.Any()).Return(reportID, nil)
				d.generator.EXPECT().AwaitCompletion(gomock.Any(), reportID, gomock.Any(), gomock.Any()).
					Return("", domain.NewPipelineError(domain.ErrGenerationTimeout, domain.StagePolling, ""))
			},
			wantErr:    domain.ErrGenerationTimeout,
			wantStatus: domain.ReportStatusTimedOut,
		},
		{
			name: "Geração falhou no marketplace",
			setup: func(d *testDeps) {
				failed := domain.NewPipelineError(domain.ErrGenerationFailed, domain.StagePolling, "")
				failed.SubStatus = "QUOTA_EXCEEDED"
				d.generator.EXPECT().RequestGeneration(gomock.Any(), gomock.Any()).Return(reportID, nil)
				d.generator.EXPECT().AwaitCompletion(gomock.Any(), reportID, gomock.Any(), gomock.Any()).Return("", failed)
			},
			wantErr:    domain.ErrGenerationFailed,
			wantStatus: domain.ReportStatusFailed,
		},
		{
			name: "Download vazio interrompe antes da extração",
			setup: func(d *testDeps) {
				d.generator.EXPECT().RequestGeneration(gomock.Any(), gomock.Any()).Return(reportID, nil)
				d.generator.EXPECT().AwaitCompletion(gomock.Any(), reportID, gomock.Any(), gomock.Any()).Return(fileLink, nil)
				d.fetcher.EXPECT().Fetch(gomock.Any(), fileLink, "sales").
					Return(nil, domain.NewPipelineError(domain.ErrDownload, domain.StageDownload, "").WithCause(domain.ErrEmptyPayload))
			},
			wantErr:    domain.ErrEmptyPayload,
			wantStatus: domain.ReportStatusAborted,
		},
		{
			name: "Arquivo corrompido interrompe antes da carga",
			setup: func(d *testDeps) {
				d.generator.EXPECT().RequestGeneration(gomock.Any(), gomock.Any()).Return(reportID, nil)
				d.generator.EXPECT().AwaitCompletion(gomock.Any(), reportID, gomock.Any(), gomock.Any()).Return(fileLink, nil)
				d.fetcher.EXPECT().Fetch(gomock.Any(), fileLink, "sales").Return(archive, nil)
				d.fetcher.EXPECT().Extract(gomock.Any(), archiveLoc, "sales").
					Return(nil, domain.NewPipelineError(domain.ErrExtraction, domain.StageExtraction, ""))
			},
			wantErr:    domain.ErrExtraction,
			wantStatus: domain.ReportStatusAborted,
		},
		{
			name: "Nenhum arquivo carregado",
			setup: func(d *testDeps) {
				d.generator.EXPECT().RequestGeneration(gomock.Any(), gomock.Any()).Return(reportID, nil)
				d.generator.EXPECT().AwaitCompletion(gomock.Any(), reportID, gomock.Any(), gomock.Any()).Return(fileLink, nil)
				d.fetcher.EXPECT().Fetch(gomock.Any(), fileLink, "sales").Return(archive, nil)
				d.fetcher.EXPECT().Extract(gomock.Any(), archiveLoc, "sales").Return(dataset, nil)
				d.loader.EXPECT().ProcessDataset(gomock.Any(), datasetDir, 1000).Return(0, nil)
			},
			wantErr:    domain.ErrNoDataLoaded,
			wantStatus: domain.ReportStatusAborted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, deps := newTestService(t)
			tt.setup(deps)

			summary, err := service.Run(context.Background(), validRequest())
			require.Error(t, err)
			assert.Nil(t, summary)
			assert.ErrorIs(t, err, tt.wantErr)

			require.NotEmpty(t, deps.jobs)
			assert.Equal(t, tt.wantStatus, deps.jobs[len(deps.jobs)-1])
		})
	}
}

func TestService_Run_InvalidRequest(t *testing.T) {
	service, deps := newTestService(t)

	req := validRequest()
	req.DateFrom = req.DateTo.AddDate(0, 0, 1)

	summary, err := service.Run(context.Background(), req)
	require.Error(t, err)
	assert.Nil(t, summary)
	assert.ErrorIs(t, err, domain.ErrInvalidRequest)
	assert.Empty(t, deps.jobs)
}

func TestService_Run_JournalFailureDoesNotAbort(t *testing.T) {
	log.SetupTestLogger()
	ctrl := gomock.NewController(t)

	generator := mocks.NewMockReportGenerator(ctrl)
	fetcher := mocks.NewMockArchiveFetcher(ctrl)
	loader := mocks.NewMockDatasetLoader(ctrl)
	jobRepo := repomocks.NewMockReportJobRepository(ctrl)

	jobRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("relation report_jobs does not exist"))

	generator.EXPECT().RequestGeneration(gomock.Any(), gomock.Any()).Return(reportID, nil)
	generator.EXPECT().AwaitCompletion(gomock.Any(), reportID, gomock.Any(), gomock.Any()).Return(fileLink, nil)
	fetcher.EXPECT().Fetch(gomock.Any(), fileLink, "sales").Return(&domain.Archive{LocalPath: archiveLoc}, nil)
	fetcher.EXPECT().Extract(gomock.Any(), archiveLoc, "sales").Return(&domain.ExtractedDataset{Directory: datasetDir}, nil)
	loader.EXPECT().ProcessDataset(gomock.Any(), datasetDir, gomock.Any()).Return(1, nil)

	service := NewService(&config.Config{Report: config.Report{Type: "sales"}}, generator, fetcher, loader, jobRepo, nil)

	summary, err := service.Run(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, 1, summary.FilesLoaded)
	assert.Empty(t, summary.JobID)
}
