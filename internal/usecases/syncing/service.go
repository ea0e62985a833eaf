package syncing

import (
	"context"
	"errors"
	"time"

	"github.com/vfg2006/market-sales-report/infrastructure/repository"
	"github.com/vfg2006/market-sales-report/internal/config"
	"github.com/vfg2006/market-sales-report/internal/domain"
	"github.com/vfg2006/market-sales-report/pkg/log"
	"github.com/vfg2006/market-sales-report/pkg/metrics"
)

// Request descreve uma execução do pipeline. Campos vazios usam a configuração.
type Request struct {
	DateFrom   time.Time
	DateTo     time.Time
	ReportType string
	Format     string
	Grouping   string
}

// Service executa o pipeline completo: geração, espera, download, extração e carga
type Service struct {
	cfg       *config.Config
	generator ReportGenerator
	fetcher   ArchiveFetcher
	loader    DatasetLoader
	jobRepo   repository.ReportJobRepository
	recorder  metrics.Recorder
	now       func() time.Time
}

// NewService cria o orquestrador. jobRepo pode ser nil quando o diário de jobs não é usado.
func NewService(
	cfg *config.Config,
	generator ReportGenerator,
	fetcher ArchiveFetcher,
	loader DatasetLoader,
	jobRepo repository.ReportJobRepository,
	recorder metrics.Recorder,
) *Service {
	if recorder == nil {
		recorder = metrics.Nop()
	}

	return &Service{
		cfg:       cfg,
		generator: generator,
		fetcher:   fetcher,
		loader:    loader,
		jobRepo:   jobRepo,
		recorder:  recorder,
		now:       time.Now,
	}
}

// Run executa as etapas em sequência. Erros de etapa interrompem a execução;
// nenhum arquivo carregado resulta em ErrNoDataLoaded.
func (s *Service) Run(ctx context.Context, req Request) (*domain.RunSummary, error) {
	if log.GetRunID(ctx) == "" {
		ctx, _ = log.WithRunID(ctx)
	}

	s.applyDefaults(&req)

	genReq := domain.GenerationRequest{
		DateFrom: req.DateFrom,
		DateTo:   req.DateTo,
		Format:   req.Format,
		Grouping: req.Grouping,
	}
	if err := genReq.Validate(); err != nil {
		return nil, err
	}

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"report_type": req.ReportType,
		"date_from":   req.DateFrom.Format(domain.ReportDateLayout),
		"date_to":     req.DateTo.Format(domain.ReportDateLayout),
	})
	logger.Info("Iniciando execução do pipeline de relatório")

	summary := &domain.RunSummary{
		ReportType: req.ReportType,
		StartedAt:  s.now(),
	}

	job := &domain.ReportJob{
		ReportType: req.ReportType,
		DateFrom:   req.DateFrom,
		DateTo:     req.DateTo,
		Status:     domain.ReportStatusPending,
	}
	s.createJob(ctx, job)
	summary.JobID = job.ID

	var reportID string
	err := s.stage(domain.StageGeneration, func() (err error) {
		reportID, err = s.generator.RequestGeneration(ctx, genReq)
		return err
	})
	if err != nil {
		return nil, s.fail(ctx, job, err)
	}

	summary.ReportID = reportID
	job.ReportID = reportID
	job.Status = domain.ReportStatusProcessing
	s.updateJob(ctx, job)

	var fileLink string
	err = s.stage(domain.StagePolling, func() (err error) {
		fileLink, err = s.generator.AwaitCompletion(ctx, reportID, s.cfg.Report.GenerationTimeout, s.cfg.Report.PollInterval)
		return err
	})
	if err != nil {
		return nil, s.fail(ctx, job, err)
	}

	job.Status = domain.ReportStatusDone
	job.FileLink = &fileLink
	s.updateJob(ctx, job)

	var archive *domain.Archive
	err = s.stage(domain.StageDownload, func() (err error) {
		archive, err = s.fetcher.Fetch(ctx, fileLink, req.ReportType)
		return err
	})
	if err != nil {
		return nil, s.fail(ctx, job, err)
	}
	summary.ArchivePath = archive.LocalPath

	var dataset *domain.ExtractedDataset
	err = s.stage(domain.StageExtraction, func() (err error) {
		dataset, err = s.fetcher.Extract(ctx, archive.LocalPath, req.ReportType)
		return err
	})
	if err != nil {
		return nil, s.fail(ctx, job, err)
	}
	summary.DatasetDirectory = dataset.Directory

	var filesLoaded int
	err = s.stage(domain.StageLoad, func() (err error) {
		filesLoaded, err = s.loader.ProcessDataset(ctx, dataset.Directory, s.cfg.Report.BatchSize)
		return err
	})
	if err == nil && filesLoaded == 0 {
		err = domain.NewPipelineError(domain.ErrNoDataLoaded, domain.StageLoad, "").
			WithReportID(reportID).
			WithFile(dataset.Directory)
	}
	if err != nil {
		return nil, s.fail(ctx, job, err)
	}

	summary.FilesLoaded = filesLoaded
	summary.FinishedAt = s.now()

	job.Status = domain.ReportStatusLoaded
	s.updateJob(ctx, job)

	logger.WithFields(log.Fields{
		"report_id":    reportID,
		"files_loaded": filesLoaded,
		"duration":     summary.FinishedAt.Sub(summary.StartedAt).String(),
	}).Info("Execução do pipeline de relatório concluída")

	return summary, nil
}

func (s *Service) applyDefaults(req *Request) {
	if req.ReportType == "" {
		req.ReportType = s.cfg.Report.Type
	}
	if req.ReportType == "" {
		req.ReportType = domain.DefaultReportType
	}
	if req.Format == "" {
		req.Format = s.cfg.Report.Format
	}
	if req.Grouping == "" {
		req.Grouping = s.cfg.Report.Grouping
	}
}

// stage executa uma etapa registrando sua duração
func (s *Service) stage(stage domain.Stage, fn func() error) error {
	start := time.Now()
	err := fn()
	s.recorder.ObserveStage(string(stage), time.Since(start))
	return err
}

// fail registra o desfecho do job e devolve o erro original
func (s *Service) fail(ctx context.Context, job *domain.ReportJob, err error) error {
	switch {
	case errors.Is(err, domain.ErrGenerationTimeout):
		job.Status = domain.ReportStatusTimedOut
	case errors.Is(err, domain.ErrGenerationFailed):
		job.Status = domain.ReportStatusFailed
	default:
		job.Status = domain.ReportStatusAborted
	}

	var pipelineErr *domain.PipelineError
	if errors.As(err, &pipelineErr) && pipelineErr.SubStatus != "" {
		subStatus := pipelineErr.SubStatus
		job.SubStatus = &subStatus
	}

	message := err.Error()
	job.Error = &message
	s.updateJob(ctx, job)

	log.ForContext(ctx).WithError(err).WithFields(log.Fields{
		"report_id": job.ReportID,
		"status":    job.Status,
	}).Error("Execução do pipeline de relatório interrompida")

	return err
}

func (s *Service) createJob(ctx context.Context, job *domain.ReportJob) {
	if s.jobRepo == nil {
		return
	}

	if err := s.jobRepo.Create(ctx, job); err != nil {
		log.ForContext(ctx).WithError(err).Warn("Erro ao registrar o job de relatório")
	}
}

func (s *Service) updateJob(ctx context.Context, job *domain.ReportJob) {
	if s.jobRepo == nil || job.ID == "" {
		return
	}

	if err := s.jobRepo.Update(ctx, job); err != nil {
		log.ForContext(ctx).WithError(err).WithField("job_id", job.ID).Warn("Erro ao atualizar o job de relatório")
	}
}
