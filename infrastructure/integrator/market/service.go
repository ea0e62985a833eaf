package market

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-retry"
	"github.com/vfg2006/market-sales-report/infrastructure/integrator/market/marketclient"
	"github.com/vfg2006/market-sales-report/internal/config"
	"github.com/vfg2006/market-sales-report/internal/domain"
	"github.com/vfg2006/market-sales-report/pkg/log"
	"github.com/vfg2006/market-sales-report/pkg/metrics"
)

// errReportNotReady sinaliza ao retry que o relatório ainda não terminou
var errReportNotReady = errors.New("report not ready")

// MarketIntegrator solicita a geração do relatório e acompanha o processamento remoto
type MarketIntegrator interface {
	RequestGeneration(ctx context.Context, req domain.GenerationRequest) (string, error)
	AwaitCompletion(ctx context.Context, reportID string, timeout, pollInterval time.Duration) (string, error)
}

type MarketService struct {
	cfg      *config.Config
	Client   marketclient.Client
	recorder metrics.Recorder
}

var _ MarketIntegrator = (*MarketService)(nil)

func New(cfg *config.Config, client marketclient.Client, recorder metrics.Recorder) *MarketService {
	if recorder == nil {
		recorder = metrics.Nop()
	}

	return &MarketService{
		cfg:      cfg,
		Client:   client,
		recorder: recorder,
	}
}

// RequestGeneration envia o pedido de geração e devolve o reportId aceito pelo marketplace
func (s *MarketService) RequestGeneration(ctx context.Context, req domain.GenerationRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"date_from": req.DateFrom.Format(domain.ReportDateLayout),
		"date_to":   req.DateTo.Format(domain.ReportDateLayout),
		"grouping":  req.Grouping,
		"format":    req.Format,
	})

	result, err := s.Client.GenerateReport(ctx, marketclient.GenerateReportParams{
		BusinessID: s.cfg.Market.BusinessID,
		DateFrom:   req.DateFrom.Format(domain.ReportDateLayout),
		DateTo:     req.DateTo.Format(domain.ReportDateLayout),
		Grouping:   req.Grouping,
		Format:     req.Format,
	})
	if err != nil {
		logger.WithError(err).Error("Erro ao solicitar a geração do relatório")
		return "", domain.NewPipelineError(domain.ErrRemoteRequest, domain.StageGeneration, "").
			WithEndpoint(marketclient.GenerateReportEndpoint).
			WithCause(err)
	}

	if result.ReportID == "" {
		logger.Error("Resposta de geração sem reportId")
		return "", domain.NewPipelineError(domain.ErrRemoteRequest, domain.StageGeneration, "resposta sem reportId").
			WithEndpoint(marketclient.GenerateReportEndpoint)
	}

	logger.WithFields(log.Fields{
		"report_id":         result.ReportID,
		"estimated_time_ms": result.EstimatedGenerationTime,
	}).Info("Geração do relatório solicitada")

	return result.ReportID, nil
}

// AwaitCompletion consulta o status do relatório a cada pollInterval até DONE,
// FAILED ou até timeout contado a partir desta chamada. Falhas de transporte
// durante a consulta são tratadas como transitórias.
func (s *MarketService) AwaitCompletion(ctx context.Context, reportID string, timeout, pollInterval time.Duration) (string, error) {
	if timeout <= 0 {
		timeout = s.cfg.Report.GenerationTimeout
	}
	if pollInterval <= 0 {
		pollInterval = s.cfg.Report.PollInterval
	}

	backoff, err := retry.NewConstant(pollInterval)
	if err != nil {
		return "", domain.NewPipelineError(domain.ErrInvalidRequest, domain.StagePolling, "intervalo de consulta inválido").
			WithReportID(reportID).
			WithCause(err)
	}
	backoff = retry.WithMaxDuration(timeout, backoff)

	logger := log.ForContext(ctx).WithField("report_id", reportID)

	var (
		fileLink   string
		lastStatus string
		lastErr    error
		attempts   int
	)

	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempts++

		info, err := s.Client.GetReportInfo(ctx, reportID)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			s.recorder.IncPoll("error")
			lastErr = err
			logger.WithError(err).WithField("attempt", attempts).Warn("Falha transitória ao consultar o status do relatório")
			return retry.RetryableError(errReportNotReady)
		}

		// Só a falha mais recente importa para o diagnóstico de timeout
		lastErr = nil
		status := domain.ReportStatus(info.Status)
		lastStatus = info.Status

		switch status {
		case domain.ReportStatusDone, domain.ReportStatusFailed, domain.ReportStatusPending, domain.ReportStatusProcessing:
			s.recorder.IncPoll(string(status))
		default:
			// Status fora do conjunto conhecido não vira label da métrica
			s.recorder.IncPoll(string(domain.ReportStatusUnknown))
		}

		switch status {
		case domain.ReportStatusDone:
			if info.File == "" {
				return domain.NewPipelineError(domain.ErrGenerationFailed, domain.StagePolling, "").
					WithReportID(reportID).
					WithCause(domain.ErrMissingFileLink)
			}
			fileLink = info.File
			return nil

		case domain.ReportStatusFailed:
			pipelineErr := domain.NewPipelineError(domain.ErrGenerationFailed, domain.StagePolling, "").
				WithReportID(reportID)
			pipelineErr.SubStatus = info.SubStatus
			return pipelineErr

		case domain.ReportStatusPending, domain.ReportStatusProcessing:
			logger.WithFields(log.Fields{
				"status":  info.Status,
				"attempt": attempts,
			}).Debug("Relatório ainda em processamento")
			return retry.RetryableError(errReportNotReady)

		default:
			logger.WithFields(log.Fields{
				"status":  info.Status,
				"attempt": attempts,
			}).Warn("Status de relatório desconhecido, tratando como em processamento")
			return retry.RetryableError(errReportNotReady)
		}
	})

	switch {
	case err == nil:
		logger.WithField("attempts", attempts).Info("Relatório gerado")
		return fileLink, nil

	case errors.Is(err, errReportNotReady):
		details := fmt.Sprintf("sem conclusão após %s (%d consultas, último status %q)", timeout, attempts, lastStatus)
		logger.WithField("attempts", attempts).Error("Tempo limite de geração do relatório esgotado")
		return "", domain.NewPipelineError(domain.ErrGenerationTimeout, domain.StagePolling, details).
			WithReportID(reportID).
			WithEndpoint(marketclient.ReportInfoEndpoint).
			WithCause(lastErr)

	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "", fmt.Errorf("erro ao aguardar o relatório %s: %w", reportID, err)

	default:
		var pipelineErr *domain.PipelineError
		if errors.As(err, &pipelineErr) {
			logger.WithError(err).WithField("sub_status", pipelineErr.SubStatus).Error("Geração do relatório falhou")
		}
		return "", err
	}
}
