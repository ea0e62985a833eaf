package loading

import (
	"context"
	"os"
	"path/filepath"

	"github.com/vfg2006/market-sales-report/infrastructure/repository"
	"github.com/vfg2006/market-sales-report/internal/config"
	"github.com/vfg2006/market-sales-report/internal/domain"
	"github.com/vfg2006/market-sales-report/pkg/log"
	"github.com/vfg2006/market-sales-report/pkg/metrics"
)

const defaultBatchSize = 1000

type Service struct {
	salesReportRepo repository.SalesReportRepository
	recorder        metrics.Recorder
	maxFileSize     int64
}

func NewService(cfg *config.Config, salesReportRepo repository.SalesReportRepository, recorder metrics.Recorder) *Service {
	if recorder == nil {
		recorder = metrics.Nop()
	}

	return &Service{
		salesReportRepo: salesReportRepo,
		recorder:        recorder,
		maxFileSize:     cfg.Report.MaxFileSizeBytes,
	}
}

// Persist grava os registros em lotes de batchSize, cada lote em sua própria
// transação. Na primeira falha para e devolve quantos registros já foram
// confirmados; os lotes anteriores permanecem gravados.
func (s *Service) Persist(ctx context.Context, records []domain.ReportRecord, batchSize int) (int, error) {
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}

	persisted := 0
	for chunk, start := 0, 0; start < len(records); chunk, start = chunk+1, start+batchSize {
		end := min(start+batchSize, len(records))

		if err := s.salesReportRepo.SaveBatch(ctx, records[start:end]); err != nil {
			return persisted, domain.NewPipelineError(domain.ErrPersist, domain.StagePersist, "").
				WithChunk(chunk).
				WithCause(err)
		}

		persisted += end - start
		s.recorder.AddRecordsPersisted(end - start)
	}

	return persisted, nil
}

// ProcessDataset carrega cada arquivo suportado diretamente em dir, sem descer
// em subdiretórios. Falhas de um arquivo são registradas e não interrompem os
// demais. Devolve quantos arquivos foram carregados sem erro.
func (s *Service) ProcessDataset(ctx context.Context, dir string, batchSize int) (int, error) {
	logger := log.ForContext(ctx).WithField("directory", dir)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, domain.NewPipelineError(domain.ErrNoDataLoaded, domain.StageLoad, "erro ao listar o diretório").
			WithFile(dir).
			WithCause(err)
	}

	loaded := 0
	for _, entry := range entries {
		if entry.IsDir() || !IsSupportedFile(entry.Name()) {
			continue
		}

		fileLogger := logger.WithField("file", entry.Name())

		records, err := s.ParseFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			s.recorder.IncFile("parse_error")
			fileLogger.WithError(err).Error("Erro ao interpretar o arquivo do relatório")
			continue
		}

		persisted, err := s.Persist(ctx, records, batchSize)
		if err != nil {
			s.recorder.IncFile("persist_error")
			fileLogger.WithError(err).WithFields(log.Fields{
				"persisted": persisted,
				"records":   len(records),
			}).Error("Erro ao gravar o arquivo do relatório")
			continue
		}

		s.recorder.IncFile("loaded")
		fileLogger.WithField("records", persisted).Info("Arquivo do relatório carregado")
		loaded++
	}

	logger.WithField("files_loaded", loaded).Info("Carga do dataset concluída")

	return loaded, nil
}
