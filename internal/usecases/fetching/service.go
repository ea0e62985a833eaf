package fetching

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/vfg2006/market-sales-report/internal/config"
	"github.com/vfg2006/market-sales-report/internal/domain"
	"github.com/vfg2006/market-sales-report/pkg/log"
	"github.com/vfg2006/market-sales-report/pkg/metrics"
)

const (
	rawDir          = "raw"
	processedDir    = "processed"
	currentDir      = "current"
	timestampLayout = "20060102T150405.000"
)

type Service struct {
	downloader  Downloader
	mirror      ArchiveMirror
	recorder    metrics.Recorder
	dataRoot    string
	maxFileSize int64
	now         func() time.Time
}

// NewService cria o serviço de download e extração. mirror pode ser nil.
func NewService(cfg *config.Config, downloader Downloader, mirror ArchiveMirror, recorder metrics.Recorder) *Service {
	if recorder == nil {
		recorder = metrics.Nop()
	}

	return &Service{
		downloader:  downloader,
		mirror:      mirror,
		recorder:    recorder,
		dataRoot:    cfg.Report.DataRoot,
		maxFileSize: cfg.Report.MaxFileSizeBytes,
		now:         time.Now,
	}
}

// RawDir devolve o diretório onde os arquivos de um tipo de relatório são baixados
func (s *Service) RawDir(reportType string) string {
	return filepath.Join(s.dataRoot, rawDir, reportType)
}

// DatasetDir devolve o diretório de trabalho com o conteúdo extraído do último arquivo
func (s *Service) DatasetDir(reportType string) string {
	return filepath.Join(s.dataRoot, processedDir, reportType, currentDir)
}

// Fetch baixa o arquivo do link para raw/<tipo>/<tipo>_<timestamp>.zip.
// O download é feito em um arquivo temporário renomeado só após sucesso,
// então nenhuma falha deixa arquivo parcial ou vazio no disco.
func (s *Service) Fetch(ctx context.Context, fileLink, reportType string) (*domain.Archive, error) {
	logger := log.ForContext(ctx).WithField("report_type", reportType)

	dir := s.RawDir(reportType)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		s.recorder.IncDownload("error")
		return nil, domain.NewPipelineError(domain.ErrDownload, domain.StageDownload, "erro ao criar o diretório de destino").
			WithFile(dir).
			WithCause(err)
	}

	tmp, err := os.CreateTemp(dir, ".download-*")
	if err != nil {
		s.recorder.IncDownload("error")
		return nil, domain.NewPipelineError(domain.ErrDownload, domain.StageDownload, "erro ao criar o arquivo temporário").
			WithFile(dir).
			WithCause(err)
	}
	tmpPath := tmp.Name()

	// Removido em qualquer caminho de erro; após o rename não existe mais
	defer os.Remove(tmpPath)

	size, err := s.downloader.DownloadFile(ctx, fileLink, tmp, s.maxFileSize)
	closeErr := tmp.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		s.recorder.IncDownload("error")
		logger.WithError(err).Error("Erro ao baixar o arquivo do relatório")
		return nil, domain.NewPipelineError(domain.ErrDownload, domain.StageDownload, "").
			WithCause(err)
	}

	if size == 0 {
		s.recorder.IncDownload("empty")
		logger.Error("Download retornou um arquivo vazio")
		return nil, domain.NewPipelineError(domain.ErrDownload, domain.StageDownload, "").
			WithCause(domain.ErrEmptyPayload)
	}

	downloadedAt := s.now()
	target := s.archivePath(dir, reportType, downloadedAt)
	if err := os.Rename(tmpPath, target); err != nil {
		s.recorder.IncDownload("error")
		return nil, domain.NewPipelineError(domain.ErrDownload, domain.StageDownload, "erro ao mover o arquivo baixado").
			WithFile(target).
			WithCause(err)
	}

	s.recorder.IncDownload("ok")
	s.recorder.ObserveArchiveBytes(size)

	archive := &domain.Archive{
		SourceURL:    fileLink,
		LocalPath:    target,
		SizeBytes:    size,
		ReportType:   reportType,
		DownloadedAt: downloadedAt,
	}

	logger.WithFields(log.Fields{
		"file": target,
		"size": size,
	}).Info("Arquivo do relatório baixado")

	s.mirrorArchive(ctx, archive)

	return archive, nil
}

// archivePath evita sobrescrever um arquivo baixado no mesmo milissegundo
func (s *Service) archivePath(dir, reportType string, at time.Time) string {
	base := fmt.Sprintf("%s_%s", reportType, at.UTC().Format(timestampLayout))

	target := filepath.Join(dir, base+".zip")
	for i := 1; ; i++ {
		if _, err := os.Stat(target); os.IsNotExist(err) {
			return target
		}
		target = filepath.Join(dir, fmt.Sprintf("%s_%d.zip", base, i))
	}
}

func (s *Service) mirrorArchive(ctx context.Context, archive *domain.Archive) {
	if s.mirror == nil {
		return
	}

	key, err := s.mirror.Mirror(ctx, archive)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("file", archive.LocalPath).Warn("Falha ao copiar o arquivo para o mirror")
		return
	}

	log.ForContext(ctx).WithField("key", key).Debug("Arquivo copiado para o mirror")
}
