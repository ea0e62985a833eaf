package syncing

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

import (
	"context"
	"time"

	"github.com/vfg2006/market-sales-report/internal/domain"
)

// ReportGenerator solicita e acompanha a geração remota do relatório
type ReportGenerator interface {
	RequestGeneration(ctx context.Context, req domain.GenerationRequest) (string, error)
	AwaitCompletion(ctx context.Context, reportID string, timeout, pollInterval time.Duration) (string, error)
}

// ArchiveFetcher baixa e descompacta o arquivo do relatório
type ArchiveFetcher interface {
	Fetch(ctx context.Context, fileLink, reportType string) (*domain.Archive, error)
	Extract(ctx context.Context, archivePath, reportType string) (*domain.ExtractedDataset, error)
}

// DatasetLoader grava os arquivos extraídos no banco
type DatasetLoader interface {
	ProcessDataset(ctx context.Context, dir string, batchSize int) (int, error)
}
