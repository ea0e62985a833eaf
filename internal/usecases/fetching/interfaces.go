package fetching

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

import (
	"context"
	"io"

	"github.com/vfg2006/market-sales-report/internal/domain"
)

// Downloader baixa o corpo de um link assinado. Satisfeito por marketclient.Client.
type Downloader interface {
	DownloadFile(ctx context.Context, fileURL string, dst io.Writer, maxBytes int64) (int64, error)
}

// ArchiveMirror guarda uma cópia do arquivo baixado fora do disco local
type ArchiveMirror interface {
	Mirror(ctx context.Context, archive *domain.Archive) (string, error)
}
