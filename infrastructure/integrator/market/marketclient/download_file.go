package marketclient

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/vfg2006/market-sales-report/internal/domain"
)

// DownloadFile copia o corpo do link assinado para dst. O link já é assinado,
// então a requisição não leva a chave da API.
func (c *MarketClient) DownloadFile(ctx context.Context, fileURL string, dst io.Writer, maxBytes int64) (int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fileURL, nil)
	if err != nil {
		return 0, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	resp, err := c.downloadClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("requisição falhou com status: %s", resp.Status)
	}

	if maxBytes > 0 && resp.ContentLength > maxBytes {
		return 0, fmt.Errorf("%w: content-length %d > %d", domain.ErrFileTooLarge, resp.ContentLength, maxBytes)
	}

	reader := io.Reader(resp.Body)
	if maxBytes > 0 {
		// Um byte a mais permite detectar corpos acima do limite
		reader = io.LimitReader(resp.Body, maxBytes+1)
	}

	written, err := io.Copy(dst, reader)
	if err != nil {
		return written, fmt.Errorf("erro ao ler o corpo da resposta: %w", err)
	}

	if maxBytes > 0 && written > maxBytes {
		return written, fmt.Errorf("%w: mais de %d bytes", domain.ErrFileTooLarge, maxBytes)
	}

	return written, nil
}
