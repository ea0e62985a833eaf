package marketclient

//go:generate mockgen -source=client.go -destination=mocks/mock_client.go -package=mocks

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	marketdomain "github.com/vfg2006/market-sales-report/infrastructure/integrator/market/domain"
	"github.com/vfg2006/market-sales-report/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	GenerateReportEndpoint = "reports/shows-sales/generate"
	ReportInfoEndpoint     = "reports/info"

	// maxErrorBodySize limita quanto do corpo de erro é guardado para diagnóstico
	maxErrorBodySize = 4 << 10
)

type Client interface {
	GenerateReport(ctx context.Context, params GenerateReportParams) (*marketdomain.GenerateReportResult, error)
	GetReportInfo(ctx context.Context, reportID string) (*marketdomain.ReportInfo, error)
	DownloadFile(ctx context.Context, fileURL string, dst io.Writer, maxBytes int64) (int64, error)
}

const (
	defaultRequestTimeout  = 30 * time.Second
	defaultDownloadTimeout = 30 * time.Minute
)

type MarketClient struct {
	httpClient     *http.Client
	downloadClient *http.Client
	baseURL        string
	apiKey         string
}

func NewClient(cfg *config.Config) Client {
	timeout := cfg.Market.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	downloadTimeout := cfg.Market.DownloadTimeout
	if downloadTimeout <= 0 {
		downloadTimeout = defaultDownloadTimeout
	}

	return &MarketClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		downloadClient: &http.Client{
			Timeout: downloadTimeout,
		},
		baseURL: strings.TrimRight(cfg.Market.BaseURL, "/"),
		apiKey:  cfg.Market.APIKey,
	}
}

// endpointURL monta a URL completa de um endpoint relativo à base da API
func (c *MarketClient) endpointURL(endpoint string) string {
	return c.baseURL + "/" + strings.TrimLeft(endpoint, "/")
}

// newRequest cria a requisição com os cabeçalhos de autenticação da API
func (c *MarketClient) newRequest(ctx context.Context, method, rawURL string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, rawURL, body)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Api-Key", c.apiKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return req, nil
}

// readErrorBody lê o início do corpo de uma resposta com erro e tenta extrair o envelope
func readErrorBody(endpoint string, resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))

	respErr := &marketdomain.ResponseError{
		Endpoint:   endpoint,
		StatusCode: resp.StatusCode,
		Body:       strings.TrimSpace(string(body)),
	}

	var envelope struct {
		Status string                  `json:"status"`
		Errors []marketdomain.APIError `json:"errors"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil {
		respErr.Status = envelope.Status
		respErr.Errors = envelope.Errors
	}

	return respErr
}
