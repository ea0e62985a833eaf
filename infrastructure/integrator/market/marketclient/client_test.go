package marketclient

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	marketdomain "github.com/vfg2006/market-sales-report/infrastructure/integrator/market/domain"
	"github.com/vfg2006/market-sales-report/internal/config"
	"github.com/vfg2006/market-sales-report/internal/domain"
)

func newTestClient(baseURL string) Client {
	return NewClient(&config.Config{
		Market: config.Market{
			BaseURL:        baseURL,
			APIKey:         "secret-key",
			BusinessID:     "777",
			RequestTimeout: 5 * time.Second,
		},
	})
}

func TestMarketClient_GenerateReport(t *testing.T) {
	var (
		gotMethod string
		gotPath   string
		gotFormat string
		gotAPIKey string
		gotBody   marketdomain.GenerateReportRequest
	)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotFormat = r.URL.Query().Get("format")
		gotAPIKey = r.Header.Get("Api-Key")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"OK","result":{"reportId":"rep-42","estimatedGenerationTime":60000}}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL + "/v2/")
	result, err := client.GenerateReport(context.Background(), GenerateReportParams{
		BusinessID: "777",
		DateFrom:   "2025-10-10",
		DateTo:     "2025-10-11",
		Grouping:   "OFFERS",
		Format:     "CSV",
	})

	require.NoError(t, err)
	assert.Equal(t, "rep-42", result.ReportID)
	assert.Equal(t, int64(60000), result.EstimatedGenerationTime)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/v2/reports/shows-sales/generate", gotPath)
	assert.Equal(t, "CSV", gotFormat)
	assert.Equal(t, "secret-key", gotAPIKey)
	assert.Equal(t, marketdomain.GenerateReportRequest{
		BusinessID: "777",
		DateFrom:   "2025-10-10",
		DateTo:     "2025-10-11",
		Grouping:   "OFFERS",
	}, gotBody)
}

func TestMarketClient_GenerateReport_Failures(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		body       string
		check      func(t *testing.T, err error)
	}{
		{
			name:       "Envelope com status diferente de OK",
			statusCode: http.StatusOK,
			body:       `{"status":"ERROR","errors":[{"code":"BAD_REQUEST","message":"dateFrom inválido"}]}`,
			check: func(t *testing.T, err error) {
				var respErr *marketdomain.ResponseError
				require.True(t, errors.As(err, &respErr))
				assert.Equal(t, "ERROR", respErr.Status)
				require.Len(t, respErr.Errors, 1)
				assert.Equal(t, "BAD_REQUEST", respErr.Errors[0].Code)
			},
		},
		{
			name:       "Status HTTP diferente de 200",
			statusCode: http.StatusForbidden,
			body:       `{"status":"ERROR","errors":[{"code":"FORBIDDEN","message":"sem acesso"}]}`,
			check: func(t *testing.T, err error) {
				var respErr *marketdomain.ResponseError
				require.True(t, errors.As(err, &respErr))
				assert.Equal(t, http.StatusForbidden, respErr.StatusCode)
				assert.Contains(t, respErr.Error(), "FORBIDDEN")
			},
		},
		{
			name:       "JSON malformado",
			statusCode: http.StatusOK,
			body:       `{"status":"OK","result":`,
			check: func(t *testing.T, err error) {
				assert.Contains(t, err.Error(), "erro ao decodificar a resposta")
			},
		},
		{
			name:       "Envelope OK sem resultado",
			statusCode: http.StatusOK,
			body:       `{"status":"OK"}`,
			check: func(t *testing.T, err error) {
				var respErr *marketdomain.ResponseError
				assert.True(t, errors.As(err, &respErr))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			result, err := newTestClient(server.URL).GenerateReport(context.Background(), GenerateReportParams{Format: "CSV"})
			require.Error(t, err)
			assert.Nil(t, result)
			tt.check(t, err)
		})
	}
}

func TestMarketClient_GenerateReport_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	_, err := newTestClient(server.URL).GenerateReport(context.Background(), GenerateReportParams{Format: "CSV"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "erro ao executar a requisição")
}

func TestMarketClient_GetReportInfo(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"status":"OK","result":{"status":"FAILED","subStatus":"QUOTA_EXCEEDED"}}`))
	}))
	defer server.Close()

	info, err := newTestClient(server.URL).GetReportInfo(context.Background(), "rep-42")
	require.NoError(t, err)
	assert.Equal(t, "/reports/info/rep-42", gotPath)
	assert.Equal(t, "FAILED", info.Status)
	assert.Equal(t, "QUOTA_EXCEEDED", info.SubStatus)
	assert.Empty(t, info.File)
}

func TestMarketClient_DownloadFile(t *testing.T) {
	payload := []byte("PK\x03\x04conteudo")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Api-Key"))
		switch r.URL.Path {
		case "/ok":
			_, _ = w.Write(payload)
		case "/empty":
			w.WriteHeader(http.StatusOK)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	t.Run("Arquivo completo", func(t *testing.T) {
		var buf bytes.Buffer
		n, err := client.DownloadFile(context.Background(), server.URL+"/ok", &buf, 1024)
		require.NoError(t, err)
		assert.Equal(t, int64(len(payload)), n)
		assert.Equal(t, payload, buf.Bytes())
	})

	t.Run("Corpo vazio", func(t *testing.T) {
		n, err := client.DownloadFile(context.Background(), server.URL+"/empty", io.Discard, 1024)
		require.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("Status 404", func(t *testing.T) {
		_, err := client.DownloadFile(context.Background(), server.URL+"/missing", io.Discard, 1024)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "404")
	})

	t.Run("Acima do limite", func(t *testing.T) {
		_, err := client.DownloadFile(context.Background(), server.URL+"/ok", io.Discard, 4)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrFileTooLarge)
	})
}

func TestMarketClient_DownloadFile_UsesDownloadTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte("PK\x03\x04"))
	}))
	defer server.Close()

	newClient := func(downloadTimeout time.Duration) Client {
		return NewClient(&config.Config{
			Market: config.Market{
				BaseURL:         server.URL,
				APIKey:          "secret-key",
				RequestTimeout:  50 * time.Millisecond,
				DownloadTimeout: downloadTimeout,
			},
		})
	}

	t.Run("Download mais lento que o timeout da API", func(t *testing.T) {
		n, err := newClient(5*time.Second).DownloadFile(context.Background(), server.URL, io.Discard, 1024)
		require.NoError(t, err)
		assert.Equal(t, int64(4), n)
	})

	t.Run("Download acima do próprio timeout", func(t *testing.T) {
		_, err := newClient(50*time.Millisecond).DownloadFile(context.Background(), server.URL, io.Discard, 1024)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "erro ao executar a requisição")
	})
}
