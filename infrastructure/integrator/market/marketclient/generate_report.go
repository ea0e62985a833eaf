package marketclient

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"

	marketdomain "github.com/vfg2006/market-sales-report/infrastructure/integrator/market/domain"
)

type GenerateReportParams struct {
	BusinessID string
	DateFrom   string
	DateTo     string
	Grouping   string
	Format     string
}

func (c *MarketClient) GenerateReport(ctx context.Context, params GenerateReportParams) (*marketdomain.GenerateReportResult, error) {
	body, err := json.Marshal(marketdomain.GenerateReportRequest{
		BusinessID: params.BusinessID,
		DateFrom:   params.DateFrom,
		DateTo:     params.DateTo,
		Grouping:   params.Grouping,
	})
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar a requisição: %w", err)
	}

	// O formato do arquivo vai como parâmetro de consulta
	endpoint, err := url.Parse(c.endpointURL(GenerateReportEndpoint))
	if err != nil {
		return nil, fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	query := endpoint.Query()
	query.Set("format", params.Format)
	endpoint.RawQuery = query.Encode()

	req, err := c.newRequest(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, readErrorBody(GenerateReportEndpoint, resp)
	}

	var response marketdomain.GenerateReportResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	if response.Status != marketdomain.ResponseStatusOK || response.Result == nil {
		return nil, &marketdomain.ResponseError{
			Endpoint:   GenerateReportEndpoint,
			StatusCode: resp.StatusCode,
			Status:     response.Status,
			Errors:     response.Errors,
		}
	}

	return response.Result, nil
}
