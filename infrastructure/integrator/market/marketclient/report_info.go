package marketclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	marketdomain "github.com/vfg2006/market-sales-report/infrastructure/integrator/market/domain"
)

func (c *MarketClient) GetReportInfo(ctx context.Context, reportID string) (*marketdomain.ReportInfo, error) {
	endpoint := ReportInfoEndpoint + "/" + url.PathEscape(reportID)

	req, err := c.newRequest(ctx, http.MethodGet, c.endpointURL(endpoint), nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, readErrorBody(endpoint, resp)
	}

	var response marketdomain.ReportInfoResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	if response.Status != marketdomain.ResponseStatusOK || response.Result == nil {
		return nil, &marketdomain.ResponseError{
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode,
			Status:     response.Status,
			Errors:     response.Errors,
		}
	}

	return response.Result, nil
}
