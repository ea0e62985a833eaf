package marketdomain

// ResponseStatusOK é o status de envelope de uma resposta bem sucedida
const ResponseStatusOK = "OK"

// APIError representa um item da lista "errors" do envelope da API
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// GenerateReportRequest é o corpo enviado para reports/shows-sales/generate
type GenerateReportRequest struct {
	BusinessID string `json:"businessId"`
	DateFrom   string `json:"dateFrom"`
	DateTo     string `json:"dateTo"`
	Grouping   string `json:"grouping"`
}

type GenerateReportResult struct {
	ReportID                string `json:"reportId"`
	EstimatedGenerationTime int64  `json:"estimatedGenerationTime"`
}

type GenerateReportResponse struct {
	Status string                `json:"status"`
	Result *GenerateReportResult `json:"result"`
	Errors []APIError            `json:"errors"`
}

// ReportInfo é o resultado de reports/info/{reportId}
type ReportInfo struct {
	Status                  string `json:"status"`
	SubStatus               string `json:"subStatus"`
	GenerationRequestedAt   string `json:"generationRequestedAt"`
	GenerationFinishedAt    string `json:"generationFinishedAt"`
	File                    string `json:"file"`
	EstimatedGenerationTime int64  `json:"estimatedGenerationTime"`
}

type ReportInfoResponse struct {
	Status string      `json:"status"`
	Result *ReportInfo `json:"result"`
	Errors []APIError  `json:"errors"`
}
