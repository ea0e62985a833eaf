package domain

import (
	"time"
)

type ReportStatus string

const (
	ReportStatusPending    ReportStatus = "PENDING"
	ReportStatusProcessing ReportStatus = "PROCESSING"
	ReportStatusDone       ReportStatus = "DONE"
	ReportStatusFailed     ReportStatus = "FAILED"
	ReportStatusUnknown    ReportStatus = "UNKNOWN"
)

// Status internos do diário de jobs, usados quando o sistema abandona ou interrompe o job
const (
	ReportStatusTimedOut ReportStatus = "TIMED_OUT"
	ReportStatusLoaded   ReportStatus = "LOADED"
	ReportStatusAborted  ReportStatus = "ABORTED"
)

const (
	DefaultReportFormat   = "CSV"
	DefaultReportGrouping = "OFFERS"
	DefaultReportType     = "sales"

	// ReportDateLayout é o formato de data aceito pela API do marketplace
	ReportDateLayout = time.DateOnly
)

// ReportJob representa uma geração de relatório solicitada ao marketplace
type ReportJob struct {
	ID         string       `json:"id"`
	ReportID   string       `json:"report_id"`
	ReportType string       `json:"report_type"`
	DateFrom   time.Time    `json:"date_from"`
	DateTo     time.Time    `json:"date_to"`
	Status     ReportStatus `json:"status"`
	SubStatus  *string      `json:"sub_status"`
	FileLink   *string      `json:"file_link"`
	Error      *string      `json:"error"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
}

// GenerationRequest agrupa os parâmetros de uma solicitação de geração
type GenerationRequest struct {
	DateFrom time.Time
	DateTo   time.Time
	Format   string
	Grouping string
}

// Validate garante um intervalo fechado de datas e aplica os valores padrão
func (r *GenerationRequest) Validate() error {
	if r.DateFrom.IsZero() || r.DateTo.IsZero() {
		return NewPipelineError(ErrInvalidRequest, StageGeneration, "date_from e date_to são obrigatórios")
	}

	if r.DateFrom.After(r.DateTo) {
		return NewPipelineError(ErrInvalidRequest, StageGeneration,
			"date_from "+r.DateFrom.Format(ReportDateLayout)+" posterior a date_to "+r.DateTo.Format(ReportDateLayout))
	}

	if r.Format == "" {
		r.Format = DefaultReportFormat
	}

	if r.Grouping == "" {
		r.Grouping = DefaultReportGrouping
	}

	return nil
}
