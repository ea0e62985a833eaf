package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Erros específicos do pipeline de relatórios
var (
	// Erros de entrada
	ErrInvalidRequest = errors.New("invalid report request")

	// Erros de geração do relatório
	ErrRemoteRequest     = errors.New("remote request rejected")
	ErrGenerationTimeout = errors.New("report generation timed out")
	ErrGenerationFailed  = errors.New("report generation failed")
	ErrMissingFileLink   = errors.New("report done without file link")

	// Erros de download e extração
	ErrDownload     = errors.New("archive download failed")
	ErrEmptyPayload = errors.New("empty payload")
	ErrFileTooLarge = errors.New("file exceeds maximum size")
	ErrExtraction   = errors.New("archive extraction failed")

	// Erros de carga
	ErrParse        = errors.New("report file parse failed")
	ErrPersist      = errors.New("report chunk persist failed")
	ErrNoDataLoaded = errors.New("no report file loaded")
)

// Stage identifica a etapa do pipeline onde o erro ocorreu
type Stage string

const (
	StageGeneration Stage = "generation"
	StagePolling    Stage = "polling"
	StageDownload   Stage = "download"
	StageExtraction Stage = "extraction"
	StageParse      Stage = "parse"
	StagePersist    Stage = "persist"
	StageLoad       Stage = "load"
)

// PipelineError é um erro com contexto suficiente para diagnóstico do operador
type PipelineError struct {
	Err       error  // Erro base (um dos sentinelas acima)
	Stage     Stage  // Etapa do pipeline
	Endpoint  string // Endpoint remoto envolvido (quando aplicável)
	ReportID  string // ID do relatório no marketplace
	SubStatus string // Sub status informado pelo marketplace em FAILED
	File      string // Arquivo envolvido
	Chunk     int    // Índice do lote (começando em 0), -1 quando não se aplica
	Details   string // Detalhes adicionais
	Cause     error  // Erro original, quando existe
}

// Error implementa a interface error
func (e *PipelineError) Error() string {
	parts := []string{e.Err.Error()}

	if e.Endpoint != "" {
		parts = append(parts, "endpoint="+e.Endpoint)
	}
	if e.ReportID != "" {
		parts = append(parts, "report_id="+e.ReportID)
	}
	if e.SubStatus != "" {
		parts = append(parts, "sub_status="+e.SubStatus)
	}
	if e.File != "" {
		parts = append(parts, "file="+e.File)
	}
	if e.Chunk >= 0 {
		parts = append(parts, fmt.Sprintf("chunk=%d", e.Chunk))
	}
	if e.Details != "" {
		parts = append(parts, e.Details)
	}
	if e.Cause != nil {
		parts = append(parts, e.Cause.Error())
	}

	return strings.Join(parts, ": ")
}

// Unwrap retorna o erro base e a causa original
func (e *PipelineError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}

// NewPipelineError cria um novo PipelineError
func NewPipelineError(err error, stage Stage, details string) *PipelineError {
	return &PipelineError{
		Err:     err,
		Stage:   stage,
		Chunk:   -1,
		Details: details,
	}
}

// WithCause registra o erro original
func (e *PipelineError) WithCause(cause error) *PipelineError {
	e.Cause = cause
	return e
}

// WithEndpoint registra o endpoint remoto
func (e *PipelineError) WithEndpoint(endpoint string) *PipelineError {
	e.Endpoint = endpoint
	return e
}

// WithReportID registra o ID do relatório
func (e *PipelineError) WithReportID(reportID string) *PipelineError {
	e.ReportID = reportID
	return e
}

// WithFile registra o arquivo envolvido
func (e *PipelineError) WithFile(file string) *PipelineError {
	e.File = file
	return e
}

// WithChunk registra o índice do lote
func (e *PipelineError) WithChunk(chunk int) *PipelineError {
	e.Chunk = chunk
	return e
}
