package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Códigos de erro do servidor de operação
const (
	// Erros de autenticação
	ErrInvalidToken = "AUTH_001" // Token de operação ausente ou inválido

	// Erros de validação
	ErrInvalidRequest = "VAL_001" // Requisição inválida
	ErrInvalidFormat  = "VAL_002" // Formato de dados inválido

	// Erros de sincronização
	ErrSyncAlreadyRunning = "SYNC_001" // Já existe uma execução em andamento
	ErrSyncDisabled       = "SYNC_002" // Agendamento desabilitado

	// Erros do servidor
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidToken:       http.StatusUnauthorized,
	ErrInvalidRequest:     http.StatusBadRequest,
	ErrInvalidFormat:      http.StatusBadRequest,
	ErrSyncAlreadyRunning: http.StatusConflict,
	ErrSyncDisabled:       http.StatusServiceUnavailable,
	ErrInternalServer:     http.StatusInternalServerError,
	ErrDatabaseOperation:  http.StatusServiceUnavailable,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

// StatusFor devolve o status HTTP associado ao código
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	_ = json.NewEncoder(w).Encode(apiErr)
}
