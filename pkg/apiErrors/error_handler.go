package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	// Erros do dashboard
	ErrDataFetch       = "DASH_001" // Falha ao buscar dados do dashboard
	ErrInvoiceNotFound = "DASH_002" // Fatura não encontrada
	ErrSeedFailed      = "DASH_003" // Falha ao popular o banco

	// Erros de validação
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido

	// Erros de roteamento
	ErrRouteNotFound    = "RT_001" // Rota não encontrada
	ErrMethodNotAllowed = "RT_002" // Método não permitido

	// Erros do servidor
	ErrInternalServer = "SRV_001" // Erro interno do servidor
)

var httpStatusMap = map[string]int{
	ErrDataFetch:           http.StatusInternalServerError,
	ErrInvoiceNotFound:     http.StatusNotFound,
	ErrSeedFailed:          http.StatusInternalServerError,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInvalidFormat:       http.StatusBadRequest,
	ErrRouteNotFound:       http.StatusNotFound,
	ErrMethodNotAllowed:    http.StatusMethodNotAllowed,
	ErrInternalServer:      http.StatusInternalServerError,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
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
