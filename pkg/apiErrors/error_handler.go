package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Códigos de erro da API
const (
	// Erros de autenticação com a plataforma (1000-1999)
	ErrMissingCredentials = "AUTH_001" // client_id/client_secret ausentes
	ErrTokenExchange      = "AUTH_002" // Falha na troca de credenciais por token

	// Erros de validação (2000-2999)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido
	ErrInvalidDateRange    = "VAL_004" // Período de datas inválido
	ErrInvalidCPAGoal      = "VAL_005" // Meta de CPA fora do intervalo
	ErrPageOutOfRange      = "VAL_006" // Página fora do intervalo suportado

	// Erros da plataforma upstream (4000-4999)
	ErrUpstreamAPI       = "UPS_001" // Resposta não-2xx da API do Realize
	ErrUpstreamNetwork   = "UPS_002" // Falha de rede ao falar com a API
	ErrPayloadTooLarge   = "UPS_003" // Resposta excedeu o teto de bytes
	ErrAccountNotFound   = "UPS_004" // Conta não encontrada
	ErrRuleNotSelectable = "UPS_005" // Regra de conversão não selecionável

	// Erros do servidor (5000-5999)
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
	ErrExportFailure     = "SRV_003" // Falha ao gerar planilha
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrMissingCredentials:  http.StatusUnauthorized,
	ErrTokenExchange:       http.StatusUnauthorized,
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInvalidFormat:       http.StatusBadRequest,
	ErrInvalidDateRange:    http.StatusBadRequest,
	ErrInvalidCPAGoal:      http.StatusBadRequest,
	ErrPageOutOfRange:      http.StatusBadRequest,
	ErrUpstreamAPI:         http.StatusBadGateway,
	ErrUpstreamNetwork:     http.StatusServiceUnavailable,
	ErrPayloadTooLarge:     http.StatusBadGateway,
	ErrAccountNotFound:     http.StatusNotFound,
	ErrRuleNotSelectable:   http.StatusUnprocessableEntity,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrDatabaseOperation:   http.StatusInternalServerError,
	ErrExportFailure:       http.StatusInternalServerError,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}

// FromError cria um erro de API a partir de um erro Go
// Útil para quando você quer envolver um erro existente em um erro de API
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Erro desconhecido",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
