package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Códigos de erro da API
const (
	// Erros de validação
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido
	ErrMissingField        = "VAL_004" // Campo obrigatório ausente no dataset
	ErrInvalidFieldValue   = "VAL_005" // Valor de campo não convertível
	ErrPayloadTooLarge     = "VAL_006" // Arquivo enviado excede o limite
	ErrMethodNotAllowed    = "VAL_007" // Método HTTP não suportado pela rota

	// Erros de relatório
	ErrDivisionUndefined = "RPT_001" // Divisão por zero ao derivar um indicador

	// Erros de recurso
	ErrDatasetNotFound = "NOT_001" // Dataset não configurado
	ErrRouteNotFound   = "NOT_002" // Rota inexistente

	// Erros do servidor
	ErrInternalServer     = "SRV_001" // Erro interno do servidor
	ErrDatasetUnavailable = "SRV_002" // Arquivo do dataset indisponível ou corrompido
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInvalidFormat:       http.StatusBadRequest,
	ErrMissingField:        http.StatusUnprocessableEntity,
	ErrInvalidFieldValue:   http.StatusUnprocessableEntity,
	ErrPayloadTooLarge:     http.StatusRequestEntityTooLarge,
	ErrMethodNotAllowed:    http.StatusMethodNotAllowed,
	ErrDivisionUndefined:   http.StatusUnprocessableEntity,
	ErrDatasetNotFound:     http.StatusNotFound,
	ErrRouteNotFound:       http.StatusNotFound,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrDatasetUnavailable:  http.StatusInternalServerError,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// Status retorna o status HTTP associado ao código
func Status(code string) int {
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
	w.WriteHeader(Status(code))
	json.NewEncoder(w).Encode(apiErr)
}

// FromError cria um erro de API a partir de um erro Go
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
