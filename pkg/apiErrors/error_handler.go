package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	// Erros de validação
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido
	ErrInvalidFilter       = "VAL_004" // Filtro de data ou plataforma inválido
	ErrMethodNotAllowed    = "VAL_005"

	// Erros de recurso
	ErrNotFound           = "RES_001" // Recurso não encontrado
	ErrDatasetNotLoaded   = "RES_002" // Dataset ainda não carregado
	ErrNoDataForFilter    = "RES_003" // Filtro não retornou linhas
	ErrReloadInProgress   = "RES_004" // Recarga já em andamento
	ErrTooManyRequests    = "RES_005" // Limite de requisições de chat
	ErrConversationLimits = "RES_006" // Conversa atingiu o limite de mensagens

	// Erros do servidor
	ErrInternalServer  = "SRV_001" // Erro interno do servidor
	ErrDatasetLoad     = "SRV_002" // Falha ao ler ou processar os CSVs
	ErrExternalService = "SRV_003" // Erro no modelo de linguagem
	ErrRendering       = "SRV_004" // Falha ao gerar gráfico ou exportação
)

var httpStatusMap = map[string]int{
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInvalidFormat:       http.StatusBadRequest,
	ErrInvalidFilter:       http.StatusBadRequest,
	ErrMethodNotAllowed:    http.StatusMethodNotAllowed,
	ErrNotFound:            http.StatusNotFound,
	ErrDatasetNotLoaded:    http.StatusServiceUnavailable,
	ErrNoDataForFilter:     http.StatusNotFound,
	ErrReloadInProgress:    http.StatusConflict,
	ErrTooManyRequests:     http.StatusTooManyRequests,
	ErrConversationLimits:  http.StatusUnprocessableEntity,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrDatasetLoad:         http.StatusInternalServerError,
	ErrExternalService:     http.StatusBadGateway,
	ErrRendering:           http.StatusInternalServerError,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

func (e APIError) Error() string {
	return e.Code + ": " + e.Message
}

// StatusFor devolve o status HTTP do código; códigos desconhecidos viram 500
func StatusFor(code string) int {
	if status, ok := httpStatusMap[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	_ = json.NewEncoder(w).Encode(APIError{
		Code:    code,
		Message: message,
		Details: details,
	})
}

// FromError envolve um erro Go em um APIError
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{Code: ErrInternalServer, Message: "unknown error"}
	}
	return APIError{Code: code, Message: err.Error()}
}
