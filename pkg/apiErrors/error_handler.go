package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Códigos de erro da API
const (
	// Erros do relatório
	ErrReportNotReady = "REP_001" // Nenhum relatório gerado até o momento
	ErrMonthNotFound  = "REP_002" // Mês não presente no relatório
	ErrReportFailed   = "REP_003" // Dados de entrada impedem a geração do relatório

	// Erros de validação
	ErrInvalidRequest = "VAL_001" // Requisição inválida

	// Erros de roteamento
	ErrRouteNotFound    = "RTE_001" // Rota inexistente
	ErrMethodNotAllowed = "RTE_002" // Método não suportado pela rota

	// Erros do servidor
	ErrInternalServer  = "SRV_001" // Erro interno do servidor
	ErrSourceOperation = "SRV_002" // Erro ao ler a fonte de vendas
	ErrRefreshTimeout  = "SRV_003" // Geração excedeu o tempo limite
	ErrRefreshCanceled = "SRV_004" // Cliente desconectou antes do fim da geração
)

// statusClientClosedRequest segue a convenção do nginx para requisições abandonadas pelo cliente
const statusClientClosedRequest = 499

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrReportNotReady:   http.StatusServiceUnavailable,
	ErrMonthNotFound:    http.StatusNotFound,
	ErrReportFailed:     http.StatusUnprocessableEntity,
	ErrInvalidRequest:   http.StatusBadRequest,
	ErrRouteNotFound:    http.StatusNotFound,
	ErrMethodNotAllowed: http.StatusMethodNotAllowed,
	ErrInternalServer:   http.StatusInternalServerError,
	ErrSourceOperation:  http.StatusBadGateway,
	ErrRefreshTimeout:   http.StatusGatewayTimeout,
	ErrRefreshCanceled:  statusClientClosedRequest,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// StatusFor devolve o status HTTP de um código, 500 para códigos desconhecidos
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	Write(w, APIError{
		Code:    code,
		Message: message,
		Details: details,
	})
}

// Write envia um APIError já montado com o status do seu código
func Write(w http.ResponseWriter, apiErr APIError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(apiErr.Code))
	_ = json.NewEncoder(w).Encode(apiErr)
}

// FromError monta o erro de API a partir de um erro Go, com o texto do erro em Details.
// Um err nil vira SRV_001.
func FromError(err error, code, message string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Erro desconhecido",
		}
	}

	return APIError{
		Code:    code,
		Message: message,
		Details: err.Error(),
	}
}
