package httperr

import (
	"errors"
	"net/http"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

var businessStatus = map[string]int{
	"client_not_found":      http.StatusNotFound,
	"appointment_not_found": http.StatusNotFound,
	"transaction_not_found": http.StatusNotFound,
	"product_not_found":     http.StatusNotFound,
	"automation_not_found":  http.StatusNotFound,
	"service_not_found":     http.StatusNotFound,
	"closing_not_found":     http.StatusNotFound,
	"summary_not_found":     http.StatusNotFound,
	"closing_in_progress":   http.StatusConflict,
	"closing_completed":     http.StatusConflict,
	"invalid_step":          http.StatusConflict,
	"email_already_exists":  http.StatusConflict,
	"invalid_credentials":   http.StatusUnauthorized,
	"unauthorized":          http.StatusUnauthorized,
	"payments_disabled":     http.StatusServiceUnavailable,
	"storage_disabled":      http.StatusServiceUnavailable,
}

var businessMessages = map[string]string{
	"client_not_found":         "Cliente não encontrado.",
	"appointment_not_found":    "Agendamento não encontrado.",
	"transaction_not_found":    "Transação não encontrada.",
	"product_not_found":        "Produto não encontrado.",
	"automation_not_found":     "Automação não encontrada.",
	"service_not_found":        "Serviço não encontrado.",
	"closing_not_found":        "Fechamento não encontrado.",
	"summary_not_found":        "Resumo diário não encontrado.",
	"closing_in_progress":      "Outro fechamento está em andamento para esta data.",
	"closing_completed":        "Fechamento já concluído.",
	"invalid_step":             "Etapa inválida para esta operação.",
	"attendance_incomplete":    "Confirme a presença de todos os agendamentos.",
	"invalid_amount":           "Valor inválido.",
	"invalid_date":             "Data inválida.",
	"invalid_time_range":       "Horário inválido.",
	"invalid_status":           "Status inválido.",
	"invalid_payment_method":   "Forma de pagamento inválida.",
	"invalid_transaction_type": "Tipo de transação inválido.",
	"invalid_category":         "Categoria inválida.",
	"invalid_trigger":          "Gatilho inválido.",
	"invalid_stock":            "Estoque não pode ficar negativo.",
	"invalid_product":          "Produto sem nome.",
	"invalid_client":           "Nome do cliente é obrigatório.",
	"invalid_phone":            "Telefone inválido.",
	"invalid_automation":       "Nome e mensagem da automação são obrigatórios.",
	"invalid_input":            "Dados inválidos.",
	"unauthorized":             "Não autenticado.",
	"invalid_index":            "Serviço adicional inexistente.",
	"missing_phone":            "Cliente sem telefone cadastrado.",
	"email_already_exists":     "E-mail já cadastrado.",
	"invalid_credentials":      "Credenciais inválidas.",
	"payments_disabled":        "Pagamentos online não configurados.",
	"storage_disabled":         "Armazenamento de arquivos não configurado.",
	"not_income":               "Somente receitas podem gerar link de pagamento.",
	"invalid_image":            "Imagem inválida.",
	"unsupported_settings_key": "Configuração desconhecida.",
}
