package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/salon-manager/internal/httperr"
	"github.com/BruksfildServices01/salon-manager/internal/httpresp"
	"github.com/BruksfildServices01/salon-manager/internal/models"
	ucFinancial "github.com/BruksfildServices01/salon-manager/internal/usecase/financial"
)

type FinancialHandler struct {
	financial *ucFinancial.Financial
	loc       *time.Location
}

func NewFinancialHandler(financial *ucFinancial.Financial, loc *time.Location) *FinancialHandler {
	return &FinancialHandler{financial: financial, loc: loc}
}

type TransactionRequest struct {
	Type          *string          `json:"type"`
	Category      *string          `json:"category"`
	Amount        *decimal.Decimal `json:"amount"`
	Date          *string          `json:"date"`
	Description   *string          `json:"description"`
	AppointmentID *string          `json:"appointment_id"`
	ClientID      *string          `json:"client_id"`
	PaymentMethod *string          `json:"payment_method"`
	Notes         *string          `json:"notes"`
}

func (r TransactionRequest) input() ucFinancial.TransactionInput {
	return ucFinancial.TransactionInput{
		Type:          r.Type,
		Category:      r.Category,
		Amount:        r.Amount,
		Date:          r.Date,
		Description:   r.Description,
		AppointmentID: r.AppointmentID,
		ClientID:      r.ClientID,
		PaymentMethod: r.PaymentMethod,
		Notes:         r.Notes,
	}
}

// ======================================================
// TRANSACTIONS
// ======================================================

func (h *FinancialHandler) ListTransactions(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		list []models.Transaction
		err  error
	)
	if date := c.Query("date"); date != "" {
		list, err = h.financial.GetTransactionsByDate(ctx, date)
	} else {
		list, err = h.financial.ListTransactions(ctx, c.Query("from"), c.Query("to"), c.Query("type"))
	}
	if err != nil {
		httperr.Respond(c, err, "failed_to_list_transactions", "Erro ao listar transações.")
		return
	}
	httpresp.List(c, list)
}

func (h *FinancialHandler) CreateTransaction(c *gin.Context) {
	var req TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bad(c, err)
		return
	}
	if req.Type == nil || req.Amount == nil {
		httperr.Respond(c, httperr.ErrBusiness("invalid_input"), "", "")
		return
	}
	if req.Date == nil {
		d := today(h.loc)
		req.Date = &d
	}

	tx, err := h.financial.AddTransaction(c.Request.Context(), req.input())
	if err != nil {
		httperr.Respond(c, err, "failed_to_create_transaction", "Erro ao criar transação.")
		return
	}
	httpresp.Created(c, tx)
}

func (h *FinancialHandler) UpdateTransaction(c *gin.Context) {
	var req TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bad(c, err)
		return
	}

	tx, err := h.financial.UpdateTransaction(c.Request.Context(), c.Param("id"), req.input())
	if err != nil {
		httperr.Respond(c, err, "failed_to_update_transaction", "Erro ao atualizar transação.")
		return
	}
	httpresp.OK(c, tx)
}

func (h *FinancialHandler) DeleteTransaction(c *gin.Context) {
	if err := h.financial.DeleteTransaction(c.Request.Context(), c.Param("id")); err != nil {
		httperr.Respond(c, err, "failed_to_delete_transaction", "Erro ao excluir transação.")
		return
	}
	httpresp.NoContent(c)
}

func (h *FinancialHandler) PaymentLink(c *gin.Context) {
	link, err := h.financial.CreatePaymentLink(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.Respond(c, err, "failed_to_create_payment_link", "Erro ao gerar link de pagamento.")
		return
	}
	httpresp.OK(c, link)
}

// ======================================================
// SUMMARIES
// ======================================================

func (h *FinancialHandler) DailySummary(c *gin.Context) {
	s, err := h.financial.GetDailySummary(c.Request.Context(), c.Param("date"))
	if err != nil {
		httperr.Respond(c, err, "failed_to_get_summary", "Erro ao buscar resumo.")
		return
	}
	httpresp.OK(c, s)
}

func (h *FinancialHandler) CloseDay(c *gin.Context) {
	s, err := h.financial.CloseDailyOperations(c.Request.Context(), c.Param("date"))
	if err != nil {
		httperr.Respond(c, err, "failed_to_close_day", "Erro ao fechar o dia.")
		return
	}
	httpresp.OK(c, s)
}

func (h *FinancialHandler) Report(c *gin.Context) {
	from, to := c.Query("from"), c.Query("to")
	if from == "" || to == "" {
		httperr.Respond(c, httperr.ErrBusiness("invalid_date"), "", "")
		return
	}

	r, err := h.financial.PeriodReport(c.Request.Context(), from, to)
	if err != nil {
		httperr.Respond(c, err, "failed_to_build_report", "Erro ao gerar relatório.")
		return
	}
	httpresp.OK(c, r)
}
