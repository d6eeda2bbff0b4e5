package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	domain "github.com/BruksfildServices01/salon-manager/internal/domain/closing"
	"github.com/BruksfildServices01/salon-manager/internal/httperr"
	"github.com/BruksfildServices01/salon-manager/internal/httpresp"
	ucClosing "github.com/BruksfildServices01/salon-manager/internal/usecase/closing"
)

// ======================================================
// HANDLER
// ======================================================

// ClosingHandler expõe o assistente de fechamento de caixa. Todas as rotas
// recebem a data (YYYY-MM-DD) no caminho.
type ClosingHandler struct {
	closing *ucClosing.Closing
}

func NewClosingHandler(closing *ucClosing.Closing) *ClosingHandler {
	return &ClosingHandler{closing: closing}
}

type ReviewRequest struct {
	Attended      *bool            `json:"attended"`
	CurrentValue  *decimal.Decimal `json:"current_value"`
	PaymentMethod *string          `json:"payment_method"`
}

type AdditionalRequest struct {
	ClientID      string           `json:"client_id" binding:"required"`
	ServiceName   string           `json:"service_name" binding:"required"`
	Value         *decimal.Decimal `json:"value"`
	PaymentMethod string           `json:"payment_method"`
}

func (h *ClosingHandler) respond(c *gin.Context, v *ucClosing.View, err error) {
	if err != nil {
		httperr.Respond(c, err, "closing_failed", "Erro no fechamento de caixa.")
		return
	}
	httpresp.OK(c, v)
}

func (h *ClosingHandler) List(c *gin.Context) {
	list, err := h.closing.List(c.Request.Context(), c.Query("from"), c.Query("to"))
	if err != nil {
		httperr.Respond(c, err, "failed_to_list_closings", "Erro ao listar fechamentos.")
		return
	}
	httpresp.List(c, list)
}

func (h *ClosingHandler) Start(c *gin.Context) {
	v, err := h.closing.Start(c.Request.Context(), c.Param("date"))
	h.respond(c, v, err)
}

func (h *ClosingHandler) Get(c *gin.Context) {
	v, err := h.closing.Get(c.Request.Context(), c.Param("date"))
	h.respond(c, v, err)
}

func (h *ClosingHandler) UpdateReview(c *gin.Context) {
	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bad(c, err)
		return
	}

	v, err := h.closing.UpdateReview(c.Request.Context(), c.Param("date"), domain.ReviewUpdate{
		AppointmentID: c.Param("appointment_id"),
		Attended:      req.Attended,
		CurrentValue:  req.CurrentValue,
		PaymentMethod: req.PaymentMethod,
	})
	h.respond(c, v, err)
}

func (h *ClosingHandler) ClearAttendance(c *gin.Context) {
	v, err := h.closing.ClearAttendance(c.Request.Context(), c.Param("date"), c.Param("appointment_id"))
	h.respond(c, v, err)
}

func (h *ClosingHandler) AddAdditional(c *gin.Context) {
	var req AdditionalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bad(c, err)
		return
	}

	v, err := h.closing.AddAdditional(c.Request.Context(), c.Param("date"), ucClosing.AdditionalInput{
		ClientID:      req.ClientID,
		ServiceName:   req.ServiceName,
		Value:         req.Value,
		PaymentMethod: req.PaymentMethod,
	})
	h.respond(c, v, err)
}

func (h *ClosingHandler) RemoveAdditional(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		httperr.Respond(c, httperr.ErrBusiness("invalid_index"), "", "")
		return
	}
	v, err := h.closing.RemoveAdditional(c.Request.Context(), c.Param("date"), index)
	h.respond(c, v, err)
}

func (h *ClosingHandler) Next(c *gin.Context) {
	v, err := h.closing.Next(c.Request.Context(), c.Param("date"))
	h.respond(c, v, err)
}

func (h *ClosingHandler) Back(c *gin.Context) {
	v, err := h.closing.Back(c.Request.Context(), c.Param("date"))
	h.respond(c, v, err)
}

func (h *ClosingHandler) Complete(c *gin.Context) {
	v, err := h.closing.Complete(c.Request.Context(), c.Param("date"))
	h.respond(c, v, err)
}
