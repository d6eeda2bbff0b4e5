package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-manager/internal/httperr"
	"github.com/BruksfildServices01/salon-manager/internal/httpresp"
	ucAppointment "github.com/BruksfildServices01/salon-manager/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	create *ucAppointment.CreateAppointment
	update *ucAppointment.UpdateAppointment
	cancel *ucAppointment.CancelAppointment
	remove *ucAppointment.DeleteAppointment
	list   *ucAppointment.ListAppointments
	loc    *time.Location
}

func NewAppointmentHandler(
	create *ucAppointment.CreateAppointment,
	update *ucAppointment.UpdateAppointment,
	cancel *ucAppointment.CancelAppointment,
	remove *ucAppointment.DeleteAppointment,
	list *ucAppointment.ListAppointments,
	loc *time.Location,
) *AppointmentHandler {
	return &AppointmentHandler{
		create: create,
		update: update,
		cancel: cancel,
		remove: remove,
		list:   list,
		loc:    loc,
	}
}

// ======================================================
// REQUESTS
// ======================================================

// Start aceita RFC3339 ou "YYYY-MM-DD HH:MM"; Date + Time é a forma do formulário.
type CreateAppointmentRequest struct {
	ClientID  string `json:"client_id" binding:"required"`
	ServiceID string `json:"service_id" binding:"required"`
	Start     string `json:"start"`
	End       string `json:"end"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Status    string `json:"status"`
	Notes     string `json:"notes"`
}

type UpdateAppointmentRequest struct {
	ClientID  *string `json:"client_id"`
	ServiceID *string `json:"service_id"`
	Start     *string `json:"start"`
	End       *string `json:"end"`
	Status    *string `json:"status"`
	Color     *string `json:"color"`
	Notes     *string `json:"notes"`
}

func (h *AppointmentHandler) instant(value *string) (*time.Time, bool) {
	if value == nil || *value == "" {
		return nil, true
	}
	t, err := parseInstant(*value, h.loc)
	if err != nil {
		return nil, false
	}
	return &t, true
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bad(c, err)
		return
	}

	var (
		start *time.Time
		ok    bool
	)
	if req.Start != "" {
		start, ok = h.instant(&req.Start)
	} else if req.Date != "" && req.Time != "" {
		t, err := parseDateTime(req.Date, req.Time, h.loc)
		start, ok = &t, err == nil
	}
	if !ok || start == nil {
		httperr.BadRequest(c, "invalid_date_or_time", "Data ou hora inválida.")
		return
	}

	end, ok := h.instant(&req.End)
	if !ok {
		httperr.BadRequest(c, "invalid_date_or_time", "Data ou hora inválida.")
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		ClientID:  req.ClientID,
		ServiceID: req.ServiceID,
		Start:     *start,
		End:       end,
		Status:    req.Status,
		Notes:     req.Notes,
	})
	if err != nil {
		httperr.Respond(c, err, "failed_to_create_appointment", "Erro ao criar agendamento.")
		return
	}

	httpresp.Created(c, ap)
}

// ======================================================
// UPDATE
// ======================================================

func (h *AppointmentHandler) Update(c *gin.Context) {
	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bad(c, err)
		return
	}

	start, okStart := h.instant(req.Start)
	end, okEnd := h.instant(req.End)
	if !okStart || !okEnd {
		httperr.BadRequest(c, "invalid_date_or_time", "Data ou hora inválida.")
		return
	}

	ap, err := h.update.Execute(c.Request.Context(), c.Param("id"), ucAppointment.UpdateAppointmentInput{
		ClientID:  req.ClientID,
		ServiceID: req.ServiceID,
		Start:     start,
		End:       end,
		Status:    req.Status,
		Color:     req.Color,
		Notes:     req.Notes,
	})
	if err != nil {
		httperr.Respond(c, err, "failed_to_update_appointment", "Erro ao atualizar agendamento.")
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// LIST / GET
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	list, err := h.list.List(c.Request.Context(), ucAppointment.ListQuery{
		Date:     c.Query("date"),
		From:     c.Query("from"),
		To:       c.Query("to"),
		ClientID: c.Query("client_id"),
		Status:   c.Query("status"),
	})
	if err != nil {
		httperr.Respond(c, err, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	httpresp.List(c, list)
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	ap, err := h.list.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.Respond(c, err, "failed_to_get_appointment", "Erro ao buscar agendamento.")
		return
	}
	httpresp.OK(c, ap)
}

// ======================================================
// CANCEL / DELETE
// ======================================================

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	ap, err := h.cancel.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.Respond(c, err, "failed_to_cancel_appointment", "Erro ao cancelar agendamento.")
		return
	}
	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	if err := h.remove.Execute(c.Request.Context(), c.Param("id")); err != nil {
		httperr.Respond(c, err, "failed_to_delete_appointment", "Erro ao excluir agendamento.")
		return
	}
	httpresp.NoContent(c)
}

// Day devolve o calendário de um dia no fuso do salão.
func (h *AppointmentHandler) Day(c *gin.Context) {
	list, err := h.list.ListForDay(c.Request.Context(), c.Param("date"))
	if err != nil {
		httperr.Respond(c, err, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}
	httpresp.List(c, list)
}
