package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/salon-manager/internal/httperr"
	"github.com/BruksfildServices01/salon-manager/internal/httpresp"
	"github.com/BruksfildServices01/salon-manager/internal/timezone"
	ucClient "github.com/BruksfildServices01/salon-manager/internal/usecase/client"
)

type ClientHandler struct {
	clients *ucClient.Clients
}

func NewClientHandler(clients *ucClient.Clients) *ClientHandler {
	return &ClientHandler{clients: clients}
}

// --------- Requests ---------

type ClientRequest struct {
	Name       *string `json:"name"`
	Email      *string `json:"email"`
	Phone      *string `json:"phone"`
	Address    *string `json:"address"`
	City       *string `json:"city"`
	PostalCode *string `json:"postal_code"`
	TaxID      *string `json:"tax_id"`
	BirthDate  *string `json:"birth_date"`
	Notes      *string `json:"notes"`
	Status     *string `json:"status"`
}

func (r ClientRequest) input() (ucClient.ClientInput, error) {
	in := ucClient.ClientInput{
		Name:       r.Name,
		Email:      r.Email,
		Phone:      r.Phone,
		Address:    r.Address,
		City:       r.City,
		PostalCode: r.PostalCode,
		TaxID:      r.TaxID,
		Notes:      r.Notes,
		Status:     r.Status,
	}
	if r.BirthDate != nil && *r.BirthDate != "" {
		d, err := time.Parse(timezone.DateLayout, *r.BirthDate)
		if err != nil {
			return in, httperr.ErrBusiness("invalid_date")
		}
		in.BirthDate = &d
	}
	return in, nil
}

type ClientServiceRequest struct {
	ServiceName   string          `json:"service_name" binding:"required"`
	Date          string          `json:"date"`
	Price         decimal.Decimal `json:"price"`
	Attended      *bool           `json:"attended"`
	PaymentMethod string          `json:"payment_method"`
	Notes         string          `json:"notes"`
	AppointmentID *string         `json:"appointment_id"`
}

type ClientServiceUpdateRequest struct {
	ServiceName   *string          `json:"service_name"`
	Date          *string          `json:"date"`
	Price         *decimal.Decimal `json:"price"`
	Attended      *bool            `json:"attended"`
	PaymentMethod *string          `json:"payment_method"`
	Notes         *string          `json:"notes"`
}

type AttendanceRequest struct {
	AppointmentID string `json:"appointment_id"`
	Date          string `json:"date"`
	Attended      bool   `json:"attended"`
	Reason        string `json:"reason"`
}

// ======================================================
// CLIENTS
// ======================================================

func (h *ClientHandler) List(c *gin.Context) {
	clients, err := h.clients.ListClients(c.Request.Context(), c.Query("query"), c.Query("status"))
	if err != nil {
		httperr.Respond(c, err, "failed_to_list_clients", "Erro ao listar clientes.")
		return
	}
	httpresp.List(c, clients)
}

func (h *ClientHandler) Get(c *gin.Context) {
	client, err := h.clients.GetClient(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.Respond(c, err, "failed_to_get_client", "Erro ao buscar cliente.")
		return
	}
	httpresp.OK(c, client)
}

func (h *ClientHandler) Create(c *gin.Context) {
	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bad(c, err)
		return
	}
	in, err := req.input()
	if err != nil {
		httperr.Respond(c, err, "", "")
		return
	}

	client, err := h.clients.AddClient(c.Request.Context(), in)
	if err != nil {
		httperr.Respond(c, err, "failed_to_create_client", "Erro ao criar cliente.")
		return
	}
	httpresp.Created(c, client)
}

func (h *ClientHandler) Update(c *gin.Context) {
	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bad(c, err)
		return
	}
	in, err := req.input()
	if err != nil {
		httperr.Respond(c, err, "", "")
		return
	}

	client, err := h.clients.UpdateClient(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		httperr.Respond(c, err, "failed_to_update_client", "Erro ao atualizar cliente.")
		return
	}
	httpresp.OK(c, client)
}

func (h *ClientHandler) Delete(c *gin.Context) {
	if err := h.clients.DeleteClient(c.Request.Context(), c.Param("id")); err != nil {
		httperr.Respond(c, err, "failed_to_delete_client", "Erro ao excluir cliente.")
		return
	}
	httpresp.NoContent(c)
}

// ======================================================
// SERVICES / ATTENDANCE
// ======================================================

func (h *ClientHandler) ListServices(c *gin.Context) {
	list, err := h.clients.GetClientServices(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.Respond(c, err, "failed_to_list_services", "Erro ao listar serviços.")
		return
	}
	httpresp.List(c, list)
}

func (h *ClientHandler) AddService(c *gin.Context) {
	var req ClientServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bad(c, err)
		return
	}
	if req.Date == "" {
		req.Date = timezone.DayKey(timezone.Now())
	}
	attended := true
	if req.Attended != nil {
		attended = *req.Attended
	}

	s, err := h.clients.AddClientService(c.Request.Context(), c.Param("id"), ucClient.ServiceInput{
		ServiceName:   req.ServiceName,
		Date:          req.Date,
		Price:         req.Price,
		Attended:      attended,
		PaymentMethod: req.PaymentMethod,
		Notes:         req.Notes,
		AppointmentID: req.AppointmentID,
	})
	if err != nil {
		httperr.Respond(c, err, "failed_to_add_service", "Erro ao registrar serviço.")
		return
	}
	httpresp.Created(c, s)
}

func (h *ClientHandler) UpdateService(c *gin.Context) {
	var req ClientServiceUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bad(c, err)
		return
	}

	s, err := h.clients.UpdateClientService(c.Request.Context(), c.Param("id"), ucClient.ServiceUpdate{
		ServiceName:   req.ServiceName,
		Date:          req.Date,
		Price:         req.Price,
		Attended:      req.Attended,
		PaymentMethod: req.PaymentMethod,
		Notes:         req.Notes,
	})
	if err != nil {
		httperr.Respond(c, err, "failed_to_update_service", "Erro ao atualizar serviço.")
		return
	}
	httpresp.OK(c, s)
}

func (h *ClientHandler) ListAttendance(c *gin.Context) {
	list, err := h.clients.GetClientAttendance(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.Respond(c, err, "failed_to_list_attendance", "Erro ao listar presenças.")
		return
	}
	httpresp.List(c, list)
}

func (h *ClientHandler) AddAttendance(c *gin.Context) {
	var req AttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bad(c, err)
		return
	}
	if req.Date == "" {
		req.Date = timezone.DayKey(timezone.Now())
	}

	a, err := h.clients.AddClientAttendance(
		c.Request.Context(),
		c.Param("id"),
		req.AppointmentID,
		req.Date,
		req.Attended,
		req.Reason,
	)
	if err != nil {
		httperr.Respond(c, err, "failed_to_add_attendance", "Erro ao registrar presença.")
		return
	}
	httpresp.Created(c, a)
}
