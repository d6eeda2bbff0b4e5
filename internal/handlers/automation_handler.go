package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-manager/internal/httperr"
	"github.com/BruksfildServices01/salon-manager/internal/httpresp"
	ucAutomation "github.com/BruksfildServices01/salon-manager/internal/usecase/automation"
)

type AutomationHandler struct {
	automations *ucAutomation.Automations
}

func NewAutomationHandler(automations *ucAutomation.Automations) *AutomationHandler {
	return &AutomationHandler{automations: automations}
}

type AutomationRequest struct {
	Name      *string `json:"name"`
	Type      *string `json:"type"`
	Trigger   *string `json:"trigger"`
	TimeValue *int    `json:"time_value"`
	TimeUnit  *string `json:"time_unit"`
	Active    *bool   `json:"active"`
	Message   *string `json:"message"`
}

func (r AutomationRequest) input() ucAutomation.AutomationInput {
	return ucAutomation.AutomationInput{
		Name:      r.Name,
		Type:      r.Type,
		Trigger:   r.Trigger,
		TimeValue: r.TimeValue,
		TimeUnit:  r.TimeUnit,
		Active:    r.Active,
		Message:   r.Message,
	}
}

type SendRequest struct {
	ClientID string `json:"client_id" binding:"required"`
}

func (h *AutomationHandler) List(c *gin.Context) {
	list, err := h.automations.List(c.Request.Context(), c.Query("active") == "true")
	if err != nil {
		httperr.Respond(c, err, "failed_to_list_automations", "Erro ao listar automações.")
		return
	}
	httpresp.List(c, list)
}

func (h *AutomationHandler) Get(c *gin.Context) {
	a, err := h.automations.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.Respond(c, err, "failed_to_get_automation", "Erro ao buscar automação.")
		return
	}
	httpresp.OK(c, a)
}

func (h *AutomationHandler) Create(c *gin.Context) {
	var req AutomationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bad(c, err)
		return
	}

	a, err := h.automations.Create(c.Request.Context(), req.input())
	if err != nil {
		httperr.Respond(c, err, "failed_to_create_automation", "Erro ao criar automação.")
		return
	}
	httpresp.Created(c, a)
}

func (h *AutomationHandler) Update(c *gin.Context) {
	var req AutomationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bad(c, err)
		return
	}

	a, err := h.automations.Update(c.Request.Context(), c.Param("id"), req.input())
	if err != nil {
		httperr.Respond(c, err, "failed_to_update_automation", "Erro ao atualizar automação.")
		return
	}
	httpresp.OK(c, a)
}

func (h *AutomationHandler) Delete(c *gin.Context) {
	if err := h.automations.Delete(c.Request.Context(), c.Param("id")); err != nil {
		httperr.Respond(c, err, "failed_to_delete_automation", "Erro ao excluir automação.")
		return
	}
	httpresp.NoContent(c)
}

func (h *AutomationHandler) Matches(c *gin.Context) {
	list, err := h.automations.Matches(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.Respond(c, err, "failed_to_match_clients", "Erro ao buscar clientes.")
		return
	}
	httpresp.List(c, list)
}

func (h *AutomationHandler) Send(c *gin.Context) {
	var req SendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bad(c, err)
		return
	}

	res, err := h.automations.Send(c.Request.Context(), c.Param("id"), req.ClientID)
	if err != nil {
		httperr.Respond(c, err, "failed_to_send_message", "Erro ao gerar mensagem.")
		return
	}
	httpresp.OK(c, res)
}

func (h *AutomationHandler) Logs(c *gin.Context) {
	logs, err := h.automations.Logs(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.Respond(c, err, "failed_to_list_logs", "Erro ao listar envios.")
		return
	}
	httpresp.List(c, logs)
}

func (h *AutomationHandler) Run(c *gin.Context) {
	report, err := h.automations.RunDue(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err, "failed_to_run_automations", "Erro ao executar automações.")
		return
	}
	httpresp.OK(c, report)
}
