package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-manager/internal/httperr"
	"github.com/BruksfildServices01/salon-manager/internal/httpresp"
	ucSettings "github.com/BruksfildServices01/salon-manager/internal/usecase/settings"
)

// SettingsHandler guarda as configurações do salão (dados do negócio,
// horário de funcionamento, notificações e automações).
type SettingsHandler struct {
	settings *ucSettings.Settings
}

func NewSettingsHandler(settings *ucSettings.Settings) *SettingsHandler {
	return &SettingsHandler{settings: settings}
}

func (h *SettingsHandler) GetAll(c *gin.Context) {
	all, err := h.settings.GetAll(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err, "failed_to_load_settings", "Erro ao carregar configurações.")
		return
	}
	httpresp.OK(c, all)
}

func (h *SettingsHandler) Get(c *gin.Context) {
	payload, err := h.settings.Get(c.Request.Context(), c.Param("key"))
	if err != nil {
		httperr.Respond(c, err, "failed_to_load_settings", "Erro ao carregar configurações.")
		return
	}
	httpresp.OK(c, payload)
}

func (h *SettingsHandler) Save(c *gin.Context) {
	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		bad(c, err)
		return
	}

	saved, err := h.settings.Save(c.Request.Context(), c.Param("key"), payload)
	if err != nil {
		httperr.Respond(c, err, "failed_to_save_settings", "Erro ao salvar configurações.")
		return
	}
	httpresp.OK(c, saved)
}
