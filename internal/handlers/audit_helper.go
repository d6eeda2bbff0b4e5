package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-manager/internal/audit"
	"github.com/BruksfildServices01/salon-manager/internal/middleware"
)

// writeAudit registra ações feitas direto no handler, com o usuário do token.
func writeAudit(
	d *audit.Dispatcher,
	c *gin.Context,
	action string,
	entity string,
	entityID string,
	meta any,
) {
	d.Dispatch(audit.Event{
		UserID:   middleware.UserID(c),
		Action:   action,
		Entity:   entity,
		EntityID: entityID,
		Metadata: meta,
	})
}

func bad(c *gin.Context, err error) {
	c.JSON(400, gin.H{
		"error_code": "invalid_request",
		"message":    "Dados inválidos.",
		"details":    err.Error(),
	})
}
