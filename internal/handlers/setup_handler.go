package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	ucSetup "github.com/BruksfildServices01/salon-manager/internal/usecase/setup"
)

// SetupHandler roda os scripts de preparação do banco. Falhas respondem 500
// com o SQL para execução manual.
type SetupHandler struct {
	setup *ucSetup.Setup
}

func NewSetupHandler(setup *ucSetup.Setup) *SetupHandler {
	return &SetupHandler{setup: setup}
}

func (h *SetupHandler) handle(run func(context.Context) *ucSetup.Result) gin.HandlerFunc {
	return func(c *gin.Context) {
		res := run(c.Request.Context())
		status := http.StatusOK
		if !res.Success {
			status = http.StatusInternalServerError
		}
		c.JSON(status, res)
	}
}

func (h *SetupHandler) FinancialTables() gin.HandlerFunc {
	return h.handle(h.setup.FinancialTables)
}

func (h *SetupHandler) FixTransactionsTable() gin.HandlerFunc {
	return h.handle(h.setup.FixTransactionsTable)
}

func (h *SetupHandler) StoredProcedure() gin.HandlerFunc {
	return h.handle(h.setup.StoredProcedure)
}

func (h *SetupHandler) ProductsTable() gin.HandlerFunc {
	return h.handle(h.setup.Products)
}
