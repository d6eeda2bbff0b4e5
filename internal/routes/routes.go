package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-manager/internal/audit"
	"github.com/BruksfildServices01/salon-manager/internal/cache"
	"github.com/BruksfildServices01/salon-manager/internal/config"
	"github.com/BruksfildServices01/salon-manager/internal/handlers"
	infraRepo "github.com/BruksfildServices01/salon-manager/internal/infra/repository"
	"github.com/BruksfildServices01/salon-manager/internal/messaging"
	"github.com/BruksfildServices01/salon-manager/internal/middleware"
	"github.com/BruksfildServices01/salon-manager/internal/storage"
	ucAppointment "github.com/BruksfildServices01/salon-manager/internal/usecase/appointment"
	ucAutomation "github.com/BruksfildServices01/salon-manager/internal/usecase/automation"
	ucClient "github.com/BruksfildServices01/salon-manager/internal/usecase/client"
	ucClosing "github.com/BruksfildServices01/salon-manager/internal/usecase/closing"
	ucFinancial "github.com/BruksfildServices01/salon-manager/internal/usecase/financial"
	ucProduct "github.com/BruksfildServices01/salon-manager/internal/usecase/product"
	ucSettings "github.com/BruksfildServices01/salon-manager/internal/usecase/settings"
	ucSetup "github.com/BruksfildServices01/salon-manager/internal/usecase/setup"
)

// Infra são as dependências externas já abertas pelo main.
type Infra struct {
	DB       *gorm.DB
	SQL      ucSetup.Execer
	Cache    *cache.Client
	Storage  *storage.S3Store
	Payments ucFinancial.PaymentLinker
	Sender   messaging.Sender
	Audit    *audit.Dispatcher
	Location *time.Location
}

// App expõe os use cases que rodam fora do HTTP (jobs agendados).
type App struct {
	Automations *ucAutomation.Automations
}

func RegisterRoutes(r *gin.Engine, cfg *config.Config, in Infra) *App {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware(cfg.CORSOrigins))
	r.Use(middleware.RequestMetrics())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(in.DB)
	clientRepo := infraRepo.NewClientGormRepository(in.DB)
	financialRepo := infraRepo.NewFinancialGormRepository(in.DB)
	catalogRepo := infraRepo.NewCatalogGormRepository(in.DB)
	automationRepo := infraRepo.NewAutomationGormRepository(in.DB)
	closingRepo := infraRepo.NewClosingGormRepository(in.DB)
	settingsRepo := infraRepo.NewSettingsGormRepository(in.DB)

	// ======================================================
	// USE CASES
	// ======================================================
	financialUC := ucFinancial.NewFinancial(financialRepo, in.Cache, in.Payments, in.Audit)
	clientsUC := ucClient.NewClients(clientRepo, financialRepo, in.Audit)
	automationsUC := ucAutomation.NewAutomations(
		automationRepo,
		clientRepo,
		appointmentRepo,
		in.Sender,
		in.Audit,
		in.Location,
	)

	closingUC := ucClosing.NewClosing(ucClosing.Deps{
		Repo:         closingRepo,
		Appointments: appointmentRepo,
		Clients:      clientRepo,
		Ledger:       financialRepo,
		Closer:       financialUC,
		Catalog:      catalogRepo,
		Automations:  automationRepo,
		Locker:       in.Cache,
		Audit:        in.Audit,
		Location:     in.Location,
		OnComplete: []ucClosing.CompletionHook{
			ucClosing.ArchiveReport(in.Storage, time.Now),
		},
	})

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(in.DB, cfg, in.Audit)
	meHandler := handlers.NewMeHandler(in.DB)
	auditLogsHandler := handlers.NewAuditLogsHandler(in.DB)

	appointmentHandler := handlers.NewAppointmentHandler(
		ucAppointment.NewCreateAppointment(appointmentRepo, in.Audit),
		ucAppointment.NewUpdateAppointment(appointmentRepo, in.Audit),
		ucAppointment.NewCancelAppointment(appointmentRepo, in.Audit),
		ucAppointment.NewDeleteAppointment(appointmentRepo, in.Audit),
		ucAppointment.NewListAppointments(appointmentRepo, in.Location),
		in.Location,
	)
	clientHandler := handlers.NewClientHandler(clientsUC)
	financialHandler := handlers.NewFinancialHandler(financialUC, in.Location)
	closingHandler := handlers.NewClosingHandler(closingUC)
	automationHandler := handlers.NewAutomationHandler(automationsUC)
	productHandler := handlers.NewProductHandler(ucProduct.NewProducts(catalogRepo, in.Storage, in.Audit))
	settingsHandler := handlers.NewSettingsHandler(ucSettings.NewSettings(settingsRepo, in.Audit))
	setupHandler := handlers.NewSetupHandler(ucSetup.NewSetup(in.SQL, cfg.SetupTimeout))

	// ======================================================
	// INFRA ROUTES
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg.JWTSecret))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.GET("/audit-logs", auditLogsHandler.List)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.GET("/appointments", appointmentHandler.List)
			secured.GET("/appointments/day/:date", appointmentHandler.Day)
			secured.GET("/appointments/:id", appointmentHandler.Get)
			secured.POST("/appointments", appointmentHandler.Create)
			secured.PUT("/appointments/:id", appointmentHandler.Update)
			secured.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)
			secured.DELETE("/appointments/:id", appointmentHandler.Delete)

			// ------------------------------
			// CLIENTS
			// ------------------------------
			secured.GET("/clients", clientHandler.List)
			secured.POST("/clients", clientHandler.Create)
			secured.GET("/clients/:id", clientHandler.Get)
			secured.PUT("/clients/:id", clientHandler.Update)
			secured.DELETE("/clients/:id", clientHandler.Delete)
			secured.GET("/clients/:id/services", clientHandler.ListServices)
			secured.POST("/clients/:id/services", clientHandler.AddService)
			secured.GET("/clients/:id/attendance", clientHandler.ListAttendance)
			secured.POST("/clients/:id/attendance", clientHandler.AddAttendance)
			secured.PUT("/client-services/:id", clientHandler.UpdateService)

			// ------------------------------
			// FINANCIAL
			// ------------------------------
			secured.GET("/financial/transactions", financialHandler.ListTransactions)
			secured.POST("/financial/transactions", financialHandler.CreateTransaction)
			secured.PUT("/financial/transactions/:id", financialHandler.UpdateTransaction)
			secured.DELETE("/financial/transactions/:id", financialHandler.DeleteTransaction)
			secured.POST("/financial/transactions/:id/payment-link", financialHandler.PaymentLink)
			secured.GET("/financial/summary/:date", financialHandler.DailySummary)
			secured.POST("/financial/summary/:date/close", financialHandler.CloseDay)
			secured.GET("/financial/report", financialHandler.Report)

			// ------------------------------
			// CLOSING
			// ------------------------------
			secured.GET("/closings", closingHandler.List)
			secured.GET("/closings/:date", closingHandler.Get)
			secured.POST("/closings/:date/start", closingHandler.Start)
			secured.PATCH("/closings/:date/reviews/:appointment_id", closingHandler.UpdateReview)
			secured.DELETE("/closings/:date/reviews/:appointment_id/attendance", closingHandler.ClearAttendance)
			secured.POST("/closings/:date/additional", closingHandler.AddAdditional)
			secured.DELETE("/closings/:date/additional/:index", closingHandler.RemoveAdditional)
			secured.POST("/closings/:date/next", closingHandler.Next)
			secured.POST("/closings/:date/back", closingHandler.Back)
			secured.POST("/closings/:date/complete", closingHandler.Complete)

			// ------------------------------
			// AUTOMATIONS
			// ------------------------------
			secured.GET("/automations", automationHandler.List)
			secured.POST("/automations", automationHandler.Create)
			secured.POST("/automations/run", automationHandler.Run)
			secured.GET("/automations/:id", automationHandler.Get)
			secured.PUT("/automations/:id", automationHandler.Update)
			secured.DELETE("/automations/:id", automationHandler.Delete)
			secured.GET("/automations/:id/matches", automationHandler.Matches)
			secured.POST("/automations/:id/send", automationHandler.Send)
			secured.GET("/automations/:id/logs", automationHandler.Logs)

			// ------------------------------
			// PRODUCTS / CATALOG
			// ------------------------------
			secured.GET("/services", productHandler.Services)
			secured.POST("/products/setup", productHandler.Setup)
			secured.GET("/products", productHandler.List)
			secured.POST("/products", productHandler.Create)
			secured.PATCH("/products/stock", productHandler.Stock)
			secured.PATCH("/products/:id", productHandler.Update)
			secured.DELETE("/products/:id", productHandler.Delete)
			secured.POST("/products/:id/image", productHandler.UploadImage)

			// ------------------------------
			// SETTINGS / SETUP
			// ------------------------------
			secured.GET("/settings", settingsHandler.GetAll)
			secured.GET("/settings/:key", settingsHandler.Get)
			secured.PUT("/settings/:key", settingsHandler.Save)

			secured.POST("/setup-financial-tables", setupHandler.FinancialTables())
			secured.POST("/fix-transactions-table", setupHandler.FixTransactionsTable())
			secured.POST("/setup-stored-procedure", setupHandler.StoredProcedure())
			secured.POST("/setup-products-table", setupHandler.ProductsTable())
		}
	}

	return &App{Automations: automationsUC}
}
