package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-manager/internal/audit"
	"github.com/BruksfildServices01/salon-manager/internal/cache"
	"github.com/BruksfildServices01/salon-manager/internal/config"
	dbpkg "github.com/BruksfildServices01/salon-manager/internal/db"
	"github.com/BruksfildServices01/salon-manager/internal/messaging"
	"github.com/BruksfildServices01/salon-manager/internal/payments"
	"github.com/BruksfildServices01/salon-manager/internal/routes"
	"github.com/BruksfildServices01/salon-manager/internal/scheduler"
	"github.com/BruksfildServices01/salon-manager/internal/storage"
	"github.com/BruksfildServices01/salon-manager/internal/timezone"
	ucSetup "github.com/BruksfildServices01/salon-manager/internal/usecase/setup"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)
	loc := timezone.Location(cfg.Timezone)

	// O pool é opcional; sem ele os endpoints de setup respondem com o SQL manual.
	var execer ucSetup.Execer
	if pool := dbpkg.NewPool(cfg); pool != nil {
		defer pool.Close()
		execer = pool
	}

	redis := cache.New(cfg.RedisAddr, cfg.RedisPassword)
	defer redis.Close()

	r := gin.Default()

	app := routes.RegisterRoutes(r, cfg, routes.Infra{
		DB:       db,
		SQL:      execer,
		Cache:    redis,
		Storage:  storage.NewS3(cfg),
		Payments: payments.NewMercadoPago(cfg.MercadoPagoToken),
		Sender:   messaging.NewTwilioSender(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioWhatsAppNumber),
		Audit:    audit.NewDispatcher(audit.New(db)),
		Location: loc,
	})

	jobs := scheduler.New(loc)
	err := jobs.Every(cfg.AutomationCron, "automations", func(ctx context.Context) error {
		report, err := app.Automations.RunDue(ctx)
		if err != nil {
			return err
		}
		log.Printf("[automations] run: automations=%d sent=%d links=%d failed=%d",
			report.Automations, report.Sent, report.Links, report.Failed)
		return nil
	})
	if err != nil {
		log.Fatalf("invalid AUTOMATION_CRON %q: %v", cfg.AutomationCron, err)
	}
	jobs.Start()
	defer jobs.Stop()

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("Server running on %s", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("forced shutdown: %v", err)
	}
}
