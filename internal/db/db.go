package db

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-manager/internal/config"
	"github.com/BruksfildServices01/salon-manager/internal/domain/catalog"
	"github.com/BruksfildServices01/salon-manager/internal/models"
)

// Models lista as tabelas gerenciadas pelo AutoMigrate.
func Models() []any {
	return []any{
		&models.User{},
		&models.AuditLog{},
		&models.Client{},
		&models.ClientService{},
		&models.ClientAttendance{},
		&models.Service{},
		&models.Appointment{},
		&models.Transaction{},
		&models.DailySummary{},
		&models.Automation{},
		&models.MessageLog{},
		&models.Product{},
		&models.ClosingRecord{},
		&models.SettingsSnapshot{},
	}
}

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := Migrate(db); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	return db
}

// Migrate cria as tabelas e grava o catálogo padrão de serviços quando vazio.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return err
	}

	var count int64
	if err := db.Model(&models.Service{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, s := range catalog.DefaultServices {
		svc := s
		svc.ID = uuid.NewString()
		if err := db.Create(&svc).Error; err != nil {
			return err
		}
	}
	log.Printf("[db] seeded %d catalog services", len(catalog.DefaultServices))
	return nil
}

// NewPool abre o pool pgx usado pelos endpoints de setup, que rodam DDL
// direto no banco. Falha de conexão não derruba a API.
func NewPool(cfg *config.Config) *pgxpool.Pool {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, cfg.DBUrl)
	if err != nil {
		log.Printf("[db] pgx pool unavailable: %v", err)
		return nil
	}
	if err := pool.Ping(ctx); err != nil {
		log.Printf("[db] pgx ping failed: %v", err)
		pool.Close()
		return nil
	}
	return pool
}
