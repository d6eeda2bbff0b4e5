package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/salon-manager/internal/models"
)

type ListFilter struct {
	From     *time.Time
	To       *time.Time
	ClientID string
	Status   string
}

type Repository interface {
	// -------- Lookups --------
	GetClient(ctx context.Context, id string) (*models.Client, error)
	GetService(ctx context.Context, id string) (*models.Service, error)

	// -------- Appointment --------
	CountAppointments(ctx context.Context) (int64, error)
	CreateAppointment(ctx context.Context, ap *models.Appointment) error
	GetAppointment(ctx context.Context, id string) (*models.Appointment, error)
	UpdateAppointment(ctx context.Context, ap *models.Appointment) error
	DeleteAppointment(ctx context.Context, id string) error

	ListAppointments(ctx context.Context, f ListFilter) ([]models.Appointment, error)
	ListAppointmentsForPeriod(ctx context.Context, start time.Time, end time.Time) ([]models.Appointment, error)
}
