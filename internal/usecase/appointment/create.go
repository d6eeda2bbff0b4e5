package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/salon-manager/internal/audit"
	domain "github.com/BruksfildServices01/salon-manager/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-manager/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	ClientID  string
	ServiceID string

	Start time.Time
	End   *time.Time

	Status string
	Notes  string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// Status
	// --------------------------------------------------
	status, err := domain.ParseStatus(in.Status)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Cliente e serviço
	// --------------------------------------------------
	client, err := uc.repo.GetClient(ctx, in.ClientID)
	if err != nil {
		return nil, err
	}

	svc, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, err
	}

	ap := &models.Appointment{
		ID:     uuid.NewString(),
		Status: string(status),
		Notes:  in.Notes,
	}
	domain.ApplyService(ap, svc)
	domain.ApplyClient(ap, client)

	// --------------------------------------------------
	// Horário
	// --------------------------------------------------
	if err := domain.Schedule(ap, in.Start, in.End); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Cor (rodízio pela quantidade existente)
	// --------------------------------------------------
	count, err := uc.repo.CountAppointments(ctx)
	if err != nil {
		return nil, err
	}
	ap.Color = domain.ColorFor(count)

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: ap.ID,
	})

	return ap, nil
}
