package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/salon-manager/internal/audit"
	domain "github.com/BruksfildServices01/salon-manager/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-manager/internal/models"
)

// UpdateAppointmentInput só altera os campos não nulos.
type UpdateAppointmentInput struct {
	ClientID  *string
	ServiceID *string
	Start     *time.Time
	End       *time.Time
	Status    *string
	Color     *string
	Notes     *string
}

type UpdateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	id string,
	in UpdateAppointmentInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.ServiceID != nil && *in.ServiceID != ap.ServiceID {
		svc, err := uc.repo.GetService(ctx, *in.ServiceID)
		if err != nil {
			return nil, err
		}
		domain.ApplyService(ap, svc)
	}

	if in.ClientID != nil && *in.ClientID != ap.ClientID {
		client, err := uc.repo.GetClient(ctx, *in.ClientID)
		if err != nil {
			return nil, err
		}
		domain.ApplyClient(ap, client)
	}

	if in.Start != nil || in.End != nil {
		start := ap.StartTime
		if in.Start != nil {
			start = *in.Start
		}
		end := in.End
		if end == nil && in.Start == nil {
			end = &ap.EndTime
		}
		if err := domain.Schedule(ap, start, end); err != nil {
			return nil, err
		}
	}

	if in.Status != nil {
		status, err := domain.ParseStatus(*in.Status)
		if err != nil {
			return nil, err
		}
		ap.Status = string(status)
	}
	if in.Color != nil {
		ap.Color = *in.Color
	}
	if in.Notes != nil {
		ap.Notes = *in.Notes
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_updated",
		Entity:   "appointment",
		EntityID: ap.ID,
	})

	return ap, nil
}
