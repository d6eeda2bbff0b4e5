package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/salon-manager/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-manager/internal/dto"
	"github.com/BruksfildServices01/salon-manager/internal/httperr"
	"github.com/BruksfildServices01/salon-manager/internal/models"
	"github.com/BruksfildServices01/salon-manager/internal/timezone"
)

// ======================================================
// Consultas
// ======================================================

type ListAppointments struct {
	repo domain.Repository
	loc  *time.Location
}

func NewListAppointments(
	repo domain.Repository,
	loc *time.Location,
) *ListAppointments {
	return &ListAppointments{
		repo: repo,
		loc:  loc,
	}
}

func (uc *ListAppointments) Get(ctx context.Context, id string) (*models.Appointment, error) {
	return uc.repo.GetAppointment(ctx, id)
}

// ListForDay devolve os agendamentos que começam no dia informado
// (YYYY-MM-DD) no fuso do salão.
func (uc *ListAppointments) ListForDay(
	ctx context.Context,
	day string,
) ([]dto.AppointmentListDTO, error) {

	start, end, err := timezone.DayRange(day, uc.loc)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	appointments, err := uc.repo.ListAppointmentsForPeriod(ctx, start, end)
	if err != nil {
		return nil, err
	}

	return dto.AppointmentList(appointments), nil
}

type ListQuery struct {
	Date     string
	From     string
	To       string
	ClientID string
	Status   string
}

func (uc *ListAppointments) List(
	ctx context.Context,
	q ListQuery,
) ([]dto.AppointmentListDTO, error) {

	if q.Date != "" {
		q.From, q.To = q.Date, q.Date
	}

	f := domain.ListFilter{
		ClientID: q.ClientID,
		Status:   q.Status,
	}
	if q.From != "" {
		start, _, err := timezone.DayRange(q.From, uc.loc)
		if err != nil {
			return nil, httperr.ErrBusiness("invalid_date")
		}
		f.From = &start
	}
	if q.To != "" {
		_, end, err := timezone.DayRange(q.To, uc.loc)
		if err != nil {
			return nil, httperr.ErrBusiness("invalid_date")
		}
		f.To = &end
	}

	appointments, err := uc.repo.ListAppointments(ctx, f)
	if err != nil {
		return nil, err
	}
	return dto.AppointmentList(appointments), nil
}
