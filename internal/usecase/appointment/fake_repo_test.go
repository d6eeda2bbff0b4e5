package appointment

import (
	"context"
	"sort"
	"time"

	domain "github.com/BruksfildServices01/salon-manager/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-manager/internal/httperr"
	"github.com/BruksfildServices01/salon-manager/internal/models"
)

type fakeRepo struct {
	clients      map[string]*models.Client
	services     map[string]*models.Service
	appointments map[string]*models.Appointment
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		clients: map[string]*models.Client{
			"c-ana": {ID: "c-ana", Name: "Ana Silva", Phone: "+351911111111"},
			"c-bia": {ID: "c-bia", Name: "Bia Costa", Phone: "+351922222222"},
		},
		services: map[string]*models.Service{
			"s-corte":    {ID: "s-corte", Name: "Corte", DurationMin: 45},
			"s-manicure": {ID: "s-manicure", Name: "Manicure", DurationMin: 60},
		},
		appointments: map[string]*models.Appointment{},
	}
}

func (f *fakeRepo) GetClient(_ context.Context, id string) (*models.Client, error) {
	c, ok := f.clients[id]
	if !ok {
		return nil, httperr.ErrBusiness("client_not_found")
	}
	cp := *c
	return &cp, nil
}

func (f *fakeRepo) GetService(_ context.Context, id string) (*models.Service, error) {
	s, ok := f.services[id]
	if !ok {
		return nil, httperr.ErrBusiness("service_not_found")
	}
	cp := *s
	return &cp, nil
}

func (f *fakeRepo) CountAppointments(context.Context) (int64, error) {
	return int64(len(f.appointments)), nil
}

func (f *fakeRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	cp := *ap
	f.appointments[ap.ID] = &cp
	return nil
}

func (f *fakeRepo) GetAppointment(_ context.Context, id string) (*models.Appointment, error) {
	ap, ok := f.appointments[id]
	if !ok {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}
	cp := *ap
	return &cp, nil
}

func (f *fakeRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	cp := *ap
	f.appointments[ap.ID] = &cp
	return nil
}

func (f *fakeRepo) DeleteAppointment(_ context.Context, id string) error {
	if _, ok := f.appointments[id]; !ok {
		return httperr.ErrBusiness("appointment_not_found")
	}
	delete(f.appointments, id)
	return nil
}

func (f *fakeRepo) ListAppointments(_ context.Context, flt domain.ListFilter) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if flt.From != nil && ap.StartTime.Before(*flt.From) {
			continue
		}
		if flt.To != nil && !ap.StartTime.Before(*flt.To) {
			continue
		}
		if flt.ClientID != "" && ap.ClientID != flt.ClientID {
			continue
		}
		if flt.Status != "" && ap.Status != flt.Status {
			continue
		}
		out = append(out, *ap)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime.Before(out[j].StartTime) })
	return out, nil
}

func (f *fakeRepo) ListAppointmentsForPeriod(ctx context.Context, start, end time.Time) ([]models.Appointment, error) {
	return f.ListAppointments(ctx, domain.ListFilter{From: &start, To: &end})
}
