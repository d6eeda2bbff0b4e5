package closing

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/BruksfildServices01/salon-manager/internal/httperr"
	"github.com/BruksfildServices01/salon-manager/internal/models"
)

type fakeRepo struct {
	mu      sync.Mutex
	records map[string]models.ClosingRecord
}

func (f *fakeRepo) GetClosing(_ context.Context, date string) (*models.ClosingRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rec, ok := f.records[date]
	if !ok {
		return nil, httperr.ErrBusiness("closing_not_found")
	}
	return &rec, nil
}

func (f *fakeRepo) SaveClosing(_ context.Context, rec *models.ClosingRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.records[rec.Date] = *rec
	return nil
}

func (f *fakeRepo) ListClosings(context.Context, string, string) ([]models.ClosingRecord, error) {
	return nil, nil
}

type fakeAppointments struct {
	apps []models.Appointment
}

func (f *fakeAppointments) ListAppointmentsForPeriod(_ context.Context, start, end time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.apps {
		if !ap.StartTime.Before(start) && ap.StartTime.Before(end) {
			out = append(out, ap)
		}
	}
	return out, nil
}

type fakeClients struct {
	clients    map[string]models.Client
	attendance map[string]models.ClientAttendance
	services   map[string]models.ClientService
}

func (f *fakeClients) GetClient(_ context.Context, id string) (*models.Client, error) {
	c, ok := f.clients[id]
	if !ok {
		return nil, httperr.ErrBusiness("client_not_found")
	}
	return &c, nil
}

func (f *fakeClients) SaveAttendance(_ context.Context, a *models.ClientAttendance) error {
	f.attendance[a.ID] = *a
	return nil
}

func (f *fakeClients) SaveClientService(_ context.Context, s *models.ClientService) error {
	f.services[s.ID] = *s
	return nil
}

var errLedgerDown = errors.New("ledger unavailable")

type fakeLedger struct {
	txs  map[string]models.Transaction
	fail bool
}

func (f *fakeLedger) SaveTransaction(_ context.Context, tx *models.Transaction) error {
	if f.fail {
		return errLedgerDown
	}
	f.txs[tx.ID] = *tx
	return nil
}

type fakeCloser struct {
	ledger *fakeLedger
	calls  int
}

func (f *fakeCloser) CloseDailyOperations(_ context.Context, date string) (*models.DailySummary, error) {
	f.calls++
	s := &models.DailySummary{Date: date}
	for _, tx := range f.ledger.txs {
		if tx.Date == date {
			s.TotalIncome = s.TotalIncome.Add(tx.Amount)
			s.TransactionCount++
		}
	}
	return s, nil
}

type fakeCatalog struct {
	services map[string]models.Service
}

func (f *fakeCatalog) GetServiceByName(_ context.Context, name string) (*models.Service, error) {
	s, ok := f.services[name]
	if !ok {
		return nil, httperr.ErrBusiness("service_not_found")
	}
	return &s, nil
}

type fakeAutomations struct {
	list []models.Automation
}

func (f *fakeAutomations) ListAutomations(_ context.Context, onlyActive bool) ([]models.Automation, error) {
	var out []models.Automation
	for _, a := range f.list {
		if !onlyActive || a.Active {
			out = append(out, a)
		}
	}
	return out, nil
}
