package client

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/salon-manager/internal/audit"
	domain "github.com/BruksfildServices01/salon-manager/internal/domain/client"
	"github.com/BruksfildServices01/salon-manager/internal/domain/financial"
	"github.com/BruksfildServices01/salon-manager/internal/httperr"
	"github.com/BruksfildServices01/salon-manager/internal/models"
	"github.com/BruksfildServices01/salon-manager/internal/timezone"
)

type ServiceInput struct {
	ServiceName   string
	Date          string
	Price         decimal.Decimal
	Attended      bool
	PaymentMethod string
	Notes         string
	AppointmentID *string
}

type ServiceUpdate struct {
	ServiceName   *string
	Date          *string
	Price         *decimal.Decimal
	Attended      *bool
	PaymentMethod *string
	Notes         *string
}

func validDate(d string) error {
	if _, err := time.Parse(timezone.DateLayout, d); err != nil {
		return httperr.ErrBusiness("invalid_date")
	}
	return nil
}

// serviceTransaction é a receita que corresponde a um serviço prestado.
func serviceTransaction(id string, s *models.ClientService) *models.Transaction {
	clientID := s.ClientID
	return &models.Transaction{
		ID:            id,
		Type:          string(financial.TypeIncome),
		Category:      "service",
		Amount:        s.Price,
		Date:          s.Date,
		Description:   s.ServiceName,
		AppointmentID: s.AppointmentID,
		ClientID:      &clientID,
		PaymentMethod: s.PaymentMethod,
	}
}

// AddClientService registra o serviço e, quando houve atendimento cobrado,
// a receita correspondente. O serviço guarda o id da transação.
func (uc *Clients) AddClientService(
	ctx context.Context,
	clientID string,
	in ServiceInput,
) (*models.ClientService, error) {

	if _, err := uc.repo.GetClient(ctx, clientID); err != nil {
		return nil, err
	}
	if err := validDate(in.Date); err != nil {
		return nil, err
	}
	if in.ServiceName == "" {
		return nil, httperr.ErrBusiness("service_not_found")
	}
	if in.Price.IsNegative() {
		return nil, httperr.ErrBusiness("invalid_amount")
	}
	pm, err := financial.ParsePaymentMethod(in.PaymentMethod)
	if err != nil {
		return nil, err
	}

	s := &models.ClientService{
		ID:            uuid.NewString(),
		ClientID:      clientID,
		ServiceName:   in.ServiceName,
		Date:          in.Date,
		Price:         in.Price.Round(2),
		Attended:      in.Attended,
		PaymentMethod: string(pm),
		Notes:         in.Notes,
		AppointmentID: in.AppointmentID,
	}

	if s.Attended && s.Price.IsPositive() {
		tx := serviceTransaction(uuid.NewString(), s)
		if err := uc.financial.SaveTransaction(ctx, tx); err != nil {
			return nil, err
		}
		s.TransactionID = &tx.ID
	}

	if err := uc.repo.SaveClientService(ctx, s); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "client_service_added",
		Entity:   "client_service",
		EntityID: s.ID,
		Metadata: map[string]any{"client_id": clientID},
	})
	return s, nil
}

// UpdateClientService mantém a receita vinculada em sincronia com o serviço.
func (uc *Clients) UpdateClientService(
	ctx context.Context,
	id string,
	in ServiceUpdate,
) (*models.ClientService, error) {

	s, err := uc.repo.GetClientService(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.ServiceName != nil {
		s.ServiceName = *in.ServiceName
	}
	if in.Date != nil {
		if err := validDate(*in.Date); err != nil {
			return nil, err
		}
		s.Date = *in.Date
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, httperr.ErrBusiness("invalid_amount")
		}
		s.Price = in.Price.Round(2)
	}
	if in.Attended != nil {
		s.Attended = *in.Attended
	}
	if in.PaymentMethod != nil {
		pm, err := financial.ParsePaymentMethod(*in.PaymentMethod)
		if err != nil {
			return nil, err
		}
		s.PaymentMethod = string(pm)
	}
	if in.Notes != nil {
		s.Notes = *in.Notes
	}

	billable := s.Attended && s.Price.IsPositive()
	switch {
	case billable:
		txID := uuid.NewString()
		if s.TransactionID != nil {
			txID = *s.TransactionID
		}
		if err := uc.financial.SaveTransaction(ctx, serviceTransaction(txID, s)); err != nil {
			return nil, err
		}
		s.TransactionID = &txID
	case s.TransactionID != nil:
		if err := uc.financial.DeleteTransaction(ctx, *s.TransactionID); err != nil && !httperr.IsBusiness(err, "transaction_not_found") {
			return nil, err
		}
		s.TransactionID = nil
	}

	if err := uc.repo.SaveClientService(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (uc *Clients) AddClientAttendance(
	ctx context.Context,
	clientID string,
	appointmentID string,
	date string,
	attended bool,
	reason string,
) (*models.ClientAttendance, error) {

	if _, err := uc.repo.GetClient(ctx, clientID); err != nil {
		return nil, err
	}
	if err := validDate(date); err != nil {
		return nil, err
	}
	if !attended && reason == "" {
		reason = domain.NotAttendedReason
	}

	a := &models.ClientAttendance{
		ID:            uuid.NewString(),
		ClientID:      clientID,
		AppointmentID: appointmentID,
		Date:          date,
		Attended:      attended,
		Reason:        reason,
	}
	if err := uc.repo.SaveAttendance(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (uc *Clients) GetClientServices(ctx context.Context, clientID string) ([]models.ClientService, error) {
	return uc.repo.ListClientServices(ctx, clientID)
}

func (uc *Clients) GetClientAttendance(ctx context.Context, clientID string) ([]models.ClientAttendance, error) {
	return uc.repo.ListAttendance(ctx, clientID)
}
