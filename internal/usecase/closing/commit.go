package closing

import (
	"context"
	"fmt"
	"strconv"

	"github.com/BruksfildServices01/salon-manager/internal/domain/client"
	domain "github.com/BruksfildServices01/salon-manager/internal/domain/closing"
	"github.com/BruksfildServices01/salon-manager/internal/domain/financial"
	"github.com/BruksfildServices01/salon-manager/internal/models"
)

// commit grava as fases pendentes em ordem: presenças, serviços atendidos,
// serviços adicionais e resumo diário. Cada fase concluída é marcada e
// persistida antes da próxima começar.
func (uc *Closing) commit(ctx context.Context, s *domain.Session) error {
	if !s.IsApplied(domain.PhaseAttendance) {
		if err := uc.applyAttendance(ctx, s); err != nil {
			return fmt.Errorf("attendance: %w", err)
		}
		if err := uc.markApplied(ctx, s, domain.PhaseAttendance); err != nil {
			return err
		}
	}

	if !s.IsApplied(domain.PhaseServices) {
		if err := uc.applyServices(ctx, s); err != nil {
			return fmt.Errorf("services: %w", err)
		}
		if err := uc.markApplied(ctx, s, domain.PhaseServices); err != nil {
			return err
		}
	}

	for i, a := range s.Additional {
		phase := domain.AdditionalPhase(i)
		if s.IsApplied(phase) {
			continue
		}
		if err := uc.applyAdditional(ctx, s, i, a); err != nil {
			return fmt.Errorf("additional %d: %w", i, err)
		}
		if err := uc.markApplied(ctx, s, phase); err != nil {
			return err
		}
	}

	// O resumo é recalculado sempre; voltar e incluir adicionais muda os totais.
	if _, err := uc.Closer.CloseDailyOperations(ctx, s.Date); err != nil {
		return fmt.Errorf("summary: %w", err)
	}
	s.MarkApplied(domain.PhaseSummary)
	return nil
}

func (uc *Closing) markApplied(ctx context.Context, s *domain.Session, phase string) error {
	s.MarkApplied(phase)
	return uc.save(ctx, s)
}

func (uc *Closing) applyAttendance(ctx context.Context, s *domain.Session) error {
	for _, r := range s.Reviews {
		attended := r.Attended != nil && *r.Attended
		reason := ""
		if !attended {
			reason = client.NotAttendedReason
		}

		err := uc.Clients.SaveAttendance(ctx, &models.ClientAttendance{
			ID:            domain.RecordID(s.ID, "attendance", r.AppointmentID),
			ClientID:      r.ClientID,
			AppointmentID: r.AppointmentID,
			Date:          s.Date,
			Attended:      attended,
			Reason:        reason,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func (uc *Closing) applyServices(ctx context.Context, s *domain.Session) error {
	for _, r := range s.Reviews {
		if r.Attended == nil || !*r.Attended {
			continue
		}
		appointmentID := r.AppointmentID
		err := uc.record(ctx, s, "service:"+r.AppointmentID, serviceRecord{
			clientID:      r.ClientID,
			clientName:    r.ClientName,
			serviceName:   r.ServiceName,
			value:         r.CurrentValue,
			paymentMethod: r.PaymentMethod,
			appointmentID: &appointmentID,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func (uc *Closing) applyAdditional(ctx context.Context, s *domain.Session, i int, a domain.Additional) error {
	return uc.record(ctx, s, "additional:"+strconv.Itoa(i), serviceRecord{
		clientID:      a.ClientID,
		clientName:    a.ClientName,
		serviceName:   a.ServiceName,
		value:         a.Value,
		paymentMethod: a.PaymentMethod,
	})
}

type serviceRecord struct {
	clientID      string
	clientName    string
	serviceName   string
	value         models.Money
	paymentMethod string
	appointmentID *string
}

// record grava a receita e o serviço do cliente que a referencia, ambos com
// ids derivados da sessão e da chave.
func (uc *Closing) record(ctx context.Context, s *domain.Session, key string, in serviceRecord) error {
	txID := domain.RecordID(s.ID, "transaction", key)
	clientID := in.clientID

	tx := &models.Transaction{
		ID:            txID,
		Type:          string(financial.TypeIncome),
		Category:      "service",
		Amount:        in.value,
		Date:          s.Date,
		Description:   in.serviceName + " – " + in.clientName,
		AppointmentID: in.appointmentID,
		ClientID:      &clientID,
		PaymentMethod: in.paymentMethod,
	}
	if err := financial.Validate(tx); err != nil {
		return err
	}
	if err := uc.Ledger.SaveTransaction(ctx, tx); err != nil {
		return err
	}

	return uc.Clients.SaveClientService(ctx, &models.ClientService{
		ID:            domain.RecordID(s.ID, "client_service", key),
		ClientID:      in.clientID,
		ServiceName:   in.serviceName,
		Date:          s.Date,
		Price:         tx.Amount,
		Attended:      true,
		PaymentMethod: tx.PaymentMethod,
		AppointmentID: in.appointmentID,
		TransactionID: &txID,
	})
}
