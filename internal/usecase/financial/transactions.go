package financial

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/salon-manager/internal/audit"
	domain "github.com/BruksfildServices01/salon-manager/internal/domain/financial"
	"github.com/BruksfildServices01/salon-manager/internal/httperr"
	"github.com/BruksfildServices01/salon-manager/internal/models"
	"github.com/BruksfildServices01/salon-manager/internal/payments"
	"github.com/BruksfildServices01/salon-manager/internal/timezone"
)

// Cache é o cache de resumos diários (redis em produção).
type Cache interface {
	GetJSON(ctx context.Context, key string, v any) bool
	SetJSON(ctx context.Context, key string, v any, ttl time.Duration)
	Delete(ctx context.Context, keys ...string)
}

type PaymentLinker interface {
	CreateLink(ctx context.Context, tx *models.Transaction) (*payments.Link, error)
}

// ======================================================
// USE CASE
// ======================================================

type Financial struct {
	repo     domain.Repository
	cache    Cache
	payments PaymentLinker
	audit    *audit.Dispatcher
}

func NewFinancial(
	repo domain.Repository,
	cache Cache,
	payments PaymentLinker,
	audit *audit.Dispatcher,
) *Financial {
	return &Financial{
		repo:     repo,
		cache:    cache,
		payments: payments,
		audit:    audit,
	}
}

type TransactionInput struct {
	Type          *string
	Category      *string
	Amount        *decimal.Decimal
	Date          *string
	Description   *string
	AppointmentID *string
	ClientID      *string
	PaymentMethod *string
	Notes         *string
}

func apply(tx *models.Transaction, in TransactionInput) error {
	if in.Type != nil {
		tx.Type = *in.Type
	}
	if in.Category != nil {
		tx.Category = *in.Category
	}
	if in.Amount != nil {
		tx.Amount = *in.Amount
	}
	if in.Date != nil {
		if _, err := time.Parse(timezone.DateLayout, *in.Date); err != nil {
			return httperr.ErrBusiness("invalid_date")
		}
		tx.Date = *in.Date
	}
	if in.Description != nil {
		tx.Description = *in.Description
	}
	if in.AppointmentID != nil {
		tx.AppointmentID = nilIfEmpty(*in.AppointmentID)
	}
	if in.ClientID != nil {
		tx.ClientID = nilIfEmpty(*in.ClientID)
	}
	if in.PaymentMethod != nil {
		tx.PaymentMethod = *in.PaymentMethod
	}
	if in.Notes != nil {
		tx.Notes = *in.Notes
	}
	return domain.Validate(tx)
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// ======================================================
// Transactions
// ======================================================

func (uc *Financial) AddTransaction(ctx context.Context, in TransactionInput) (*models.Transaction, error) {
	tx := &models.Transaction{ID: uuid.NewString()}
	if in.Date == nil {
		today := timezone.DayKey(timezone.Now())
		in.Date = &today
	}
	if err := apply(tx, in); err != nil {
		return nil, err
	}

	if err := uc.repo.SaveTransaction(ctx, tx); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "transaction_created",
		Entity:   "transaction",
		EntityID: tx.ID,
		Metadata: map[string]any{"type": tx.Type, "amount": tx.Amount.StringFixed(2)},
	})
	return tx, nil
}

func (uc *Financial) UpdateTransaction(ctx context.Context, id string, in TransactionInput) (*models.Transaction, error) {
	tx, err := uc.repo.GetTransaction(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := apply(tx, in); err != nil {
		return nil, err
	}
	if err := uc.repo.SaveTransaction(ctx, tx); err != nil {
		return nil, err
	}
	return tx, nil
}

func (uc *Financial) DeleteTransaction(ctx context.Context, id string) error {
	if err := uc.repo.DeleteTransaction(ctx, id); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "transaction_deleted",
		Entity:   "transaction",
		EntityID: id,
	})
	return nil
}

func (uc *Financial) GetTransaction(ctx context.Context, id string) (*models.Transaction, error) {
	return uc.repo.GetTransaction(ctx, id)
}

func (uc *Financial) ListTransactions(ctx context.Context, from, to, typ string) ([]models.Transaction, error) {
	if typ != "" && domain.Type(typ) != domain.TypeIncome && domain.Type(typ) != domain.TypeExpense {
		return nil, httperr.ErrBusiness("invalid_transaction_type")
	}
	return uc.repo.ListTransactions(ctx, domain.ListFilter{From: from, To: to, Type: typ})
}

func (uc *Financial) GetTransactionsByDate(ctx context.Context, date string) ([]models.Transaction, error) {
	if _, err := time.Parse(timezone.DateLayout, date); err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}
	return uc.repo.ListTransactionsByDate(ctx, date)
}

// ======================================================
// Payment link
// ======================================================

func (uc *Financial) CreatePaymentLink(ctx context.Context, id string) (*payments.Link, error) {
	tx, err := uc.repo.GetTransaction(ctx, id)
	if err != nil {
		return nil, err
	}
	if domain.Type(tx.Type) != domain.TypeIncome {
		return nil, httperr.ErrBusiness("not_income")
	}
	if !tx.Amount.IsPositive() {
		return nil, httperr.ErrBusiness("invalid_amount")
	}

	link, err := uc.payments.CreateLink(ctx, tx)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "payment_link_created",
		Entity:   "transaction",
		EntityID: tx.ID,
		Metadata: map[string]any{"preference_id": link.PreferenceID},
	})
	return link, nil
}
