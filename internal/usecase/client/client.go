package client

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/salon-manager/internal/audit"
	domain "github.com/BruksfildServices01/salon-manager/internal/domain/client"
	"github.com/BruksfildServices01/salon-manager/internal/domain/financial"
	"github.com/BruksfildServices01/salon-manager/internal/httperr"
	"github.com/BruksfildServices01/salon-manager/internal/models"
	"github.com/BruksfildServices01/salon-manager/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type ClientInput struct {
	Name       *string
	Email      *string
	Phone      *string
	Address    *string
	City       *string
	PostalCode *string
	TaxID      *string
	BirthDate  *time.Time
	Notes      *string
	Status     *string
}

// ======================================================
// USE CASE
// ======================================================

// Clients reúne o cadastro de clientes e o histórico de serviços e presenças.
type Clients struct {
	repo      domain.Repository
	financial financial.Repository
	audit     *audit.Dispatcher
}

func NewClients(
	repo domain.Repository,
	fin financial.Repository,
	audit *audit.Dispatcher,
) *Clients {
	return &Clients{
		repo:      repo,
		financial: fin,
		audit:     audit,
	}
}

func apply(c *models.Client, in ClientInput) error {
	if in.Name != nil {
		c.Name = strings.TrimSpace(*in.Name)
		c.Initials = domain.Initials(c.Name)
	}
	if in.Email != nil {
		c.Email = strings.ToLower(strings.TrimSpace(*in.Email))
	}
	if in.Phone != nil {
		c.Phone = strings.TrimSpace(*in.Phone)
		if !validators.PhoneOK(c.Phone) {
			return httperr.ErrBusiness("invalid_phone")
		}
	}
	if in.Address != nil {
		c.Address = *in.Address
	}
	if in.City != nil {
		c.City = *in.City
	}
	if in.PostalCode != nil {
		c.PostalCode = *in.PostalCode
	}
	if in.TaxID != nil {
		c.TaxID = *in.TaxID
	}
	if in.BirthDate != nil {
		d := *in.BirthDate
		c.BirthDate = &d
	}
	if in.Notes != nil {
		c.Notes = *in.Notes
	}
	if in.Status != nil {
		st, err := domain.ParseStatus(*in.Status)
		if err != nil {
			return err
		}
		c.Status = string(st)
	}
	return nil
}

func (uc *Clients) AddClient(ctx context.Context, in ClientInput) (*models.Client, error) {
	c := &models.Client{
		ID:     uuid.NewString(),
		Status: string(domain.StatusActive),
	}
	if err := apply(c, in); err != nil {
		return nil, err
	}
	if c.Name == "" {
		return nil, httperr.ErrBusiness("invalid_client")
	}

	if err := uc.repo.CreateClient(ctx, c); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "client_created",
		Entity:   "client",
		EntityID: c.ID,
	})
	return c, nil
}

func (uc *Clients) UpdateClient(ctx context.Context, id string, in ClientInput) (*models.Client, error) {
	c, err := uc.repo.GetClient(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := apply(c, in); err != nil {
		return nil, err
	}
	if c.Name == "" {
		return nil, httperr.ErrBusiness("invalid_client")
	}

	if err := uc.repo.UpdateClient(ctx, c); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "client_updated",
		Entity:   "client",
		EntityID: c.ID,
	})
	return c, nil
}

// DeleteClient não apaga serviços nem presenças do cliente.
func (uc *Clients) DeleteClient(ctx context.Context, id string) error {
	if err := uc.repo.DeleteClient(ctx, id); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "client_deleted",
		Entity:   "client",
		EntityID: id,
	})
	return nil
}

func (uc *Clients) GetClient(ctx context.Context, id string) (*models.Client, error) {
	return uc.repo.GetClient(ctx, id)
}

func (uc *Clients) ListClients(ctx context.Context, query, status string) ([]models.Client, error) {
	return uc.repo.ListClients(ctx, domain.ListFilter{
		Query:  strings.TrimSpace(query),
		Status: status,
	})
}
