package automation

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/salon-manager/internal/audit"
	"github.com/BruksfildServices01/salon-manager/internal/domain/appointment"
	domain "github.com/BruksfildServices01/salon-manager/internal/domain/automation"
	"github.com/BruksfildServices01/salon-manager/internal/domain/client"
	"github.com/BruksfildServices01/salon-manager/internal/httperr"
	"github.com/BruksfildServices01/salon-manager/internal/messaging"
	"github.com/BruksfildServices01/salon-manager/internal/models"
	"github.com/BruksfildServices01/salon-manager/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type AutomationInput struct {
	Name      *string
	Type      *string
	Trigger   *string
	TimeValue *int
	TimeUnit  *string
	Active    *bool
	Message   *string
}

func apply(a *models.Automation, in AutomationInput) error {
	if in.Name != nil {
		a.Name = strings.TrimSpace(*in.Name)
	}
	if in.Type != nil {
		a.Type = *in.Type
	}
	if in.Trigger != nil {
		a.Trigger = *in.Trigger
	}
	if in.TimeValue != nil {
		a.TimeValue = *in.TimeValue
	}
	if in.TimeUnit != nil {
		a.TimeUnit = *in.TimeUnit
	}
	if in.Active != nil {
		a.Active = *in.Active
	}
	if in.Message != nil {
		a.Message = *in.Message
	}

	if a.Name == "" || strings.TrimSpace(a.Message) == "" {
		return httperr.ErrBusiness("invalid_automation")
	}
	return domain.Validate(a)
}

// ======================================================
// USE CASE
// ======================================================

type Automations struct {
	repo         domain.Repository
	clients      client.Repository
	appointments appointment.Repository
	sender       messaging.Sender
	audit        *audit.Dispatcher
	loc          *time.Location
	now          func() time.Time
}

func NewAutomations(
	repo domain.Repository,
	clients client.Repository,
	appointments appointment.Repository,
	sender messaging.Sender,
	audit *audit.Dispatcher,
	loc *time.Location,
) *Automations {
	if loc == nil {
		loc = timezone.Location(timezone.DefaultTimezone)
	}
	return &Automations{
		repo:         repo,
		clients:      clients,
		appointments: appointments,
		sender:       sender,
		audit:        audit,
		loc:          loc,
		now:          time.Now,
	}
}

func (uc *Automations) clock() time.Time {
	return uc.now().In(uc.loc)
}

// ======================================================
// CRUD
// ======================================================

func (uc *Automations) Create(ctx context.Context, in AutomationInput) (*models.Automation, error) {
	a := &models.Automation{ID: uuid.NewString(), Active: true}
	if err := apply(a, in); err != nil {
		return nil, err
	}
	if err := uc.repo.CreateAutomation(ctx, a); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "automation_created",
		Entity:   "automation",
		EntityID: a.ID,
		Metadata: map[string]any{"trigger": a.Trigger},
	})
	return a, nil
}

func (uc *Automations) Update(ctx context.Context, id string, in AutomationInput) (*models.Automation, error) {
	a, err := uc.repo.GetAutomation(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := apply(a, in); err != nil {
		return nil, err
	}
	if err := uc.repo.UpdateAutomation(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (uc *Automations) Delete(ctx context.Context, id string) error {
	if err := uc.repo.DeleteAutomation(ctx, id); err != nil {
		return err
	}
	uc.audit.Dispatch(audit.Event{
		Action:   "automation_deleted",
		Entity:   "automation",
		EntityID: id,
	})
	return nil
}

func (uc *Automations) Get(ctx context.Context, id string) (*models.Automation, error) {
	return uc.repo.GetAutomation(ctx, id)
}

func (uc *Automations) List(ctx context.Context, onlyActive bool) ([]models.Automation, error) {
	return uc.repo.ListAutomations(ctx, onlyActive)
}

func (uc *Automations) Logs(ctx context.Context, id string) ([]models.MessageLog, error) {
	if _, err := uc.repo.GetAutomation(ctx, id); err != nil {
		return nil, err
	}
	return uc.repo.ListMessageLogs(ctx, id)
}
