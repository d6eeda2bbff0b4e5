package closing

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/salon-manager/internal/audit"
	domain "github.com/BruksfildServices01/salon-manager/internal/domain/closing"
	"github.com/BruksfildServices01/salon-manager/internal/httperr"
	"github.com/BruksfildServices01/salon-manager/internal/metrics"
	"github.com/BruksfildServices01/salon-manager/internal/models"
	"github.com/BruksfildServices01/salon-manager/internal/timezone"
)

// ======================================================
// Dependencies
// ======================================================

type Appointments interface {
	ListAppointmentsForPeriod(ctx context.Context, start, end time.Time) ([]models.Appointment, error)
}

type ClientRecords interface {
	GetClient(ctx context.Context, id string) (*models.Client, error)
	SaveAttendance(ctx context.Context, a *models.ClientAttendance) error
	SaveClientService(ctx context.Context, s *models.ClientService) error
}

type Ledger interface {
	SaveTransaction(ctx context.Context, tx *models.Transaction) error
}

type DailyCloser interface {
	CloseDailyOperations(ctx context.Context, date string) (*models.DailySummary, error)
}

type Catalog interface {
	GetServiceByName(ctx context.Context, name string) (*models.Service, error)
}

type Automations interface {
	ListAutomations(ctx context.Context, onlyActive bool) ([]models.Automation, error)
}

type Locker interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (func(), bool, error)
}

// CompletionHook roda depois que o fechamento é marcado como concluído.
// Erros são apenas registrados no log.
type CompletionHook func(ctx context.Context, s *domain.Session, stats domain.Stats) error

type Deps struct {
	Repo         domain.Repository
	Appointments Appointments
	Clients      ClientRecords
	Ledger       Ledger
	Closer       DailyCloser
	Catalog      Catalog
	Automations  Automations
	Locker       Locker
	Audit        *audit.Dispatcher
	Location     *time.Location
	Now          func() time.Time
	OnComplete   []CompletionHook
}

// ======================================================
// USE CASE
// ======================================================

const lockTTL = 2 * time.Minute

type Closing struct {
	Deps
}

func NewClosing(d Deps) *Closing {
	if d.Location == nil {
		d.Location = timezone.Location(timezone.DefaultTimezone)
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	return &Closing{Deps: d}
}

// View é a sessão como o assistente de fechamento a exibe.
type View struct {
	*domain.Session
	AppliedSteps []string            `json:"applied_steps"`
	Stats        domain.Stats        `json:"stats"`
	CanAdvance   bool                `json:"can_advance"`
	Automations  []models.Automation `json:"automations"`
}

func (uc *Closing) view(ctx context.Context, s *domain.Session) (*View, error) {
	v := &View{
		Session:      s,
		AppliedSteps: s.AppliedList(),
		Stats:        s.Stats(),
		Automations:  []models.Automation{},
	}

	switch s.Step {
	case domain.StepAppointments:
		v.CanAdvance = s.AttendanceComplete()
	case domain.StepAdditional:
		v.CanAdvance = true
	case domain.StepAutomations, domain.StepCompleted:
		v.CanAdvance = s.Step == domain.StepAutomations
		list, err := uc.Automations.ListAutomations(ctx, true)
		if err != nil {
			return nil, err
		}
		v.Automations = list
	}
	return v, nil
}

// ======================================================
// Persistence helpers
// ======================================================

func (uc *Closing) load(ctx context.Context, date string) (*domain.Session, error) {
	rec, err := uc.Repo.GetClosing(ctx, date)
	if err != nil {
		return nil, err
	}
	return domain.FromRecord(rec)
}

func (uc *Closing) save(ctx context.Context, s *domain.Session) error {
	rec, err := s.ToRecord()
	if err != nil {
		return err
	}
	return uc.Repo.SaveClosing(ctx, rec)
}

// withSession carrega a sessão do dia sob o lock da data, aplica fn e grava.
func (uc *Closing) withSession(
	ctx context.Context,
	date string,
	fn func(s *domain.Session) error,
) (*View, error) {

	release, err := uc.lock(ctx, date)
	if err != nil {
		return nil, err
	}
	defer release()

	s, err := uc.load(ctx, date)
	if err != nil {
		return nil, err
	}
	if s.Step == domain.StepCompleted {
		return nil, httperr.ErrBusiness("closing_completed")
	}

	if err := fn(s); err != nil {
		return nil, err
	}
	if err := uc.save(ctx, s); err != nil {
		return nil, err
	}
	return uc.view(ctx, s)
}

func (uc *Closing) lock(ctx context.Context, date string) (func(), error) {
	release, ok, err := uc.Locker.Acquire(ctx, "closing:"+date, lockTTL)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, httperr.ErrBusiness("closing_in_progress")
	}
	return release, nil
}

func validDate(date string) error {
	if _, err := time.Parse(timezone.DateLayout, date); err != nil {
		return httperr.ErrBusiness("invalid_date")
	}
	return nil
}

// ======================================================
// Operations
// ======================================================

// Start abre o fechamento do dia ou retoma o que já existe.
func (uc *Closing) Start(ctx context.Context, date string) (*View, error) {
	start, end, err := timezone.DayRange(date, uc.Location)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	release, err := uc.lock(ctx, date)
	if err != nil {
		return nil, err
	}
	defer release()

	s, err := uc.load(ctx, date)
	switch {
	case err == nil:
		return uc.view(ctx, s)
	case !httperr.IsBusiness(err, "closing_not_found"):
		return nil, err
	}

	apps, err := uc.Appointments.ListAppointmentsForPeriod(ctx, start, end)
	if err != nil {
		return nil, err
	}

	s = domain.NewSession(uuid.NewString(), date, apps)
	if err := uc.save(ctx, s); err != nil {
		return nil, err
	}

	log.Printf("[closing] started %s with %d appointment(s)", date, len(apps))
	return uc.view(ctx, s)
}

func (uc *Closing) Get(ctx context.Context, date string) (*View, error) {
	if err := validDate(date); err != nil {
		return nil, err
	}
	s, err := uc.load(ctx, date)
	if err != nil {
		return nil, err
	}
	return uc.view(ctx, s)
}

func (uc *Closing) UpdateReview(ctx context.Context, date string, u domain.ReviewUpdate) (*View, error) {
	return uc.withSession(ctx, date, func(s *domain.Session) error {
		return s.UpdateReview(u)
	})
}

func (uc *Closing) ClearAttendance(ctx context.Context, date, appointmentID string) (*View, error) {
	return uc.withSession(ctx, date, func(s *domain.Session) error {
		return s.ClearAttendance(appointmentID)
	})
}

type AdditionalInput struct {
	ClientID      string
	ServiceName   string
	Value         *decimal.Decimal
	PaymentMethod string
}

// AddAdditional valida cliente e serviço do catálogo antes de anexar.
// Sem valor informado usa o preço do catálogo.
func (uc *Closing) AddAdditional(ctx context.Context, date string, in AdditionalInput) (*View, error) {
	client, err := uc.Clients.GetClient(ctx, in.ClientID)
	if err != nil {
		return nil, err
	}
	svc, err := uc.Catalog.GetServiceByName(ctx, in.ServiceName)
	if err != nil {
		return nil, err
	}
	if !svc.Active {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	value := svc.Price
	if in.Value != nil {
		value = *in.Value
	}

	return uc.withSession(ctx, date, func(s *domain.Session) error {
		return s.AddAdditional(domain.Additional{
			ClientID:      client.ID,
			ClientName:    client.Name,
			ServiceName:   svc.Name,
			Value:         value,
			PaymentMethod: in.PaymentMethod,
		})
	})
}

func (uc *Closing) RemoveAdditional(ctx context.Context, date string, index int) (*View, error) {
	return uc.withSession(ctx, date, func(s *domain.Session) error {
		return s.RemoveAdditional(index)
	})
}

func (uc *Closing) Back(ctx context.Context, date string) (*View, error) {
	return uc.withSession(ctx, date, func(s *domain.Session) error {
		return s.Back()
	})
}

// Next avança uma etapa. Sair de "additional" grava tudo; se alguma fase
// falhar a sessão continua em "additional" com as fases já gravadas marcadas.
func (uc *Closing) Next(ctx context.Context, date string) (*View, error) {
	release, err := uc.lock(ctx, date)
	if err != nil {
		return nil, err
	}
	defer release()

	s, err := uc.load(ctx, date)
	if err != nil {
		return nil, err
	}

	switch s.Step {
	case domain.StepAppointments:
		if err := s.AdvanceToAdditional(); err != nil {
			return nil, err
		}
	case domain.StepAdditional:
		if err := uc.commit(ctx, s); err != nil {
			metrics.ClosingCommits.WithLabelValues("failed").Inc()
			log.Printf("[closing] commit %s failed: %v", date, err)
			return nil, err
		}
		metrics.ClosingCommits.WithLabelValues("ok").Inc()
		if err := s.AdvanceToAutomations(); err != nil {
			return nil, err
		}
	case domain.StepCompleted:
		return nil, httperr.ErrBusiness("closing_completed")
	default:
		return nil, httperr.ErrBusiness("invalid_step")
	}

	if err := uc.save(ctx, s); err != nil {
		return nil, err
	}
	return uc.view(ctx, s)
}

// Complete só marca o fechamento como concluído e dispara os hooks.
func (uc *Closing) Complete(ctx context.Context, date string) (*View, error) {
	v, err := uc.withSession(ctx, date, func(s *domain.Session) error {
		return s.Complete(uc.Now())
	})
	if err != nil {
		return nil, err
	}

	stats := v.Stats
	metrics.ClosingsCompleted.Inc()
	metrics.ClosingRevenue.Set(stats.TotalRevenue.InexactFloat64())

	uc.Audit.Dispatch(audit.Event{
		Action:   "closing_completed",
		Entity:   "closing",
		EntityID: v.ID,
		Metadata: map[string]any{
			"date":          v.Date,
			"client_count":  stats.ClientCount,
			"service_count": stats.ServiceCount,
			"total_revenue": stats.TotalRevenue.StringFixed(2),
		},
	})

	for _, hook := range uc.OnComplete {
		if err := hook(ctx, v.Session, stats); err != nil {
			log.Printf("[closing] completion hook for %s: %v", date, err)
		}
	}

	log.Printf("[closing] completed %s revenue=%s", date, stats.TotalRevenue.StringFixed(2))
	return v, nil
}

// Summary é a linha do histórico de fechamentos.
type Summary struct {
	ID          string       `json:"id"`
	Date        string       `json:"date"`
	Step        domain.Step  `json:"step"`
	Stats       domain.Stats `json:"stats"`
	CompletedAt *time.Time   `json:"completed_at"`
}

func (uc *Closing) List(ctx context.Context, from, to string) ([]Summary, error) {
	if err := validDate(from); err != nil {
		return nil, err
	}
	if err := validDate(to); err != nil {
		return nil, err
	}

	recs, err := uc.Repo.ListClosings(ctx, from, to)
	if err != nil {
		return nil, err
	}

	out := make([]Summary, 0, len(recs))
	for i := range recs {
		s, err := domain.FromRecord(&recs[i])
		if err != nil {
			return nil, err
		}
		out = append(out, Summary{
			ID:          s.ID,
			Date:        s.Date,
			Step:        s.Step,
			Stats:       s.Stats(),
			CompletedAt: s.CompletedAt,
		})
	}
	return out, nil
}
