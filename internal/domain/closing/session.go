package closing

import (
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/salon-manager/internal/domain/financial"
	"github.com/BruksfildServices01/salon-manager/internal/httperr"
	"github.com/BruksfildServices01/salon-manager/internal/models"
)

// ===============================
// Steps
// ===============================

type Step string

const (
	StepAppointments Step = "appointments"
	StepAdditional   Step = "additional"
	StepAutomations  Step = "automations"
	StepCompleted    Step = "completed"
)

// Chaves das fases de gravação já aplicadas.
const (
	PhaseAttendance = "attendance"
	PhaseServices   = "services"
	PhaseSummary    = "summary"
	phaseAdditional = "additional:"
)

func AdditionalPhase(i int) string {
	return phaseAdditional + strconv.Itoa(i)
}

// HourlyRate é a base da estimativa de valor de um atendimento.
var HourlyRate = decimal.NewFromInt(25)

func DefaultValue(durationMin int) decimal.Decimal {
	return decimal.NewFromInt(int64(durationMin)).
		Div(decimal.NewFromInt(60)).
		Mul(HourlyRate).
		Round(2)
}

// ===============================
// Session
// ===============================

type Review struct {
	AppointmentID   string          `json:"appointment_id"`
	ClientID        string          `json:"client_id"`
	ClientName      string          `json:"client_name"`
	ServiceName     string          `json:"service_name"`
	DurationMinutes int             `json:"duration_minutes"`
	Status          string          `json:"status"`
	Attended        *bool           `json:"attended"`
	CurrentValue    decimal.Decimal `json:"current_value"`
	PaymentMethod   string          `json:"payment_method"`
}

type Additional struct {
	ClientID      string          `json:"client_id"`
	ClientName    string          `json:"client_name"`
	ServiceName   string          `json:"service_name"`
	Value         decimal.Decimal `json:"value"`
	PaymentMethod string          `json:"payment_method"`
}

type Session struct {
	ID          string          `json:"id"`
	Date        string          `json:"date"`
	Step        Step            `json:"step"`
	Reviews     []Review        `json:"reviews"`
	Additional  []Additional    `json:"additional"`
	Applied     map[string]bool `json:"-"`
	CompletedAt *time.Time      `json:"completed_at"`
}

func NewSession(id, date string, apps []models.Appointment) *Session {
	s := &Session{
		ID:         id,
		Date:       date,
		Step:       StepAppointments,
		Reviews:    make([]Review, 0, len(apps)),
		Additional: []Additional{},
		Applied:    map[string]bool{},
	}

	for _, ap := range apps {
		attended := ap.Status != "cancelled"
		s.Reviews = append(s.Reviews, Review{
			AppointmentID:   ap.ID,
			ClientID:        ap.ClientID,
			ClientName:      ap.ClientName,
			ServiceName:     ap.ServiceName,
			DurationMinutes: ap.ServiceDuration,
			Status:          ap.Status,
			Attended:        &attended,
			CurrentValue:    DefaultValue(ap.ServiceDuration),
			PaymentMethod:   string(financial.PaymentCash),
		})
	}
	return s
}

func (s *Session) IsApplied(phase string) bool {
	return s.Applied[phase]
}

func (s *Session) MarkApplied(phase string) {
	if s.Applied == nil {
		s.Applied = map[string]bool{}
	}
	s.Applied[phase] = true
}

func (s *Session) AppliedList() []string {
	out := make([]string, 0, len(s.Applied))
	for k := range s.Applied {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// committed indica que alguma gravação já aconteceu; a partir daí as
// confirmações de presença ficam travadas.
func (s *Session) committed() bool {
	return s.IsApplied(PhaseAttendance) || s.IsApplied(PhaseServices)
}

// ===============================
// Appointments step
// ===============================

type ReviewUpdate struct {
	AppointmentID string
	Attended      *bool
	CurrentValue  *decimal.Decimal
	PaymentMethod *string
}

func (s *Session) UpdateReview(u ReviewUpdate) error {
	if s.Step != StepAppointments || s.committed() {
		return httperr.ErrBusiness("invalid_step")
	}

	for i := range s.Reviews {
		r := &s.Reviews[i]
		if r.AppointmentID != u.AppointmentID {
			continue
		}
		if u.Attended != nil {
			v := *u.Attended
			r.Attended = &v
		}
		if u.CurrentValue != nil {
			if u.CurrentValue.IsNegative() {
				return httperr.ErrBusiness("invalid_amount")
			}
			r.CurrentValue = u.CurrentValue.Round(2)
		}
		if u.PaymentMethod != nil {
			pm, err := financial.ParsePaymentMethod(*u.PaymentMethod)
			if err != nil {
				return err
			}
			r.PaymentMethod = string(pm)
		}
		return nil
	}
	return httperr.ErrBusiness("appointment_not_found")
}

// AttendanceComplete exige um valor explícito de presença em cada agendamento.
// Um dia sem agendamentos passa.
func (s *Session) AttendanceComplete() bool {
	for _, r := range s.Reviews {
		if r.Attended == nil {
			return false
		}
	}
	return true
}

func (s *Session) ClearAttendance(appointmentID string) error {
	if s.Step != StepAppointments || s.committed() {
		return httperr.ErrBusiness("invalid_step")
	}
	for i := range s.Reviews {
		if s.Reviews[i].AppointmentID == appointmentID {
			s.Reviews[i].Attended = nil
			return nil
		}
	}
	return httperr.ErrBusiness("appointment_not_found")
}

// AdvanceToAdditional só troca a etapa exibida; nada é gravado ainda.
func (s *Session) AdvanceToAdditional() error {
	if s.Step != StepAppointments {
		return httperr.ErrBusiness("invalid_step")
	}
	if !s.AttendanceComplete() {
		return httperr.ErrBusiness("attendance_incomplete")
	}
	s.Step = StepAdditional
	return nil
}

// ===============================
// Additional step
// ===============================

func (s *Session) AddAdditional(a Additional) error {
	if s.Step != StepAdditional {
		return httperr.ErrBusiness("invalid_step")
	}
	if a.Value.IsNegative() {
		return httperr.ErrBusiness("invalid_amount")
	}
	pm, err := financial.ParsePaymentMethod(a.PaymentMethod)
	if err != nil {
		return err
	}
	a.PaymentMethod = string(pm)
	a.Value = a.Value.Round(2)
	s.Additional = append(s.Additional, a)
	return nil
}

// RemoveAdditional recusa itens que já viraram transação.
func (s *Session) RemoveAdditional(i int) error {
	if s.Step != StepAdditional {
		return httperr.ErrBusiness("invalid_step")
	}
	if i < 0 || i >= len(s.Additional) {
		return httperr.ErrBusiness("invalid_index")
	}
	if s.IsApplied(AdditionalPhase(i)) {
		return httperr.ErrBusiness("invalid_step")
	}
	for j := i + 1; j < len(s.Additional); j++ {
		if s.IsApplied(AdditionalPhase(j)) {
			return httperr.ErrBusiness("invalid_step")
		}
	}
	s.Additional = append(s.Additional[:i], s.Additional[i+1:]...)
	return nil
}

func (s *Session) AdvanceToAutomations() error {
	if s.Step != StepAdditional {
		return httperr.ErrBusiness("invalid_step")
	}
	s.Step = StepAutomations
	return nil
}

// ===============================
// Navigation
// ===============================

func (s *Session) Back() error {
	switch s.Step {
	case StepAutomations:
		s.Step = StepAdditional
		return nil
	case StepAdditional:
		if s.committed() {
			return httperr.ErrBusiness("invalid_step")
		}
		s.Step = StepAppointments
		return nil
	case StepCompleted:
		return httperr.ErrBusiness("closing_completed")
	}
	return httperr.ErrBusiness("invalid_step")
}

func (s *Session) Complete(now time.Time) error {
	if s.Step != StepAutomations {
		return httperr.ErrBusiness("invalid_step")
	}
	s.Step = StepCompleted
	s.CompletedAt = &now
	return nil
}

// ===============================
// Derived values
// ===============================

type Stats struct {
	ClientCount  int             `json:"client_count"`
	ServiceCount int             `json:"service_count"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
}

func (s *Session) Stats() Stats {
	clients := map[string]bool{}
	st := Stats{TotalRevenue: decimal.Zero}

	for _, r := range s.Reviews {
		if r.Attended == nil || !*r.Attended {
			continue
		}
		clients[r.ClientID] = true
		st.ServiceCount++
		st.TotalRevenue = st.TotalRevenue.Add(r.CurrentValue)
	}
	for _, a := range s.Additional {
		clients[a.ClientID] = true
		st.ServiceCount++
		st.TotalRevenue = st.TotalRevenue.Add(a.Value)
	}

	st.ClientCount = len(clients)
	st.TotalRevenue = st.TotalRevenue.Round(2)
	return st
}

// RecordID gera ids determinísticos para os registros de uma fase, de modo
// que repetir a fase sobrescreve em vez de duplicar.
func RecordID(sessionID, kind, key string) string {
	ns, err := uuid.Parse(sessionID)
	if err != nil {
		ns = uuid.NewSHA1(uuid.NameSpaceOID, []byte(sessionID))
	}
	return uuid.NewSHA1(ns, []byte(kind+":"+key)).String()
}
