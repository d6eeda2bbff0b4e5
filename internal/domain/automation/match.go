package automation

import (
	"sort"
	"strings"
	"time"

	"github.com/BruksfildServices01/salon-manager/internal/models"
)

type Input struct {
	Clients      []models.Client
	Appointments []models.Appointment
	Attendance   []models.ClientAttendance
	Now          time.Time
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// Match devolve os clientes elegíveis para o gatilho da automação.
func Match(a *models.Automation, in Input) []models.Client {
	loc := in.Now.Location()
	ids := map[string]bool{}

	switch Trigger(a.Trigger) {
	case TriggerBeforeAppointment, TriggerAfterAppointment:
		target := in.Now
		if Trigger(a.Trigger) == TriggerBeforeAppointment {
			target = in.Now.AddDate(0, 0, 1)
		}
		for _, ap := range in.Appointments {
			if sameDay(ap.StartTime.In(loc), target) {
				ids[ap.ClientID] = true
			}
		}

	case TriggerBirthday:
		for _, c := range in.Clients {
			if c.BirthDate == nil {
				continue
			}
			if c.BirthDate.Month() == in.Now.Month() && c.BirthDate.Day() == in.Now.Day() {
				ids[c.ID] = true
			}
		}

	case TriggerInactivity:
		cutoff := in.Now.AddDate(0, 0, -a.TimeValue)
		latest := LatestAppointments(in.Appointments)
		for _, c := range in.Clients {
			if c.Status != "active" {
				continue
			}
			last, ok := latest[c.ID]
			if !ok || last.StartTime.Before(cutoff) {
				ids[c.ID] = true
			}
		}

	case TriggerNoShow:
		for _, ap := range in.Appointments {
			if ap.Status == "cancelled" {
				ids[ap.ClientID] = true
			}
		}
		for _, at := range in.Attendance {
			if !at.Attended {
				ids[at.ClientID] = true
			}
		}

	case TriggerLowStock:
		return nil
	}

	out := make([]models.Client, 0, len(ids))
	for _, c := range in.Clients {
		if ids[c.ID] {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// LatestAppointments indexa o agendamento mais recente (por início) de cada cliente.
func LatestAppointments(apps []models.Appointment) map[string]models.Appointment {
	latest := make(map[string]models.Appointment, len(apps))
	for _, ap := range apps {
		cur, ok := latest[ap.ClientID]
		if !ok || ap.StartTime.After(cur.StartTime) {
			latest[ap.ClientID] = ap
		}
	}
	return latest
}

func Personalize(template string, c models.Client, last *models.Appointment) string {
	date := "N/A"
	service := "serviço"
	if last != nil {
		date = last.StartTime.Format("02/01/2006")
		if last.ServiceName != "" {
			service = last.ServiceName
		}
	}

	r := strings.NewReplacer(
		"{nome}", c.Name,
		"{data}", date,
		"{serviço}", service,
	)
	return r.Replace(template)
}
