package automation

import (
	"testing"
	"time"

	"github.com/BruksfildServices01/salon-manager/internal/models"
)

var now = time.Date(2026, 10, 15, 11, 0, 0, 0, time.UTC)

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func ids(clients []models.Client) map[string]bool {
	out := map[string]bool{}
	for _, c := range clients {
		out[c.ID] = true
	}
	return out
}

func TestMatchBirthdayIgnoresYear(t *testing.T) {
	in := Input{
		Now: now,
		Clients: []models.Client{
			{ID: "a", Name: "Ana", Status: "active", BirthDate: date(1990, time.October, 15)},
			{ID: "b", Name: "Bia", Status: "active", BirthDate: date(2026, time.October, 16)},
			{ID: "c", Name: "Cris", Status: "active"},
		},
	}

	got := ids(Match(&models.Automation{Trigger: "birthday"}, in))
	if !got["a"] {
		t.Error("expected client with same month/day to match")
	}
	if got["b"] || got["c"] {
		t.Errorf("unexpected matches: %v", got)
	}
}

func TestMatchAppointmentTriggers(t *testing.T) {
	in := Input{
		Now: now,
		Clients: []models.Client{
			{ID: "today", Name: "Hoje"},
			{ID: "tomorrow", Name: "Amanhã"},
			{ID: "later", Name: "Depois"},
		},
		Appointments: []models.Appointment{
			{ClientID: "today", StartTime: now.Add(2 * time.Hour)},
			{ClientID: "tomorrow", StartTime: now.AddDate(0, 0, 1)},
			{ClientID: "later", StartTime: now.AddDate(0, 0, 3)},
		},
	}

	before := ids(Match(&models.Automation{Trigger: "before_appointment"}, in))
	if len(before) != 1 || !before["tomorrow"] {
		t.Errorf("before_appointment = %v", before)
	}

	after := ids(Match(&models.Automation{Trigger: "after_appointment"}, in))
	if len(after) != 1 || !after["today"] {
		t.Errorf("after_appointment = %v", after)
	}
}

func TestMatchInactivity(t *testing.T) {
	in := Input{
		Now: now,
		Clients: []models.Client{
			{ID: "old", Name: "Old", Status: "active"},
			{ID: "recent", Name: "Recent", Status: "active"},
			{ID: "never", Name: "Never", Status: "active"},
			{ID: "gone", Name: "Gone", Status: "inactive"},
		},
		Appointments: []models.Appointment{
			{ClientID: "old", StartTime: now.AddDate(0, 0, -60)},
			{ClientID: "recent", StartTime: now.AddDate(0, 0, -60)},
			{ClientID: "recent", StartTime: now.AddDate(0, 0, -5)},
		},
	}

	got := ids(Match(&models.Automation{Trigger: "inactivity", TimeValue: 30}, in))
	if !got["old"] || !got["never"] {
		t.Errorf("expected old and never to match, got %v", got)
	}
	if got["recent"] || got["gone"] {
		t.Errorf("unexpected matches: %v", got)
	}
}

func TestMatchNoShowAndLowStock(t *testing.T) {
	in := Input{
		Now: now,
		Clients: []models.Client{
			{ID: "cancel", Name: "Cancel"},
			{ID: "absent", Name: "Absent"},
			{ID: "ok", Name: "Ok"},
		},
		Appointments: []models.Appointment{
			{ClientID: "cancel", Status: "cancelled"},
			{ClientID: "ok", Status: "confirmed"},
		},
		Attendance: []models.ClientAttendance{
			{ClientID: "absent", Attended: false},
			{ClientID: "ok", Attended: true},
		},
	}

	got := ids(Match(&models.Automation{Trigger: "no_show"}, in))
	if !got["cancel"] || !got["absent"] || got["ok"] {
		t.Errorf("no_show = %v", got)
	}

	if m := Match(&models.Automation{Trigger: "low_stock"}, in); len(m) != 0 {
		t.Errorf("low_stock should not match clients, got %d", len(m))
	}
}

func TestPersonalize(t *testing.T) {
	c := models.Client{Name: "Ana"}
	tpl := "Olá {nome}, obrigado pelo {serviço} de {data}!"

	if got := Personalize(tpl, c, nil); got != "Olá Ana, obrigado pelo serviço de N/A!" {
		t.Errorf("without appointment: %q", got)
	}

	last := &models.Appointment{ServiceName: "Corte", StartTime: time.Date(2026, 9, 3, 10, 0, 0, 0, time.UTC)}
	if got := Personalize(tpl, c, last); got != "Olá Ana, obrigado pelo Corte de 03/09/2026!" {
		t.Errorf("with appointment: %q", got)
	}
}

func TestValidateDefaults(t *testing.T) {
	a := &models.Automation{Trigger: "birthday"}
	if err := Validate(a); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Type != "message" || a.TimeUnit != "days" {
		t.Errorf("defaults not applied: %+v", a)
	}

	if err := Validate(&models.Automation{Trigger: "anniversary"}); err == nil {
		t.Error("expected invalid trigger error")
	}
}
