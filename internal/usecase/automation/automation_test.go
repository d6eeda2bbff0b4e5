package automation

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	dbpkg "github.com/BruksfildServices01/salon-manager/internal/db"
	"github.com/BruksfildServices01/salon-manager/internal/httperr"
	"github.com/BruksfildServices01/salon-manager/internal/infra/repository"
	"github.com/BruksfildServices01/salon-manager/internal/messaging"
	"github.com/BruksfildServices01/salon-manager/internal/models"
)

var fixedNow = time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)

type fakeSender struct {
	enabled bool
	fail    bool
	sent    []string
}

func (f *fakeSender) Enabled() bool { return f.enabled }

func (f *fakeSender) Send(_ context.Context, phone, body string) (string, error) {
	if f.fail {
		return "", errors.New("provider down")
	}
	f.sent = append(f.sent, phone+"|"+body)
	return "SM123", nil
}

type fixture struct {
	uc      *Automations
	clients *repository.ClientGormRepository
}

func setup(t *testing.T, sender messaging.Sender) *fixture {
	t.Helper()
	dbi, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := dbpkg.Migrate(dbi); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	clients := repository.NewClientGormRepository(dbi)
	uc := NewAutomations(
		repository.NewAutomationGormRepository(dbi),
		clients,
		repository.NewAppointmentGormRepository(dbi),
		sender,
		nil,
		time.UTC,
	)
	uc.now = func() time.Time { return fixedNow }

	birthday := time.Date(1990, 10, 15, 0, 0, 0, 0, time.UTC)
	other := time.Date(1985, 3, 2, 0, 0, 0, 0, time.UTC)
	for _, c := range []models.Client{
		{ID: "c-ana", Name: "Ana", Phone: "+351 912 345 678", Status: "active", BirthDate: &birthday},
		{ID: "c-bia", Name: "Bia", Status: "active", BirthDate: &birthday},
		{ID: "c-cris", Name: "Cris", Phone: "912000000", Status: "active", BirthDate: &other},
	} {
		c := c
		if err := clients.CreateClient(context.Background(), &c); err != nil {
			t.Fatalf("create client: %v", err)
		}
	}
	return &fixture{uc: uc, clients: clients}
}

func str(s string) *string { return &s }

func birthdayAutomation(t *testing.T, uc *Automations) *models.Automation {
	t.Helper()
	a, err := uc.Create(context.Background(), AutomationInput{
		Name:    str("Aniversário"),
		Trigger: str("birthday"),
		Message: str("Parabéns {nome}!"),
	})
	if err != nil {
		t.Fatalf("create automation: %v", err)
	}
	return a
}

func TestCreateValidation(t *testing.T) {
	f := setup(t, nil)
	ctx := context.Background()

	tests := []struct {
		name string
		in   AutomationInput
		code string
	}{
		{"no message", AutomationInput{Name: str("x"), Trigger: str("birthday")}, "invalid_automation"},
		{"no name", AutomationInput{Trigger: str("birthday"), Message: str("oi")}, "invalid_automation"},
		{"bad trigger", AutomationInput{Name: str("x"), Trigger: str("weekly"), Message: str("oi")}, "invalid_trigger"},
	}
	for _, tt := range tests {
		if _, err := f.uc.Create(ctx, tt.in); !httperr.IsBusiness(err, tt.code) {
			t.Errorf("%s: expected %s, got %v", tt.name, tt.code, err)
		}
	}

	a := birthdayAutomation(t, f.uc)
	if !a.Active || a.Type != "message" || a.TimeUnit != "days" {
		t.Errorf("defaults = %+v", a)
	}

	off := false
	updated, err := f.uc.Update(ctx, a.ID, AutomationInput{Active: &off})
	if err != nil || updated.Active {
		t.Fatalf("update: %+v %v", updated, err)
	}
	if list, _ := f.uc.List(ctx, true); len(list) != 0 {
		t.Errorf("inactive automation listed as active: %+v", list)
	}

	if err := f.uc.Delete(ctx, a.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := f.uc.Get(ctx, a.ID); !httperr.IsBusiness(err, "automation_not_found") {
		t.Errorf("expected automation_not_found, got %v", err)
	}
}

func TestMatchesPersonalizesAndLinks(t *testing.T) {
	f := setup(t, nil)
	a := birthdayAutomation(t, f.uc)

	got, err := f.uc.Matches(context.Background(), a.ID)
	if err != nil {
		t.Fatalf("matches: %v", err)
	}
	if len(got) != 2 || got[0].Client.ID != "c-ana" || got[1].Client.ID != "c-bia" {
		t.Fatalf("matches = %+v", got)
	}
	if got[0].Message != "Parabéns Ana!" {
		t.Errorf("message = %q", got[0].Message)
	}
	if got[0].Link != "https://wa.me/351912345678?text=Parab%C3%A9ns%20Ana%21" {
		t.Errorf("link = %s", got[0].Link)
	}
	if got[1].Link != "" {
		t.Errorf("client without phone got a link: %s", got[1].Link)
	}
}

func TestSendRecordsMessage(t *testing.T) {
	f := setup(t, nil)
	ctx := context.Background()
	a := birthdayAutomation(t, f.uc)

	res, err := f.uc.Send(ctx, a.ID, "c-ana")
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if res.Channel != ChannelLink || !strings.HasPrefix(res.Link, "https://wa.me/351912345678?text=") {
		t.Errorf("result = %+v", res)
	}

	stored, _ := f.uc.Get(ctx, a.ID)
	if stored.SentCount != 1 || stored.LastRun == nil || !stored.LastRun.Equal(fixedNow) {
		t.Errorf("stored automation = %+v", stored)
	}

	logs, err := f.uc.Logs(ctx, a.ID)
	if err != nil || len(logs) != 1 || logs[0].ClientID != "c-ana" || logs[0].Status != StatusGenerated {
		t.Errorf("logs = %+v (%v)", logs, err)
	}

	if _, err := f.uc.Send(ctx, a.ID, "c-bia"); !httperr.IsBusiness(err, "missing_phone") {
		t.Errorf("expected missing_phone, got %v", err)
	}
	if _, err := f.uc.Send(ctx, a.ID, "nobody"); !httperr.IsBusiness(err, "client_not_found") {
		t.Errorf("expected client_not_found, got %v", err)
	}
}

func TestRunDueSendsOncePerDay(t *testing.T) {
	sender := &fakeSender{enabled: true}
	f := setup(t, sender)
	ctx := context.Background()
	a := birthdayAutomation(t, f.uc)

	report, err := f.uc.RunDue(ctx)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if report.Automations != 1 || report.Sent != 1 || report.Failed != 0 {
		t.Errorf("report = %+v", report)
	}
	if len(sender.sent) != 1 || sender.sent[0] != "+351 912 345 678|Parabéns Ana!" {
		t.Errorf("sent = %v", sender.sent)
	}

	again, err := f.uc.RunDue(ctx)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if again.Automations != 0 || len(sender.sent) != 1 {
		t.Errorf("automation ran twice on the same day: %+v", again)
	}

	stored, _ := f.uc.Get(ctx, a.ID)
	if stored.SentCount != 1 {
		t.Errorf("sent_count = %d", stored.SentCount)
	}
}

func TestRunDueWithoutProvider(t *testing.T) {
	f := setup(t, messaging.NewTwilioSender("", "", ""))
	birthdayAutomation(t, f.uc)

	report, err := f.uc.RunDue(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if report.Links != 1 || report.Sent != 0 {
		t.Errorf("report = %+v", report)
	}
}

func TestRunDueRecordsFailures(t *testing.T) {
	f := setup(t, &fakeSender{enabled: true, fail: true})
	ctx := context.Background()
	a := birthdayAutomation(t, f.uc)

	report, err := f.uc.RunDue(ctx)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if report.Failed != 1 {
		t.Errorf("report = %+v", report)
	}

	logs, _ := f.uc.Logs(ctx, a.ID)
	if len(logs) != 1 || logs[0].Status != StatusFailed || logs[0].Error == "" {
		t.Errorf("logs = %+v", logs)
	}
	stored, _ := f.uc.Get(ctx, a.ID)
	if stored.SentCount != 0 {
		t.Errorf("failed sends counted: %d", stored.SentCount)
	}
}
