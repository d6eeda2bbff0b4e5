package automation

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/salon-manager/internal/domain/appointment"
	domain "github.com/BruksfildServices01/salon-manager/internal/domain/automation"
	"github.com/BruksfildServices01/salon-manager/internal/domain/client"
	"github.com/BruksfildServices01/salon-manager/internal/httperr"
	"github.com/BruksfildServices01/salon-manager/internal/messaging"
	"github.com/BruksfildServices01/salon-manager/internal/metrics"
	"github.com/BruksfildServices01/salon-manager/internal/models"
	"github.com/BruksfildServices01/salon-manager/internal/timezone"
)

const (
	ChannelLink     = "link"
	ChannelWhatsApp = "whatsapp"

	StatusGenerated = "generated"
	StatusSent      = "sent"
	StatusFailed    = "failed"
)

// Recipient é um cliente elegível com a mensagem já personalizada.
type Recipient struct {
	Client  models.Client `json:"client"`
	Message string        `json:"message"`
	Link    string        `json:"link"`
}

type SendResult struct {
	Channel string `json:"channel"`
	Status  string `json:"status"`
	Message string `json:"message"`
	Link    string `json:"link"`
}

// ======================================================
// Matching
// ======================================================

type snapshot struct {
	in     domain.Input
	latest map[string]models.Appointment
}

func (uc *Automations) snapshot(ctx context.Context) (*snapshot, error) {
	clients, err := uc.clients.ListClients(ctx, client.ListFilter{})
	if err != nil {
		return nil, err
	}
	apps, err := uc.appointments.ListAppointments(ctx, appointment.ListFilter{})
	if err != nil {
		return nil, err
	}
	attendance, err := uc.clients.ListAllAttendance(ctx)
	if err != nil {
		return nil, err
	}

	return &snapshot{
		in: domain.Input{
			Clients:      clients,
			Appointments: apps,
			Attendance:   attendance,
			Now:          uc.clock(),
		},
		latest: domain.LatestAppointments(apps),
	}, nil
}

func (s *snapshot) recipient(a *models.Automation, c models.Client) Recipient {
	var last *models.Appointment
	if ap, ok := s.latest[c.ID]; ok {
		last = &ap
	}
	msg := domain.Personalize(a.Message, c, last)

	r := Recipient{Client: c, Message: msg}
	if c.Phone != "" {
		r.Link = messaging.WhatsAppLink(c.Phone, msg)
	}
	return r
}

// Matches lista os clientes que a automação atingiria agora.
func (uc *Automations) Matches(ctx context.Context, id string) ([]Recipient, error) {
	a, err := uc.repo.GetAutomation(ctx, id)
	if err != nil {
		return nil, err
	}
	snap, err := uc.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	matched := domain.Match(a, snap.in)
	out := make([]Recipient, 0, len(matched))
	for _, c := range matched {
		out = append(out, snap.recipient(a, c))
	}
	return out, nil
}

// ======================================================
// Sending
// ======================================================

// Send gera o link de WhatsApp para um cliente e registra o envio.
func (uc *Automations) Send(ctx context.Context, id, clientID string) (*SendResult, error) {
	a, err := uc.repo.GetAutomation(ctx, id)
	if err != nil {
		return nil, err
	}
	c, err := uc.clients.GetClient(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if c.Phone == "" {
		return nil, httperr.ErrBusiness("missing_phone")
	}

	snap, err := uc.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	r := snap.recipient(a, *c)

	res := &SendResult{
		Channel: ChannelLink,
		Status:  StatusGenerated,
		Message: r.Message,
		Link:    r.Link,
	}
	if err := uc.record(ctx, a, c.ID, res, ""); err != nil {
		return nil, err
	}
	if err := uc.touch(ctx, a, 1); err != nil {
		return nil, err
	}
	return res, nil
}

func (uc *Automations) record(ctx context.Context, a *models.Automation, clientID string, res *SendResult, errMsg string) error {
	metrics.MessagesSent.WithLabelValues(res.Channel, res.Status).Inc()
	return uc.repo.CreateMessageLog(ctx, &models.MessageLog{
		ID:           uuid.NewString(),
		AutomationID: a.ID,
		ClientID:     clientID,
		Channel:      res.Channel,
		Message:      res.Message,
		Link:         res.Link,
		Status:       res.Status,
		Error:        errMsg,
	})
}

func (uc *Automations) touch(ctx context.Context, a *models.Automation, sent int) error {
	now := uc.clock()
	a.SentCount += sent
	a.LastRun = &now
	return uc.repo.UpdateAutomation(ctx, a)
}

// ======================================================
// Scheduled run
// ======================================================

type RunReport struct {
	Automations int `json:"automations"`
	Sent        int `json:"sent"`
	Links       int `json:"links"`
	Failed      int `json:"failed"`
}

// RunDue executa as automações ativas uma vez por dia. Com o Twilio
// configurado as mensagens são enviadas; sem ele só os links são gerados.
func (uc *Automations) RunDue(ctx context.Context) (*RunReport, error) {
	list, err := uc.repo.ListAutomations(ctx, true)
	if err != nil {
		return nil, err
	}
	snap, err := uc.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	today := timezone.DayKey(snap.in.Now)
	report := &RunReport{}

	for i := range list {
		a := &list[i]
		if a.LastRun != nil && timezone.DayKey(a.LastRun.In(uc.loc)) == today {
			continue
		}
		report.Automations++

		delivered := 0
		for _, c := range domain.Match(a, snap.in) {
			if c.Phone == "" {
				continue
			}
			res, errMsg := uc.deliver(ctx, snap.recipient(a, c))
			switch res.Status {
			case StatusSent:
				report.Sent++
				delivered++
			case StatusGenerated:
				report.Links++
				delivered++
			default:
				report.Failed++
			}
			if err := uc.record(ctx, a, c.ID, res, errMsg); err != nil {
				return report, err
			}
		}

		if err := uc.touch(ctx, a, delivered); err != nil {
			return report, err
		}
	}

	log.Printf("[automation] run %s: %d automation(s), %d sent, %d link(s), %d failed",
		today, report.Automations, report.Sent, report.Links, report.Failed)
	return report, nil
}

func (uc *Automations) deliver(ctx context.Context, r Recipient) (*SendResult, string) {
	res := &SendResult{Channel: ChannelLink, Status: StatusGenerated, Message: r.Message, Link: r.Link}
	if uc.sender == nil || !uc.sender.Enabled() {
		return res, ""
	}

	sendCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	res.Channel = ChannelWhatsApp
	if _, err := uc.sender.Send(sendCtx, r.Client.Phone, r.Message); err != nil {
		log.Printf("[automation] whatsapp to client %s: %v", r.Client.ID, err)
		res.Status = StatusFailed
		return res, err.Error()
	}
	res.Status = StatusSent
	return res, ""
}
