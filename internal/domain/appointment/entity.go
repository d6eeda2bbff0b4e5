package appointment

import (
	"time"

	"github.com/BruksfildServices01/salon-manager/internal/httperr"
	"github.com/BruksfildServices01/salon-manager/internal/models"
)

// Palette são as cores de exibição atribuídas em sequência aos agendamentos.
var Palette = []string{
	"#3b82f6",
	"#10b981",
	"#f59e0b",
	"#ef4444",
	"#8b5cf6",
	"#ec4899",
	"#14b8a6",
	"#f97316",
}

func ColorFor(existing int64) string {
	if existing < 0 {
		existing = 0
	}
	return Palette[existing%int64(len(Palette))]
}

func Title(clientName, serviceName string) string {
	return clientName + " – " + serviceName
}

// ApplyClient copia os dados denormalizados do cliente e recalcula o título.
func ApplyClient(ap *models.Appointment, client *models.Client) {
	ap.ClientID = client.ID
	ap.ClientName = client.Name
	ap.ClientPhone = client.Phone
	ap.Title = Title(ap.ClientName, ap.ServiceName)
}

func ApplyService(ap *models.Appointment, svc *models.Service) {
	ap.ServiceID = svc.ID
	ap.ServiceName = svc.Name
	ap.ServiceDuration = svc.DurationMin
	ap.Title = Title(ap.ClientName, ap.ServiceName)
}

// Schedule define início/fim; sem fim explícito usa a duração do serviço.
func Schedule(ap *models.Appointment, start time.Time, end *time.Time) error {
	finish := start.Add(time.Duration(ap.ServiceDuration) * time.Minute)
	if end != nil {
		finish = *end
	}
	if !finish.After(start) {
		return httperr.ErrBusiness("invalid_time_range")
	}
	ap.StartTime = start
	ap.EndTime = finish
	return nil
}

func Cancel(ap *models.Appointment) {
	ap.Status = string(StatusCancelled)
}
