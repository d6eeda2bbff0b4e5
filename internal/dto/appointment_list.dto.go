package dto

import (
	"time"

	"github.com/BruksfildServices01/salon-manager/internal/models"
)

// AppointmentListDTO é o formato que o calendário consome.
type AppointmentListDTO struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	Status      string    `json:"status"`
	Color       string    `json:"color"`
	ClientID    string    `json:"client_id"`
	ClientName  string    `json:"client_name"`
	ClientPhone string    `json:"client_phone"`
	ServiceName string    `json:"service_name"`
	Notes       string    `json:"notes"`
}

func AppointmentList(apps []models.Appointment) []AppointmentListDTO {
	out := make([]AppointmentListDTO, 0, len(apps))
	for _, ap := range apps {
		out = append(out, AppointmentListDTO{
			ID:          ap.ID,
			Title:       ap.Title,
			Start:       ap.StartTime,
			End:         ap.EndTime,
			Status:      ap.Status,
			Color:       ap.Color,
			ClientID:    ap.ClientID,
			ClientName:  ap.ClientName,
			ClientPhone: ap.ClientPhone,
			ServiceName: ap.ServiceName,
			Notes:       ap.Notes,
		})
	}
	return out
}
