package automation

import (
	"github.com/BruksfildServices01/salon-manager/internal/httperr"
	"github.com/BruksfildServices01/salon-manager/internal/models"
)

type Trigger string

const (
	TriggerAfterAppointment  Trigger = "after_appointment"
	TriggerBeforeAppointment Trigger = "before_appointment"
	TriggerNoShow            Trigger = "no_show"
	TriggerBirthday          Trigger = "birthday"
	TriggerInactivity        Trigger = "inactivity"
	TriggerLowStock          Trigger = "low_stock"
)

type Type string

const (
	TypeMessage   Type = "message"
	TypeReminder  Type = "reminder"
	TypePromotion Type = "promotion"
	TypeFollowup  Type = "followup"
)

// Validate normaliza unidade de tempo e recusa tipos/gatilhos desconhecidos.
func Validate(a *models.Automation) error {
	switch Trigger(a.Trigger) {
	case TriggerAfterAppointment, TriggerBeforeAppointment, TriggerNoShow,
		TriggerBirthday, TriggerInactivity, TriggerLowStock:
	default:
		return httperr.ErrBusiness("invalid_trigger")
	}

	switch Type(a.Type) {
	case "":
		a.Type = string(TypeMessage)
	case TypeMessage, TypeReminder, TypePromotion, TypeFollowup:
	default:
		return httperr.ErrBusiness("invalid_trigger")
	}

	switch a.TimeUnit {
	case "":
		a.TimeUnit = "days"
	case "minutes", "hours", "days":
	default:
		return httperr.ErrBusiness("invalid_trigger")
	}

	if a.TimeValue < 0 {
		a.TimeValue = 0
	}
	return nil
}
