package settings

import (
	"context"
	"encoding/json"

	"github.com/BruksfildServices01/salon-manager/internal/httperr"
	"github.com/BruksfildServices01/salon-manager/internal/models"
)

const CurrentVersion = 2

const (
	KeyAutomations        = "automations"
	KeyAutomationSettings = "automationSettings"
	KeyBusinessInfo       = "businessInfo"
	KeyWorkingHours       = "workingHours"
	KeyNotifications      = "notifications"
)

var defaults = map[string]map[string]any{
	KeyAutomations: {
		"items": []any{},
	},
	KeyAutomationSettings: {
		"enabled":  true,
		"sendHour": 9,
		"channel":  "link",
	},
	KeyBusinessInfo: {
		"name":     "",
		"phone":    "",
		"currency": "EUR",
		"timezone": "Europe/Lisbon",
	},
	KeyWorkingHours: {
		"monday":    map[string]any{"open": "09:00", "close": "19:00", "active": true},
		"tuesday":   map[string]any{"open": "09:00", "close": "19:00", "active": true},
		"wednesday": map[string]any{"open": "09:00", "close": "19:00", "active": true},
		"thursday":  map[string]any{"open": "09:00", "close": "19:00", "active": true},
		"friday":    map[string]any{"open": "09:00", "close": "19:00", "active": true},
		"saturday":  map[string]any{"open": "09:00", "close": "13:00", "active": true},
		"sunday":    map[string]any{"open": "", "close": "", "active": false},
	},
	KeyNotifications: {
		"whatsapp": true,
		"email":    false,
		"lowStock": true,
	},
}

func Supported(key string) bool {
	_, ok := defaults[key]
	return ok
}

func Keys() []string {
	return []string{
		KeyAutomations,
		KeyAutomationSettings,
		KeyBusinessInfo,
		KeyWorkingHours,
		KeyNotifications,
	}
}

// Default devolve uma cópia nova do payload padrão da chave.
func Default(key string) map[string]any {
	out := map[string]any{}
	for k, v := range defaults[key] {
		out[k] = v
	}
	return out
}

// Migrate atualiza um payload gravado em versão antiga. Devolve o payload
// na versão atual e se houve mudança.
func Migrate(key string, version int, raw []byte) (map[string]any, bool, error) {
	if !Supported(key) {
		return nil, false, httperr.ErrBusiness("unsupported_settings_key")
	}
	if version >= CurrentVersion {
		out := map[string]any{}
		if len(raw) > 0 {
			if err := json.Unmarshal(raw, &out); err != nil {
				return nil, false, err
			}
		}
		return out, false, nil
	}

	out := Default(key)
	if len(raw) > 0 {
		// v1 de automations era uma lista solta.
		if key == KeyAutomations {
			var items []any
			if err := json.Unmarshal(raw, &items); err == nil {
				out["items"] = items
				return out, true, nil
			}
		}

		var old map[string]any
		if err := json.Unmarshal(raw, &old); err != nil {
			return nil, false, err
		}
		for k, v := range old {
			out[k] = v
		}
	}
	return out, true, nil
}

type Repository interface {
	GetSnapshot(ctx context.Context, key string) (*models.SettingsSnapshot, error)
	SaveSnapshot(ctx context.Context, s *models.SettingsSnapshot) error
}
