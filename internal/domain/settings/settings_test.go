package settings

import (
	"testing"

	"github.com/BruksfildServices01/salon-manager/internal/httperr"
)

func TestMigrateV1AddsDefaults(t *testing.T) {
	out, changed, err := Migrate(KeyBusinessInfo, 1, []byte(`{"name":"Salão Lisboa"}`))
	if err != nil {
		t.Fatal(err)
	}
	if !changed {
		t.Error("expected v1 payload to be upgraded")
	}
	if out["name"] != "Salão Lisboa" || out["currency"] != "EUR" {
		t.Errorf("payload = %v", out)
	}
}

func TestMigrateAutomationsList(t *testing.T) {
	out, changed, err := Migrate(KeyAutomations, 1, []byte(`[{"name":"Aniversário"}]`))
	if err != nil {
		t.Fatal(err)
	}
	items, ok := out["items"].([]any)
	if !changed || !ok || len(items) != 1 {
		t.Errorf("payload = %v changed=%v", out, changed)
	}
}

func TestMigrateCurrentVersionUntouched(t *testing.T) {
	out, changed, err := Migrate(KeyNotifications, CurrentVersion, []byte(`{"email":true}`))
	if err != nil {
		t.Fatal(err)
	}
	if changed {
		t.Error("current payload should not be rewritten")
	}
	if _, ok := out["whatsapp"]; ok {
		t.Error("defaults must not be merged into current payloads")
	}
}

func TestMigrateUnknownKey(t *testing.T) {
	if _, _, err := Migrate("theme", 1, nil); !httperr.IsBusiness(err, "unsupported_settings_key") {
		t.Errorf("expected unsupported_settings_key, got %v", err)
	}
}
