package settings

import (
	"context"
	"testing"

	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	dbpkg "github.com/BruksfildServices01/salon-manager/internal/db"
	domain "github.com/BruksfildServices01/salon-manager/internal/domain/settings"
	"github.com/BruksfildServices01/salon-manager/internal/httperr"
	"github.com/BruksfildServices01/salon-manager/internal/infra/repository"
	"github.com/BruksfildServices01/salon-manager/internal/models"
)

func setup(t *testing.T) (*Settings, *repository.SettingsGormRepository) {
	t.Helper()
	dbi, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := dbpkg.Migrate(dbi); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	repo := repository.NewSettingsGormRepository(dbi)
	return NewSettings(repo, nil), repo
}

func TestGetReturnsDefaultsWhenMissing(t *testing.T) {
	uc, repo := setup(t)
	ctx := context.Background()

	got, err := uc.Get(ctx, domain.KeyBusinessInfo)
	if err != nil {
		t.Fatal(err)
	}
	if got["currency"] != "EUR" {
		t.Errorf("defaults = %v", got)
	}
	if snap, _ := repo.GetSnapshot(ctx, domain.KeyBusinessInfo); snap != nil {
		t.Error("reading defaults must not persist a snapshot")
	}

	if _, err := uc.Get(ctx, "theme"); !httperr.IsBusiness(err, "unsupported_settings_key") {
		t.Errorf("expected unsupported_settings_key, got %v", err)
	}
}

func TestGetMigratesOldSnapshotOnce(t *testing.T) {
	uc, repo := setup(t)
	ctx := context.Background()

	err := repo.SaveSnapshot(ctx, &models.SettingsSnapshot{
		Key:     domain.KeyAutomations,
		Version: 1,
		Payload: datatypes.JSON(`[{"name":"Aniversário"}]`),
	})
	if err != nil {
		t.Fatal(err)
	}

	got, err := uc.Get(ctx, domain.KeyAutomations)
	if err != nil {
		t.Fatal(err)
	}
	items, ok := got["items"].([]any)
	if !ok || len(items) != 1 {
		t.Fatalf("migrated payload = %v", got)
	}

	snap, _ := repo.GetSnapshot(ctx, domain.KeyAutomations)
	if snap == nil || snap.Version != domain.CurrentVersion {
		t.Errorf("snapshot not upgraded: %+v", snap)
	}
}

func TestSaveAndGetAll(t *testing.T) {
	uc, _ := setup(t)
	ctx := context.Background()

	if _, err := uc.Save(ctx, domain.KeyNotifications, map[string]any{"whatsapp": false}); err != nil {
		t.Fatal(err)
	}
	if _, err := uc.Save(ctx, domain.KeyNotifications, map[string]any{"whatsapp": true, "email": true}); err != nil {
		t.Fatal(err)
	}

	all, err := uc.GetAll(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != len(domain.Keys()) {
		t.Errorf("keys = %d", len(all))
	}
	if all[domain.KeyNotifications]["email"] != true {
		t.Errorf("notifications = %v", all[domain.KeyNotifications])
	}

	if _, err := uc.Save(ctx, domain.KeyNotifications, nil); !httperr.IsBusiness(err, "invalid_input") {
		t.Errorf("expected invalid_input, got %v", err)
	}
}
