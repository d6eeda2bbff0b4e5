package settings

import (
	"context"
	"encoding/json"
	"log"

	"github.com/BruksfildServices01/salon-manager/internal/audit"
	domain "github.com/BruksfildServices01/salon-manager/internal/domain/settings"
	"github.com/BruksfildServices01/salon-manager/internal/httperr"
	"github.com/BruksfildServices01/salon-manager/internal/models"
)

type Settings struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewSettings(repo domain.Repository, audit *audit.Dispatcher) *Settings {
	return &Settings{repo: repo, audit: audit}
}

// Get devolve o payload na versão atual. Snapshots antigos são migrados e
// regravados na primeira leitura; chaves nunca gravadas devolvem o padrão.
func (uc *Settings) Get(ctx context.Context, key string) (map[string]any, error) {
	if !domain.Supported(key) {
		return nil, httperr.ErrBusiness("unsupported_settings_key")
	}

	snap, err := uc.repo.GetSnapshot(ctx, key)
	if err != nil {
		return nil, err
	}
	if snap == nil {
		return domain.Default(key), nil
	}

	payload, changed, err := domain.Migrate(key, snap.Version, snap.Payload)
	if err != nil {
		return nil, err
	}
	if changed {
		if err := uc.write(ctx, key, payload); err != nil {
			return nil, err
		}
		log.Printf("[settings] migrated %s from v%d to v%d", key, snap.Version, domain.CurrentVersion)
	}
	return payload, nil
}

func (uc *Settings) GetAll(ctx context.Context) (map[string]map[string]any, error) {
	out := make(map[string]map[string]any, len(domain.Keys()))
	for _, key := range domain.Keys() {
		payload, err := uc.Get(ctx, key)
		if err != nil {
			return nil, err
		}
		out[key] = payload
	}
	return out, nil
}

func (uc *Settings) Save(ctx context.Context, key string, payload map[string]any) (map[string]any, error) {
	if !domain.Supported(key) {
		return nil, httperr.ErrBusiness("unsupported_settings_key")
	}
	if payload == nil {
		return nil, httperr.ErrBusiness("invalid_input")
	}
	if err := uc.write(ctx, key, payload); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "settings_saved",
		Entity:   "settings",
		EntityID: key,
	})
	return payload, nil
}

func (uc *Settings) write(ctx context.Context, key string, payload map[string]any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return uc.repo.SaveSnapshot(ctx, &models.SettingsSnapshot{
		Key:     key,
		Version: domain.CurrentVersion,
		Payload: raw,
	})
}
