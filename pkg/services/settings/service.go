package settings

import (
	"context"
	"fmt"
	"strconv"

	"github.com/gyounis-TX/explify/pkg/models/domain"
	settingsstore "github.com/gyounis-TX/explify/pkg/store/sqlite/settings"
)

const (
	keyProvider         = "provider"
	keyAPIKey           = "api_key"
	keyModel            = "model"
	keyTonePreference   = "tone_preference"
	keyDetailPreference = "detail_preference"
)

// Defaults applied when a setting has never been written.
const (
	DefaultProvider         = "gemini"
	DefaultModel            = "gemini-2.5-flash"
	DefaultTonePreference   = 3
	DefaultDetailPreference = 3
)

// Service reads and partially updates the persisted application settings.
type Service interface {
	Get(ctx context.Context) (domain.AppSettings, error)
	Update(ctx context.Context, update domain.SettingsUpdate) (domain.AppSettings, error)
}

type service struct {
	store settingsstore.Store
}

func NewService(store settingsstore.Store) Service {
	return &service{store: store}
}

func (s *service) Get(ctx context.Context) (domain.AppSettings, error) {
	values, err := s.store.All(ctx)
	if err != nil {
		return domain.AppSettings{}, fmt.Errorf("load settings: %w", err)
	}

	out := domain.AppSettings{
		Provider:         DefaultProvider,
		Model:            DefaultModel,
		TonePreference:   DefaultTonePreference,
		DetailPreference: DefaultDetailPreference,
	}
	if v, ok := values[keyProvider]; ok {
		out.Provider = v
	}
	if v, ok := values[keyAPIKey]; ok {
		out.APIKey = v
	}
	if v, ok := values[keyModel]; ok {
		out.Model = v
	}
	if v, ok := values[keyTonePreference]; ok {
		if n, err := strconv.Atoi(v); err == nil {
			out.TonePreference = n
		}
	}
	if v, ok := values[keyDetailPreference]; ok {
		if n, err := strconv.Atoi(v); err == nil {
			out.DetailPreference = n
		}
	}
	return out, nil
}

func (s *service) Update(ctx context.Context, update domain.SettingsUpdate) (domain.AppSettings, error) {
	if err := s.apply(ctx, keyProvider, update.Provider); err != nil {
		return domain.AppSettings{}, err
	}
	if err := s.apply(ctx, keyAPIKey, update.APIKey); err != nil {
		return domain.AppSettings{}, err
	}
	if err := s.apply(ctx, keyModel, update.Model); err != nil {
		return domain.AppSettings{}, err
	}
	if err := s.applyInt(ctx, keyTonePreference, update.TonePreference); err != nil {
		return domain.AppSettings{}, err
	}
	if err := s.applyInt(ctx, keyDetailPreference, update.DetailPreference); err != nil {
		return domain.AppSettings{}, err
	}
	return s.Get(ctx)
}

func (s *service) apply(ctx context.Context, key string, value *string) error {
	if value == nil {
		return nil
	}
	if err := s.store.Set(ctx, key, *value); err != nil {
		return fmt.Errorf("update setting %s: %w", key, err)
	}
	return nil
}

func (s *service) applyInt(ctx context.Context, key string, value *int) error {
	if value == nil {
		return nil
	}
	if err := s.store.Set(ctx, key, strconv.Itoa(*value)); err != nil {
		return fmt.Errorf("update setting %s: %w", key, err)
	}
	return nil
}
