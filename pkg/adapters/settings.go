package adapters

import (
	"github.com/gyounis-TX/explify/pkg/models/api"
	"github.com/gyounis-TX/explify/pkg/models/domain"
)

func MapDomainSettingsToAPI(s domain.AppSettings) api.Settings {
	return api.Settings{
		Provider:         s.Provider,
		APIKey:           MaskAPIKey(s.APIKey),
		Model:            s.Model,
		TonePreference:   s.TonePreference,
		DetailPreference: s.DetailPreference,
	}
}

func MapAPISettingsUpdateToDomain(u api.SettingsUpdate) domain.SettingsUpdate {
	return domain.SettingsUpdate{
		Provider:         u.Provider,
		APIKey:           u.APIKey,
		Model:            u.Model,
		TonePreference:   u.TonePreference,
		DetailPreference: u.DetailPreference,
	}
}

// MaskAPIKey keeps the first 8 and last 4 characters for display. Short keys
// are returned as-is.
func MaskAPIKey(key string) string {
	if len(key) < 16 {
		return key
	}
	return key[:8] + "..." + key[len(key)-4:]
}
