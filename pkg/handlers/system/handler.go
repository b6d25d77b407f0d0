package system

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/gyounis-TX/explify/pkg/adapters"
	"github.com/gyounis-TX/explify/pkg/models/api"
	"github.com/gyounis-TX/explify/pkg/services/glossary"
	"github.com/gyounis-TX/explify/pkg/services/settings"
)

type Handler struct {
	settings settings.Service
	glossary *glossary.Registry
}

func NewHandler(settingsSvc settings.Service, glossaryReg *glossary.Registry) *Handler {
	return &Handler{
		settings: settingsSvc,
		glossary: glossaryReg,
	}
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, api.Health{Status: "ok"})
}

func (h *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	current, err := h.settings.Get(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("failed to load settings")
		http.Error(w, "failed to load settings", http.StatusInternalServerError)
		return
	}
	writeJSON(w, r, adapters.MapDomainSettingsToAPI(current))
}

func (h *Handler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	var body api.SettingsUpdate
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid settings payload", http.StatusBadRequest)
		return
	}

	updated, err := h.settings.Update(ctx, adapters.MapAPISettingsUpdateToDomain(body))
	if err != nil {
		logger.Error().Err(err).Msg("failed to update settings")
		http.Error(w, "failed to update settings", http.StatusInternalServerError)
		return
	}
	writeJSON(w, r, adapters.MapDomainSettingsToAPI(updated))
}

func (h *Handler) GetGlossary(w http.ResponseWriter, r *http.Request) {
	testType := chi.URLParam(r, "testType")

	terms, err := h.glossary.Get(testType)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	writeJSON(w, r, api.Glossary{TestType: testType, Glossary: terms})
}

func writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	logger := zerolog.Ctx(r.Context())
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error().Err(err).Msg("failed to encode response")
	}
}
