package report

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/gyounis-TX/explify/pkg/adapters"
	"github.com/gyounis-TX/explify/pkg/models/api"
	"github.com/gyounis-TX/explify/pkg/models/domain"
	"github.com/gyounis-TX/explify/pkg/services/compare"
	"github.com/gyounis-TX/explify/pkg/services/history"
)

type Handler struct {
	history    history.Service
	summarizer compare.Summarizer // nil when no model is configured
}

func NewHandler(historySvc history.Service, summarizer compare.Summarizer) *Handler {
	return &Handler{
		history:    historySvc,
		summarizer: summarizer,
	}
}

func (h *Handler) ListReports(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	filter := domain.HistoryFilter{
		Search:    r.URL.Query().Get("search"),
		LikedOnly: r.URL.Query().Get("liked") == "true",
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		filter.Offset, _ = strconv.Atoi(v)
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		filter.Limit, _ = strconv.Atoi(v)
	}

	summaries, total, err := h.history.List(ctx, filter)
	if err != nil {
		logger.Error().Err(err).Msg("failed to list reports")
		http.Error(w, "failed to list reports", http.StatusInternalServerError)
		return
	}

	response := api.ReportList{Reports: make([]api.ReportSummary, 0, len(summaries)), Total: total}
	for _, s := range summaries {
		response.Reports = append(response.Reports, adapters.MapDomainSummaryToAPI(s))
	}
	writeJSON(w, logger, response)
}

func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	id := chi.URLParam(r, "report")

	analysis, err := h.history.GetReportAnalysis(ctx, id)
	if errors.Is(err, history.ErrNotFound) {
		http.Error(w, "report not found", http.StatusNotFound)
		return
	}
	if err != nil {
		logger.Error().Err(err).Str("report", id).Msg("failed to load report")
		http.Error(w, "failed to load report", http.StatusInternalServerError)
		return
	}

	writeJSON(w, logger, adapters.MapDomainReportToAPI(analysis))
}

func (h *Handler) SaveReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	var body api.ReportAnalysis
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid report payload", http.StatusBadRequest)
		return
	}
	if body.TestType == "" {
		http.Error(w, "test_type is required", http.StatusBadRequest)
		return
	}

	saved, err := h.history.Save(ctx, adapters.MapAPIReportToDomain(body))
	if err != nil {
		logger.Error().Err(err).Msg("failed to save report")
		http.Error(w, "failed to save report", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(adapters.MapDomainReportToAPI(saved)); err != nil {
		logger.Error().Err(err).Msg("failed to encode response")
	}
}

func (h *Handler) DeleteReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	id := chi.URLParam(r, "report")

	err := h.history.Delete(ctx, id)
	if errors.Is(err, history.ErrNotFound) {
		http.Error(w, "report not found", http.StatusNotFound)
		return
	}
	if err != nil {
		logger.Error().Err(err).Str("report", id).Msg("failed to delete report")
		http.Error(w, "failed to delete report", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) SetLiked(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	id := chi.URLParam(r, "report")

	var body api.LikedUpdate
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}

	err := h.history.SetLiked(ctx, id, body.Liked)
	if errors.Is(err, history.ErrNotFound) {
		http.Error(w, "report not found", http.StatusNotFound)
		return
	}
	if err != nil {
		logger.Error().Err(err).Str("report", id).Msg("failed to update liked flag")
		http.Error(w, "failed to update liked flag", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Compare computes the measurement and finding tables for two stored
// reports. The narrative summary is a separate endpoint so a slow or failing
// model never delays the tables.
func (h *Handler) Compare(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	req, ok := decodeCompareRequest(w, r)
	if !ok {
		return
	}

	result, err := compare.Run(ctx, h.history, req.NewerID, req.OlderID)
	if errors.Is(err, history.ErrNotFound) {
		http.Error(w, "report not found", http.StatusNotFound)
		return
	}
	if err != nil {
		logger.Error().Err(err).Msg("comparison failed")
		http.Error(w, "comparison failed", http.StatusInternalServerError)
		return
	}

	writeJSON(w, logger, adapters.MapDomainComparisonToAPI(result))
}

// Narrative generates the trend summary for two stored reports. Generation
// failure is answered with the fixed fallback text rather than an error.
func (h *Handler) Narrative(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	req, ok := decodeCompareRequest(w, r)
	if !ok {
		return
	}

	first, err := h.history.GetReportAnalysis(ctx, req.NewerID)
	if err == nil {
		var second domain.ReportAnalysis
		second, err = h.history.GetReportAnalysis(ctx, req.OlderID)
		if err == nil {
			writeJSON(w, logger, api.NarrativeSummary{TrendSummary: h.summarize(r, first, second)})
			return
		}
	}
	if errors.Is(err, history.ErrNotFound) {
		http.Error(w, "report not found", http.StatusNotFound)
		return
	}
	logger.Error().Err(err).Msg("failed to load reports for narrative")
	http.Error(w, "failed to load reports", http.StatusInternalServerError)
}

func (h *Handler) summarize(r *http.Request, first, second domain.ReportAnalysis) string {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	if h.summarizer == nil {
		return compare.SummaryFallback
	}
	newer, older := compare.ResolvePair(first, second)
	summary, err := h.summarizer.Compare(ctx, newer, older)
	if err != nil {
		logger.Warn().Err(err).Msg("narrative summary failed, substituting fallback")
		return compare.SummaryFallback
	}
	return summary
}

func decodeCompareRequest(w http.ResponseWriter, r *http.Request) (api.CompareRequest, bool) {
	var req api.CompareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid compare request", http.StatusBadRequest)
		return api.CompareRequest{}, false
	}
	if req.NewerID == "" || req.OlderID == "" {
		http.Error(w, "newer_id and older_id are required", http.StatusBadRequest)
		return api.CompareRequest{}, false
	}
	return req, true
}

func writeJSON(w http.ResponseWriter, logger *zerolog.Logger, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error().Err(err).Msg("failed to encode response")
	}
}
