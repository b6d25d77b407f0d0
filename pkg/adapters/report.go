package adapters

import (
	"encoding/json"
	"fmt"

	"github.com/gyounis-TX/explify/pkg/models/api"
	"github.com/gyounis-TX/explify/pkg/models/domain"
	"github.com/gyounis-TX/explify/pkg/models/store"
)

func MapDomainReportToStoreRecord(r domain.ReportAnalysis) (store.ReportRecord, error) {
	payload := store.ReportPayload{
		OverallSummary:     r.OverallSummary,
		Measurements:       make([]store.PayloadMeasurement, 0, len(r.Measurements)),
		KeyFindings:        make([]store.PayloadFinding, 0, len(r.KeyFindings)),
		QuestionsForDoctor: r.QuestionsForDoctor,
		Disclaimer:         r.Disclaimer,
	}
	for _, m := range r.Measurements {
		payload.Measurements = append(payload.Measurements, store.PayloadMeasurement{
			Abbreviation:  m.Abbreviation,
			Value:         m.Value,
			Unit:          m.Unit,
			Status:        string(m.Status),
			PlainLanguage: m.PlainLanguage,
		})
	}
	for _, f := range r.KeyFindings {
		payload.KeyFindings = append(payload.KeyFindings, store.PayloadFinding{
			Finding:     f.Finding,
			Severity:    string(f.Severity),
			Explanation: f.Explanation,
		})
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return store.ReportRecord{}, fmt.Errorf("marshal report payload: %w", err)
	}

	return store.ReportRecord{
		ID:              r.ID,
		TestType:        r.TestType,
		TestTypeDisplay: r.TestTypeDisplay,
		Filename:        r.Filename,
		Summary:         r.OverallSummary,
		Payload:         raw,
		Liked:           r.Liked,
		CreatedAt:       r.CreatedAt,
	}, nil
}

func MapStoreRecordToDomainReport(rec store.ReportRecord) (domain.ReportAnalysis, error) {
	var payload store.ReportPayload
	if err := json.Unmarshal(rec.Payload, &payload); err != nil {
		return domain.ReportAnalysis{}, fmt.Errorf("unmarshal report payload: %w", err)
	}

	r := domain.ReportAnalysis{
		ID:                 rec.ID,
		TestType:           rec.TestType,
		TestTypeDisplay:    rec.TestTypeDisplay,
		Filename:           rec.Filename,
		OverallSummary:     payload.OverallSummary,
		Measurements:       make([]domain.Measurement, 0, len(payload.Measurements)),
		KeyFindings:        make([]domain.Finding, 0, len(payload.KeyFindings)),
		QuestionsForDoctor: payload.QuestionsForDoctor,
		Disclaimer:         payload.Disclaimer,
		Liked:              rec.Liked,
		CreatedAt:          rec.CreatedAt,
	}
	for _, m := range payload.Measurements {
		r.Measurements = append(r.Measurements, domain.Measurement{
			Abbreviation:  m.Abbreviation,
			Value:         m.Value,
			Unit:          m.Unit,
			Status:        domain.MeasurementStatus(m.Status),
			PlainLanguage: m.PlainLanguage,
		})
	}
	for _, f := range payload.KeyFindings {
		r.KeyFindings = append(r.KeyFindings, domain.Finding{
			Finding:     f.Finding,
			Severity:    domain.FindingSeverity(f.Severity),
			Explanation: f.Explanation,
		})
	}
	return r, nil
}

func MapDomainReportToAPI(r domain.ReportAnalysis) api.ReportAnalysis {
	out := api.ReportAnalysis{
		ID:                 r.ID,
		TestType:           r.TestType,
		TestTypeDisplay:    r.TestTypeDisplay,
		Filename:           r.Filename,
		OverallSummary:     r.OverallSummary,
		Measurements:       make([]api.Measurement, 0, len(r.Measurements)),
		KeyFindings:        make([]api.Finding, 0, len(r.KeyFindings)),
		QuestionsForDoctor: r.QuestionsForDoctor,
		Disclaimer:         r.Disclaimer,
		Liked:              r.Liked,
		CreatedAt:          r.CreatedAt,
	}
	for _, m := range r.Measurements {
		out.Measurements = append(out.Measurements, mapDomainMeasurementToAPI(m))
	}
	for _, f := range r.KeyFindings {
		out.KeyFindings = append(out.KeyFindings, mapDomainFindingToAPI(f))
	}
	return out
}

func MapAPIReportToDomain(r api.ReportAnalysis) domain.ReportAnalysis {
	out := domain.ReportAnalysis{
		ID:                 r.ID,
		TestType:           r.TestType,
		TestTypeDisplay:    r.TestTypeDisplay,
		Filename:           r.Filename,
		OverallSummary:     r.OverallSummary,
		Measurements:       make([]domain.Measurement, 0, len(r.Measurements)),
		KeyFindings:        make([]domain.Finding, 0, len(r.KeyFindings)),
		QuestionsForDoctor: r.QuestionsForDoctor,
		Disclaimer:         r.Disclaimer,
		Liked:              r.Liked,
		CreatedAt:          r.CreatedAt,
	}
	for _, m := range r.Measurements {
		out.Measurements = append(out.Measurements, domain.Measurement{
			Abbreviation:  m.Abbreviation,
			Value:         m.Value,
			Unit:          m.Unit,
			Status:        domain.MeasurementStatus(m.Status),
			PlainLanguage: m.PlainLanguage,
		})
	}
	for _, f := range r.KeyFindings {
		out.KeyFindings = append(out.KeyFindings, domain.Finding{
			Finding:     f.Finding,
			Severity:    domain.FindingSeverity(f.Severity),
			Explanation: f.Explanation,
		})
	}
	return out
}

func MapDomainSummaryToAPI(s domain.ReportSummary) api.ReportSummary {
	return api.ReportSummary{
		ID:              s.ID,
		TestType:        s.TestType,
		TestTypeDisplay: s.TestTypeDisplay,
		Filename:        s.Filename,
		Summary:         s.Summary,
		Liked:           s.Liked,
		CreatedAt:       s.CreatedAt,
	}
}

func mapDomainMeasurementToAPI(m domain.Measurement) api.Measurement {
	return api.Measurement{
		Abbreviation:  m.Abbreviation,
		Value:         m.Value,
		Unit:          m.Unit,
		Status:        string(m.Status),
		PlainLanguage: m.PlainLanguage,
	}
}

func mapDomainFindingToAPI(f domain.Finding) api.Finding {
	return api.Finding{
		Finding:     f.Finding,
		Severity:    string(f.Severity),
		Explanation: f.Explanation,
	}
}
