package adapters

import (
	"github.com/gyounis-TX/explify/pkg/models/api"
	"github.com/gyounis-TX/explify/pkg/models/domain"
)

func MapDomainComparisonToAPI(r domain.ComparisonResult) api.ComparisonResult {
	out := api.ComparisonResult{
		NewerID:        r.NewerID,
		OlderID:        r.OlderID,
		NewerLabel:     r.NewerLabel,
		OlderLabel:     r.OlderLabel,
		NewerCreatedAt: r.NewerCreatedAt,
		OlderCreatedAt: r.OlderCreatedAt,
		Measurements:   make([]api.MeasurementComparison, 0, len(r.Measurements)),
		Findings:       make([]api.FindingChange, 0, len(r.Findings)),
	}

	for _, row := range r.Measurements {
		out.Measurements = append(out.Measurements, api.MeasurementComparison{
			Abbreviation: row.Abbreviation,
			Newer:        mapOptionalMeasurement(row.Newer),
			Older:        mapOptionalMeasurement(row.Older),
			Trend:        string(row.Trend),
			DeltaPercent: row.DeltaPercent,
		})
	}
	for _, row := range r.Findings {
		out.Findings = append(out.Findings, api.FindingChange{
			Finding:     row.Finding,
			ChangeType:  string(row.ChangeType),
			NewerDetail: mapOptionalFinding(row.NewerDetail),
			OlderDetail: mapOptionalFinding(row.OlderDetail),
		})
	}
	return out
}

func mapOptionalMeasurement(m *domain.Measurement) *api.Measurement {
	if m == nil {
		return nil
	}
	mapped := mapDomainMeasurementToAPI(*m)
	return &mapped
}

func mapOptionalFinding(f *domain.Finding) *api.Finding {
	if f == nil {
		return nil
	}
	mapped := mapDomainFindingToAPI(*f)
	return &mapped
}
