package api

import "time"

type CompareRequest struct {
	NewerID string `json:"newer_id"`
	OlderID string `json:"older_id"`
}

type MeasurementComparison struct {
	Abbreviation string       `json:"abbreviation"`
	Newer        *Measurement `json:"newer,omitempty"`
	Older        *Measurement `json:"older,omitempty"`
	Trend        string       `json:"trend"`
	DeltaPercent *float64     `json:"delta_percent,omitempty"`
}

type FindingChange struct {
	Finding     string   `json:"finding"`
	ChangeType  string   `json:"change_type"`
	NewerDetail *Finding `json:"newer_detail,omitempty"`
	OlderDetail *Finding `json:"older_detail,omitempty"`
}

type ComparisonResult struct {
	NewerID        string                  `json:"newer_id"`
	OlderID        string                  `json:"older_id"`
	NewerLabel     string                  `json:"newer_label"`
	OlderLabel     string                  `json:"older_label"`
	NewerCreatedAt time.Time               `json:"newer_created_at"`
	OlderCreatedAt time.Time               `json:"older_created_at"`
	Measurements   []MeasurementComparison `json:"measurements"`
	Findings       []FindingChange         `json:"findings"`
}

type NarrativeSummary struct {
	TrendSummary string `json:"trend_summary"`
}
