package store

import (
	"time"

	"github.com/gyounis-TX/explify/pkg/models/domain"
)

// ReportRecord is the row shape of the reports table. Payload carries the
// full analysis as JSON; the list columns are denormalized for search.
type ReportRecord struct {
	ID              string
	TestType        string
	TestTypeDisplay string
	Filename        string
	Summary         string
	Payload         []byte
	Liked           bool
	CreatedAt       time.Time
}

// ReportPayload is the JSON document stored in ReportRecord.Payload.
type ReportPayload struct {
	OverallSummary     string               `json:"overall_summary"`
	Measurements       []PayloadMeasurement `json:"measurements"`
	KeyFindings        []PayloadFinding     `json:"key_findings"`
	QuestionsForDoctor []string             `json:"questions_for_doctor,omitempty"`
	Disclaimer         string               `json:"disclaimer,omitempty"`
}

type PayloadMeasurement struct {
	Abbreviation  string       `json:"abbreviation"`
	Value         domain.Value `json:"value"`
	Unit          string       `json:"unit"`
	Status        string       `json:"status,omitempty"`
	PlainLanguage string       `json:"plain_language,omitempty"`
}

type PayloadFinding struct {
	Finding     string `json:"finding"`
	Severity    string `json:"severity,omitempty"`
	Explanation string `json:"explanation,omitempty"`
}

// ReportFilter narrows List queries.
type ReportFilter struct {
	Search    string
	LikedOnly bool
	Offset    int
	Limit     int
}
