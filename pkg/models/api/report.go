package api

import (
	"time"

	"github.com/gyounis-TX/explify/pkg/models/domain"
)

type Measurement struct {
	Abbreviation  string       `json:"abbreviation"`
	Value         domain.Value `json:"value"`
	Unit          string       `json:"unit"`
	Status        string       `json:"status,omitempty"`
	PlainLanguage string       `json:"plain_language,omitempty"`
}

type Finding struct {
	Finding     string `json:"finding"`
	Severity    string `json:"severity,omitempty"`
	Explanation string `json:"explanation,omitempty"`
}

type ReportAnalysis struct {
	ID                 string        `json:"id"`
	TestType           string        `json:"test_type"`
	TestTypeDisplay    string        `json:"test_type_display"`
	Filename           string        `json:"filename,omitempty"`
	OverallSummary     string        `json:"overall_summary"`
	Measurements       []Measurement `json:"measurements"`
	KeyFindings        []Finding     `json:"key_findings"`
	QuestionsForDoctor []string      `json:"questions_for_doctor,omitempty"`
	Disclaimer         string        `json:"disclaimer,omitempty"`
	Liked              bool          `json:"liked"`
	CreatedAt          time.Time     `json:"created_at"`
}

// ReportSummary is the list-view projection of a stored report.
type ReportSummary struct {
	ID              string    `json:"id"`
	TestType        string    `json:"test_type"`
	TestTypeDisplay string    `json:"test_type_display"`
	Filename        string    `json:"filename,omitempty"`
	Summary         string    `json:"summary"`
	Liked           bool      `json:"liked"`
	CreatedAt       time.Time `json:"created_at"`
}

type ReportList struct {
	Reports []ReportSummary `json:"reports"`
	Total   int             `json:"total"`
}

type LikedUpdate struct {
	Liked bool `json:"liked"`
}
