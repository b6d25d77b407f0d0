package domain

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

type MeasurementStatus string

const (
	StatusNormal             MeasurementStatus = "normal"
	StatusMildlyAbnormal     MeasurementStatus = "mildly_abnormal"
	StatusModeratelyAbnormal MeasurementStatus = "moderately_abnormal"
	StatusSeverelyAbnormal   MeasurementStatus = "severely_abnormal"
	StatusUndetermined       MeasurementStatus = "undetermined"
)

type FindingSeverity string

const (
	SeverityNormal        FindingSeverity = "normal"
	SeverityMild          FindingSeverity = "mild"
	SeverityModerate      FindingSeverity = "moderate"
	SeveritySevere        FindingSeverity = "severe"
	SeverityInformational FindingSeverity = "informational"
)

// Value is a measurement magnitude. Reports usually carry numbers, but some
// fields come back textual ("trace", "not visualized"), so both forms are kept.
type Value struct {
	Number *float64
	Text   string
}

func Num(f float64) Value {
	return Value{Number: &f}
}

func Text(s string) Value {
	return Value{Text: s}
}

// Numeric reports the value as a float64 when it is a number or a string
// that parses as one.
func (v Value) Numeric() (float64, bool) {
	if v.Number != nil {
		return *v.Number, true
	}
	s := strings.TrimSpace(v.Text)
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func (v Value) String() string {
	if v.Number != nil {
		return strconv.FormatFloat(*v.Number, 'f', -1, 64)
	}
	return v.Text
}

func (v Value) MarshalJSON() ([]byte, error) {
	if v.Number != nil {
		return json.Marshal(*v.Number)
	}
	return json.Marshal(v.Text)
}

func (v *Value) UnmarshalJSON(data []byte) error {
	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		v.Number = &f
		v.Text = ""
		return nil
	}
	v.Number = nil
	return json.Unmarshal(data, &v.Text)
}

// Measurement is a named lab/clinical value parsed from a report.
type Measurement struct {
	Abbreviation  string // LVEF
	Value         Value  // 55
	Unit          string // %
	Status        MeasurementStatus
	PlainLanguage string
}

// Finding is a qualitative observation from a report.
type Finding struct {
	Finding     string // "Mild mitral regurgitation"
	Severity    FindingSeverity
	Explanation string
}

// ReportAnalysis is the immutable snapshot of one processed report at one
// point in time. The comparison engine reads two of these per invocation and
// never mutates them.
type ReportAnalysis struct {
	ID                 string
	TestType           string // echo
	TestTypeDisplay    string // Echocardiogram
	Filename           string
	OverallSummary     string
	Measurements       []Measurement
	KeyFindings        []Finding
	QuestionsForDoctor []string
	Disclaimer         string
	Liked              bool
	CreatedAt          time.Time
}
