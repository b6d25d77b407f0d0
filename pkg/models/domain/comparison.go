package domain

import "time"

type Trend string

const (
	TrendIncreased Trend = "increased"
	TrendDecreased Trend = "decreased"
	TrendStable    Trend = "stable"
	TrendNew       Trend = "new"
	TrendRemoved   Trend = "removed"
)

type ChangeType string

const (
	ChangeNew       ChangeType = "new"
	ChangeResolved  ChangeType = "resolved"
	ChangeUnchanged ChangeType = "unchanged"
)

// MeasurementComparison is one row of the measurement table: a single
// abbreviation matched across both report sides.
type MeasurementComparison struct {
	Abbreviation string
	Newer        *Measurement // nil when the measurement is gone from the newer report
	Older        *Measurement // nil when the measurement first appears in the newer report
	Trend        Trend
	DeltaPercent *float64 // nil for new/removed rows and zero/non-numeric baselines
}

// FindingChange is one row of the finding table. Classification is
// presence-based only: a finding present on both sides is "unchanged" even
// when its explanation text differs.
type FindingChange struct {
	Finding     string
	ChangeType  ChangeType
	NewerDetail *Finding
	OlderDetail *Finding
}

// ComparisonResult holds the full table output for one resolved report pair.
// Computed fresh on every request, never persisted.
type ComparisonResult struct {
	NewerID        string
	OlderID        string
	NewerLabel     string
	OlderLabel     string
	NewerCreatedAt time.Time
	OlderCreatedAt time.Time
	Measurements   []MeasurementComparison
	Findings       []FindingChange
}

// SessionState tracks the comparison-table half of a comparison session.
type SessionState string

const (
	SessionAwaitingInput SessionState = "awaiting_input"
	SessionLoading       SessionState = "loading"
	SessionReady         SessionState = "ready"
	SessionError         SessionState = "error"
)

// SummaryState tracks the narrative half. It only leaves SummaryIdle once the
// tables are ready, so every summary state implies the tables are usable.
type SummaryState string

const (
	SummaryIdle    SummaryState = "idle"
	SummaryPending SummaryState = "pending"
	SummaryReady   SummaryState = "ready"
	SummaryError   SummaryState = "error"
)
