package domain

import "time"

// ReportSummary is the list-view projection of a stored report; the full
// payload stays in storage until a snapshot is actually fetched.
type ReportSummary struct {
	ID              string
	TestType        string
	TestTypeDisplay string
	Filename        string
	Summary         string
	Liked           bool
	CreatedAt       time.Time
}

// HistoryFilter narrows history listings.
type HistoryFilter struct {
	Search    string
	LikedOnly bool
	Offset    int
	Limit     int
}
