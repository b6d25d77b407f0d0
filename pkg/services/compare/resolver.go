package compare

import "github.com/gyounis-TX/explify/pkg/models/domain"

// ResolvePair orders two snapshots chronologically. When timestamps are equal
// the first argument wins the newer slot, so the ordering is deterministic for
// any input.
func ResolvePair(a, b domain.ReportAnalysis) (newer, older domain.ReportAnalysis) {
	if b.CreatedAt.After(a.CreatedAt) {
		return b, a
	}
	return a, b
}
