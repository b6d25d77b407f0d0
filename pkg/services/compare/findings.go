package compare

import (
	"strings"

	"github.com/gyounis-TX/explify/pkg/models/domain"
)

// CompareFindings aligns two finding lists by case-insensitive label and
// classifies each as new, resolved or unchanged. Classification is
// presence-based only: a label present on both sides is "unchanged" even when
// the explanation text differs between them. Ordering and duplicate-key
// handling follow CompareMeasurements.
func CompareFindings(newer, older []domain.Finding) []domain.FindingChange {
	lookup := make(map[string]domain.Finding, len(older))
	for _, f := range older {
		lookup[strings.ToLower(f.Finding)] = f
	}

	rows := make([]domain.FindingChange, 0, len(newer)+len(older))
	seen := make(map[string]bool, len(newer))

	for _, f := range newer {
		f := f
		key := strings.ToLower(f.Finding)
		seen[key] = true

		if prev, ok := lookup[key]; ok {
			rows = append(rows, domain.FindingChange{
				Finding:     f.Finding,
				ChangeType:  domain.ChangeUnchanged,
				NewerDetail: &f,
				OlderDetail: &prev,
			})
		} else {
			rows = append(rows, domain.FindingChange{
				Finding:     f.Finding,
				ChangeType:  domain.ChangeNew,
				NewerDetail: &f,
			})
		}
	}

	for _, f := range older {
		f := f
		if seen[strings.ToLower(f.Finding)] {
			continue
		}
		rows = append(rows, domain.FindingChange{
			Finding:     f.Finding,
			ChangeType:  domain.ChangeResolved,
			OlderDetail: &f,
		})
	}

	return rows
}
