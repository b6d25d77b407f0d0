package compare

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gyounis-TX/explify/pkg/models/domain"
)

func finding(label, explanation string) domain.Finding {
	return domain.Finding{Finding: label, Severity: domain.SeverityMild, Explanation: explanation}
}

func TestCompareFindings_Classification(t *testing.T) {
	newer := []domain.Finding{finding("Mild MR", "Slight leak of the mitral valve.")}
	older := []domain.Finding{
		finding("Mild MR", "Slight leak of the mitral valve."),
		finding("Trace TR", "Tiny leak of the tricuspid valve."),
	}

	rows := CompareFindings(newer, older)
	require.Len(t, rows, 2)

	assert.Equal(t, "Mild MR", rows[0].Finding)
	assert.Equal(t, domain.ChangeUnchanged, rows[0].ChangeType)
	require.NotNil(t, rows[0].NewerDetail)
	require.NotNil(t, rows[0].OlderDetail)

	assert.Equal(t, "Trace TR", rows[1].Finding)
	assert.Equal(t, domain.ChangeResolved, rows[1].ChangeType)
	assert.Nil(t, rows[1].NewerDetail)
	require.NotNil(t, rows[1].OlderDetail)
}

func TestCompareFindings_NewFinding(t *testing.T) {
	rows := CompareFindings(
		[]domain.Finding{finding("Pericardial effusion", "Fluid around the heart.")},
		nil,
	)
	require.Len(t, rows, 1)
	assert.Equal(t, domain.ChangeNew, rows[0].ChangeType)
	assert.Nil(t, rows[0].OlderDetail)
}

func TestCompareFindings_CaseInsensitiveMatch(t *testing.T) {
	rows := CompareFindings(
		[]domain.Finding{finding("mild mr", "a")},
		[]domain.Finding{finding("Mild MR", "b")},
	)
	require.Len(t, rows, 1)
	assert.Equal(t, domain.ChangeUnchanged, rows[0].ChangeType)
}

func TestCompareFindings_PresenceOnly(t *testing.T) {
	// matched labels are "unchanged" even when the explanation text differs;
	// the classifier never diffs content
	rows := CompareFindings(
		[]domain.Finding{finding("Mild MR", "The leak has worsened noticeably.")},
		[]domain.Finding{finding("Mild MR", "Barely detectable leak.")},
	)
	require.Len(t, rows, 1)
	assert.Equal(t, domain.ChangeUnchanged, rows[0].ChangeType)
	assert.Equal(t, "The leak has worsened noticeably.", rows[0].NewerDetail.Explanation)
	assert.Equal(t, "Barely detectable leak.", rows[0].OlderDetail.Explanation)
}

func TestCompareFindings_Ordering(t *testing.T) {
	newer := []domain.Finding{
		finding("C", ""),
		finding("A", ""),
	}
	older := []domain.Finding{
		finding("B", ""),
		finding("A", ""),
		finding("D", ""),
	}

	rows := CompareFindings(newer, older)
	require.Len(t, rows, 4)

	got := make([]string, 0, len(rows))
	for _, r := range rows {
		got = append(got, r.Finding)
	}
	assert.Equal(t, []string{"C", "A", "B", "D"}, got)
}

func TestCompareFindings_Idempotent(t *testing.T) {
	newer := []domain.Finding{finding("Mild MR", "x"), finding("LVH", "y")}
	older := []domain.Finding{finding("Trace TR", "z"), finding("LVH", "y")}

	assert.Equal(t, CompareFindings(newer, older), CompareFindings(newer, older))
}
