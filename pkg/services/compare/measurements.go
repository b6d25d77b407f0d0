package compare

import (
	"math"
	"strings"

	"github.com/gyounis-TX/explify/pkg/models/domain"
)

// stableBandPercent is the inclusive |delta| boundary below which a numeric
// change is still reported as stable.
const stableBandPercent = 5.0

// CompareMeasurements aligns two measurement lists by case-insensitive
// abbreviation and classifies each pair's trend.
//
// Output covers the union of abbreviations on both sides: rows derived from
// the newer side first, in the newer side's original order, then rows for
// measurements only the older side has ("removed"), in the older side's
// original order.
//
// When an abbreviation appears twice on the older side the lookup keeps the
// last occurrence. That matches the historical behaviour of the feature and
// is kept rather than fixed.
func CompareMeasurements(newer, older []domain.Measurement) []domain.MeasurementComparison {
	lookup := make(map[string]domain.Measurement, len(older))
	for _, m := range older {
		lookup[strings.ToLower(m.Abbreviation)] = m
	}

	rows := make([]domain.MeasurementComparison, 0, len(newer)+len(older))
	seen := make(map[string]bool, len(newer))

	for _, m := range newer {
		m := m
		key := strings.ToLower(m.Abbreviation)
		seen[key] = true

		prev, ok := lookup[key]
		if !ok {
			rows = append(rows, domain.MeasurementComparison{
				Abbreviation: m.Abbreviation,
				Newer:        &m,
				Trend:        domain.TrendNew,
			})
			continue
		}

		row := domain.MeasurementComparison{
			Abbreviation: m.Abbreviation,
			Newer:        &m,
			Older:        &prev,
		}
		row.Trend, row.DeltaPercent = classify(m.Value, prev.Value)
		rows = append(rows, row)
	}

	for _, m := range older {
		m := m
		if seen[strings.ToLower(m.Abbreviation)] {
			continue
		}
		rows = append(rows, domain.MeasurementComparison{
			Abbreviation: m.Abbreviation,
			Older:        &m,
			Trend:        domain.TrendRemoved,
		})
	}

	return rows
}

// classify computes the rounded percentage delta between two matched values
// and buckets it. Non-numeric values and a zero baseline fall back to stable
// with no delta, so the table never shows infinities or NaNs and never calls
// a change on value grounds it cannot quantify.
func classify(newer, older domain.Value) (domain.Trend, *float64) {
	nv, nok := newer.Numeric()
	ov, ook := older.Numeric()
	if !nok || !ook || ov == 0 {
		return domain.TrendStable, nil
	}

	pct := round1((nv - ov) / math.Abs(ov) * 100)
	switch {
	case math.Abs(pct) <= stableBandPercent:
		return domain.TrendStable, &pct
	case pct > 0:
		return domain.TrendIncreased, &pct
	default:
		return domain.TrendDecreased, &pct
	}
}

// round1 rounds to one decimal place, halves away from zero.
func round1(f float64) float64 {
	return math.Round(f*10) / 10
}
