package export

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/gyounis-TX/explify/pkg/models/domain"
)

type TableConfig struct {
	AbbreviationWidth int
	OlderWidth        int
	NewerWidth        int
	TrendWidth        int
	DeltaWidth        int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		AbbreviationWidth: 16,
		OlderWidth:        20,
		NewerWidth:        20,
		TrendWidth:        10,
		DeltaWidth:        10,
	}
}

type Reporter struct {
	writer io.Writer
	config TableConfig
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		config: DefaultTableConfig(),
	}
}

// reportView bundles the comparison with the optional narrative so the
// template has a single root.
type reportView struct {
	Result  *domain.ComparisonResult
	Summary string
}

func (c *Reporter) Handle(result *domain.ComparisonResult, summary string) error {
	funcMap := template.FuncMap{
		"formatRow": func(abbrev, older, newer, trend, delta string) string {
			return fmt.Sprintf("| %-*s | %-*s | %-*s | %-*s | %-*s |",
				c.config.AbbreviationWidth, abbrev,
				c.config.OlderWidth, older,
				c.config.NewerWidth, newer,
				c.config.TrendWidth, trend,
				c.config.DeltaWidth, delta)
		},
		"separator": func() string {
			return fmt.Sprintf("+%s+%s+%s+%s+%s+",
				strings.Repeat("-", c.config.AbbreviationWidth+2),
				strings.Repeat("-", c.config.OlderWidth+2),
				strings.Repeat("-", c.config.NewerWidth+2),
				strings.Repeat("-", c.config.TrendWidth+2),
				strings.Repeat("-", c.config.DeltaWidth+2))
		},
		"measurement": formatMeasurement,
		"delta":       formatDelta,
	}

	tmpl := `
Comparing {{.Result.NewerLabel}} ({{.Result.NewerCreatedAt.Format "2006-01-02"}}) against {{.Result.OlderLabel}} ({{.Result.OlderCreatedAt.Format "2006-01-02"}})

=== Measurements ===

{{separator}}
{{formatRow "Measurement" "Older" "Newer" "Trend" "Change"}}
{{separator}}
{{range .Result.Measurements}}{{formatRow .Abbreviation (measurement .Older) (measurement .Newer) (printf "%s" .Trend) (delta .DeltaPercent)}}
{{end}}{{separator}}

=== Findings ===
{{range .Result.Findings}}
- {{.Finding}} [{{.ChangeType}}]
{{end}}
{{- if .Summary}}
=== Summary ===

{{.Summary}}
{{end}}`

	t, err := template.New("comparison").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, reportView{Result: result, Summary: summary})
}

func formatMeasurement(m *domain.Measurement) string {
	if m == nil {
		return "-"
	}
	if m.Unit == "" {
		return m.Value.String()
	}
	return fmt.Sprintf("%s %s", m.Value.String(), m.Unit)
}

func formatDelta(pct *float64) string {
	if pct == nil {
		return "-"
	}
	return fmt.Sprintf("%+.1f%%", *pct)
}
