package narrative

import (
	"context"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/gyounis-TX/explify/pkg/models/domain"
)

const systemPrompt = "You are a medical report assistant. You are given two analyses of the " +
	"same kind of medical test taken at different times. Write a short narrative " +
	"(3-5 sentences, 6th-8th grade reading level) describing the overall trend " +
	"between the older and newer report. Only describe values present in the " +
	"reports; never invent data, never give medical advice, and remind the " +
	"reader to discuss changes with their doctor."

// Config for the Gemini-backed summarizer.
type Config struct {
	APIKey      string
	Model       string
	Temperature float32
}

// Gemini generates narrative trend summaries via the Gemini API. It satisfies
// the comparison engine's Summarizer contract.
type Gemini struct {
	client *genai.Client
	model  string
	temp   float32
	policy retryPolicy
}

func NewGemini(ctx context.Context, cfg Config) (*Gemini, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}
	if cfg.Model == "" {
		cfg.Model = "gemini-2.5-flash"
	}
	if cfg.Temperature == 0 {
		cfg.Temperature = 0.2
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: cfg.APIKey})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &Gemini{
		client: client,
		model:  cfg.Model,
		temp:   cfg.Temperature,
		policy: defaultRetryPolicy(),
	}, nil
}

// Compare produces the trend summary for a resolved (newer, older) pair.
func (g *Gemini) Compare(ctx context.Context, newer, older domain.ReportAnalysis) (string, error) {
	prompt := buildComparePrompt(newer, older)

	var summary string
	err := g.policy.do(ctx, func(ctx context.Context) error {
		resp, err := g.client.Models.GenerateContent(ctx,
			g.model,
			genai.Text(prompt),
			&genai.GenerateContentConfig{
				SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
				Temperature:       genai.Ptr(g.temp),
			},
		)
		if err != nil {
			return err
		}
		text := strings.TrimSpace(resp.Text())
		if text == "" {
			return fmt.Errorf("empty response from model %s", g.model)
		}
		summary = text
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("generate trend summary: %w", err)
	}
	return summary, nil
}

// buildComparePrompt renders both snapshots as compact labelled text. The
// model sees the full measurement and finding lists plus both timestamps.
func buildComparePrompt(newer, older domain.ReportAnalysis) string {
	var b strings.Builder
	writeSnapshot(&b, "NEWER REPORT", newer)
	b.WriteString("\n")
	writeSnapshot(&b, "OLDER REPORT", older)
	b.WriteString("\nDescribe the trend from the older report to the newer report.\n")
	return b.String()
}

func writeSnapshot(b *strings.Builder, heading string, r domain.ReportAnalysis) {
	fmt.Fprintf(b, "%s (%s, taken %s)\n", heading, r.TestTypeDisplay, r.CreatedAt.Format(time.DateOnly))
	if r.OverallSummary != "" {
		fmt.Fprintf(b, "Summary: %s\n", r.OverallSummary)
	}
	if len(r.Measurements) > 0 {
		b.WriteString("Measurements:\n")
		for _, m := range r.Measurements {
			fmt.Fprintf(b, "- %s: %s %s\n", m.Abbreviation, m.Value.String(), m.Unit)
		}
	}
	if len(r.KeyFindings) > 0 {
		b.WriteString("Findings:\n")
		for _, f := range r.KeyFindings {
			fmt.Fprintf(b, "- %s (%s)\n", f.Finding, f.Severity)
		}
	}
}
