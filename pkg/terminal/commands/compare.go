package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/gyounis-TX/explify/pkg/services/compare"
	"github.com/gyounis-TX/explify/pkg/services/history"
	"github.com/gyounis-TX/explify/pkg/terminal/export"
)

type CompareCmd struct {
	firstID    string
	secondID   string
	narrative  bool
	history    history.Service
	summarizer compare.Summarizer
	reporter   *export.Reporter
}

func NewCompareCmd(historySvc history.Service, summarizer compare.Summarizer, reporter *export.Reporter) *cobra.Command {
	cc := &CompareCmd{history: historySvc, summarizer: summarizer, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare two stored reports",
		RunE:  cc.run,
	}

	cmd.Flags().StringVar(&cc.firstID, "first", "", "ID of one stored report")
	cmd.Flags().StringVar(&cc.secondID, "second", "", "ID of the other stored report")
	cmd.Flags().BoolVar(&cc.narrative, "narrative", false, "Also generate the narrative trend summary")

	_ = cmd.MarkFlagRequired("first")
	_ = cmd.MarkFlagRequired("second")

	return cmd
}

func (cc *CompareCmd) run(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), 120*time.Second)
	defer cancel()

	first, err := cc.history.GetReportAnalysis(ctx, cc.firstID)
	if err != nil {
		return fmt.Errorf("failed to load report %q: %w", cc.firstID, err)
	}
	second, err := cc.history.GetReportAnalysis(ctx, cc.secondID)
	if err != nil {
		return fmt.Errorf("failed to load report %q: %w", cc.secondID, err)
	}

	comparison := compare.BuildResult(first, second)

	summary := ""
	if cc.narrative {
		newer, older := compare.ResolvePair(first, second)
		if cc.summarizer == nil {
			summary = compare.SummaryFallback
		} else if summary, err = cc.summarizer.Compare(ctx, newer, older); err != nil {
			summary = compare.SummaryFallback
		}
	}

	return cc.reporter.Handle(&comparison, summary)
}
