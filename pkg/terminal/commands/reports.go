package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gyounis-TX/explify/pkg/models/domain"
	"github.com/gyounis-TX/explify/pkg/services/history"
)

type ReportsCmd struct {
	search    string
	likedOnly bool
	limit     int
	history   history.Service
}

func NewReportsCmd(historySvc history.Service) *cobra.Command {
	rc := &ReportsCmd{history: historySvc}
	cmd := &cobra.Command{
		Use:   "reports",
		Short: "List stored reports",
		RunE:  rc.run,
	}

	cmd.Flags().StringVar(&rc.search, "search", "", "Filter reports by summary, test type or filename")
	cmd.Flags().BoolVar(&rc.likedOnly, "liked", false, "Only show liked reports")
	cmd.Flags().IntVar(&rc.limit, "limit", 20, "Maximum number of reports to show")

	return cmd
}

func (rc *ReportsCmd) run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	summaries, total, err := rc.history.List(ctx, domain.HistoryFilter{
		Search:    rc.search,
		LikedOnly: rc.likedOnly,
		Limit:     rc.limit,
	})
	if err != nil {
		return fmt.Errorf("failed to list reports: %w", err)
	}

	if len(summaries) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No stored reports found.")
		return nil
	}

	for _, s := range summaries {
		liked := " "
		if s.Liked {
			liked = "*"
		}
		label := s.Filename
		if label == "" {
			label = s.TestTypeDisplay
		}
		fmt.Fprintf(cmd.OutOrStdout(), "[%s] %s  %s  %s  %s\n",
			liked, s.ID, s.CreatedAt.Format("2006-01-02"), s.TestType, label)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "\n%d of %d reports shown\n", len(summaries), total)

	return nil
}
