package terminal

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/gyounis-TX/explify/pkg/services/compare"
	"github.com/gyounis-TX/explify/pkg/services/history"
	"github.com/gyounis-TX/explify/pkg/terminal/commands"
	"github.com/gyounis-TX/explify/pkg/terminal/export"
)

// CLI represents the command-line interface
type CLI struct {
	history    history.Service
	summarizer compare.Summarizer
	reporter   *export.Reporter
	rootCmd    *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	History    history.Service
	Summarizer compare.Summarizer // nil disables narrative generation
	Output     io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	cli := &CLI{
		history:    opts.History,
		summarizer: opts.Summarizer,
		reporter:   export.NewReporter(opts.Output),
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "explify",
		Short: "Medical report comparison tool",
	}

	cmd.AddCommand(commands.NewCompareCmd(cli.history, cli.summarizer, cli.reporter))
	cmd.AddCommand(commands.NewReportsCmd(cli.history))

	return cmd
}
