package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/gyounis-TX/explify/pkg/services/compare"
	"github.com/gyounis-TX/explify/pkg/services/config"
	"github.com/gyounis-TX/explify/pkg/services/history"
	"github.com/gyounis-TX/explify/pkg/services/narrative"
	"github.com/gyounis-TX/explify/pkg/store/sqlite"
	reportstore "github.com/gyounis-TX/explify/pkg/store/sqlite/report"
	"github.com/gyounis-TX/explify/pkg/terminal"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadConfig("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	db, err := sqlite.NewDB(sqlite.Settings{DbPath: cfg.DBPath})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	reports, err := reportstore.NewStore(db)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var summarizer compare.Summarizer
	if cfg.GeminiAPIKey != "" {
		gemini, err := narrative.NewGemini(context.Background(), narrative.Config{
			APIKey: cfg.GeminiAPIKey,
			Model:  cfg.GeminiModel,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		summarizer = gemini
	}

	cli := terminal.NewCLI(terminal.Options{
		History:    history.NewService(reports),
		Summarizer: summarizer,
		Output:     os.Stdout,
	})

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
