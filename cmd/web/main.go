package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/gyounis-TX/explify/pkg/server"
	"github.com/gyounis-TX/explify/pkg/services/compare"
	"github.com/gyounis-TX/explify/pkg/services/config"
	"github.com/gyounis-TX/explify/pkg/services/glossary"
	"github.com/gyounis-TX/explify/pkg/services/history"
	"github.com/gyounis-TX/explify/pkg/services/narrative"
	"github.com/gyounis-TX/explify/pkg/services/settings"
	"github.com/gyounis-TX/explify/pkg/store/sqlite"
	reportstore "github.com/gyounis-TX/explify/pkg/store/sqlite/report"
	settingsstore "github.com/gyounis-TX/explify/pkg/store/sqlite/settings"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for Explify",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "",
		"Path to a config file (EXPLIFY_* environment variables take precedence)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	db, err := sqlite.NewDB(sqlite.Settings{DbPath: cfg.DBPath})
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	reports, err := reportstore.NewStore(db)
	if err != nil {
		return fmt.Errorf("failed to create report store: %w", err)
	}
	appSettings, err := settingsstore.NewStore(db)
	if err != nil {
		return fmt.Errorf("failed to create settings store: %w", err)
	}

	historySvc := history.NewService(reports)
	settingsSvc := settings.NewService(appSettings)

	summarizer, err := buildSummarizer(ctx, cfg, settingsSvc)
	if err != nil {
		return err
	}
	if summarizer == nil {
		logger.Warn().Msg("no Gemini API key configured, narrative summaries will use the fallback text")
	}

	api := server.NewWebAPI(server.Config{
		Addr:            cfg.Addr,
		ShutdownTimeout: cfg.ShutdownTimeout,
		Dependencies: server.Dependencies{
			History:    historySvc,
			Settings:   settingsSvc,
			Glossary:   glossary.NewRegistry(),
			Summarizer: summarizer,
			Logger:     logger,
		},
	})

	return api.Start()
}

// buildSummarizer prefers the key from the environment/config file and falls
// back to the one saved through the settings API. A missing key is not an
// error, it just disables narrative generation.
func buildSummarizer(ctx context.Context, cfg *config.Config, settingsSvc settings.Service) (compare.Summarizer, error) {
	apiKey := cfg.GeminiAPIKey
	model := cfg.GeminiModel

	if apiKey == "" {
		stored, err := settingsSvc.Get(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load stored settings: %w", err)
		}
		apiKey = stored.APIKey
		if stored.Model != "" {
			model = stored.Model
		}
	}
	if apiKey == "" {
		return nil, nil
	}

	gemini, err := narrative.NewGemini(ctx, narrative.Config{APIKey: apiKey, Model: model})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return gemini, nil
}
