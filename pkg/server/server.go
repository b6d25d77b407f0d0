package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	reporthandler "github.com/gyounis-TX/explify/pkg/handlers/report"
	systemhandler "github.com/gyounis-TX/explify/pkg/handlers/system"
	explifymiddleware "github.com/gyounis-TX/explify/pkg/server/middleware"
	"github.com/gyounis-TX/explify/pkg/services/compare"
	"github.com/gyounis-TX/explify/pkg/services/glossary"
	"github.com/gyounis-TX/explify/pkg/services/history"
	"github.com/gyounis-TX/explify/pkg/services/settings"
)

type Dependencies struct {
	History    history.Service
	Settings   settings.Service
	Glossary   *glossary.Registry
	Summarizer compare.Summarizer // nil disables narrative generation
	Logger     zerolog.Logger
}

type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	Dependencies    Dependencies
}

func ConfigureRouter(config Config) *chi.Mux {
	deps := config.Dependencies
	reports := reporthandler.NewHandler(deps.History, deps.Summarizer)
	system := systemhandler.NewHandler(deps.Settings, deps.Glossary)

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(explifymiddleware.Logger(&deps.Logger))
	router.Use(middleware.Recoverer)

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", system.Health)

		r.Route("/reports", func(r chi.Router) {
			r.Get("/", reports.ListReports)
			r.Post("/", reports.SaveReport)
			r.Post("/compare", reports.Compare)
			r.Post("/compare/narrative", reports.Narrative)
			r.Get("/{report}", reports.GetReport)
			r.Delete("/{report}", reports.DeleteReport)
			r.Patch("/{report}/liked", reports.SetLiked)
		})

		r.Get("/settings", system.GetSettings)
		r.Patch("/settings", system.UpdateSettings)
		r.Get("/glossary/{testType}", system.GetGlossary)
	})

	return router
}

type WebAPI struct {
	logger          *zerolog.Logger
	server          *http.Server
	shutdownTimeout time.Duration
}

func NewWebAPI(config Config) *WebAPI {
	logger := config.Dependencies.Logger
	router := ConfigureRouter(config)

	timeout := config.ShutdownTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &WebAPI{
		logger: &logger,
		server: &http.Server{
			Addr:    config.Addr,
			Handler: router,
		},
		shutdownTimeout: timeout,
	}
}

func (w *WebAPI) Start() error {
	serverErrors := make(chan error, 1)
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	go func() {
		w.logger.Info().Str("addr", w.server.Addr).Msg("starting server")
		serverErrors <- w.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-shutdown:
		w.logger.Info().Msg("shutdown initiated")

		// Give outstanding requests a deadline for completion.
		ctx, cancel := context.WithTimeout(context.Background(), w.shutdownTimeout)
		defer cancel()

		err := w.server.Shutdown(ctx)
		if err != nil {
			w.logger.Error().Err(err).Msg("graceful shutdown failed")
			err = w.server.Close()
		}

		if err != nil {
			return err
		}
	}

	return nil
}
