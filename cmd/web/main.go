// Command web serves the Swiss Quality Storen website: rendered pages,
// sitemap, and the form submission API.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/swissquality-storen/web/internal/catalog"
	"github.com/swissquality-storen/web/internal/content"
	"github.com/swissquality-storen/web/internal/handlers"
	"github.com/swissquality-storen/web/internal/mailer"
	"github.com/swissquality-storen/web/internal/platform/config"
	"github.com/swissquality-storen/web/internal/platform/metrics"
	"github.com/swissquality-storen/web/internal/platform/observability"
	"github.com/swissquality-storen/web/internal/repositories/postgres"
	"github.com/swissquality-storen/web/internal/site"
	"github.com/swissquality-storen/web/internal/submissions"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	var logger *zap.Logger
	if cfg.Server.DevMode {
		logger, err = observability.NewDevLogger()
	} else {
		logger, err = observability.NewLogger()
	}
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("server failed", zap.Error(err))
	}
}

func run(cfg config.Config, logger *zap.Logger) error {
	// Catalog validation at boot keeps ambiguous slugs out of production.
	cat, err := catalog.Load(
		filepath.Join(cfg.Paths.DataDir, "services.json"),
		filepath.Join(cfg.Paths.DataDir, "locations.json"),
	)
	if err != nil {
		return err
	}
	logger.Info("catalog loaded",
		zap.Int("services", len(cat.Services())),
		zap.Int("locations", len(cat.Locations())),
	)

	siteCfg := site.Default
	if cfg.Site.BaseURL != "" {
		siteCfg.BaseURL = cfg.Site.BaseURL
	}

	db, err := postgres.Open(cfg.Database.URL)
	if err != nil {
		return err
	}

	smtp := mailer.NewSMTPMailer(
		cfg.Mail.Host, cfg.Mail.Port, cfg.Mail.Username, cfg.Mail.Password,
		cfg.Mail.From, cfg.Mail.NotifyTo, siteCfg.ShortName,
	)

	recorder := metrics.NewRecorder()

	submissionSvc, err := submissions.NewService(submissions.ServiceDeps{
		Contacts:   postgres.NewContactRepository(db),
		Newsletter: postgres.NewNewsletterRepository(db),
		Mailer:     smtp,
		Logger:     logger,
		Metrics:    recorder,
	})
	if err != nil {
		return err
	}

	renderer, err := handlers.NewRenderer(cfg.Paths.TemplatesDir, cfg.Server.DevMode)
	if err != nil {
		return err
	}

	server, err := handlers.NewServer(handlers.ServerDeps{
		Catalog:     cat,
		Content:     content.NewStore(cfg.Paths.ContentDir, cfg.Paths.ContentTTL),
		Renderer:    renderer,
		Submissions: submissionSvc,
		Site:        siteCfg,
		Company:     site.DefaultCompany,
		Logger:      logger,
		Metrics:     recorder,
		PublicDir:   cfg.Paths.PublicDir,
	})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           server.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("web listening", zap.String("addr", srv.Addr), zap.Bool("dev", cfg.Server.DevMode))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
