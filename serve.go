package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/camden-git/totenbilder/config"
	"github.com/camden-git/totenbilder/database"
	"github.com/camden-git/totenbilder/handlers"
	"github.com/camden-git/totenbilder/logging"
	"github.com/camden-git/totenbilder/models"
	"github.com/camden-git/totenbilder/repository"
	"github.com/camden-git/totenbilder/server"
	"github.com/camden-git/totenbilder/services"
	"github.com/camden-git/totenbilder/web"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the archive web server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
}

func runServe(ctx context.Context) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := logging.NewLogger(cfg.LogLevel, cfg.LogFormat, "totenbilder")
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)

	var (
		sqlDB  *sql.DB
		gormDB *gorm.DB
	)
	if cfg.DatabaseConfigured() {
		sqlDB, err = database.InitDB(database.Settings{
			Driver:       cfg.DBDriver,
			DSN:          cfg.DBDSN,
			MaxOpenConns: cfg.MaxOpenConns,
		}, logger)
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		defer sqlDB.Close()

		gormDB, err = database.InitGormDB(sqlDB, cfg.DBDriver, logger)
		if err != nil {
			return fmt.Errorf("failed to initialize GORM: %w", err)
		}
	} else {
		logger.Warn("no database configured, API answers DB_NOT_CONFIGURED and pages show demo data")
	}

	// a nil *sql.DB must stay a nil interface for the not-configured checks
	var (
		querier database.Querier
		pinger  handlers.Pinger
	)
	if sqlDB != nil {
		querier = sqlDB
		pinger = sqlDB
	}

	var archive repository.TotenbildRepository = repository.NewSQLTotenbildRepository(querier, logger)
	if cfg.RecordCacheSize > 0 {
		archive = repository.NewCachedTotenbildRepository(archive, cfg.RecordCacheSize, cfg.RecordCacheTTL)
	}
	pagesRepo := &repository.FallbackTotenbildRepository{
		Primary: archive,
		Demo:    repository.NewDemoTotenbildRepository(),
		Logger:  logger.Named("fallback"),
	}

	renderer, err := web.NewRenderer()
	if err != nil {
		return fmt.Errorf("failed to parse templates: %w", err)
	}

	urls := models.ImageURLBuilder{BaseURL: cfg.ImageBaseURL, PlaceholderURL: cfg.PlaceholderURL}
	sessions := services.NewSessionService(cfg.SessionSecret, cfg.SessionTTL, cfg.CookieSecure)
	auth := services.NewAuthService(repository.NewGormUserRepository(gormDB), logger)

	router := server.NewRouter(server.Handlers{
		API:    &handlers.TotenbildHandler{Repo: archive, URLs: urls, Logger: logger.Named("api")},
		Pages:  &handlers.PageHandler{Repo: pagesRepo, URLs: urls, Renderer: renderer, Logger: logger.Named("pages")},
		Auth:   &handlers.AuthHandler{Auth: auth, Sessions: sessions, Renderer: renderer, Logger: logger.Named("auth")},
		Health: &handlers.HealthHandler{DB: pinger, Logger: logger.Named("health")},
	}, server.Options{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		Sessions:       sessions,
		Logger:         logger.Named("http"),
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 70 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", zap.String("addr", srv.Addr), zap.Bool("database", cfg.DatabaseConfigured()))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
