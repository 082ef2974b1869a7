package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shopspring/decimal"

	"comanda/internal/config"
	"comanda/internal/gateway"
	"comanda/internal/handler"
	"comanda/internal/router"
	"comanda/internal/service"
	"comanda/internal/session"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Money fields serialise as JSON numbers, matching the gateway's shapes
	decimal.MarshalJSONWithoutQuotes = true

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting comanda terminal server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Open the local session cache
	sessions, err := session.Open(cfg.Session.Path, logger)
	if err != nil {
		return fmt.Errorf("failed to open session store: %w", err)
	}
	defer sessions.Close()

	// Initialize the gateway client
	gw := gateway.NewClient(cfg.Gateway.URL, cfg.Gateway.Timeout, logger)

	// Initialize services
	authService := service.NewAuthService(gw, sessions, logger)
	tabService := service.NewTabService(gw, logger)
	catalogService := service.NewCatalogService(gw, logger)
	tableService := service.NewTableService(gw, logger)
	statsService := service.NewStatsService(gw, logger)

	// Restore a persisted session so the terminal starts logged in
	if user, err := authService.Restore(ctx); err != nil {
		logger.Warn().Err(err).Msg("session restore failed, starting logged out")
	} else if user != nil {
		logger.Info().Str("user", user.Email).Msg("session restored")
	}

	// Warm the derived views; the terminal still starts if the gateway is
	// briefly unreachable, the first authenticated request reloads them
	if err := tabService.Refresh(ctx); err != nil {
		logger.Warn().Err(err).Msg("initial tab load failed")
	}
	if err := catalogService.Refresh(ctx); err != nil {
		logger.Warn().Err(err).Msg("initial catalogue load failed")
	}
	if err := tableService.Refresh(ctx); err != nil {
		logger.Warn().Err(err).Msg("initial floor view load failed")
	}

	// Initialize HTTP handlers
	handlers := router.Handlers{
		Auth:    handler.NewAuthHandler(authService, logger),
		Tab:     handler.NewTabHandler(tabService, logger),
		Order:   handler.NewOrderHandler(tabService, logger),
		Table:   handler.NewTableHandler(tableService, logger),
		Catalog: handler.NewCatalogHandler(catalogService, logger),
		Stats:   handler.NewStatsHandler(statsService, logger),
	}

	// Initialize router
	mux := router.New(handlers, cfg.Auth.APIKey, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		// Create a context with timeout for shutdown
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		// Attempt graceful shutdown
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			// Force close
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}
