package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mama165/sdk-go/logs"

	"healthassist/internal/api"
	"healthassist/internal/chat"
	"healthassist/internal/config"
	"healthassist/internal/directory"
	"healthassist/internal/tools"
	"healthassist/internal/tools/nearby"
	"healthassist/internal/triage"
)

const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Server terminated with error: %v\n", err)
	}
	os.Exit(code)
}

func run() (int, error) {
	// Load environment variables from .env file
	envErr := config.LoadEnv()

	cfg, err := config.Load()
	if err != nil {
		return exitConfig, err
	}

	log := logs.GetLoggerFromString(cfg.LogLevel)
	if envErr != nil && !errors.Is(envErr, config.ErrEnvFileNotFound) {
		log.Warn("Error loading .env file", "error", envErr)
	}

	log.Info("Starting health assistant API server...")

	// Set up a context that will be canceled on SIGINT or SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	components, err := setupComponents(log, cfg)
	if err != nil {
		return exitConfig, fmt.Errorf("failed to set up components: %w", err)
	}

	server := &http.Server{
		Addr:         cfg.Address(),
		Handler:      components.mux,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: cfg.APITimeout + cfg.ChatTypingDelay + 5*time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("Server listening", "address", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			return exitRuntime, fmt.Errorf("server error: %w", err)
		}
	case <-ctx.Done():
	}

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return exitRuntime, fmt.Errorf("server shutdown failed: %w", err)
	}

	log.Info("Server gracefully stopped")
	return exitOK, nil
}

// Components holds all the application components
type Components struct {
	mux          *http.ServeMux
	toolRegistry *tools.DefaultToolRegistry
	handler      *api.Handler
}

// setupComponents initializes all application components
func setupComponents(log *slog.Logger, cfg config.Config) (*Components, error) {
	dir := directory.Default()

	toolRegistry := tools.NewToolRegistry()
	for _, tool := range []tools.Tool{
		nearby.NewPharmacyFinder(dir),
		nearby.NewDoctorFinder(dir),
		nearby.NewHospitalFinder(dir),
	} {
		if err := toolRegistry.Register(tool); err != nil {
			return nil, fmt.Errorf("failed to register %s: %w", tool.Name(), err)
		}
	}

	classifier, err := triage.NewRuleBasedClassifier(triage.ClassifierConfig{})
	if err != nil {
		return nil, fmt.Errorf("failed to create classifier: %w", err)
	}

	responder, err := chat.NewRuleBasedResponder(chat.ResponderConfig{})
	if err != nil {
		return nil, fmt.Errorf("failed to create responder: %w", err)
	}

	coordinator := api.NewSymptomCoordinator(
		log,
		classifier,
		toolRegistry,
		&api.DefaultSummaryGenerator{},
		api.CoordinatorConfig{DefaultTimeout: cfg.APITimeout},
	)

	handler := api.NewHandler(log, coordinator, responder, dir, api.HandlerConfig{
		TypingDelay:    cfg.ChatTypingDelay,
		MaxBodySize:    cfg.MaxBodySize,
		RequestTimeout: cfg.APITimeout,
	})

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)

	log.Debug("Components ready", "tools", len(toolRegistry.GetAll()))

	return &Components{
		mux:          mux,
		toolRegistry: toolRegistry,
		handler:      handler,
	}, nil
}
