package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/wgomg/nucleo/internal/api"
	"github.com/wgomg/nucleo/internal/config"
	"github.com/wgomg/nucleo/internal/nucleotide"
	"github.com/wgomg/nucleo/internal/utils"
)

func serveCmd() *cobra.Command {
	var (
		envFile string
		port    int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Long: `Start the HTTP server.

Configuration is read from the .env file (or --env-file) and the environment:
  APP_ENV                       development or production (default: development)
  APP_LOG_LEVEL                 debug, info, error
  APP_SERVER_PORT               Port to listen on (default: 8080)
  APP_RAW_BODY_LOG              Log raw request bodies at debug level
  APP_HTTP_TIMEOUT_SECONDS      Read/write timeout (default: 30)
  APP_SHUTDOWN_TIMEOUT_SECONDS  Graceful shutdown limit (default: 10)
  COUNTER_DEFAULT_SEQUENCE      Sequence shown on the form page
  COUNTER_MAX_SEQUENCE_BYTES    Request body limit (default: 1048576)
  CACHE_SIZE                    Cached analyses, 0 disables (default: 128)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(envFile)
			if err != nil {
				return err
			}
			if port > 0 {
				cfg.App.ServerPort = fmt.Sprint(port)
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return runServe(ctx, cfg)
		},
	}

	cmd.Flags().StringVar(&envFile, "env-file", "", "Path to .env file (default: .env in current directory)")
	cmd.Flags().IntVar(&port, "port", 0, "Port to listen on (overrides APP_SERVER_PORT)")

	return cmd
}

func runServe(ctx context.Context, cfg *config.Config) error {
	logger := utils.NewLogger(cfg.App.LogLevel, cfg.App.RawBodyLog)
	logger.Info(nil, "Starting DNA Nucleotide Counter")
	logger.Info(nil, "Environment: %s", cfg.App.Env)
	logger.Info(nil, "Log level: %s", cfg.App.LogLevel)
	logger.Info(nil, "Result cache size: %d", cfg.Cache.Size)

	handler := api.NewHandler(logger, utils.NewResultCache[nucleotide.Analysis](cfg.Cache.Size), cfg)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, "DNA Nucleotide Counter is running\n")
	})
	api.RegisterRoutes(mux, handler)

	timeout := time.Duration(cfg.App.HttpTimeoutSeconds) * time.Second
	server := &http.Server{
		Addr:              "0.0.0.0:" + cfg.App.ServerPort,
		Handler:           api.RequestID(logger, mux),
		ReadHeaderTimeout: timeout,
		ReadTimeout:       timeout,
		WriteTimeout:      timeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info(nil, "Starting server on port %s", cfg.App.ServerPort)
		logger.Info(nil, "Endpoints:")
		logger.Info(nil, "  GET  /health")
		logger.Info(nil, "  GET  /")
		logger.Info(nil, "  POST /")
		logger.Info(nil, "  POST /api/v1/count")
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info(nil, "Shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(),
			time.Duration(cfg.App.ShutdownTimeoutSeconds)*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
