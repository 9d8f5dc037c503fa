package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/npohome/internal/db"
	"github.com/npohome/internal/handler"
	"github.com/npohome/internal/metrics"
	"github.com/npohome/internal/router"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
)

var listenAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Start the home page HTTP server.

Environment variables:
  PORT             - listen port (default: 8080)
  LISTEN_ADDR      - full listen address (default: :$PORT)
  DATABASE_PATH    - sqlite database path (default: homepage.db)
  GIN_MODE         - gin mode (default: release)
  LOG_LEVEL        - debug, info, warn, error (default: info)
  LOG_FORMAT       - json or console (default: json)
  METRICS_ENABLED  - expose /metrics (default: true)

Examples:
  homepage serve
  homepage serve --addr 127.0.0.1:9000 --log-format console`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&listenAddr, "addr", "", "listen address (overrides LISTEN_ADDR)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	if listenAddr != "" {
		cfg.ListenAddr = listenAddr
	}
	logger := newLogger(cfg)
	gin.SetMode(cfg.GinMode)

	// 初始化数据库
	if err := db.Init(cfg.DatabasePath); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	collector := metrics.New(reg)

	opts := router.Options{Logger: logger, Metrics: collector}
	if cfg.MetricsEnabled {
		opts.Gatherer = reg
	}
	api := handler.NewAPI(db.DB, logger, collector)

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           router.SetupRouter(api, opts),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", cfg.ListenAddr).Str("database", cfg.DatabasePath).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to run server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
