package main

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/wichananm65/citation-network-ui/internal/config"
	serverconfig "github.com/wichananm65/citation-network-ui/internal/infrastructure/config"
	"github.com/wichananm65/citation-network-ui/internal/infrastructure/logger"
	"github.com/wichananm65/citation-network-ui/internal/infrastructure/metrics"
	"github.com/wichananm65/citation-network-ui/internal/interface/http/router"
	"github.com/wichananm65/citation-network-ui/internal/uiconfig"
)

const shutdownTimeout = 5 * time.Second

var serveCmd = &cli.Command{
	Name:  "serve",
	Usage: "Start the config server",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "listen",
			Usage:   "Address to listen on (overrides UI_ADDR)",
			Aliases: []string{"l"},
		},
		&cli.StringFlag{
			Name:  "static",
			Usage: "Built UI directory to serve (overrides UI_STATIC_DIR)",
		},
	},
	Action: func(ctx context.Context, cmd *cli.Command) error {
		settings, err := serverconfig.Load()
		if err != nil {
			return cli.Exit(fmt.Errorf("failed to load server settings: %w", err), 1)
		}
		if v := cmd.String("listen"); v != "" {
			settings.Addr = v
		}
		if v := cmd.String("static"); v != "" {
			settings.StaticDir = v
		}

		if err := serve(ctx, config.Load(), settings); err != nil {
			return cli.Exit(err, 1)
		}
		return nil
	},
}

// serve wires dependencies and runs the HTTP server until ctx is cancelled
// or a termination signal arrives.
func serve(ctx context.Context, cfg config.Config, settings serverconfig.Server) error {
	origins, err := serverconfig.ParseOrigins(settings.CORSOrigins)
	if err != nil {
		return fmt.Errorf("failed to load server settings: %w", err)
	}

	log, err := logger.New(logger.Options{
		Level:       settings.LogLevel,
		Production:  cfg.IsProduction(),
		Environment: cfg.Environment,
	})
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	m := metrics.New()
	m.RecordConfig(cfg.Environment, cfg.BackendURL)

	app := router.New(router.Options{
		ConfigHandler: uiconfig.NewHandler(uiconfig.NewService(cfg), m, log),
		Metrics:       m,
		Logger:        log,
		CORSOrigins:   origins,
		StaticDir:     settings.StaticDir,
	})

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server",
			zap.String("addr", settings.Addr),
			zap.String("backend_url", cfg.BackendURL),
			zap.String("static_dir", settings.StaticDir),
		)
		errCh <- app.Listen(settings.Addr)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server stopped: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
