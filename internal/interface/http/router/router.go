package router

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"go.uber.org/zap"

	"github.com/wichananm65/citation-network-ui/internal/infrastructure/metrics"
	"github.com/wichananm65/citation-network-ui/internal/uiconfig"
)

// Options carries the dependencies wired into the app.
type Options struct {
	ConfigHandler *uiconfig.Handler
	Metrics       *metrics.Metrics
	Logger        *zap.Logger
	CORSOrigins   string
	// StaticDir is the built UI directory; empty disables static serving.
	StaticDir string
}

// New builds the fiber app serving the runtime config, metrics and the UI.
func New(opts Options) *fiber.App {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	setupCORS(app, opts.CORSOrigins)
	app.Use(requestLogger(log))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	if opts.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(opts.Metrics.Handler()))
	}

	if opts.ConfigHandler != nil {
		opts.ConfigHandler.RegisterPublicRoutes(app)
	}

	// registered last so the UI cannot shadow /config.js
	if opts.StaticDir != "" {
		app.Static("/", opts.StaticDir)
	}

	return app
}

func setupCORS(app *fiber.App, origins string) {
	if origins == "" {
		origins = "*"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowMethods: "GET,HEAD,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))
}

func requestLogger(log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		log.Info("request",
			zap.String("method", c.Method()),
			zap.String("url", c.OriginalURL()),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("latency", time.Since(start)),
		)
		return err
	}
}
