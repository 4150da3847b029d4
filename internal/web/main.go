// Package web serves the group manager pages.
package web

import (
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/sakaigo/site-group-manager/internal/config"
	accesslog "github.com/sakaigo/site-group-manager/internal/logger/adapter/fiber"
	"github.com/sakaigo/site-group-manager/internal/web/handler"
	"github.com/sakaigo/site-group-manager/internal/web/handler/groupmanager"
	"github.com/sakaigo/site-group-manager/internal/web/handler/sites"
)

const (
	// CheckAlivePath answers load balancer health checks.
	CheckAlivePath = handler.RootPath + "checkalive"
	// MetricsPath exposes prometheus metrics.
	MetricsPath = handler.RootPath + "metrics"
)

// Service represents the web service.
type Service struct {
	App          *fiber.App
	cfg          *config.Config
	fastShutDown bool
	alive        atomic.Bool
}

// Start starts the web service on the given address and blocks until it stops.
func (s *Service) Start(addr string) error {
	var doneFiber = make(chan error, 1)

	go func() {
		if err := s.App.Listen(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			doneFiber <- err
			return
		}

		doneFiber <- nil
	}()

	return <-doneFiber
}

// WaitShutdown waits for SIGINT or SIGTERM and shuts the server down gracefully.
func (s *Service) WaitShutdown() {
	irqSig := make(chan os.Signal, 1)
	signal.Notify(irqSig, syscall.SIGINT, syscall.SIGTERM)

	sig := <-irqSig
	log.Info().Msgf("shutdown request (signal: %v)", sig)

	s.Shutdown()
}

// Shutdown fails check alive for ShutDownTime seconds and then stops fiber.
func (s *Service) Shutdown() {
	// let the load balancer take this instance out of rotation first
	if !s.fastShutDown {
		log.Info().Msgf(
			"graceful shutdown: return 503 while %d seconds to let LB to remove this pod from active targets",
			s.cfg.Webserver.ShutDownTime,
		)

		s.alive.Store(false)
		time.Sleep(time.Duration(s.cfg.Webserver.ShutDownTime) * time.Second)
	}

	log.Info().Msg("stopping http server ...")

	if err := s.App.Shutdown(); err != nil {
		log.Error().Err(err).Msg("")
	}

	log.Info().Msg("http server was stopped ... good bye...")
}

// Alive reports whether check alive answers 200.
func (s *Service) Alive() bool {
	return s.alive.Load()
}

// New creates the web service with the given configuration and dependencies.
func New(cfg *config.Config, deps *handler.Deps) *Service {
	if cfg == nil {
		panic("config cannot be nil")
	}

	if !deps.Valid() {
		panic(handler.ErrNilDepsFatalLogMsg)
	}

	app := fiber.New(
		fiber.Config{
			ReadBufferSize: 8192,
			AppName:        cfg.Title,
			CaseSensitive:  true,
			Prefork:        false,
			Immutable:      true,
			Views:          newTemplateEngine(cfg),
		},
	)

	service := &Service{
		cfg:          cfg,
		App:          app,
		fastShutDown: cfg.DevMode || cfg.Webserver.ShutDownTime <= 0,
	}
	service.alive.Store(true)

	app.Use(accesslog.New(accesslog.Config{
		Config:        cfg.Log,
		CheckAliveURI: CheckAlivePath,
	}))

	if !cfg.Webserver.DisableRecover {
		app.Use(recover.New(recover.Config{EnableStackTrace: cfg.DevMode}))
	}

	app.Use("/static",
		filesystem.New(
			filesystem.Config{
				Root:       http.FS(embeddedStaticFiles),
				PathPrefix: "static",
				Browse:     cfg.Webserver.BrowseStatic,
			},
		),
	)

	app.Get(CheckAlivePath, service.checkAlive)
	app.Get(MetricsPath, adaptor.HTTPHandler(promhttp.Handler()))

	for _, h := range []handler.Service{&groupmanager.Handler, &sites.Handler} {
		if err := h.Init(app, deps); err != nil {
			log.Fatal().Err(err).Msg("failed to init handler")
		}
	}

	return service
}

func (s *Service) checkAlive(c *fiber.Ctx) error {
	if !s.alive.Load() {
		return c.Status(fiber.StatusServiceUnavailable).SendString("shutting down")
	}

	return c.SendString("OK")
}

func newTemplateEngine(cfg *config.Config) *html.Engine {
	engine := html.NewFileSystem(http.FS(templateEmbedFS{embeddedTemplates}), ".gohtml")

	// in dev mode, use local filesystem for templates
	if cfg.DevMode {
		engine = html.New("./internal/web/templates", ".gohtml")
		engine.Reload(true)

		log.Warn().Msg("dev mode enabled: using local filesystem for templates")
	}

	engine.AddFunc("deref", func(p *string) string {
		if p == nil {
			return ""
		}

		return *p
	})
	engine.AddFunc("add", func(a, b int) int {
		return a + b
	})
	engine.AddFunc("sub", func(a, b int) int {
		return a - b
	})

	return engine
}
