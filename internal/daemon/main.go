// Package daemon wires the database, session store, event poster and web service.
package daemon

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	sessionmysql "github.com/gofiber/storage/mysql/v2"
	sessionpostgres "github.com/gofiber/storage/postgres/v3"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/sakaigo/site-group-manager/internal/config"
	"github.com/sakaigo/site-group-manager/internal/db"
	"github.com/sakaigo/site-group-manager/internal/db/controller/site"
	"github.com/sakaigo/site-group-manager/internal/db/dsn"
	"github.com/sakaigo/site-group-manager/internal/event"
	"github.com/sakaigo/site-group-manager/internal/web"
	"github.com/sakaigo/site-group-manager/internal/web/handler"
	"github.com/sakaigo/site-group-manager/internal/web/session"
)

const sessionTable = "sessions"

// Daemon represents the main application daemon.
type Daemon struct {
	cfg        *config.Config
	webService *web.Service
	poster     event.Poster
}

// Start serves http until SIGINT or SIGTERM.
func (d *Daemon) Start() error {
	errCh := make(chan error, 1)

	go func() {
		errCh <- d.webService.Start(fmt.Sprintf(":%d", d.cfg.Webserver.Port))
	}()

	go d.webService.WaitShutdown()

	err := <-errCh

	if cerr := d.poster.Close(); cerr != nil {
		log.Error().Err(cerr).Msg("failed to close event poster")
	}

	return err
}

// New creates a new Daemon instance with the provided configuration.
func New(cfg *config.Config) (*Daemon, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}

	gdb, err := db.Open(cfg)
	if err != nil {
		return nil, err
	}

	if cfg.DevMode {
		if err = seed(gdb); err != nil {
			return nil, err
		}
	}

	poster, err := event.Open(cfg.Events.Enabled, event.NATSConfig{
		Servers:       cfg.Events.Servers,
		Name:          cfg.Events.Name,
		SubjectPrefix: cfg.Events.SubjectPrefix,
		Timeout:       cfg.Events.Timeout,
	})
	if err != nil {
		return nil, errors.Wrap(err, "open event poster")
	}

	deps := &handler.Deps{
		Cfg:      cfg,
		Store:    site.New(gdb),
		Sessions: session.New(SessionStorage(cfg), cfg.Webserver.Session.ExpiryTime),
		Events:   poster,
	}

	return &Daemon{
		cfg:        cfg,
		webService: web.New(cfg, deps),
		poster:     poster,
	}, nil
}

// SessionStorage stores sessions next to the data for mysql and postgres.
// sqlite keeps them in memory.
func SessionStorage(cfg *config.Config) fiber.Storage {
	switch cfg.DB.GormEngine {
	case config.EngineMySQL, "":
		return sessionmysql.New(sessionmysql.Config{
			ConnectionURI: dsn.MySQL(cfg.DB),
			Table:         sessionTable,
		})
	case config.EnginePostgres:
		return sessionpostgres.New(sessionpostgres.Config{
			ConnectionURI: dsn.Postgres(cfg.DB),
			Table:         sessionTable,
		})
	default:
		log.Warn().Str("engine", cfg.DB.GormEngine).Msg("sessions are kept in memory")

		return nil
	}
}
