package handler

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/sakaigo/site-group-manager/internal/config"
	"github.com/sakaigo/site-group-manager/internal/db/controller/site"
	"github.com/sakaigo/site-group-manager/internal/event"
	"github.com/sakaigo/site-group-manager/internal/sitegroup"
	"github.com/sakaigo/site-group-manager/internal/web/session"
)

// SiteStore is everything the handlers need from the persistence layer.
type SiteStore interface {
	sitegroup.SiteLoader
	sitegroup.UserLookup
	sitegroup.GroupLookup
	sitegroup.SiteMutator
	sitegroup.SitePersister

	ListSites(ctx context.Context, search string, page, pageSize int) ([]site.Summary, int64, error)
}

// Deps are the shared dependencies of the web handlers.
type Deps struct {
	Cfg      *config.Config
	Store    SiteStore
	Sessions *session.Store
	Events   event.Poster
}

// Valid reports whether all required dependencies are set.
func (d *Deps) Valid() bool {
	return d != nil && d.Cfg != nil && d.Store != nil && d.Sessions != nil
}

// Service is the interface for a web handler service.
type Service interface {
	Init(app *fiber.App, deps *Deps) error
}
