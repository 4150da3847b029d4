// Package groupmanager provides the group list and group removal pages of a site.
package groupmanager

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/sakaigo/site-group-manager/internal/acadterm"
	"github.com/sakaigo/site-group-manager/internal/config"
	"github.com/sakaigo/site-group-manager/internal/event"
	accesslog "github.com/sakaigo/site-group-manager/internal/logger/adapter/fiber"
	"github.com/sakaigo/site-group-manager/internal/metrics"
	"github.com/sakaigo/site-group-manager/internal/sitegroup"
	"github.com/sakaigo/site-group-manager/internal/web/handler"
	"github.com/sakaigo/site-group-manager/internal/web/navigation"
	"github.com/sakaigo/site-group-manager/internal/web/session"
)

const (
	// Path is the group list of the current site.
	Path = handler.RootPath + "index"

	// RouteRemove deletes the selected groups.
	RouteRemove = handler.RootPath + "removeGroups"

	// TemplateName is the name of the group list template.
	TemplateName = "groupmanager/index"

	// FormDeletedGroupList is the repeated form field holding the group ids to delete.
	FormDeletedGroupList = "deletedGroupList"

	// EventGroupDeleted is posted once per deleted group.
	EventGroupDeleted = "sitegroup.del"

	// TitleIndex is the page title of the group list.
	TitleIndex = "Manage Groups"

	// BreadcrumbSitesLbl is the label for the site picker breadcrumb.
	BreadcrumbSitesLbl = "Sites"
	// BreadcrumbGroupsLbl is the label for the group list breadcrumb.
	BreadcrumbGroupsLbl = "Groups"

	// ErrFailedLoadSite is shown when the site could not be loaded.
	ErrFailedLoadSite = "Failed to load site"
	// ErrFailedRemoveGroups is shown when a removal batch was aborted.
	ErrFailedRemoveGroups = "Failed to remove groups"
	// ErrValidationPrefix prefixes validation error messages shown to the user.
	ErrValidationPrefix = "Validation failed: "

	msgGroupLocked   = "The group %q is locked and cannot be deleted."
	msgGroupsRemoved = "%d group(s) removed."
	msgBatchTooLarge = "At most %d groups can be removed at once."
)

// Service serves the group list and the removal form.
type Service struct {
	handler.Service
	cfg       *config.Config
	sites     CurrentSiteProvider
	users     sitegroup.UserLookup
	remover   *sitegroup.Remover
	sessions  *session.Store
	events    event.Poster
	validator *validator.Validate
}

// Handler is the exported instance.
var Handler = Service{} //nolint:gochecknoglobals

// Init registers routes.
func (s *Service) Init(app *fiber.App, deps *handler.Deps) error {
	if app == nil || !deps.Valid() {
		log.Fatal().Msg(handler.ErrNilDepsFatalLogMsg)
		return nil
	}

	s.cfg = deps.Cfg
	s.sites = SiteProvider{Sites: deps.Store, DefaultSiteID: deps.Cfg.GroupManager.DefaultSiteID}
	s.users = deps.Store
	s.remover = sitegroup.NewRemover(deps.Store, deps.Store, deps.Store)
	s.sessions = deps.Sessions
	s.events = deps.Events
	s.validator = validator.New()

	app.Get(handler.RootPath, func(c *fiber.Ctx) error {
		return c.Redirect(Path)
	})
	app.Get(Path, s.Index)
	app.Post(RouteRemove, s.RemoveGroups)

	return nil
}

// WithSiteProvider replaces the site provider, e.g. for an embedding host.
func (s *Service) WithSiteProvider(p CurrentSiteProvider) *Service {
	s.sites = p
	return s
}

// Index renders the groups of the current site.
func (s *Service) Index(c *fiber.Ctx) error {
	log.Debug().Msg("show index")

	site, err := s.sites.CurrentSite(c)

	switch {
	case errors.Is(err, sitegroup.ErrNotFound):
		return c.Redirect(handler.SitePickerPath)
	case err != nil:
		log.Error().Err(err).Msg("failed to load current site")

		return c.Status(fiber.StatusInternalServerError).Render(TemplateName, fiber.Map{
			"Navigation": navigation.NewContext(TitleIndex, navigation.SectionGroups),
			"Error":      ErrFailedLoadSite,
		}, handler.BaseLayout)
	}

	c.Locals(accesslog.LocalsSiteID, site.ID)
	RememberSite(c, site.ID)

	view := sitegroup.BuildView(c.UserContext(), site, s.users)
	metrics.Views.Inc()

	flashes, err := s.sessions.PopFlashes(c)
	if err != nil {
		log.Warn().Err(err).Msg("failed to read flash messages")
	}

	term, _ := acadterm.FromProperties(site.Properties)

	nav := navigation.NewContext(TitleIndex, navigation.SectionGroups).
		WithSite(site.ID, site.Title, term.Title).
		AddBreadcrumb(BreadcrumbSitesLbl, handler.SitePickerPath, false).
		AddBreadcrumb(site.Title, indexURL(site.ID), false).
		AddBreadcrumb(BreadcrumbGroupsLbl, indexURL(site.ID), true)

	return c.Render(TemplateName, fiber.Map{
		"Navigation":   nav,
		"Site":         site,
		"Rows":         rows(view),
		"LockedCount":  len(view.LockedGroups),
		"Flashes":      flashes,
		"FormField":    FormDeletedGroupList,
		"SiteIDField":  handler.QuerySiteID,
		"RemoveAction": RouteRemove,
	}, handler.BaseLayout)
}

// RemoveGroups deletes the posted groups from the current site and
// redirects back to the group list.
func (s *Service) RemoveGroups(c *fiber.Ctx) error {
	input := removeInput{
		SiteID:   c.FormValue(handler.QuerySiteID),
		GroupIDs: formValues(c, FormDeletedGroupList),
	}

	log.Debug().Strs("groups", input.GroupIDs).Msg("removeGroups called")

	site, err := s.sites.CurrentSite(c)

	switch {
	case errors.Is(err, sitegroup.ErrNotFound):
		return c.Redirect(handler.SitePickerPath)
	case err != nil:
		log.Error().Err(err).Msg("failed to load current site")

		return c.Status(fiber.StatusInternalServerError).Render(TemplateName, fiber.Map{
			"Navigation": navigation.NewContext(TitleIndex, navigation.SectionGroups),
			"Error":      ErrFailedLoadSite,
		}, handler.BaseLayout)
	}

	c.Locals(accesslog.LocalsSiteID, site.ID)

	if len(input.GroupIDs) == 0 {
		return c.Redirect(indexURL(site.ID), fiber.StatusSeeOther)
	}

	if err = s.validator.Struct(input); err != nil {
		log.Warn().Err(err).Msg("validation failed for removeGroups")

		s.flash(c, session.Flash{Kind: session.KindError, Message: ErrValidationPrefix + err.Error()})

		return c.Redirect(indexURL(site.ID), fiber.StatusSeeOther)
	}

	if limit := s.cfg.GroupManager.MaxRemoveBatch; limit > 0 && len(input.GroupIDs) > limit {
		s.flash(c, session.Flash{Kind: session.KindError, Message: fmt.Sprintf(msgBatchTooLarge, limit)})

		return c.Redirect(indexURL(site.ID), fiber.StatusSeeOther)
	}

	res, err := s.remover.RemoveGroups(c.UserContext(), site, input.GroupIDs)
	if err != nil {
		log.Error().Err(err).Str("site", site.ID).Msg("failed to remove groups")

		return c.Status(fiber.StatusInternalServerError).Render(TemplateName, fiber.Map{
			"Navigation": navigation.NewContext(TitleIndex, navigation.SectionGroups),
			"Site":       site,
			"Error":      ErrFailedRemoveGroups,
		}, handler.BaseLayout)
	}

	metrics.ObserveRemoval(res)

	events := make([]event.Event, 0, len(res.Deleted))
	for _, id := range res.Deleted {
		e := event.New(EventGroupDeleted, GroupReference(site.ID, id), true)
		e.SiteID = site.ID
		events = append(events, e)
	}

	event.PostAll(c.UserContext(), s.events, events...)

	s.flash(c, resultFlashes(site, res)...)

	return c.Redirect(indexURL(site.ID), fiber.StatusSeeOther)
}

// GroupReference is the resource reference of a group.
func GroupReference(siteID, groupID string) string {
	return "/site/" + siteID + "/group/" + groupID
}

func resultFlashes(site *sitegroup.Site, res sitegroup.RemoveResult) []session.Flash {
	out := make([]session.Flash, 0, len(res.Locked)+1)

	if len(res.Deleted) > 0 {
		out = append(out, session.Flash{Kind: session.KindSuccess, Message: fmt.Sprintf(msgGroupsRemoved, len(res.Deleted))})
	}

	for _, id := range res.Locked {
		title := id
		if g, ok := site.Group(id); ok && g.Title != "" {
			title = g.Title
		}

		out = append(out, session.Flash{Kind: session.KindWarning, Message: fmt.Sprintf(msgGroupLocked, title)})
	}

	return out
}

func (s *Service) flash(c *fiber.Ctx, flashes ...session.Flash) {
	if err := s.sessions.AddFlash(c, flashes...); err != nil {
		log.Warn().Err(err).Msg("failed to store flash messages")
	}
}

// formValues returns all values of a repeated form field in posted order.
func formValues(c *fiber.Ctx, key string) []string {
	raw := c.Request().PostArgs().PeekMulti(key)
	if len(raw) == 0 {
		if form, err := c.MultipartForm(); err == nil {
			return append([]string(nil), form.Value[key]...)
		}

		return nil
	}

	out := make([]string, len(raw))
	for i, b := range raw {
		out[i] = string(b)
	}

	return out
}

func indexURL(siteID string) string {
	return Path + "?" + handler.QuerySiteID + "=" + url.QueryEscape(siteID)
}
