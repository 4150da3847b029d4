// Package sites provides the site picker.
package sites

import (
	"net/url"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/sakaigo/site-group-manager/internal/acadterm"
	"github.com/sakaigo/site-group-manager/internal/config"
	"github.com/sakaigo/site-group-manager/internal/web/handler"
	"github.com/sakaigo/site-group-manager/internal/web/handler/groupmanager"
	"github.com/sakaigo/site-group-manager/internal/web/navigation"
)

const (
	// Path is the site list.
	Path = handler.SitePickerPath

	// TemplateList is the template for listing sites.
	TemplateList = "sites/list"

	// DefaultPageSize for pagination.
	DefaultPageSize = 25
	// MaxPageSize clamps the page size upper bound.
	MaxPageSize = 100

	// TitleSites is the page title of the site list.
	TitleSites = "Sites"

	// QueryPage is the query parameter name for the current page index.
	QueryPage = "page"
	// QueryPageSize is the query parameter name for the page size.
	QueryPageSize = "pageSize"
	// QuerySearch is the query parameter name for the search term.
	QuerySearch = "search"

	// ErrFailedLoadSites indicates an unexpected error occurred while loading sites.
	ErrFailedLoadSites = "Failed to load sites"
	// ErrValidationPrefix prefixes validation error messages shown to the user.
	ErrValidationPrefix = "Validation failed: "
)

type queryInput struct {
	Search   string `validate:"max=100"`
	Page     int    `validate:"min=1"`
	PageSize int    `validate:"min=1,max=100"`
}

// Entry is one line of the site list.
type Entry struct {
	ID         string
	Title      string
	Term       string
	GroupCount int64
	URL        string
}

// Service lists sites.
type Service struct {
	handler.Service
	cfg       *config.Config
	store     handler.SiteStore
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
	s.store = deps.Store
	s.validator = validator.New()

	app.Get(Path, s.List)

	return nil
}

// List shows sites with pagination and search.
func (s *Service) List(c *fiber.Ctx) error {
	nav := navigation.NewContext(TitleSites, navigation.SectionSites).
		AddBreadcrumb(TitleSites, Path, true)

	defaultPageSize := s.cfg.GroupManager.SitesPageSize
	if defaultPageSize < 1 || defaultPageSize > MaxPageSize {
		defaultPageSize = DefaultPageSize
	}

	input := queryInput{
		Search:   c.Query(QuerySearch, ""),
		Page:     c.QueryInt(QueryPage, 1),
		PageSize: c.QueryInt(QueryPageSize, defaultPageSize),
	}

	if err := s.validator.Struct(input); err != nil {
		log.Warn().Err(err).Msg("validation failed for site list")

		return c.Status(fiber.StatusBadRequest).Render(TemplateList, fiber.Map{
			"Navigation": nav,
			"Error":      ErrValidationPrefix + err.Error(),
			"Search":     input.Search,
		}, handler.BaseLayout)
	}

	summaries, totalCount, err := s.store.ListSites(c.UserContext(), input.Search, input.Page, input.PageSize)
	if err != nil {
		log.Error().Err(err).Msg("list sites failed")

		return c.Status(fiber.StatusInternalServerError).Render(TemplateList, fiber.Map{
			"Navigation": nav,
			"Error":      ErrFailedLoadSites,
		}, handler.BaseLayout)
	}

	totalPages := int((totalCount + int64(input.PageSize) - 1) / int64(input.PageSize))
	if totalPages < 1 {
		totalPages = 1
	}

	entries := make([]Entry, 0, len(summaries))

	for _, sum := range summaries {
		term, _ := acadterm.FromProperties(sum.Site.Properties)

		entries = append(entries, Entry{
			ID:         sum.Site.ID,
			Title:      sum.Site.Title,
			Term:       term.Title,
			GroupCount: sum.GroupCount,
			URL:        groupmanager.Path + "?" + handler.QuerySiteID + "=" + url.QueryEscape(sum.Site.ID),
		})
	}

	return c.Render(TemplateList, fiber.Map{
		"Navigation": nav,
		"Sites":      entries,
		"Search":     input.Search,
		"Page":       input.Page,
		"PageSize":   input.PageSize,
		"TotalItems": totalCount,
		"TotalPages": totalPages,
		"HasPrev":    input.Page > 1,
		"HasNext":    input.Page < totalPages,
		"PrevPage":   input.Page - 1,
		"NextPage":   input.Page + 1,
	}, handler.BaseLayout)
}
