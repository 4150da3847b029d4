package groupmanager

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sakaigo/site-group-manager/internal/sitegroup"
	"github.com/sakaigo/site-group-manager/internal/web/handler"
)

// CurrentSiteProvider resolves the site a request works on.
type CurrentSiteProvider interface {
	// CurrentSite returns sitegroup.ErrNotFound if the request names no existing site.
	CurrentSite(c *fiber.Ctx) (*sitegroup.Site, error)
}

// SiteProvider resolves the site id from the request and loads the site.
type SiteProvider struct {
	Sites         sitegroup.SiteLoader
	DefaultSiteID string
}

// CurrentSite implements CurrentSiteProvider.
func (p SiteProvider) CurrentSite(c *fiber.Ctx) (*sitegroup.Site, error) {
	id := SiteID(c, p.DefaultSiteID)
	if id == "" {
		return nil, sitegroup.ErrNotFound
	}

	return p.Sites.GetSite(c.UserContext(), id) //nolint:wrapcheck
}

// SiteID returns the site id named by the siteId query or form value, the
// site cookie, or fallback, in that order.
func SiteID(c *fiber.Ctx, fallback string) string {
	if id := c.Query(handler.QuerySiteID); id != "" {
		return id
	}

	if c.Method() == fiber.MethodPost {
		if id := c.FormValue(handler.QuerySiteID); id != "" {
			return id
		}
	}

	if id := c.Cookies(handler.CookieSite); id != "" {
		return id
	}

	return fallback
}

// RememberSite stores the site id in the site cookie.
func RememberSite(c *fiber.Ctx, siteID string) {
	c.Cookie(&fiber.Cookie{
		Name:     handler.CookieSite,
		Value:    siteID,
		Path:     handler.RootPath,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}
