// Package navigation holds the page title, active section and breadcrumbs of a page.
package navigation

// Sections of the top navigation.
const (
	SectionGroups = "groups"
	SectionSites  = "sites"
)

// BreadcrumbItem is a single breadcrumb link.
type BreadcrumbItem struct {
	Title  string
	URL    string
	Active bool
}

// SiteContext describes the site a page works on.
type SiteContext struct {
	ID    string
	Title string
	Term  string
}

// Context is the navigation context of a page.
type Context struct {
	ActiveSection string
	PageTitle     string
	Breadcrumbs   []BreadcrumbItem
	Site          *SiteContext
}

// NewContext creates a navigation context for section.
func NewContext(pageTitle, activeSection string) *Context {
	return &Context{
		PageTitle:     pageTitle,
		ActiveSection: activeSection,
		Breadcrumbs:   make([]BreadcrumbItem, 0),
	}
}

// AddBreadcrumb appends a breadcrumb. Adding an active item deactivates the previous ones.
func (c *Context) AddBreadcrumb(title, url string, active bool) *Context {
	if active {
		for i := range c.Breadcrumbs {
			c.Breadcrumbs[i].Active = false
		}
	}

	c.Breadcrumbs = append(c.Breadcrumbs, BreadcrumbItem{
		Title:  title,
		URL:    url,
		Active: active,
	})

	return c
}

// WithSite sets the current site shown in the header.
func (c *Context) WithSite(id, title, term string) *Context {
	c.Site = &SiteContext{ID: id, Title: title, Term: term}

	return c
}

// IsSectionActive checks if the given section is active.
func (c *Context) IsSectionActive(section string) bool {
	return c.ActiveSection == section
}
