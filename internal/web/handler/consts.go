package handler

const (
	// BaseLayout is the default path for layout templates.
	BaseLayout = "layouts/base"

	// RootPath is the root path the route group.
	RootPath = "/"

	// SitePickerPath lists the sites; pages without a current site redirect here.
	SitePickerPath = RootPath + "sites"

	// QuerySiteID is the query and form field naming the current site.
	QuerySiteID = "siteId"

	// CookieSite remembers the last picked site.
	CookieSite = "site"

	// ErrNilDepsFatalLogMsg is used if app, cfg or a required dependency is nil.
	ErrNilDepsFatalLogMsg = "app, cfg or a handler dependency is nil"
)
