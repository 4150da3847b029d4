package config

import (
	"time"

	"github.com/sakaigo/site-group-manager/internal/logger"
)

// Session settings.
type Session struct {
	ExpiryTime time.Duration
}

// Config overall data structure.
type Config struct {
	DevMode      bool // enable dev mode for development
	DB           DB
	Log          logger.Log
	Title        string
	Webserver    Webserver
	GroupManager GroupManager
	Events       Events
}

// Webserver implement webserver settings.
type Webserver struct {
	BrowseStatic   bool    // enable static file browsing (for development purposes only)
	DisableRecover bool    // disable recover middleware
	Domain         string  // domain name for the webserver
	Port           int     // listening port for the webserver
	ShutDownTime   int     // wait time for shutdown
	URL            string  // base url for the webserver
	Session        Session // session settings
}

// GroupManager holds the group manager tool settings.
type GroupManager struct {
	DefaultSiteID  string // site shown when the request names none
	MaxRemoveBatch int    // upper bound of group ids per removeGroups request
	SitesPageSize  int    // page size of the site picker
}

// Events configures where domain events are posted.
type Events struct {
	Enabled       bool     // false logs events only
	Servers       []string // nats server urls
	Name          string   // nats client name
	SubjectPrefix string
	Timeout       time.Duration
}
