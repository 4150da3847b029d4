// Package dsn builds Data Source Names for the supported database engines.
package dsn

import (
	"fmt"
	"net/url"

	"github.com/sakaigo/site-group-manager/internal/config"
)

// Create builds the Data Source Name for the configured engine.
func Create(cfg *config.Config) string {
	switch cfg.DB.GormEngine {
	case config.EnginePostgres:
		return Postgres(cfg.DB)
	case config.EngineSQLite:
		return cfg.DB.Name
	default:
		return MySQL(cfg.DB)
	}
}

// MySQL returns a go-sql-driver DSN, e.g. user:pw@tcp(host:3306)/db?parseTime=True.
func MySQL(db config.DB) string {
	out := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s",
		db.User,
		db.Password,
		db.Host,
		db.Port,
		db.Name,
	)

	if db.Extras != "" {
		out += "?" + db.Extras
	}

	return out
}

// Postgres returns a postgres connection URL. Extras are appended as query string.
func Postgres(db config.DB) string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(db.User, db.Password),
		Host:     fmt.Sprintf("%s:%d", db.Host, db.Port),
		Path:     "/" + db.Name,
		RawQuery: db.Extras,
	}

	return u.String()
}
