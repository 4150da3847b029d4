// Package db opens the gorm connection for the configured engine.
package db

import (
	"github.com/glebarez/sqlite"
	"github.com/pkg/errors"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/sakaigo/site-group-manager/internal/config"
	"github.com/sakaigo/site-group-manager/internal/db/dsn"
	"github.com/sakaigo/site-group-manager/internal/db/models"
)

// Dialector returns the gorm dialector for the configured engine.
func Dialector(cfg *config.Config) (gorm.Dialector, error) {
	switch cfg.DB.GormEngine {
	case config.EngineMySQL, "":
		return mysql.Open(dsn.Create(cfg)), nil
	case config.EnginePostgres:
		return postgres.Open(dsn.Create(cfg)), nil
	case config.EngineSQLite:
		return sqlite.Open(dsn.Create(cfg)), nil
	default:
		return nil, errors.Wrap(config.ErrUnknownGormEngine, cfg.DB.GormEngine)
	}
}

// Open connects to the database and migrates the schema.
func Open(cfg *config.Config) (*gorm.DB, error) {
	dialector, err := Dialector(cfg)
	if err != nil {
		return nil, err
	}

	gormCfg := &gorm.Config{}
	if !cfg.DevMode {
		gormCfg.Logger = gormlogger.Default.LogMode(gormlogger.Silent)
	}

	db, err := gorm.Open(dialector, gormCfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect database")
	}

	if err = Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate creates or updates the schema.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(models.All()...); err != nil {
		return errors.Wrap(err, "failed to migrate database")
	}

	return nil
}
