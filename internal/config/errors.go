package config

import (
	"errors"
)

var (
	// ErrEmptyURL error if config webserver.URL is empty.
	ErrEmptyURL = errors.New("toml config webserver.url can not be empty")

	// ErrWebServerPortCanNotBeZero error if config webserver listening port is 0.
	ErrWebServerPortCanNotBeZero = errors.New("toml config webserver.port listening port can not be 0")

	// ErrUnknownGormEngine error if config db.gormengine is not supported.
	ErrUnknownGormEngine = errors.New("toml config db.gormengine must be mysql, postgres or sqlite")

	// ErrEventServersEmpty error if events are enabled without servers.
	ErrEventServersEmpty = errors.New("toml config events.servers can not be empty when events are enabled")
)
