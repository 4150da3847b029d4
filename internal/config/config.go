// Package config handles input from etc/*.toml files
package config

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	// EnvConfigJSON holds a JSON document merged over main.toml.
	EnvConfigJSON = "SITE_GROUP_MANAGER_CONFIG_JSON"

	// EnvConfigPath names the config directory if --config is not given.
	EnvConfigPath = "SITE_GROUP_MANAGER_CONFIG"

	// DefaultPath is the config directory used if none is given.
	DefaultPath = "./etc/"

	// MainFile is the config file read from the config directory.
	MainFile = "main.toml"

	defaultShutDownTime   = 5
	defaultMaxRemoveBatch = 500
	defaultSitesPageSize  = 25
)

// ReadConfig from config file.
func ReadConfig(path string) (Config, error) {
	var (
		c             Config
		JSONConfigEnv string
		err           error
	)

	// Read main configuration
	if path == "" {
		path = DefaultPath
	}

	if _, err = toml.DecodeFile(filepath.Join(path, MainFile), &c); err != nil {
		return Config{}, errors.Wrap(err, "failed to read main config file")
	}

	// override it from env
	JSONConfigEnv = os.Getenv(EnvConfigJSON)

	if JSONConfigEnv != "" {
		c, err = decodeAndMergeConfig(c, JSONConfigEnv)
		if err != nil {
			return c, err
		}
	}

	return c, validate(&c)
}

func decodeAndMergeConfig(c Config, configAsJSON string) (Config, error) {
	err := json.Unmarshal([]byte(configAsJSON), &c)
	if err != nil {
		return Config{}, errors.Wrap(err, "failed to decode "+EnvConfigJSON)
	}

	return c, nil
}

// DumpConfig config as TOML String.
func DumpConfig(c *Config) (string, error) {
	var buffer bytes.Buffer
	t := toml.NewEncoder(&buffer)

	if err := t.Encode(c); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

// DumpConfigJSON config as JSON String.
func DumpConfigJSON(c *Config) (string, error) {
	var buffer bytes.Buffer
	j := json.NewEncoder(&buffer)
	j.SetIndent("", "  ")

	if err := j.Encode(c); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

// DumpConfigYAML config as YAML String.
func DumpConfigYAML(c *Config) (string, error) {
	var buffer bytes.Buffer
	y := yaml.NewEncoder(&buffer)
	y.SetIndent(2) //nolint:mnd

	if err := y.Encode(c); err != nil {
		return "", err //nolint: wrapcheck
	}

	if err := y.Close(); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

// validate minimal config settings and fill in defaults.
func validate(c *Config) error {
	invalidErrMessage := "invalid config"

	// validate webserver listening port
	if c.Webserver.Port == 0 {
		return errors.Wrap(ErrWebServerPortCanNotBeZero, invalidErrMessage)
	}

	if c.Webserver.URL == "" {
		return errors.Wrap(ErrEmptyURL, invalidErrMessage)
	}

	switch c.DB.GormEngine {
	case "":
		c.DB.GormEngine = EngineMySQL
	case EngineMySQL, EnginePostgres, EngineSQLite:
	default:
		return errors.Wrapf(ErrUnknownGormEngine, "%s: %q", invalidErrMessage, c.DB.GormEngine)
	}

	if c.Events.Enabled && len(c.Events.Servers) == 0 {
		return errors.Wrap(ErrEventServersEmpty, invalidErrMessage)
	}

	if c.Webserver.ShutDownTime == 0 {
		c.Webserver.ShutDownTime = defaultShutDownTime
	}

	if c.GroupManager.MaxRemoveBatch <= 0 {
		c.GroupManager.MaxRemoveBatch = defaultMaxRemoveBatch
	}

	if c.GroupManager.SitesPageSize <= 0 {
		c.GroupManager.SitesPageSize = defaultSitesPageSize
	}

	return nil
}
