// Package fiber provides the zerolog based access log middleware.
package fiber

import (
	"io"
	"os"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/sakaigo/site-group-manager/internal/logger"
)

const (
	// LocalsSiteID is the fiber locals key handlers use to attach the current site to the access log.
	LocalsSiteID = "siteID"

	// LocalsElapsed holds the request duration in seconds after the chain ran.
	LocalsElapsed = "elapsed"

	headerPerformance = "X-Performance"
	logDirPerm        = 0o750
)

// Config of the access log middleware.
type Config struct {
	// Next skips the middleware when it returns true.
	Next func(c *fiber.Ctx) bool

	// Config of the logger.
	Config logger.Log

	// CacheControlError is set on responses the error handler could not render.
	CacheControlError string

	// CheckAliveURI is not logged when Config.DisableCheckAlive is set.
	CheckAliveURI string
}

// ConfigDefault is the default config.
var ConfigDefault = Config{ //nolint:gochecknoglobals
	CacheControlError: "max-age=0",
}

func configDefault(config ...Config) Config {
	if len(config) < 1 {
		return ConfigDefault
	}

	cfg := config[0]

	if cfg.CacheControlError == "" {
		cfg.CacheControlError = ConfigDefault.CacheControlError
	}

	return cfg
}

// accessWriters collects the enabled access log outputs.
func accessWriters(cfg logger.Log) []io.Writer {
	var writers []io.Writer

	if cfg.File.Enabled && cfg.File.Access.Name != "" {
		if cfg.File.Path != "" {
			if err := os.MkdirAll(cfg.File.Path, logDirPerm); err != nil {
				log.Error().Err(err).Str("path", cfg.File.Path).Msg("can't create access log directory")
			} else {
				writers = append(writers, logger.NewRollingFile(cfg.File.Path, cfg.File.Access))
			}
		} else {
			writers = append(writers, logger.NewRollingFile("", cfg.File.Access))
		}
	}

	if cfg.Console.Enabled && cfg.EnableAccessLogToConsole {
		if cfg.Console.UseConsoleWriter {
			writers = append(writers, zerolog.ConsoleWriter{
				Out:          os.Stdout,
				TimeFormat:   zerolog.TimeFieldFormat,
				PartsExclude: []string{zerolog.LevelFieldName},
			})
		} else {
			writers = append(writers, os.Stdout)
		}
	}

	return writers
}

// New creates the access log middleware.
func New(config ...Config) fiber.Handler {
	cfg := configDefault(config...)

	access := zerolog.New(zerolog.MultiLevelWriter(accessWriters(cfg.Config)...)).
		With().
		Timestamp().
		Logger().
		Level(zerolog.NoLevel)

	return func(ctx *fiber.Ctx) error {
		if cfg.Next != nil && cfg.Next(ctx) {
			return ctx.Next()
		}

		start := time.Now()

		chainErr := ctx.Next()
		if chainErr != nil {
			if err := ctx.App().ErrorHandler(ctx, chainErr); err != nil {
				_ = ctx.SendStatus(fiber.StatusInternalServerError) //nolint:errcheck
				ctx.Response().Header.Set(fiber.HeaderCacheControl, cfg.CacheControlError)
			}
		}

		elapsed := time.Since(start).Seconds()
		ctx.Locals(LocalsElapsed, elapsed)
		ctx.Response().Header.Set(headerPerformance, strconv.FormatFloat(elapsed, 'f', 6, 64))

		if cfg.Config.DisableCheckAlive && cfg.CheckAliveURI != "" && ctx.Path() == cfg.CheckAliveURI {
			return nil
		}

		event := access.Log().
			Str("IP", ctx.IP()).
			Int("status", ctx.Response().StatusCode()).
			Float64(headerPerformance, elapsed).
			Str("URI", requestURI(ctx)).
			Str("method", ctx.Method()).
			Bytes("host", ctx.Request().Host()).
			Str(fiber.HeaderXForwardedFor, ctx.Get(fiber.HeaderXForwardedFor)).
			Str(fiber.HeaderUserAgent, ctx.Get(fiber.HeaderUserAgent)).
			Str(fiber.HeaderReferer, ctx.Get(fiber.HeaderReferer))

		if siteID, ok := ctx.Locals(LocalsSiteID).(string); ok && siteID != "" {
			event.Str("site", siteID)
		}

		if chainErr != nil {
			event.Err(chainErr)
		}

		event.Send()

		return nil
	}
}

// requestURI returns the path as sent by the client plus its query string.
// fasthttp normalizes the request URI, ctx.Path keeps double slashes.
func requestURI(ctx *fiber.Ctx) string {
	p := ctx.Path()

	if qs := ctx.Request().URI().QueryString(); len(qs) > 0 {
		p += "?" + string(qs)
	}

	return p
}
