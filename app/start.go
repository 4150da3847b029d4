package app

import (
	"github.com/spf13/cobra"

	"github.com/sakaigo/site-group-manager/internal/daemon"
	"github.com/sakaigo/site-group-manager/internal/logger"
)

func init() { //nolint:gochecknoinits
	startCmd.Flags().BoolVar(&devMode, "dev", false, "Enable dev mode (local templates, demo data)")

	startCmd.Flags().BoolVar(
		&browseStatic,
		"browse",
		false,
		"Enable static file browsing (for development purposes only)",
	)

	rootCmd.AddCommand(startCmd)
}

var (
	devMode      bool
	browseStatic bool

	startCmd = &cobra.Command{
		Use:   "start",
		Short: "Start the site group manager web service",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := readConfig()
			if err != nil {
				return err
			}

			if devMode {
				cfg.DevMode = true
			}

			if browseStatic {
				cfg.Webserver.BrowseStatic = true
			}

			if err = logger.Init(cfg.Log); err != nil {
				return err //nolint:wrapcheck
			}

			d, err := daemon.New(&cfg)
			if err != nil {
				return err //nolint:wrapcheck
			}

			return d.Start()
		},
	}
)
