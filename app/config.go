package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sakaigo/site-group-manager/internal/config"
)

const (
	formatTOML = "toml"
	formatJSON = "json"
	formatYAML = "yaml"
)

func init() { //nolint:gochecknoinits
	dumpCmd.Flags().StringVar(&dumpFormat, "format", formatTOML, "output format: toml, json or yaml")

	configCmd.AddCommand(dumpCmd)
	rootCmd.AddCommand(configCmd)
}

var (
	dumpFormat string

	configCmd = &cobra.Command{
		Use:   "config",
		Short: "Inspect the configuration",
	}

	dumpCmd = &cobra.Command{
		Use:   "dump",
		Short: "Print the effective configuration including env overrides",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := readConfig()
			if err != nil {
				return err
			}

			out, err := dump(&cfg, dumpFormat)
			if err != nil {
				return err
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), out)

			return err //nolint:wrapcheck
		},
	}
)

func dump(cfg *config.Config, format string) (string, error) {
	switch format {
	case formatTOML, "":
		return config.DumpConfig(cfg)
	case formatJSON:
		return config.DumpConfigJSON(cfg)
	case formatYAML:
		return config.DumpConfigYAML(cfg)
	default:
		return "", fmt.Errorf("unknown format %q", format)
	}
}
