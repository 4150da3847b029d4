// Package app implements the command line interface.
package app

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sakaigo/site-group-manager/internal/config"
)

const configKey = "config"

var rootCmd = &cobra.Command{
	Use:   "site-group-manager",
	Short: "Site Group Manager lists and removes the groups of a site",
	Long: `Site Group Manager is a web tool that lists the groups of a
learning management site with their members and joinable sets and
removes groups that are not locked.`,
	Args:          cobra.OnlyValidArgs,
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		return loadDotEnv(".env")
	},
}

func init() { //nolint:gochecknoinits
	rootCmd.PersistentFlags().String(configKey, config.DefaultPath,
		"config directory containing "+config.MainFile+" (env "+config.EnvConfigPath+")")

	if err := viper.BindPFlag(configKey, rootCmd.PersistentFlags().Lookup(configKey)); err != nil {
		panic(err)
	}

	if err := viper.BindEnv(configKey, config.EnvConfigPath); err != nil {
		panic(err)
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadDotEnv loads environment variables from path if it exists.
// Variables already set in the environment win.
func loadDotEnv(path string) error {
	err := godotenv.Load(path)

	switch {
	case err == nil:
		log.Debug().Str("file", path).Msg("loaded environment file")
		return nil
	case errors.Is(err, fs.ErrNotExist):
		return nil
	default:
		return err //nolint:wrapcheck
	}
}

// readConfig reads the config from the flag, env or default directory.
func readConfig() (config.Config, error) {
	return config.ReadConfig(viper.GetString(configKey))
}
