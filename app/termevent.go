package app

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/sakaigo/site-group-manager/internal/acadterm"
	"github.com/sakaigo/site-group-manager/internal/event"
	"github.com/sakaigo/site-group-manager/internal/logger"
)

func init() { //nolint:gochecknoinits
	termEventCmd.AddCommand(
		newTermEventCmd("add", "Announce a new academic session", acadterm.EventAcademicSessionAdd),
		newTermEventCmd("update", "Announce a changed academic session", acadterm.EventAcademicSessionUpdate),
	)

	rootCmd.AddCommand(termEventCmd)
}

var termEventCmd = &cobra.Command{
	Use:   "term-event",
	Short: "Post academic session events",
}

func newTermEventCmd(use, short, eventName string) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <eid>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := readConfig()
			if err != nil {
				return err
			}

			if err = logger.Init(cfg.Log); err != nil {
				return err //nolint:wrapcheck
			}

			poster, err := event.Open(cfg.Events.Enabled, event.NATSConfig{
				Servers:       cfg.Events.Servers,
				Name:          cfg.Events.Name,
				SubjectPrefix: cfg.Events.SubjectPrefix,
				Timeout:       cfg.Events.Timeout,
			})
			if err != nil {
				return errors.Wrap(err, "open event poster")
			}

			defer func() { _ = poster.Close() }()

			e := acadterm.NewSessionEvent(eventName, args[0])

			if err = poster.Post(context.Background(), e); err != nil {
				return errors.Wrap(err, "post "+e.Name)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "posted %s %s\n", e.Name, e.Resource)

			return err //nolint:wrapcheck
		},
	}
}
