// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/client-registry/internal/client"
	"github.com/MKhiriev/client-registry/internal/config"
	"github.com/MKhiriev/client-registry/internal/logger"
	"github.com/MKhiriev/client-registry/models"
)

const (
	clientRole      = "clients"
	placeholderRole = "clients-placeholder"
)

// cli carries the state shared by all subcommands.
type cli struct {
	flags     *config.Flags
	cfg       *config.StructuredConfig
	buildInfo models.BuildInfo
}

func newRootCmd() *cobra.Command {
	c := &cli{buildInfo: models.NewBuildInfo(buildVersion, buildDate, buildCommit)}

	root := &cobra.Command{
		Use:   "clients",
		Short: "Client registry",
		Long: `clients keeps a local list of clients (name, email, identification)
and can import users from a JSONPlaceholder-compatible API.

Run without a subcommand to open the interactive list.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.GetStructuredConfig(c.flags)
			if err != nil {
				return fmt.Errorf("error getting configs: %w", err)
			}
			c.cfg = cfg
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.withApp(cmd, runTUI)
		},
	}
	c.flags = config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(
		&cobra.Command{
			Use:   "tui",
			Short: "Open the interactive client list",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return c.withApp(cmd, runTUI)
			},
		},
		&cobra.Command{
			Use:   "list",
			Short: "Print the stored clients",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return c.withApp(cmd, (*client.App).List)
			},
		},
		&cobra.Command{
			Use:   "seed",
			Short: "Add the sample clients",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return c.withApp(cmd, (*client.App).Seed)
			},
		},
		&cobra.Command{
			Use:   "sync",
			Short: "Import users from the remote API",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return c.withApp(cmd, (*client.App).Sync)
			},
		},
		&cobra.Command{
			Use:   "clear",
			Short: "Delete every stored client",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return c.withApp(cmd, (*client.App).Clear)
			},
		},
		&cobra.Command{
			Use:   "placeholder",
			Short: "Serve a local users API compatible with the remote one",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				log := logger.NewLogger(placeholderRole)
				if err := logger.SetLevel(c.cfg.Log.Level); err != nil {
					return err
				}
				log.Debug().Any("config", c.cfg).Msg("received configs")
				return client.RunPlaceholder(cmd.Context(), c.cfg, c.buildInfo, log)
			},
		},
		&cobra.Command{
			Use:   "version",
			Short: "Print build information",
			Args:  cobra.NoArgs,
			// version needs no config
			PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
			Run: func(cmd *cobra.Command, _ []string) {
				fmt.Fprint(cmd.OutOrStdout(), c.buildInfo.String())
			},
		},
	)

	return root
}

// withApp builds an App with a file logger (stdout belongs to the command
// output or the TUI), runs fn and closes the App.
func (c *cli) withApp(cmd *cobra.Command, fn func(*client.App, context.Context, io.Writer) error) error {
	log := logger.NewClientLogger(clientRole, c.cfg.Log.File)
	defer log.Close()
	if err := logger.SetLevel(c.cfg.Log.Level); err != nil {
		return err
	}
	log.Debug().Any("config", c.cfg).Msg("received configs")

	ctx := cmd.Context()
	app, err := client.NewApp(ctx, c.cfg, c.buildInfo, log)
	if err != nil {
		log.Err(err).Str("func", "cli.withApp").Msg("init client app error")
		return err
	}
	defer app.Close()

	if err = fn(app, ctx, cmd.OutOrStdout()); err != nil {
		log.Err(err).Str("func", "cli.withApp").Str("command", cmd.Name()).Msg("command failed")
		return err
	}
	return nil
}

func runTUI(app *client.App, ctx context.Context, _ io.Writer) error {
	return app.RunTUI(ctx)
}
