// Copyright 2025 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package commands

import (
	"log/slog"

	"github.com/l3montree-dev/livefire-site/database"
	"github.com/l3montree-dev/livefire-site/shared"
	"github.com/spf13/cobra"
)

func NewMigrateCommand() *cobra.Command {
	migrate := cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}

	migrate.AddCommand(newMigrateUpCommand())
	migrate.AddCommand(newMigrateDownCommand())
	return &migrate
}

func newMigrateUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.ExactArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			db, err := cliDatabase()
			if err != nil {
				return
			}
			if err := database.RunMigrationsWithDB(db); err != nil {
				slog.Error("could not run migrations", "err", err)
				return
			}
			slog.Info("migrations applied")
		},
	}
}

func newMigrateDownCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "down",
		Short: "Roll back the most recent migration",
		Args:  cobra.ExactArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			db, err := cliDatabase()
			if err != nil {
				return
			}
			if err := database.RollbackMigrationsWithDB(db); err != nil {
				slog.Error("could not roll back migration", "err", err)
				return
			}
			slog.Info("rolled back one migration")
		},
	}
}

func cliDatabase() (shared.DB, error) {
	shared.LoadConfig() // nolint
	config, err := shared.ConfigFromEnv()
	if err != nil {
		slog.Error("invalid configuration", "err", err)
		return nil, err
	}
	db, err := shared.DatabaseFactory(config)
	if err != nil {
		slog.Error("could not connect to database", "err", err)
		return nil, err
	}
	return db, nil
}
