// Copyright (C) 2025 Tim Bastin, l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/l3montree-dev/livefire-site/cmd/livefire/api"
	"github.com/l3montree-dev/livefire-site/controllers"
	"github.com/l3montree-dev/livefire-site/daemons"
	"github.com/l3montree-dev/livefire-site/database"
	"github.com/l3montree-dev/livefire-site/database/repositories"
	"github.com/l3montree-dev/livefire-site/monitoring"
	"github.com/l3montree-dev/livefire-site/router"
	"github.com/l3montree-dev/livefire-site/services"
	"github.com/l3montree-dev/livefire-site/shared"
	"go.uber.org/fx"

	_ "github.com/lib/pq"
)

var release string // Will be filled at build time

func main() {
	shared.LoadConfig() // nolint: errcheck
	shared.InitLogger()

	if os.Getenv("ERROR_TRACKING_DSN") != "" {
		initSentry()

		// Catch panics
		defer func() {
			if r := recover(); r != nil {
				err, ok := r.(error)
				if !ok {
					err = fmt.Errorf("%v", r)
				}
				monitoring.RecoverAndAlert("panic during startup", err)
				// Wait for events to be send to server
				sentry.Flush(time.Second * 5)
			}
		}()
	}

	config, err := shared.ConfigFromEnv()
	if err != nil {
		slog.Error(err.Error()) // print detailed error message to stdout
		panic(errors.New("invalid configuration"))
	}

	// Initialize database connection first
	db, err := shared.DatabaseFactory(config)
	if err != nil {
		slog.Error(err.Error())
		panic(errors.New("failed to setup database connection"))
	}

	// Run database migrations using the existing database connection
	if os.Getenv("DISABLE_AUTOMIGRATE") != "true" {
		slog.Info("running database migrations...")
		if err := database.RunMigrationsWithDB(db); err != nil {
			slog.Error("failed to run database migrations", "error", err)
			panic(errors.New("failed to run database migrations"))
		}
	} else {
		slog.Info("automatic migrations disabled via DISABLE_AUTOMIGRATE=true")
	}

	fx.New(
		fx.Supply(config),
		fx.Supply(db),
		fx.Provide(func() *pgxpool.Pool {
			return database.NewPgxConnPool(database.GetPoolConfigFromEnv())
		}),
		fx.Provide(database.BrokerFactory),
		fx.Provide(api.NewServer),
		repositories.Module,
		controllers.ControllerModule,
		services.Module,
		router.RouterModule,
		daemons.Module,

		// we need to invoke all routers to register their routes
		fx.Invoke(func(formsRouter router.FormsRouter) {}),
		fx.Invoke(func(siteRouter router.SiteRouter) {}),
	).Run()
}

func initSentry() {
	environment := os.Getenv("ENVIRONMENT")
	if environment == "" {
		environment = "dev"
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:         os.Getenv("ERROR_TRACKING_DSN"),
		Environment: environment,
		Release:     release,

		// In debug mode, the debug information is printed to stdout to help you
		// understand what Sentry is doing.
		Debug: environment == "dev",

		// Configures whether SDK should generate and attach stack traces to pure
		// capture message calls.
		AttachStacktrace: true,

		// If this flag is enabled, certain personally identifiable information (PII) is added by active integrations.
		// By default, no such data is sent.
		SendDefaultPII: false,
	})
	if err != nil {
		slog.Error("Failed to init sentry", "err", err)
	}
}
