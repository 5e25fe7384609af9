// Copyright 2025 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package shared

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/l3montree-dev/livefire-site/database"
	"github.com/labstack/echo/v4"
	"github.com/lmittmann/tint"
	"gorm.io/gorm"
)

type Server = *echo.Group
type MiddlewareFunc = echo.MiddlewareFunc
type Context = echo.Context
type DB = *gorm.DB

func Ptr[T any](t T) *T {
	return &t
}

func DatabaseFactory(config Config) (DB, error) {
	return database.NewConnection(config.PostgresHost, config.PostgresUser, config.PostgresPassword, config.PostgresDB, config.PostgresPort)
}

// InitLogger initializes the logger with a tint handler.
// tint is a simple logging library that allows to add colors to the log output.
// this is obviously not required, but it makes the logs easier to read.
func InitLogger() {
	w := os.Stderr

	// set global logger with custom options
	slog.SetDefault(slog.New(
		tint.NewHandler(w, &tint.Options{
			Level:      slog.LevelDebug,
			AddSource:  true,
			TimeFormat: time.Kitchen,
		}),
	))
}

func LoadConfig() error {
	return godotenv.Load()
}

var V = validator.New()

// IsOriginAllowed implements the cross-domain check used by both the edge
// middleware and the comment service. Matching is substring containment, not
// exact host comparison: "livefireinstruction.com" also matches
// "www.livefireinstruction.com". That makes subdomains work without extra
// configuration, at the price of matching any origin that merely contains the
// configured domain. Do not tighten this without revisiting subdomain support.
func IsOriginAllowed(origin, referer, allowedDomain string) bool {
	if allowedDomain == "" {
		// open mode
		return true
	}
	return (origin != "" && strings.Contains(origin, allowedDomain)) ||
		(referer != "" && strings.Contains(referer, allowedDomain))
}
