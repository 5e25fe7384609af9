// Copyright 2025 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package middlewares

import (
	"log/slog"
	"net/http"

	"github.com/l3montree-dev/livefire-site/shared"
	"github.com/labstack/echo/v4"
)

// OriginGuard rejects requests whose Origin and Referer headers both fail to
// match the configured site domain. It guards the form endpoints at the edge;
// the comment service repeats the same check with the same semantics so the
// guard holds even without this middleware in front.
func OriginGuard(allowedDomain string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			origin := ctx.Request().Header.Get("Origin")
			referer := ctx.Request().Header.Get("Referer")

			if !shared.IsOriginAllowed(origin, referer, allowedDomain) {
				slog.Warn("blocked request from foreign origin", "origin", origin, "referer", referer, "path", ctx.Request().URL.Path)
				return ctx.JSON(http.StatusForbidden, map[string]string{"error": "Origin not allowed"})
			}
			return next(ctx)
		}
	}
}
