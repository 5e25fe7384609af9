// Copyright 2025 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/l3montree-dev/livefire-site/shared"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestRegisterMiddlewares(t *testing.T) {
	t.Run("should serve slash-less requests against trailing-slash routes", func(t *testing.T) {
		e := echo.New()
		registerMiddlewares(e, shared.Config{})
		e.GET("/api/v1/live-schedule/", func(ctx echo.Context) error {
			return ctx.NoContent(http.StatusOK)
		})

		req := httptest.NewRequest(http.MethodGet, "/api/v1/live-schedule", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("should recover from a panicking handler with a json error", func(t *testing.T) {
		e := echo.New()
		registerMiddlewares(e, shared.Config{})
		e.GET("/boom/", func(ctx echo.Context) error {
			panic("boom")
		})

		req := httptest.NewRequest(http.MethodGet, "/boom/", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), "internal server error")
	})
}
