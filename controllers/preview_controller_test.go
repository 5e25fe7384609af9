// Copyright 2025 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/l3montree-dev/livefire-site/shared"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPreviewContext(target, referer string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if referer != "" {
		req.Header.Set("Referer", referer)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func cookieByName(t *testing.T, rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}
	require.Failf(t, "cookie not set", "missing cookie %s", name)
	return nil
}

func TestPreviewController(t *testing.T) {
	t.Run("start should store the branch in the preview cookie and redirect to the target", func(t *testing.T) {
		ctx, rec := newPreviewContext("/?branch=draft&to=/blog/some-post", "")

		controller := NewPreviewController(shared.Config{Env: "production"})

		assert.NoError(t, controller.Start(ctx))
		assert.Equal(t, http.StatusTemporaryRedirect, rec.Code)
		assert.Equal(t, "/blog/some-post", rec.Header().Get("Location"))

		preview := cookieByName(t, rec, "keystatic-preview-mode")
		// the cms frontend reads the branch name out of this cookie
		assert.Equal(t, "draft", preview.Value)
		assert.True(t, preview.HttpOnly)
		assert.True(t, preview.Secure)
		assert.Equal(t, "/", preview.Path)
	})

	t.Run("start should reject missing parameters", func(t *testing.T) {
		ctx, rec := newPreviewContext("/?branch=draft", "")

		controller := NewPreviewController(shared.Config{Env: "production"})

		assert.NoError(t, controller.Start(ctx))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("start should reject absolute redirect targets", func(t *testing.T) {
		ctx, rec := newPreviewContext("/?branch=draft&to=https://evil.example.com/", "")

		controller := NewPreviewController(shared.Config{Env: "production"})

		assert.NoError(t, controller.Start(ctx))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("start should not mark the cookies secure in dev", func(t *testing.T) {
		ctx, rec := newPreviewContext("/?branch=draft&to=/", "")

		controller := NewPreviewController(shared.Config{Env: "dev"})

		assert.NoError(t, controller.Start(ctx))
		assert.False(t, cookieByName(t, rec, "keystatic-preview-mode").Secure)
	})

	t.Run("end should expire the cookie and strip the preview segment", func(t *testing.T) {
		ctx, rec := newPreviewContext("/", "https://livefireinstruction.com/preview/blog/some-post")

		controller := NewPreviewController(shared.Config{Env: "production"})

		assert.NoError(t, controller.End(ctx))
		assert.Equal(t, http.StatusTemporaryRedirect, rec.Code)
		assert.Equal(t, "/blog/some-post", rec.Header().Get("Location"))

		assert.Equal(t, -1, cookieByName(t, rec, "keystatic-preview-mode").MaxAge)
	})

	t.Run("end should fall back to the root without a referer", func(t *testing.T) {
		ctx, rec := newPreviewContext("/", "")

		controller := NewPreviewController(shared.Config{Env: "production"})

		assert.NoError(t, controller.End(ctx))
		assert.Equal(t, "/", rec.Header().Get("Location"))
	})
}
