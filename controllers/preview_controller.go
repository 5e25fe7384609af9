// Copyright 2025 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package controllers

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/l3montree-dev/livefire-site/shared"
)

// previewCookieName carries the content branch the CMS frontend should
// render; its presence is what switches the site into preview mode.
const previewCookieName = "keystatic-preview-mode"

type PreviewController struct {
	secureCookies bool
}

func NewPreviewController(config shared.Config) *PreviewController {
	return &PreviewController{secureCookies: config.Env != "dev"}
}

// Start enables CMS preview mode for the browser session: it remembers the
// content branch in a cookie and sends the editor to the preview target.
func (c *PreviewController) Start(ctx shared.Context) error {
	branch := ctx.QueryParam("branch")
	to := ctx.QueryParam("to")
	if branch == "" || to == "" {
		return ctx.JSON(http.StatusBadRequest, map[string]string{"error": "Missing branch or to parameter"})
	}

	// only allow relative redirect targets
	target, err := url.Parse(to)
	if err != nil || target.IsAbs() || !strings.HasPrefix(target.Path, "/") {
		return ctx.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid to parameter"})
	}

	ctx.SetCookie(c.previewCookie(branch, 0))
	return ctx.Redirect(http.StatusTemporaryRedirect, target.Path)
}

// End clears the preview cookie and redirects to the live version of the
// page, with the "/preview" segment stripped from the referer path.
func (c *PreviewController) End(ctx shared.Context) error {
	ctx.SetCookie(c.previewCookie("", -1))
	return ctx.Redirect(http.StatusTemporaryRedirect, refererPath(ctx, "/preview"))
}

func (c *PreviewController) previewCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     previewCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   c.secureCookies,
		SameSite: http.SameSiteLaxMode,
	}
}

func refererPath(ctx shared.Context, strip string) string {
	referer := ctx.Request().Header.Get("Referer")
	if referer == "" {
		return "/"
	}
	parsed, err := url.Parse(referer)
	if err != nil || parsed.Path == "" {
		return "/"
	}
	path := parsed.Path
	if strip != "" {
		path = strings.Replace(path, strip, "", 1)
		if path == "" {
			path = "/"
		}
	}
	return path
}
