// Copyright 2025 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package router

import (
	"github.com/l3montree-dev/livefire-site/controllers"
	"github.com/labstack/echo/v4"
)

type SiteRouter struct {
	*echo.Group
}

// NewSiteRouter wires the public site helpers that do not take form input:
// the schedule proxy and the CMS preview toggles.
func NewSiteRouter(
	apiV1Router APIV1Router,
	scheduleController *controllers.ScheduleController,
	previewController *controllers.PreviewController,
) SiteRouter {
	siteRouter := apiV1Router.Group.Group("")

	siteRouter.GET("/live-schedule/", scheduleController.List)
	siteRouter.GET("/preview/start/", previewController.Start)
	siteRouter.GET("/preview/end/", previewController.End)

	return SiteRouter{Group: siteRouter}
}
