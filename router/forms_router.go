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

package router

import (
	"github.com/l3montree-dev/livefire-site/controllers"
	"github.com/l3montree-dev/livefire-site/middlewares"
	"github.com/l3montree-dev/livefire-site/shared"
	"github.com/labstack/echo/v4"
)

type FormsRouter struct {
	*echo.Group
}

// NewFormsRouter wires the browser-facing form endpoints. The whole group
// sits behind the origin guard, so cross-site submissions get rejected
// before any handler runs.
func NewFormsRouter(
	apiV1Router APIV1Router,
	config shared.Config,
	commentController *controllers.CommentController,
	contactController *controllers.ContactController,
) FormsRouter {
	formsRouter := apiV1Router.Group.Group("/forms", middlewares.OriginGuard(config.AllowedDomain))

	formsRouter.POST("/comments/", commentController.Create)
	formsRouter.GET("/comments/:postSlug/", commentController.List)
	formsRouter.POST("/contact/", contactController.Submit)

	return FormsRouter{Group: formsRouter}
}
