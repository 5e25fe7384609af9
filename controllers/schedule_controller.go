// Copyright 2025 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package controllers

import (
	"log/slog"
	"net/http"

	"github.com/l3montree-dev/livefire-site/shared"
)

type ScheduleController struct {
	scheduleService shared.ScheduleService
}

func NewScheduleController(scheduleService shared.ScheduleService) *ScheduleController {
	return &ScheduleController{scheduleService: scheduleService}
}

func (c *ScheduleController) List(ctx shared.Context) error {
	body, err := c.scheduleService.Fetch(ctx.Request().Context(), ctx.QueryParam("category"))
	if err != nil {
		slog.Error("could not fetch live schedule", "err", err)
		return ctx.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch"})
	}

	return ctx.Blob(http.StatusOK, "application/json", body)
}
