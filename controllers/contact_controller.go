// Copyright 2025 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package controllers

import (
	"log/slog"
	"net/http"

	"github.com/l3montree-dev/livefire-site/dtos"
	"github.com/l3montree-dev/livefire-site/shared"
)

type ContactController struct {
	contactService shared.ContactService
}

func NewContactController(contactService shared.ContactService) *ContactController {
	return &ContactController{contactService: contactService}
}

func (c *ContactController) Submit(ctx shared.Context) error {
	var req dtos.ContactRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, map[string]string{"message": "Missing required fields"})
	}

	if err := shared.V.Struct(req); err != nil {
		return ctx.JSON(http.StatusBadRequest, map[string]string{"message": "Missing required fields"})
	}

	if err := c.contactService.Submit(ctx.Request().Context(), req); err != nil {
		slog.Error("could not forward contact form submission", "err", err)
		return ctx.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to send email"})
	}

	return ctx.JSON(http.StatusOK, map[string]string{"message": "Success!"})
}
