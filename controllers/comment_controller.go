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

package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/l3montree-dev/livefire-site/dtos"
	"github.com/l3montree-dev/livefire-site/services"
	"github.com/l3montree-dev/livefire-site/shared"
)

var commentFieldMessages = map[string]string{
	"PostSlug": "Post slug is required",
	"Name":     "Name is required",
	"Email":    "Valid email is required",
	"Message":  "Comment cannot be empty",
}

type CommentController struct {
	commentService    shared.CommentService
	challengeVerifier shared.ChallengeVerifier
}

func NewCommentController(commentService shared.CommentService, challengeVerifier shared.ChallengeVerifier) *CommentController {
	return &CommentController{
		commentService:    commentService,
		challengeVerifier: challengeVerifier,
	}
}

// Create handles a comment submission. Validation errors come back as a
// field map so the form can highlight individual inputs; pipeline rejections
// come back as a single error string.
func (c *CommentController) Create(ctx shared.Context) error {
	var req dtos.CreateCommentRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, map[string]any{"errors": map[string]string{"form": "Invalid request"}})
	}

	fieldErrors := map[string]string{}
	if err := shared.V.Struct(req); err != nil {
		fieldErrors = fieldErrorMap(err, commentFieldMessages)
	}
	// the challenge token is only a required field while the challenge is
	// actually enforced
	if c.challengeVerifier.Enabled() && req.RecaptchaToken == "" {
		fieldErrors["recaptchaToken"] = "Security token is missing"
	}
	if len(fieldErrors) > 0 {
		return ctx.JSON(http.StatusBadRequest, map[string]any{"errors": fieldErrors})
	}

	origin := ctx.Request().Header.Get("Origin")
	referer := ctx.Request().Header.Get("Referer")

	comment, err := c.commentService.SubmitComment(ctx.Request().Context(), origin, referer, req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrOriginRejected):
			return ctx.JSON(http.StatusForbidden, map[string]string{"error": "Origin not allowed"})
		case errors.Is(err, services.ErrChallengeFailed):
			return ctx.JSON(http.StatusForbidden, map[string]string{"error": "Failed security check"})
		default:
			slog.Error("comment submission failed", "err", err)
			return ctx.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to save comment"})
		}
	}

	return ctx.JSON(http.StatusOK, comment)
}

// List returns the approved comments of a single post, oldest first.
func (c *CommentController) List(ctx shared.Context) error {
	postSlug := ctx.Param("postSlug")
	if postSlug == "" {
		return ctx.JSON(http.StatusBadRequest, map[string]string{"error": "Post slug is required"})
	}

	comments, err := c.commentService.ListApproved(postSlug)
	if err != nil {
		slog.Error("could not list comments", "postSlug", postSlug, "err", err)
		return ctx.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to load comments"})
	}

	return ctx.JSON(http.StatusOK, comments)
}
