// Copyright (C) 2025 l3montree UG (haftungsbeschraenkt)
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
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/l3montree-dev/livefire-site/dtos"
	"github.com/l3montree-dev/livefire-site/mocks"
	"github.com/l3montree-dev/livefire-site/services"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newCommentContext(body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set("Origin", "https://livefireinstruction.com")
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

const validCommentBody = `{"postSlug":"some-post","name":"Jane","email":"jane@example.com","message":"Nice post!","recaptchaToken":"tok"}`

func TestCommentControllerCreate(t *testing.T) {
	t.Run("should return a field error map for missing fields without calling the service", func(t *testing.T) {
		ctx, rec := newCommentContext(`{"postSlug":"some-post","email":"not-an-email"}`)

		commentService := mocks.NewCommentService(t)
		challengeVerifier := mocks.NewChallengeVerifier(t)
		challengeVerifier.On("Enabled").Return(true)

		controller := NewCommentController(commentService, challengeVerifier)

		assert.NoError(t, controller.Create(ctx))
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var response struct {
			Errors map[string]string `json:"errors"`
		}
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		assert.Equal(t, "Name is required", response.Errors["name"])
		assert.Equal(t, "Valid email is required", response.Errors["email"])
		assert.Equal(t, "Comment cannot be empty", response.Errors["message"])
		assert.Equal(t, "Security token is missing", response.Errors["recaptchaToken"])

		commentService.AssertNotCalled(t, "SubmitComment", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("should not require the token when the challenge is disabled", func(t *testing.T) {
		ctx, rec := newCommentContext(`{"postSlug":"some-post","name":"Jane","email":"jane@example.com","message":"Nice post!"}`)

		commentService := mocks.NewCommentService(t)
		commentService.On("SubmitComment", mock.Anything, "https://livefireinstruction.com", "", mock.Anything).Return(dtos.CommentDTO{Message: "Nice post!"}, nil)

		challengeVerifier := mocks.NewChallengeVerifier(t)
		challengeVerifier.On("Enabled").Return(false)

		controller := NewCommentController(commentService, challengeVerifier)

		assert.NoError(t, controller.Create(ctx))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("should map an origin rejection to 403", func(t *testing.T) {
		ctx, rec := newCommentContext(validCommentBody)

		commentService := mocks.NewCommentService(t)
		commentService.On("SubmitComment", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(dtos.CommentDTO{}, services.ErrOriginRejected)

		challengeVerifier := mocks.NewChallengeVerifier(t)
		challengeVerifier.On("Enabled").Return(true)

		controller := NewCommentController(commentService, challengeVerifier)

		assert.NoError(t, controller.Create(ctx))
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Contains(t, rec.Body.String(), "Origin not allowed")
	})

	t.Run("should map a challenge failure to 403", func(t *testing.T) {
		ctx, rec := newCommentContext(validCommentBody)

		commentService := mocks.NewCommentService(t)
		commentService.On("SubmitComment", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(dtos.CommentDTO{}, services.ErrChallengeFailed)

		challengeVerifier := mocks.NewChallengeVerifier(t)
		challengeVerifier.On("Enabled").Return(true)

		controller := NewCommentController(commentService, challengeVerifier)

		assert.NoError(t, controller.Create(ctx))
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Contains(t, rec.Body.String(), "Failed security check")
	})

	t.Run("should map a storage failure to a generic 500", func(t *testing.T) {
		ctx, rec := newCommentContext(validCommentBody)

		commentService := mocks.NewCommentService(t)
		commentService.On("SubmitComment", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(dtos.CommentDTO{}, services.ErrPersistenceFailed)

		challengeVerifier := mocks.NewChallengeVerifier(t)
		challengeVerifier.On("Enabled").Return(true)

		controller := NewCommentController(commentService, challengeVerifier)

		assert.NoError(t, controller.Create(ctx))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), "Failed to save comment")
	})

	t.Run("should return the stored comment on success", func(t *testing.T) {
		ctx, rec := newCommentContext(validCommentBody)

		commentService := mocks.NewCommentService(t)
		commentService.On("SubmitComment", mock.Anything, "https://livefireinstruction.com", "", mock.MatchedBy(func(req dtos.CreateCommentRequest) bool {
			return req.PostSlug == "some-post" && req.RecaptchaToken == "tok"
		})).Return(dtos.CommentDTO{PostSlug: "some-post", Name: "Jane", Message: "Nice post!"}, nil)

		challengeVerifier := mocks.NewChallengeVerifier(t)
		challengeVerifier.On("Enabled").Return(true)

		controller := NewCommentController(commentService, challengeVerifier)

		assert.NoError(t, controller.Create(ctx))
		assert.Equal(t, http.StatusOK, rec.Code)

		var response dtos.CommentDTO
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		assert.Equal(t, "some-post", response.PostSlug)
		assert.False(t, response.IsApproved)
	})
}

func TestCommentControllerList(t *testing.T) {
	t.Run("should return the approved comments of a post", func(t *testing.T) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		ctx := e.NewContext(req, rec)
		ctx.SetParamNames("postSlug")
		ctx.SetParamValues("some-post")

		commentService := mocks.NewCommentService(t)
		commentService.On("ListApproved", "some-post").Return([]dtos.CommentDTO{{PostSlug: "some-post", Message: "hi"}}, nil)

		controller := NewCommentController(commentService, mocks.NewChallengeVerifier(t))

		assert.NoError(t, controller.List(ctx))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "some-post")
	})
}
