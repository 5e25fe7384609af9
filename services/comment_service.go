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

package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/l3montree-dev/livefire-site/database"
	"github.com/l3montree-dev/livefire-site/database/models"
	"github.com/l3montree-dev/livefire-site/dtos"
	"github.com/l3montree-dev/livefire-site/monitoring"
	"github.com/l3montree-dev/livefire-site/shared"
)

var (
	// ErrOriginRejected is returned when neither the Origin nor the Referer
	// header matches the configured site domain.
	ErrOriginRejected = errors.New("request origin is not allowed")
	// ErrChallengeFailed is returned when the abuse challenge token could not
	// be verified.
	ErrChallengeFailed = errors.New("challenge verification failed")
	// ErrPersistenceFailed hides the storage error from callers. The real
	// cause is logged server side only.
	ErrPersistenceFailed = errors.New("could not store comment")
)

type commentService struct {
	commentRepository shared.CommentRepository
	challengeVerifier shared.ChallengeVerifier
	broker            database.Broker
	allowedDomain     string
}

func NewCommentService(config shared.Config, commentRepository shared.CommentRepository, challengeVerifier shared.ChallengeVerifier, broker database.Broker) *commentService {
	return &commentService{
		commentRepository: commentRepository,
		challengeVerifier: challengeVerifier,
		broker:            broker,
		allowedDomain:     config.AllowedDomain,
	}
}

// SubmitComment runs the full submission pipeline: origin guard, abuse
// challenge, single atomic insert. The comment always enters the store as
// moderation-pending, regardless of who submitted it.
//
// The origin check repeats the edge middleware check on purpose. The
// middleware protects the whole route group, this one keeps the service safe
// when it gets wired behind a different transport.
func (s *commentService) SubmitComment(ctx context.Context, origin, referer string, req dtos.CreateCommentRequest) (dtos.CommentDTO, error) {
	if !shared.IsOriginAllowed(origin, referer, s.allowedDomain) {
		slog.Warn("rejected comment submission from foreign origin", "origin", origin, "referer", referer)
		monitoring.CommentSubmissionsRejected.WithLabelValues("origin").Inc()
		return dtos.CommentDTO{}, ErrOriginRejected
	}

	if s.challengeVerifier.Enabled() {
		if err := s.challengeVerifier.Verify(ctx, req.RecaptchaToken); err != nil {
			slog.Warn("comment submission failed the abuse challenge", "postSlug", req.PostSlug, "err", err)
			monitoring.CommentSubmissionsRejected.WithLabelValues("challenge").Inc()
			return dtos.CommentDTO{}, fmt.Errorf("%w: %v", ErrChallengeFailed, err)
		}
	} else {
		slog.Warn("abuse challenge verification is disabled, accepting comment without verification", "postSlug", req.PostSlug)
	}

	comment := models.Comment{
		PostSlug:   req.PostSlug,
		Name:       req.Name,
		Email:      req.Email,
		Message:    req.Message,
		ParentID:   req.ParentID,
		IsApproved: false,
	}

	if err := s.commentRepository.Create(nil, &comment); err != nil {
		slog.Error("could not store comment", "postSlug", req.PostSlug, "err", err)
		monitoring.CommentSubmissionsRejected.WithLabelValues("persistence").Inc()
		return dtos.CommentDTO{}, ErrPersistenceFailed
	}

	monitoring.CommentSubmissionsAccepted.Inc()

	// the submission already succeeded, a failed notify must not undo it
	if s.broker != nil {
		err := s.broker.Publish(ctx, database.NewSimpleMessage(database.CommentCreated, map[string]any{
			"id":       comment.ID.String(),
			"postSlug": comment.PostSlug,
		}))
		if err != nil {
			slog.Warn("could not publish comment created event", "id", comment.ID, "err", err)
		}
	}

	return dtos.CommentToDTO(comment), nil
}

// ListApproved returns the moderated comment thread for a single post.
func (s *commentService) ListApproved(postSlug string) ([]dtos.CommentDTO, error) {
	comments, err := s.commentRepository.ListApprovedByPostSlug(postSlug)
	if err != nil {
		return nil, err
	}

	result := make([]dtos.CommentDTO, 0, len(comments))
	for _, comment := range comments {
		result = append(result, dtos.CommentToDTO(comment))
	}
	return result, nil
}
