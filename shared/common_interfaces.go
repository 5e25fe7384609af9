// Copyright 2025 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package shared

import (
	"context"

	"github.com/google/uuid"
	"github.com/l3montree-dev/livefire-site/database/models"
	"github.com/l3montree-dev/livefire-site/dtos"
)

type CommentRepository interface {
	// Create performs a single atomic insert and fills the server-assigned
	// id and timestamps back into the struct. It is the only write path of
	// the submission pipeline; the pipeline never updates or deletes.
	Create(tx DB, comment *models.Comment) error
	ListApprovedByPostSlug(postSlug string) ([]models.Comment, error)
	ListPending() ([]models.Comment, error)
	Approve(id uuid.UUID) error
}

type ChallengeVerifier interface {
	// Enabled reports whether a server-side secret is configured.
	Enabled() bool
	// Verify submits the client token to the verification service. Any
	// outcome besides success with sufficient confidence returns an error.
	Verify(ctx context.Context, token string) error
}

type Mail struct {
	To      string
	From    string
	ReplyTo string
	Subject string
	HTML    string
	Text    string
}

type MailSender interface {
	Send(ctx context.Context, mail Mail) error
}

// ContentReader is the headless CMS lookup used for configuration values
// like the contact notification address. Not involved in comment persistence.
type ContentReader interface {
	Get(key string) (string, bool)
}

type CommentService interface {
	SubmitComment(ctx context.Context, origin, referer string, req dtos.CreateCommentRequest) (dtos.CommentDTO, error)
	ListApproved(postSlug string) ([]dtos.CommentDTO, error)
}

type ContactService interface {
	Submit(ctx context.Context, req dtos.ContactRequest) error
}

type ScheduleService interface {
	Fetch(ctx context.Context, category string) ([]byte, error)
}
