package dtos

import (
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/livefire-site/database/models"
)

type CreateCommentRequest struct {
	PostSlug string `json:"postSlug" form:"postSlug" validate:"required"`
	Name     string `json:"name" form:"name" validate:"required"`
	Email    string `json:"email" form:"email" validate:"required,email"`
	Message  string `json:"message" form:"message" validate:"required"`
	// ParentID is passed through to storage without an existence check.
	ParentID       *string `json:"parentId" form:"parentId"`
	RecaptchaToken string  `json:"recaptchaToken" form:"recaptchaToken"`
}

type CommentDTO struct {
	ID         uuid.UUID `json:"id"`
	PostSlug   string    `json:"postSlug"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Message    string    `json:"message"`
	CreatedAt  time.Time `json:"createdAt"`
	IsApproved bool      `json:"isApproved"`
}

func CommentToDTO(comment models.Comment) CommentDTO {
	return CommentDTO{
		ID:         comment.ID,
		PostSlug:   comment.PostSlug,
		Name:       comment.Name,
		Email:      comment.Email,
		Message:    comment.Message,
		CreatedAt:  comment.CreatedAt,
		IsApproved: comment.IsApproved,
	}
}
