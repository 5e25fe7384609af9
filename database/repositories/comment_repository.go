// Copyright 2025 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package repositories

import (
	"github.com/google/uuid"
	"github.com/l3montree-dev/livefire-site/database/models"
	"github.com/l3montree-dev/livefire-site/shared"
)

type commentRepository struct {
	db shared.DB
	*GormRepository[uuid.UUID, models.Comment]
}

func NewCommentRepository(db shared.DB) *commentRepository {
	return &commentRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.Comment](db),
	}
}

// ListApprovedByPostSlug returns the public comment thread for a post,
// oldest first so replies render below what they answer.
func (r *commentRepository) ListApprovedByPostSlug(postSlug string) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Where("post_slug = ? AND is_approved = ?", postSlug, true).
		Order("created_at ASC").
		Find(&comments).Error
	return comments, err
}

func (r *commentRepository) ListPending() ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Where("is_approved = ?", false).
		Order("created_at ASC").
		Find(&comments).Error
	return comments, err
}

func (r *commentRepository) Approve(id uuid.UUID) error {
	return r.db.Model(&models.Comment{}).
		Where("id = ?", id).
		Update("is_approved", true).Error
}
