// Copyright 2025 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package models

// Comment is a unit of visitor feedback attached to a blog post. It is
// written exactly once by the submission pipeline and only ever mutated by
// the moderation tooling, which may flip IsApproved.
type Comment struct {
	Model
	PostSlug string `json:"postSlug" gorm:"type:text;not null;index"`
	Name     string `json:"name" gorm:"type:text;not null"`
	Email    string `json:"email" gorm:"type:text;not null"`
	Message  string `json:"message" gorm:"type:text;not null"`
	// ParentID references the comment this one replies to. Advisory only:
	// not checked against existence at write time.
	ParentID   *string `json:"parentId" gorm:"type:text"`
	IsApproved bool    `json:"isApproved" gorm:"not null;default:false"`
}

func (c Comment) TableName() string {
	return "comments"
}
