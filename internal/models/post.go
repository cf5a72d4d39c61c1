package models

import (
	"time"

	"gorm.io/gorm"
)

// Post represents a published blog entry. A post is owned by exactly one
// author for its lifetime; AuthorID is always taken from the authenticated
// identity, never from the request body.
type Post struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Title     string         `gorm:"not null" json:"title"`
	Content   string         `gorm:"type:text;not null" json:"content"`
	AuthorID  uint           `gorm:"not null;index" json:"authorId"`
	Author    User           `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
