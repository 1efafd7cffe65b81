package models

import (
	"time"

	"gorm.io/gorm"
)

// Post represents a board post.
//
// LikesCount and RepliesCount are denormalized caches maintained by the
// repository layer inside the same transaction as the edge/row mutation.
// A soft-deleted post is excluded from all normal reads.
type Post struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Body         string `gorm:"not null" json:"body"`
	UserID       uint   `gorm:"not null;index" json:"user_id"`
	User         User   `gorm:"foreignKey:UserID" json:"user"`
	LikesCount   int64  `gorm:"not null;default:0" json:"likes_count"`
	RepliesCount int64  `gorm:"not null;default:0" json:"replies_count"`
	// Liked indicates whether the current requesting user liked this post (computed)
	Liked     bool           `gorm:"-" json:"liked"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
