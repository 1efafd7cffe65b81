// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// User represents a registered board user. Users are never hard-deleted.
//
// FollowersCount and FollowingsCount are denormalized caches kept in sync
// with follow-edge existence by the repository layer; they are never derived
// at read time.
type User struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Username        string    `gorm:"uniqueIndex;not null" json:"username"`
	Password        string    `gorm:"not null" json:"-"`
	Description     string    `json:"description"`
	Profile         string    `json:"profile"`
	FollowersCount  int64     `gorm:"not null;default:0" json:"followers_count"`
	FollowingsCount int64     `gorm:"not null;default:0" json:"followings_count"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	// IsFollowing indicates whether the requesting user follows this user (computed)
	IsFollowing bool `gorm:"-" json:"is_following"`

	Posts []Post `gorm:"foreignKey:UserID" json:"posts,omitempty"`
}

// Follower is a user entry in a followers listing, carrying the time the
// follow edge was created.
type Follower struct {
	User
	FollowedAt time.Time `json:"followed_at"`
}

// LikedUser is a user entry in a liked-users listing, carrying which post was
// liked and when.
type LikedUser struct {
	User
	LikedPostID uint      `json:"liked_post_id"`
	LikedAt     time.Time `json:"liked_at"`
}
