package models

import "time"

// Follow represents a directed follow edge between two users.
// The primary key is a composite of (FollowerID, FollowedID) to ensure uniqueness.
type Follow struct {
	FollowerID uint `gorm:"primaryKey"`
	FollowedID uint `gorm:"primaryKey"`
	CreatedAt  time.Time

	// Define foreign key relationships
	Follower User `gorm:"foreignKey:FollowerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Followed User `gorm:"foreignKey:FollowedID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
