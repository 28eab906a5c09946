package models

import "time"

// Like represents a user's endorsement of a specific message.
// The combination of UserID and MessageID must be unique.
type Like struct {
	ID        uint `gorm:"primaryKey"`
	UserID    uint `gorm:"not null;uniqueIndex:idx_user_message"`
	MessageID uint `gorm:"not null;uniqueIndex:idx_user_message"`
	CreatedAt time.Time

	User    User    `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Message Message `gorm:"foreignKey:MessageID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
