package models

import "gorm.io/gorm"

// MaxMessageLength bounds the text of a single warble.
const MaxMessageLength = 140

// Message represents a short post ("warble") owned by a user.
// Text is immutable once created; there is no edit operation.
type Message struct {
	gorm.Model
	Text   string `gorm:"size:140;not null;check:text <> ''"`
	UserID uint   `gorm:"not null;index"`

	User User `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
