package models

import "gorm.io/gorm"

const (
	DefaultImageURL       = "/static/images/default-pic.png"
	DefaultHeaderImageURL = "/static/images/warbler-hero.jpg"
)

// User represents a user in the system.
type User struct {
	gorm.Model
	Username     string `gorm:"size:255;uniqueIndex;not null;check:username <> ''"`
	Email        string `gorm:"size:255;uniqueIndex;not null;check:email <> ''"`
	PasswordHash string `gorm:"size:255;not null"`

	ImageURL       string `gorm:"size:512;default:'/static/images/default-pic.png'"`
	HeaderImageURL string `gorm:"size:512;default:'/static/images/warbler-hero.jpg'"`
	Bio            string
	Location       string `gorm:"size:255"`

	Messages []Message `gorm:"foreignKey:UserID"`
}
