package models

import (
	"time"
)

// User is a registered shopper. Only the password hash is ever mutable and no
// route exposes that.
type User struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	Username     string    `gorm:"size:80;not null;uniqueIndex" json:"username"`
	Email        string    `gorm:"size:120;not null;uniqueIndex" json:"email"`
	PasswordHash string    `gorm:"size:128;not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`

	CartItems  []CartItem `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Activities []Activity `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
