package models

import (
	"time"

	"gorm.io/gorm"
)

// User is a customer of the top-up service, registered through the
// Telegram bot. The admin app never creates users; it only reads them and
// settles their deposits/withdrawals.
type User struct {
	ID           string         `gorm:"primaryKey;size:36" json:"id"`
	TelegramID   int64          `gorm:"uniqueIndex;not null" json:"telegram_id"`
	Username     string         `gorm:"size:64" json:"username"`
	FirstName    string         `gorm:"size:64" json:"first_name"`
	LastName     string         `gorm:"size:64" json:"last_name"`
	Email        string         `gorm:"size:255" json:"email"`
	Whatsapp     string         `gorm:"size:32" json:"whatsapp"`
	Latitude     *float64       `json:"latitude"`
	Longitude    *float64       `json:"longitude"`
	ReferralCode string         `gorm:"uniqueIndex;size:16;not null" json:"referral_code"`
	ReferredByID *string        `gorm:"size:36;index" json:"referred_by_id"`
	Status       string         `gorm:"size:20;not null;index;default:'ACTIVE'" json:"status"` // PENDING, ACTIVE, INACTIVE, BANNED
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	Balance *Balance `gorm:"foreignKey:UserID" json:"balance,omitempty"`
}

func (User) TableName() string { return "users" }

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = newID()
	}
	return nil
}
