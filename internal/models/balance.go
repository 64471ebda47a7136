package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Balance holds a user's fiat balance in Rupiah. One row per user, created
// together with the user. Only settlement transactions mutate the amount.
type Balance struct {
	ID        string          `gorm:"primaryKey;size:36" json:"id"`
	UserID    string          `gorm:"uniqueIndex;size:36;not null" json:"user_id"`
	Amount    decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0" json:"amount"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
}

func (Balance) TableName() string { return "balances" }

func (b *Balance) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = newID()
	}
	return nil
}
