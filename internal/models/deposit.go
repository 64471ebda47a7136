package models

import (
	"time"

	"coinadmin/internal/domain"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Deposit is a pending top-up created by the bot, awaiting an admin
// decision. adminNote carries the rejection reason when cancelled.
type Deposit struct {
	ID            string          `gorm:"primaryKey;size:36" json:"id"`
	UserID        string          `gorm:"size:36;not null;index" json:"user_id"`
	Amount        decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"amount"`
	PaymentMethod string          `gorm:"size:64;not null" json:"payment_method"`
	Status        domain.Status   `gorm:"size:20;not null;index;default:'PENDING'" json:"status"`
	AdminNote     string          `gorm:"size:512" json:"admin_note"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	DeletedAt     gorm.DeletedAt  `gorm:"index" json:"-"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (Deposit) TableName() string { return "deposits" }

func (d *Deposit) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = newID()
	}
	return nil
}
