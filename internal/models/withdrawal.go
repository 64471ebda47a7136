package models

import (
	"time"

	"coinadmin/internal/domain"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Withdrawal is a payout request. The bot debits the user's balance when
// the request is created; rejecting it here refunds that amount. The
// destination is either a bank account or an e-wallet, never both.
type Withdrawal struct {
	ID            string          `gorm:"primaryKey;size:36" json:"id"`
	UserID        string          `gorm:"size:36;not null;index" json:"user_id"`
	Amount        decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"amount"`
	BankName      string          `gorm:"size:64" json:"bank_name"`
	AccountNumber string          `gorm:"size:64" json:"account_number"`
	AccountName   string          `gorm:"size:128" json:"account_name"`
	EwalletType   string          `gorm:"size:32" json:"ewallet_type"`
	EwalletNumber string          `gorm:"size:32" json:"ewallet_number"`
	Status        domain.Status   `gorm:"size:20;not null;index;default:'PENDING'" json:"status"`
	AdminNote     string          `gorm:"size:512" json:"admin_note"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	DeletedAt     gorm.DeletedAt  `gorm:"index" json:"-"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (Withdrawal) TableName() string { return "withdrawals" }

func (w *Withdrawal) BeforeCreate(tx *gorm.DB) error {
	if w.ID == "" {
		w.ID = newID()
	}
	return nil
}
