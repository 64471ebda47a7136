package models

import (
	"time"

	"coinadmin/internal/domain"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Transaction is the user-facing ledger row for a balance-affecting event.
// It mirrors the status of the deposit or withdrawal that created it, linked
// by an explicit foreign key so settlement never guesses which pending row
// belongs to which request.
type Transaction struct {
	ID           string          `gorm:"primaryKey;size:36" json:"id"`
	UserID       string          `gorm:"size:36;not null;index" json:"user_id"`
	Type         string          `gorm:"size:20;not null;index" json:"type"` // TOPUP, WITHDRAW
	Amount       decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"amount"`
	Status       domain.Status   `gorm:"size:20;not null;index;default:'PENDING'" json:"status"`
	Description  string          `gorm:"size:255" json:"description"`
	DepositID    *string         `gorm:"size:36;index" json:"deposit_id"`
	WithdrawalID *string         `gorm:"size:36;index" json:"withdrawal_id"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
	DeletedAt    gorm.DeletedAt  `gorm:"index" json:"-"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
}

func (Transaction) TableName() string { return "transactions" }

func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = newID()
	}
	return nil
}
