package models

import (
	"time"

	"gorm.io/gorm"
)

// PaymentMethod is a destination account users can top up through.
type PaymentMethod struct {
	ID          string         `gorm:"primaryKey;size:36" json:"id"`
	Type        string         `gorm:"size:20;not null" json:"type"` // BANK, EWALLET
	Name        string         `gorm:"size:64;not null" json:"name"`
	AccountNo   string         `gorm:"size:64;not null" json:"account_no"`
	AccountName string         `gorm:"size:128;not null" json:"account_name"`
	IsActive    bool           `gorm:"not null;default:true" json:"is_active"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (PaymentMethod) TableName() string { return "payment_methods" }

func (p *PaymentMethod) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = newID()
	}
	return nil
}
