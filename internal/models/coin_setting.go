package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CoinSetting holds the buy/sell margin percentages per coin and network.
// Rows are upserted on the (coin_symbol, network) pair and never deleted.
type CoinSetting struct {
	ID         string          `gorm:"primaryKey;size:36" json:"id"`
	CoinSymbol string          `gorm:"size:16;not null;uniqueIndex:idx_coin_network" json:"coin_symbol"`
	Network    string          `gorm:"size:32;not null;uniqueIndex:idx_coin_network" json:"network"`
	BuyMargin  decimal.Decimal `gorm:"type:decimal(8,4);not null" json:"buy_margin"`
	SellMargin decimal.Decimal `gorm:"type:decimal(8,4);not null" json:"sell_margin"`
	IsActive   bool            `gorm:"not null;default:true" json:"is_active"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

func (CoinSetting) TableName() string { return "coin_settings" }

func (c *CoinSetting) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = newID()
	}
	return nil
}
