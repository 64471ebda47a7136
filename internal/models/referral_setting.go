package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReferralSettingID pins the singleton row so concurrent first-time saves
// upsert the same key instead of racing to create two rows.
const ReferralSettingID = "referral-setting"

// ReferralSetting is the single global row holding referral bonus amounts.
type ReferralSetting struct {
	ID            string          `gorm:"primaryKey;size:36" json:"id"`
	ReferrerBonus decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"referrer_bonus"`
	RefereeBonus  decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"referee_bonus"`
	IsActive      bool            `gorm:"not null;default:true" json:"is_active"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

func (ReferralSetting) TableName() string { return "referral_settings" }
