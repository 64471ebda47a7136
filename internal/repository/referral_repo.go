package repository

import (
	"errors"

	"coinadmin/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ReferralRepository struct {
	db *gorm.DB
}

func NewReferralRepository(db *gorm.DB) *ReferralRepository {
	return &ReferralRepository{db: db}
}

// Get returns the singleton referral setting, or nil when it was never saved.
func (r *ReferralRepository) Get() (*models.ReferralSetting, error) {
	var s models.ReferralSetting
	err := r.db.Where("id = ?", models.ReferralSettingID).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Save upserts the singleton row on its fixed primary key, so concurrent
// first-time saves can never create a second row.
func (r *ReferralRepository) Save(referrerBonus, refereeBonus decimal.Decimal) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"referrer_bonus", "referee_bonus", "updated_at"}),
	}).Create(&models.ReferralSetting{
		ID:            models.ReferralSettingID,
		ReferrerBonus: referrerBonus,
		RefereeBonus:  refereeBonus,
		IsActive:      true,
	}).Error
}
