package repository

import (
	"coinadmin/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SettingRepository struct {
	db *gorm.DB
}

func NewSettingRepository(db *gorm.DB) *SettingRepository {
	return &SettingRepository{db: db}
}

// CoinSettingInput is one margin entry from the settings form.
type CoinSettingInput struct {
	Symbol     string          `json:"symbol" binding:"required"`
	Network    string          `json:"network" binding:"required"`
	BuyMargin  decimal.Decimal `json:"buyMargin"`
	SellMargin decimal.Decimal `json:"sellMargin"`
}

// UpsertCoinSetting creates or updates the margin row keyed by the unique
// (coin_symbol, network) pair. New rows default to active; updates leave
// is_active untouched.
func (r *SettingRepository) UpsertCoinSetting(in CoinSettingInput) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "coin_symbol"}, {Name: "network"}},
		DoUpdates: clause.AssignmentColumns([]string{"buy_margin", "sell_margin", "updated_at"}),
	}).Create(&models.CoinSetting{
		CoinSymbol: in.Symbol,
		Network:    in.Network,
		BuyMargin:  in.BuyMargin,
		SellMargin: in.SellMargin,
		IsActive:   true,
	}).Error
}

func (r *SettingRepository) ListCoinSettings() ([]models.CoinSetting, error) {
	var list []models.CoinSetting
	err := r.db.Order("coin_symbol ASC").Find(&list).Error
	return list, err
}
