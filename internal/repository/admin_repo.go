package repository

import (
	"coinadmin/internal/domain"
	"coinadmin/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type AdminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

func (r *AdminRepository) GetByUsername(username string) (*models.Admin, error) {
	var a models.Admin
	if err := r.db.Where("username = ?", username).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AdminRepository) GetByID(id string) (*models.Admin, error) {
	var a models.Admin
	if err := r.db.Where("id = ?", id).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

// DashboardStats mirrors the overview cards on the admin dashboard.
type DashboardStats struct {
	TotalUsers             int64           `json:"total_users"`
	ActiveUsers            int64           `json:"active_users"`
	PendingDeposits        int64           `json:"pending_deposits"`
	PendingWithdrawals     int64           `json:"pending_withdrawals"`
	TotalDepositsAmount    decimal.Decimal `json:"total_deposits_amount"`
	TotalWithdrawalsAmount decimal.Decimal `json:"total_withdrawals_amount"`
}

func (r *AdminRepository) GetDashboardStats() (*DashboardStats, error) {
	var stats DashboardStats
	if err := r.db.Model(&models.User{}).Count(&stats.TotalUsers).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.User{}).Where("status = ?", domain.UserActive).Count(&stats.ActiveUsers).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.Deposit{}).Where("status = ?", domain.StatusPending).Count(&stats.PendingDeposits).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.Withdrawal{}).Where("status = ?", domain.StatusPending).Count(&stats.PendingWithdrawals).Error; err != nil {
		return nil, err
	}
	if err := r.sumCompleted(&models.Deposit{}, &stats.TotalDepositsAmount); err != nil {
		return nil, err
	}
	if err := r.sumCompleted(&models.Withdrawal{}, &stats.TotalWithdrawalsAmount); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (r *AdminRepository) sumCompleted(model interface{}, out *decimal.Decimal) error {
	var row struct {
		Total decimal.Decimal
	}
	err := r.db.Model(model).
		Select("COALESCE(SUM(amount), 0) AS total").
		Where("status = ?", domain.StatusCompleted).
		Scan(&row).Error
	if err != nil {
		return err
	}
	*out = row.Total
	return nil
}
