package repository

import (
	"coinadmin/internal/models"

	"gorm.io/gorm"
)

type PaymentMethodRepository struct {
	db *gorm.DB
}

func NewPaymentMethodRepository(db *gorm.DB) *PaymentMethodRepository {
	return &PaymentMethodRepository{db: db}
}

func (r *PaymentMethodRepository) Create(m *models.PaymentMethod) error {
	return r.db.Create(m).Error
}

func (r *PaymentMethodRepository) SetActive(id string, active bool) error {
	res := r.db.Model(&models.PaymentMethod{}).Where("id = ?", id).Update("is_active", active)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *PaymentMethodRepository) Delete(id string) error {
	res := r.db.Where("id = ?", id).Delete(&models.PaymentMethod{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *PaymentMethodRepository) List() ([]models.PaymentMethod, error) {
	var list []models.PaymentMethod
	err := r.db.Order("name ASC").Find(&list).Error
	return list, err
}
