package handler

import (
	"errors"
	"net/http"

	"coinadmin/internal/models"
	"coinadmin/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type SettingsHandler struct {
	settingRepo       *repository.SettingRepository
	referralRepo      *repository.ReferralRepository
	paymentMethodRepo *repository.PaymentMethodRepository
}

func NewSettingsHandler(
	settingRepo *repository.SettingRepository,
	referralRepo *repository.ReferralRepository,
	paymentMethodRepo *repository.PaymentMethodRepository,
) *SettingsHandler {
	return &SettingsHandler{
		settingRepo:       settingRepo,
		referralRepo:      referralRepo,
		paymentMethodRepo: paymentMethodRepo,
	}
}

// Get handles GET /settings — everything the settings page shows.
func (h *SettingsHandler) Get(c *gin.Context) {
	coins, err := h.settingRepo.ListCoinSettings()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load settings"})
		return
	}
	referral, err := h.referralRepo.Get()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load settings"})
		return
	}
	methods, err := h.paymentMethodRepo.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load settings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"coin_settings":    coins,
		"referral_setting": referral,
		"payment_methods":  methods,
	})
}

// SaveCoinSettings handles POST /settings/coins. Entries are upserted one
// by one; a failure mid-batch leaves earlier entries applied.
func (h *SettingsHandler) SaveCoinSettings(c *gin.Context) {
	var req struct {
		Settings []repository.CoinSettingInput `json:"settings" binding:"required,dive"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	for _, in := range req.Settings {
		if err := h.settingRepo.UpsertCoinSetting(in); err != nil {
			zap.L().Error("coin setting upsert failed",
				zap.String("symbol", in.Symbol),
				zap.String("network", in.Network),
				zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// SaveReferralSetting handles POST /settings/referral.
func (h *SettingsHandler) SaveReferralSetting(c *gin.Context) {
	var req struct {
		ReferrerBonus decimal.Decimal `json:"referrerBonus"`
		RefereeBonus  decimal.Decimal `json:"refereeBonus"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.referralRepo.Save(req.ReferrerBonus, req.RefereeBonus); err != nil {
		zap.L().Error("referral setting save failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// CreatePaymentMethod handles POST /settings/payment-methods.
func (h *SettingsHandler) CreatePaymentMethod(c *gin.Context) {
	var req struct {
		Type        string `json:"type" binding:"required"`
		Name        string `json:"name" binding:"required"`
		AccountNo   string `json:"accountNo" binding:"required"`
		AccountName string `json:"accountName" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	m := &models.PaymentMethod{
		Type:        req.Type,
		Name:        req.Name,
		AccountNo:   req.AccountNo,
		AccountName: req.AccountName,
		IsActive:    true,
	}
	if err := h.paymentMethodRepo.Create(m); err != nil {
		zap.L().Error("payment method create failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// UpdatePaymentMethod handles PATCH /settings/payment-methods/:id.
func (h *SettingsHandler) UpdatePaymentMethod(c *gin.Context) {
	var req struct {
		IsActive *bool `json:"isActive" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.paymentMethodRepo.SetActive(c.Param("id"), *req.IsActive); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "payment method not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DeletePaymentMethod handles DELETE /settings/payment-methods/:id.
func (h *SettingsHandler) DeletePaymentMethod(c *gin.Context) {
	if err := h.paymentMethodRepo.Delete(c.Param("id")); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "payment method not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
