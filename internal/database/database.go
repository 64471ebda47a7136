package database

import (
	"errors"

	"coinadmin/config"
	"coinadmin/internal/models"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(cfg.DSN), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	})
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	return db, nil
}

// AutoMigrate runs Gorm auto-migration for all models.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Admin{},
		&models.User{},
		&models.Balance{},
		&models.Deposit{},
		&models.Withdrawal{},
		&models.Transaction{},
		&models.CoinSetting{},
		&models.PaymentMethod{},
		&models.ReferralSetting{},
	)
}

// SeedAdmin creates the initial admin account if the username is unused.
func SeedAdmin(db *gorm.DB, cfg *config.AdminConfig) error {
	var existing models.Admin
	err := db.Where("username = ?", cfg.Username).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := &models.Admin{
		Username:     cfg.Username,
		PasswordHash: string(hash),
		Name:         cfg.Name,
	}
	if err := db.Create(admin).Error; err != nil {
		return err
	}
	zap.L().Info("seeded admin account", zap.String("username", cfg.Username))
	return nil
}
