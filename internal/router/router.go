package router

import (
	"time"

	"coinadmin/config"
	"coinadmin/internal/handler"
	"coinadmin/internal/middleware"
	"coinadmin/internal/repository"
	"coinadmin/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Setup(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RateLimit(middleware.NewInMemoryRateLimiter(100, 60*time.Second)))

	// Repositories
	adminRepo := repository.NewAdminRepository(db)
	userRepo := repository.NewUserRepository(db)
	depositRepo := repository.NewDepositRepository(db)
	withdrawalRepo := repository.NewWithdrawalRepository(db)
	settingRepo := repository.NewSettingRepository(db)
	referralRepo := repository.NewReferralRepository(db)
	paymentMethodRepo := repository.NewPaymentMethodRepository(db)

	// Services
	authSvc := service.NewAuthService(cfg, adminRepo)
	settlementSvc := service.NewSettlementService(db)

	// Handlers
	authHandler := handler.NewAuthHandler(cfg, authSvc, adminRepo)
	adminHandler := handler.NewAdminHandler(adminRepo, userRepo)
	depositHandler := handler.NewDepositHandler(depositRepo, settlementSvc)
	withdrawalHandler := handler.NewWithdrawalHandler(withdrawalRepo, settlementSvc)
	settingsHandler := handler.NewSettingsHandler(settingRepo, referralRepo, paymentMethodRepo)

	authMw := middleware.AdminRequired(&cfg.JWT)

	api := r.Group("/api/v1")
	{
		api.POST("/auth/login", authHandler.Login)

		authed := api.Group("")
		authed.Use(authMw)
		{
			authed.GET("/auth/me", authHandler.Me)
			authed.POST("/auth/logout", authHandler.Logout)

			authed.GET("/dashboard", adminHandler.Dashboard)
			authed.GET("/users", adminHandler.ListUsers)

			authed.GET("/deposits", depositHandler.List)
			authed.POST("/deposits/:id/approve", depositHandler.Approve)
			authed.POST("/deposits/:id/reject", depositHandler.Reject)

			authed.GET("/withdrawals", withdrawalHandler.List)
			authed.POST("/withdrawals/:id/approve", withdrawalHandler.Approve)
			authed.POST("/withdrawals/:id/reject", withdrawalHandler.Reject)

			authed.GET("/settings", settingsHandler.Get)
			authed.POST("/settings/coins", settingsHandler.SaveCoinSettings)
			authed.POST("/settings/referral", settingsHandler.SaveReferralSetting)
			authed.POST("/settings/payment-methods", settingsHandler.CreatePaymentMethod)
			authed.PATCH("/settings/payment-methods/:id", settingsHandler.UpdatePaymentMethod)
			authed.DELETE("/settings/payment-methods/:id", settingsHandler.DeletePaymentMethod)
		}
	}

	return r
}
