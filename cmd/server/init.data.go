package main

import (
	"context"
	"time"

	authdto "github.com/tanavishali52/BE-saleman/internal/api/auth/dto"
	authmodels "github.com/tanavishali52/BE-saleman/internal/api/auth/models"
	"github.com/tanavishali52/BE-saleman/internal/global"
	"github.com/tanavishali52/BE-saleman/internal/logger"
)

// InitDefaultData tạo admin đầu tiên từ các biến ADMIN_* nếu hệ thống chưa có admin
func InitDefaultData(services *Services) {
	log := logger.GetAppLogger()
	cfg := global.MongoDB_ServerConfig

	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		log.Info("ADMIN_EMAIL / ADMIN_PASSWORD not set, bỏ qua tạo admin mặc định")
		return
	}
	if cfg.AdminPhone == "" || cfg.AdminAddress == "" {
		log.Warn("⚠️ [INIT] Thiếu ADMIN_PHONE / ADMIN_ADDRESS, bỏ qua tạo admin mặc định")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	exists, err := services.Users.Exists(ctx, authmodels.UserFilter{Role: authmodels.RoleAdmin})
	if err != nil {
		log.WithError(err).Error("❌ [INIT] Không thể kiểm tra admin hiện có")
		return
	}
	if exists {
		log.Info("✅ [INIT] Đã có admin, bỏ qua tạo admin mặc định")
		return
	}

	admin, err := services.Auth.Signup(ctx, &authdto.SignupInput{
		Name:     cfg.AdminName,
		Phone:    cfg.AdminPhone,
		Address:  cfg.AdminAddress,
		Email:    cfg.AdminEmail,
		Password: cfg.AdminPassword,
	})
	if err != nil {
		log.WithError(err).Error("❌ [INIT] Không thể tạo admin mặc định")
		return
	}
	log.WithField("user_id", admin.ID.Hex()).Info("✅ [INIT] Đã tạo admin mặc định")
}
