package database

import (
	"fmt"

	"github.com/vueblog/blog-backend/internal/config"
	"github.com/vueblog/blog-backend/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	seedAdminUsername = "admin"
	seedAdminPassword = "admin123"
)

// Connect opens a MySQL connection, runs auto-migration and seeds the
// default admin account and settings row.
func Connect(cfg *config.AppConfig) (*gorm.DB, error) {
	logLevel := logger.Warn
	if cfg.IsDev() {
		logLevel = logger.Info
	}

	db, err := gorm.Open(mysql.New(mysql.Config{
		DSN:               cfg.Database.DSNValue(),
		DefaultStringSize: 191,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	if err := migrate(db); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}
	if err := seed(db); err != nil {
		return nil, fmt.Errorf("seed failed: %w", err)
	}

	return db, nil
}

// migrate runs GORM auto-migration for all models.
func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.UserModel{},
		&models.CategoryModel{},
		&models.ArticleModel{},
		&models.CommentModel{},
		&models.ContributorModel{},
		&models.SettingModel{},
	)
}

// seed creates the default admin user and settings row on first start.
func seed(db *gorm.DB) error {
	var userCount int64
	if err := db.Model(&models.UserModel{}).Count(&userCount).Error; err != nil {
		return err
	}
	if userCount == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte(seedAdminPassword), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		admin := models.UserModel{
			Username: seedAdminUsername,
			Password: string(hash),
			Nickname: "Administrator",
			Status:   models.UserStatusEnabled,
		}
		if err := db.Create(&admin).Error; err != nil {
			return err
		}
	}

	var settingCount int64
	if err := db.Model(&models.SettingModel{}).Count(&settingCount).Error; err != nil {
		return err
	}
	if settingCount == 0 {
		setting := models.SettingModel{
			SiteName:        "My Blog",
			SiteDescription: "A blog powered by blog-backend",
			FooterInfo:      "Powered by blog-backend",
			AllowComments:   true,
			CommentAudit:    true,
		}
		if err := db.Create(&setting).Error; err != nil {
			return err
		}
	}
	return nil
}
