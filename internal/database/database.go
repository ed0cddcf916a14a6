package database

import (
	"strings"

	"github.com/ginhoang9748-cell/focusflow-api/internal/config"
	"github.com/ginhoang9748-cell/focusflow-api/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func Connect(cfg *config.Config) error {
	var dialector gorm.Dialector

	// Use PostgreSQL if URL starts with postgres, otherwise SQLite
	if strings.HasPrefix(cfg.DatabaseURL, "postgres") {
		dialector = postgres.Open(cfg.DatabaseURL)
	} else {
		dialector = sqlite.Open(cfg.DatabaseURL)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		return err
	}

	DB = db
	return nil
}

func Migrate() error {
	if err := DB.AutoMigrate(
		&models.Goal{},
		&models.TaskLog{},
		&models.SoundSettings{},
		&models.ChatMessage{},
	); err != nil {
		return err
	}
	return seed()
}

// seed inserts the singleton sound settings row and the coach greeting
// the first time the database comes up.
func seed() error {
	var count int64
	DB.Model(&models.SoundSettings{}).Count(&count)
	if count == 0 {
		settings := models.DefaultSoundSettings()
		if err := DB.Create(&settings).Error; err != nil {
			return err
		}
	}

	DB.Model(&models.ChatMessage{}).Count(&count)
	if count == 0 {
		greeting := models.ChatMessage{
			Role: models.RoleModel,
			Text: models.CoachGreeting,
		}
		if err := DB.Create(&greeting).Error; err != nil {
			return err
		}
	}
	return nil
}
