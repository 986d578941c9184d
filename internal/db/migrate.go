package db

import (
	"errors"

	"github.com/hcanhquan/royalvietnam-backend/internal/app/model"
	"github.com/hcanhquan/royalvietnam-backend/pkg/logger"
	"gorm.io/gorm"
)

// Migrate runs database migrations and seeds the fixed admin account.
// Idempotent: creating tables is a no-op when they exist, and re-seeding an
// existing admin is silent.
func Migrate(seedAdminUsername, seedAdminPassword string) error {
	return MigrateWith(DB, seedAdminUsername, seedAdminPassword)
}

// MigrateWith runs the same migrations against an explicit connection.
func MigrateWith(db *gorm.DB, seedAdminUsername, seedAdminPassword string) error {
	logger.Info("Running database migrations...")

	models := []interface{}{
		&model.AdminUser{},
		&model.Business{},
		&model.BusinessAccount{},
		&model.DocumentTransaction{},
	}

	if err := db.AutoMigrate(models...); err != nil {
		logger.Error("Failed to run migrations", err)
		return err
	}

	if err := EnsureSeedAdmin(db, seedAdminUsername, seedAdminPassword); err != nil {
		logger.Error("Failed to seed admin user during migration", err)
		return err
	}

	logger.Info("Database migrations completed successfully", map[string]interface{}{
		"models_count": len(models),
	})
	return nil
}

// EnsureSeedAdmin inserts the seed admin account if no admin with that
// username exists. An already-present admin is the expected steady state and
// must never fail initialization.
func EnsureSeedAdmin(db *gorm.DB, username, password string) error {
	var existing model.AdminUser
	err := db.Where("username = ?", username).First(&existing).Error
	if err == nil {
		logger.Info("Seed admin already exists, skipping", map[string]interface{}{
			"username": username,
		})
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	admin := model.AdminUser{
		Username: username,
		Password: password,
		Role:     model.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		// Concurrent seed may have won the race; a duplicate is fine.
		var check model.AdminUser
		if db.Where("username = ?", username).First(&check).Error == nil {
			return nil
		}
		return err
	}

	logger.Info("Seed admin created", map[string]interface{}{
		"username": username,
	})
	return nil
}
