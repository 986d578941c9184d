package repository

import (
	"github.com/hcanhquan/royalvietnam-backend/internal/app/model"
	"github.com/hcanhquan/royalvietnam-backend/pkg/logger"
	"gorm.io/gorm"
)

type AdminRepository interface {
	FindByUsername(username string) (*model.AdminUser, error)
	UpdatePassword(id uint, newPassword string) error
}

type adminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) FindByUsername(username string) (*model.AdminUser, error) {
	var admin model.AdminUser
	if err := r.db.Where("username = ?", username).First(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *adminRepository) UpdatePassword(id uint, newPassword string) error {
	logger.Debug("Updating admin password", map[string]interface{}{
		"admin_id": id,
	})

	if err := r.db.Model(&model.AdminUser{}).
		Where("id = ?", id).
		Update("password", newPassword).Error; err != nil {
		logger.Error("Failed to update admin password", err, map[string]interface{}{
			"admin_id": id,
		})
		return err
	}
	return nil
}
