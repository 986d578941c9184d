package repository

import (
	"time"

	"github.com/hcanhquan/royalvietnam-backend/internal/app/model"
	"github.com/hcanhquan/royalvietnam-backend/pkg/logger"
	"gorm.io/gorm"
)

type AccountRepository interface {
	Create(account *model.BusinessAccount) error
	FindByBusinessID(businessID uint) (*model.BusinessAccount, error)
	Update(account *model.BusinessAccount) error
	FindExpiringTokens(before time.Time) ([]model.BusinessAccount, error)
}

type accountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{db: db}
}

func (r *accountRepository) Create(account *model.BusinessAccount) error {
	logger.Debug("Creating business account in database", map[string]interface{}{
		"business_id": account.BusinessID,
	})

	if err := r.db.Create(account).Error; err != nil {
		logger.Error("Failed to create business account in database", err, map[string]interface{}{
			"business_id": account.BusinessID,
		})
		return err
	}
	return nil
}

func (r *accountRepository) FindByBusinessID(businessID uint) (*model.BusinessAccount, error) {
	var account model.BusinessAccount
	if err := r.db.Where("business_id = ?", businessID).First(&account).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *accountRepository) Update(account *model.BusinessAccount) error {
	logger.Debug("Updating business account in database", map[string]interface{}{
		"account_id":  account.ID,
		"business_id": account.BusinessID,
	})

	if err := r.db.Save(account).Error; err != nil {
		logger.Error("Failed to update business account in database", err, map[string]interface{}{
			"account_id": account.ID,
		})
		return err
	}
	return nil
}

// FindExpiringTokens returns accounts whose signing token expires on or
// before the given day. Expiration dates are stored as yyyy-mm-dd strings so
// the comparison works lexicographically.
func (r *accountRepository) FindExpiringTokens(before time.Time) ([]model.BusinessAccount, error) {
	var accounts []model.BusinessAccount
	cutoff := before.Format("2006-01-02")
	if err := r.db.Where("token_expiration_date <> '' AND token_expiration_date <= ?", cutoff).
		Find(&accounts).Error; err != nil {
		logger.Error("Failed to scan for expiring tokens", err)
		return nil, err
	}
	return accounts, nil
}
