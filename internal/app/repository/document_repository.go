package repository

import (
	"github.com/hcanhquan/royalvietnam-backend/internal/app/model"
	"github.com/hcanhquan/royalvietnam-backend/pkg/logger"
	"gorm.io/gorm"
)

type DocumentRepository interface {
	Create(transaction *model.DocumentTransaction) error
	FindByID(id uint) (*model.DocumentTransaction, error)
	FindAll() ([]model.DocumentTransaction, error)
	FindByBusinessID(businessID uint) ([]model.DocumentTransaction, error)
	FindByCompanyName(name string) ([]model.DocumentTransaction, error)
	UpdateFields(id uint, fields map[string]interface{}) error
	Delete(id uint) (int64, error)
}

type documentRepository struct {
	db *gorm.DB
}

func NewDocumentRepository(db *gorm.DB) DocumentRepository {
	return &documentRepository{db: db}
}

func (r *documentRepository) Create(transaction *model.DocumentTransaction) error {
	logger.Debug("Creating document transaction in database", map[string]interface{}{
		"business_id":   transaction.BusinessID,
		"document_type": transaction.DocumentType,
	})

	if err := r.db.Create(transaction).Error; err != nil {
		logger.Error("Failed to create document transaction in database", err, map[string]interface{}{
			"business_id": transaction.BusinessID,
		})
		return err
	}
	return nil
}

func (r *documentRepository) FindByID(id uint) (*model.DocumentTransaction, error) {
	var transaction model.DocumentTransaction
	if err := r.db.First(&transaction, id).Error; err != nil {
		return nil, err
	}
	return &transaction, nil
}

func (r *documentRepository) FindAll() ([]model.DocumentTransaction, error) {
	var transactions []model.DocumentTransaction
	if err := r.db.Order("created_at ASC").Find(&transactions).Error; err != nil {
		logger.Error("Failed to list document transactions", err)
		return nil, err
	}
	return transactions, nil
}

func (r *documentRepository) FindByBusinessID(businessID uint) ([]model.DocumentTransaction, error) {
	var transactions []model.DocumentTransaction
	if err := r.db.Where("business_id = ?", businessID).
		Order("created_at ASC").
		Find(&transactions).Error; err != nil {
		logger.Error("Failed to list document transactions for business", err, map[string]interface{}{
			"business_id": businessID,
		})
		return nil, err
	}
	return transactions, nil
}

// FindByCompanyName lists transactions where the company appears on either
// side of the handover.
func (r *documentRepository) FindByCompanyName(name string) ([]model.DocumentTransaction, error) {
	var transactions []model.DocumentTransaction
	if err := r.db.Where("delivery_company = ? OR receiving_company = ?", name, name).
		Order("created_at ASC").
		Find(&transactions).Error; err != nil {
		logger.Error("Failed to list document transactions by company", err, map[string]interface{}{
			"company": name,
		})
		return nil, err
	}
	return transactions, nil
}

func (r *documentRepository) UpdateFields(id uint, fields map[string]interface{}) error {
	logger.Debug("Updating document transaction in database", map[string]interface{}{
		"transaction_id": id,
	})

	if err := r.db.Model(&model.DocumentTransaction{}).Where("id = ?", id).Updates(fields).Error; err != nil {
		logger.Error("Failed to update document transaction in database", err, map[string]interface{}{
			"transaction_id": id,
		})
		return err
	}
	return nil
}

func (r *documentRepository) Delete(id uint) (int64, error) {
	result := r.db.Delete(&model.DocumentTransaction{}, id)
	if result.Error != nil {
		logger.Error("Failed to delete document transaction from database", result.Error, map[string]interface{}{
			"transaction_id": id,
		})
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
