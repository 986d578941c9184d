package repository

import (
	"github.com/hcanhquan/royalvietnam-backend/internal/app/model"
	"github.com/hcanhquan/royalvietnam-backend/pkg/logger"
	"gorm.io/gorm"
)

// BusinessListOptions controls pagination and sorting of the directory list.
type BusinessListOptions struct {
	Page      int
	Limit     int
	SortBy    string // createdAt, name, taxId
	SortOrder string // asc, desc
}

// BusinessListResult is one page of the directory plus the total row count.
type BusinessListResult struct {
	Businesses []model.Business `json:"businesses"`
	Total      int64            `json:"total"`
}

type BusinessRepository interface {
	Create(business *model.Business) error
	FindByID(id uint) (*model.Business, error)
	FindByTaxID(taxID string) (*model.Business, error)
	FindAll(opts BusinessListOptions) (*BusinessListResult, error)
	FindAllByName() ([]model.Business, error)
	UpdateFields(id uint, fields map[string]interface{}) error
	Delete(id uint) (int64, error)
	Search(field, value string) ([]model.Business, error)
	BulkCreate(businesses []model.Business, batchSize int) error
}

type businessRepository struct {
	db *gorm.DB
}

func NewBusinessRepository(db *gorm.DB) BusinessRepository {
	return &businessRepository{db: db}
}

// sortColumns whitelists sortBy values; anything else falls back to created_at.
var sortColumns = map[string]string{
	"createdAt": "created_at",
	"name":      "name",
	"taxId":     "tax_id",
}

// searchColumns maps the fixed search-field vocabulary to columns. Fields
// ending in "Partial" use substring matching.
var searchColumns = map[string]string{
	"address":        "address",
	"addressPartial": "address",
	"name":           "name",
	"namePartial":    "name",
	"taxId":          "tax_id",
	"industry":       "industry",
	"contactPerson":  "contact_person",
	"phone":          "phone",
	"email":          "email",
	"website":        "website",
	"account":        "account",
	"bankAccount":    "bank_account",
	"bankName":       "bank_name",
}

func (r *businessRepository) Create(business *model.Business) error {
	logger.Debug("Creating business in database", map[string]interface{}{
		"name":   business.Name,
		"tax_id": business.TaxID,
	})

	if err := r.db.Create(business).Error; err != nil {
		logger.Error("Failed to create business in database", err, map[string]interface{}{
			"name":   business.Name,
			"tax_id": business.TaxID,
		})
		return err
	}

	logger.Debug("Business created in database", map[string]interface{}{
		"business_id": business.ID,
		"name":        business.Name,
	})
	return nil
}

func (r *businessRepository) FindByID(id uint) (*model.Business, error) {
	var business model.Business
	if err := r.db.First(&business, id).Error; err != nil {
		return nil, err
	}
	return &business, nil
}

func (r *businessRepository) FindByTaxID(taxID string) (*model.Business, error) {
	var business model.Business
	if err := r.db.Where("tax_id = ?", taxID).First(&business).Error; err != nil {
		return nil, err
	}
	return &business, nil
}

func (r *businessRepository) FindAll(opts BusinessListOptions) (*BusinessListResult, error) {
	logger.Debug("Listing businesses", map[string]interface{}{
		"page":       opts.Page,
		"limit":      opts.Limit,
		"sort_by":    opts.SortBy,
		"sort_order": opts.SortOrder,
	})

	column, ok := sortColumns[opts.SortBy]
	if !ok {
		column = "created_at"
	}
	order := column + " ASC"
	if opts.SortOrder == "desc" {
		order = column + " DESC"
	}

	offset := (opts.Page - 1) * opts.Limit

	var businesses []model.Business
	if err := r.db.Model(&model.Business{}).
		Order(order).
		Limit(opts.Limit).
		Offset(offset).
		Find(&businesses).Error; err != nil {
		logger.Error("Failed to list businesses", err, map[string]interface{}{
			"page": opts.Page,
		})
		return nil, err
	}

	var total int64
	if err := r.db.Model(&model.Business{}).Count(&total).Error; err != nil {
		logger.Error("Failed to count businesses", err)
		return nil, err
	}

	return &BusinessListResult{Businesses: businesses, Total: total}, nil
}

func (r *businessRepository) FindAllByName() ([]model.Business, error) {
	var businesses []model.Business
	if err := r.db.Order("name ASC").Find(&businesses).Error; err != nil {
		logger.Error("Failed to list businesses for autocomplete", err)
		return nil, err
	}
	return businesses, nil
}

func (r *businessRepository) UpdateFields(id uint, fields map[string]interface{}) error {
	logger.Debug("Updating business in database", map[string]interface{}{
		"business_id": id,
	})

	if err := r.db.Model(&model.Business{}).Where("id = ?", id).Updates(fields).Error; err != nil {
		logger.Error("Failed to update business in database", err, map[string]interface{}{
			"business_id": id,
		})
		return err
	}
	return nil
}

func (r *businessRepository) Delete(id uint) (int64, error) {
	logger.Debug("Deleting business from database", map[string]interface{}{
		"business_id": id,
	})

	result := r.db.Delete(&model.Business{}, id)
	if result.Error != nil {
		logger.Error("Failed to delete business from database", result.Error, map[string]interface{}{
			"business_id": id,
		})
		return 0, result.Error
	}

	logger.Debug("Business deleted from database", map[string]interface{}{
		"business_id":   id,
		"rows_affected": result.RowsAffected,
	})
	return result.RowsAffected, nil
}

func (r *businessRepository) Search(field, value string) ([]model.Business, error) {
	logger.Debug("Searching businesses", map[string]interface{}{
		"field": field,
	})

	column, ok := searchColumns[field]
	if !ok {
		// Unrecognized field yields an empty result set, not an error.
		return []model.Business{}, nil
	}

	query := r.db.Model(&model.Business{})
	if len(field) > 7 && field[len(field)-7:] == "Partial" {
		query = query.Where(column+" LIKE ?", "%"+value+"%")
	} else {
		query = query.Where(column+" = ?", value)
	}

	var businesses []model.Business
	if err := query.Find(&businesses).Error; err != nil {
		logger.Error("Failed to search businesses", err, map[string]interface{}{
			"field": field,
		})
		return nil, err
	}
	return businesses, nil
}

// BulkCreate inserts businesses in batches. Used by the seed importer.
func (r *businessRepository) BulkCreate(businesses []model.Business, batchSize int) error {
	logger.Info("Bulk creating businesses", map[string]interface{}{
		"count":      len(businesses),
		"batch_size": batchSize,
	})

	if err := r.db.CreateInBatches(businesses, batchSize).Error; err != nil {
		logger.Error("Failed to bulk create businesses", err, map[string]interface{}{
			"count": len(businesses),
		})
		return err
	}
	return nil
}
