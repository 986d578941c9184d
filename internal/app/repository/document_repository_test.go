package repository

import (
	"testing"
	"time"

	"github.com/hcanhquan/royalvietnam-backend/internal/app/model"
	"github.com/hcanhquan/royalvietnam-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupDocumentTest(t *testing.T) (*gorm.DB, DocumentRepository, *model.Business) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)

	business := &model.Business{Name: "Công ty TNHH ABC", TaxID: "0312345678"}
	require.NoError(t, testDB.Create(business).Error)

	return testDB, NewDocumentRepository(testDB), business
}

func TestDocumentRepository_Create(t *testing.T) {
	testDB, repo, business := setupDocumentTest(t)
	defer db.CleanupTestDB(testDB)

	transaction := &model.DocumentTransaction{
		BusinessID:   business.ID,
		DocumentType: model.DocumentTypeTax,
		DeliveryDate: time.Now(),
		Status:       model.TransactionStatusPending,
	}

	err := repo.Create(transaction)
	assert.NoError(t, err)
	assert.NotZero(t, transaction.ID)
}

func TestDocumentRepository_FindByBusinessID(t *testing.T) {
	testDB, repo, business := setupDocumentTest(t)
	defer db.CleanupTestDB(testDB)

	other := &model.Business{Name: "Công ty B", TaxID: "0300000002"}
	require.NoError(t, testDB.Create(other).Error)

	require.NoError(t, repo.Create(&model.DocumentTransaction{
		BusinessID: business.ID, DocumentType: model.DocumentTypeTax, DeliveryDate: time.Now(),
	}))
	require.NoError(t, repo.Create(&model.DocumentTransaction{
		BusinessID: business.ID, DocumentType: model.DocumentTypeOther, DeliveryDate: time.Now(),
	}))
	require.NoError(t, repo.Create(&model.DocumentTransaction{
		BusinessID: other.ID, DocumentType: model.DocumentTypeOther, DeliveryDate: time.Now(),
	}))

	transactions, err := repo.FindByBusinessID(business.ID)
	assert.NoError(t, err)
	assert.Len(t, transactions, 2)
}

func TestDocumentRepository_UpdateFields(t *testing.T) {
	testDB, repo, business := setupDocumentTest(t)
	defer db.CleanupTestDB(testDB)

	transaction := &model.DocumentTransaction{
		BusinessID:   business.ID,
		DocumentType: model.DocumentTypeTax,
		DeliveryDate: time.Now(),
		Status:       model.TransactionStatusPending,
	}
	require.NoError(t, repo.Create(transaction))

	err := repo.UpdateFields(transaction.ID, map[string]interface{}{
		"signed_file_path": "/documents/signed.pdf",
		"status":           model.TransactionStatusCompleted,
	})
	assert.NoError(t, err)

	updated, err := repo.FindByID(transaction.ID)
	require.NoError(t, err)
	assert.Equal(t, "/documents/signed.pdf", updated.SignedFilePath)
	assert.Equal(t, model.TransactionStatusCompleted, updated.Status)
}

func TestDocumentRepository_Delete(t *testing.T) {
	testDB, repo, business := setupDocumentTest(t)
	defer db.CleanupTestDB(testDB)

	transaction := &model.DocumentTransaction{
		BusinessID:   business.ID,
		DocumentType: model.DocumentTypeOther,
		DeliveryDate: time.Now(),
	}
	require.NoError(t, repo.Create(transaction))

	rows, err := repo.Delete(transaction.ID)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), rows)

	rows, err = repo.Delete(transaction.ID)
	assert.NoError(t, err)
	assert.Zero(t, rows)
}
