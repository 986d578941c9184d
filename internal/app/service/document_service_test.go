package service

import (
	"testing"
	"time"

	"github.com/hcanhquan/royalvietnam-backend/internal/app/model"
	"github.com/hcanhquan/royalvietnam-backend/internal/app/repository"
	"github.com/hcanhquan/royalvietnam-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupDocumentServiceTest(t *testing.T) (DocumentService, *model.Business, *gorm.DB) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	business := &model.Business{Name: "Công ty TNHH ABC", TaxID: "0312345678"}
	require.NoError(t, testDB.Create(business).Error)

	documentRepo := repository.NewDocumentRepository(testDB)
	businessRepo := repository.NewBusinessRepository(testDB)
	return NewDocumentService(documentRepo, businessRepo, testDeletePassword), business, testDB
}

func TestDocumentService_CreateTransaction_Defaults(t *testing.T) {
	svc, business, _ := setupDocumentServiceTest(t)

	transaction, err := svc.CreateTransaction(&model.DocumentTransaction{
		BusinessID: business.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, model.DocumentTypeOther, transaction.DocumentType)
	assert.Equal(t, model.TransactionStatusPending, transaction.Status)
	assert.False(t, transaction.DeliveryDate.IsZero())
	require.NotNil(t, transaction.ReceivingDate)
}

func TestDocumentService_CreateTransaction_InvalidTypeFallsBack(t *testing.T) {
	svc, business, _ := setupDocumentServiceTest(t)

	transaction, err := svc.CreateTransaction(&model.DocumentTransaction{
		BusinessID:   business.ID,
		DocumentType: "Hồ sơ bịa đặt",
	})
	require.NoError(t, err)
	assert.Equal(t, model.DocumentTypeOther, transaction.DocumentType)
}

func TestDocumentService_CreateTransaction_ValidTypeKept(t *testing.T) {
	svc, business, _ := setupDocumentServiceTest(t)

	transaction, err := svc.CreateTransaction(&model.DocumentTransaction{
		BusinessID:   business.ID,
		DocumentType: model.DocumentTypeTax,
	})
	require.NoError(t, err)
	assert.Equal(t, model.DocumentTypeTax, transaction.DocumentType)
}

func TestDocumentService_ListTransactionsByTaxID(t *testing.T) {
	svc, business, testDB := setupDocumentServiceTest(t)

	require.NoError(t, testDB.Create(&model.DocumentTransaction{
		BusinessID:      business.ID,
		DocumentType:    model.DocumentTypeTax,
		DeliveryCompany: business.Name,
		DeliveryDate:    time.Now(),
	}).Error)
	require.NoError(t, testDB.Create(&model.DocumentTransaction{
		BusinessID:       business.ID,
		DocumentType:     model.DocumentTypeOther,
		ReceivingCompany: business.Name,
		DeliveryDate:     time.Now(),
	}).Error)
	require.NoError(t, testDB.Create(&model.DocumentTransaction{
		BusinessID:      business.ID,
		DocumentType:    model.DocumentTypeOther,
		DeliveryCompany: "Công ty khác",
		DeliveryDate:    time.Now(),
	}).Error)

	transactions, err := svc.ListTransactionsByTaxID("0312345678")
	require.NoError(t, err)
	assert.Len(t, transactions, 2)
}

func TestDocumentService_ListTransactionsByTaxID_UnknownTaxID(t *testing.T) {
	svc, _, _ := setupDocumentServiceTest(t)

	transactions, err := svc.ListTransactionsByTaxID("9999999999")
	require.NoError(t, err)
	assert.Empty(t, transactions)
}

func TestDocumentService_AttachSignedFile(t *testing.T) {
	svc, business, _ := setupDocumentServiceTest(t)

	transaction, err := svc.CreateTransaction(&model.DocumentTransaction{
		BusinessID:   business.ID,
		DocumentType: model.DocumentTypeTax,
	})
	require.NoError(t, err)

	updated, err := svc.AttachSignedFile(transaction.ID, "https://cdn.example.com/documents/signed.pdf")
	require.NoError(t, err)
	assert.Equal(t, "/documents/signed.pdf", updated.SignedFilePath)
	// Gắn PDF không được phép đổi trạng thái.
	assert.Equal(t, model.TransactionStatusPending, updated.Status)
}

func TestDocumentService_DeleteTransaction(t *testing.T) {
	svc, business, _ := setupDocumentServiceTest(t)

	transaction, err := svc.CreateTransaction(&model.DocumentTransaction{
		BusinessID:   business.ID,
		DocumentType: model.DocumentTypeOther,
	})
	require.NoError(t, err)

	err = svc.DeleteTransaction(transaction.ID, "sai")
	assert.ErrorIs(t, err, ErrWrongDeletePassword)

	err = svc.DeleteTransaction(transaction.ID, testDeletePassword)
	assert.NoError(t, err)

	err = svc.DeleteTransaction(transaction.ID, testDeletePassword)
	assert.ErrorIs(t, err, ErrTransactionNotFound)
}

func TestNormalizeDocumentPath(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"https://cdn.example.com/documents/signed.pdf", "/documents/signed.pdf"},
		{"https://cdn.example.com/uploads/signed.pdf", "/documents/uploads/signed.pdf"},
		{"/documents/signed.pdf", "/documents/signed.pdf"},
		{"signed.pdf", "/documents/signed.pdf"},
		{"/uploads/signed.pdf", "/documents/uploads/signed.pdf"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, NormalizeDocumentPath(tc.in), "input %q", tc.in)
	}
}
