package service

import (
	"fmt"
	"testing"

	"github.com/hcanhquan/royalvietnam-backend/internal/app/model"
	"github.com/hcanhquan/royalvietnam-backend/internal/app/repository"
	"github.com/hcanhquan/royalvietnam-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const testDeletePassword = "0102"

func setupBusinessServiceTest(t *testing.T) (BusinessService, *gorm.DB) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	businessRepo := repository.NewBusinessRepository(testDB)
	accountRepo := repository.NewAccountRepository(testDB)
	return NewBusinessService(businessRepo, accountRepo, testDeletePassword), testDB
}

func TestBusinessService_CreateBusiness(t *testing.T) {
	svc, _ := setupBusinessServiceTest(t)

	business, err := svc.CreateBusiness(&model.Business{
		Name:  "Công ty TNHH ABC",
		TaxID: "0312345678",
	}, nil)
	require.NoError(t, err)
	assert.NotZero(t, business.ID)
	assert.NotNil(t, business.CustomFields)
}

func TestBusinessService_CreateBusiness_DuplicateTaxID(t *testing.T) {
	svc, _ := setupBusinessServiceTest(t)

	_, err := svc.CreateBusiness(&model.Business{Name: "Công ty A", TaxID: "0312345678"}, nil)
	require.NoError(t, err)

	_, err = svc.CreateBusiness(&model.Business{Name: "Công ty B", TaxID: "0312345678"}, nil)
	assert.ErrorIs(t, err, ErrTaxIDExists)
}

func TestBusinessService_CreateBusiness_WithAccount(t *testing.T) {
	svc, testDB := setupBusinessServiceTest(t)

	business, err := svc.CreateBusiness(&model.Business{
		Name:  "Công ty TNHH ABC",
		TaxID: "0312345678",
	}, &model.BusinessAccount{TaxAccountID: "0312345678-tk"})
	require.NoError(t, err)

	var account model.BusinessAccount
	require.NoError(t, testDB.Where("business_id = ?", business.ID).First(&account).Error)
	assert.Equal(t, "0312345678-tk", account.TaxAccountID)
}

func TestBusinessService_CreateBusiness_EmptyAccountSkipped(t *testing.T) {
	svc, testDB := setupBusinessServiceTest(t)

	business, err := svc.CreateBusiness(&model.Business{
		Name:  "Công ty TNHH ABC",
		TaxID: "0312345678",
	}, &model.BusinessAccount{})
	require.NoError(t, err)

	var count int64
	testDB.Model(&model.BusinessAccount{}).Where("business_id = ?", business.ID).Count(&count)
	assert.Zero(t, count)
}

func TestBusinessService_CreateBusiness_AccountFailureDoesNotBlock(t *testing.T) {
	svc, testDB := setupBusinessServiceTest(t)

	// Khi bảng tài khoản hỏng, doanh nghiệp vẫn được tạo thành công.
	require.NoError(t, testDB.Migrator().DropTable(&model.BusinessAccount{}))

	business, err := svc.CreateBusiness(&model.Business{
		Name:  "Công ty TNHH ABC",
		TaxID: "0312345678",
	}, &model.BusinessAccount{TaxAccountID: "0312345678-tk"})
	require.NoError(t, err)
	assert.NotZero(t, business.ID)
}

func TestBusinessService_GetBusinessByID_NotFound(t *testing.T) {
	svc, _ := setupBusinessServiceTest(t)

	_, err := svc.GetBusinessByID(9999)
	assert.ErrorIs(t, err, ErrBusinessNotFound)
}

func TestBusinessService_GetBusinessByTaxID(t *testing.T) {
	svc, _ := setupBusinessServiceTest(t)

	created, err := svc.CreateBusiness(&model.Business{Name: "Công ty A", TaxID: "0312345678"}, nil)
	require.NoError(t, err)

	found, err := svc.GetBusinessByTaxID("0312345678")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = svc.GetBusinessByTaxID("9999999999")
	assert.ErrorIs(t, err, ErrBusinessNotFound)
}

func TestBusinessService_ListBusinesses_Defaults(t *testing.T) {
	svc, _ := setupBusinessServiceTest(t)

	for _, taxID := range []string{"0300000001", "0300000002", "0300000003"} {
		_, err := svc.CreateBusiness(&model.Business{Name: "Công ty " + taxID, TaxID: taxID}, nil)
		require.NoError(t, err)
	}

	// Page và limit ngoài khoảng hợp lệ rơi về mặc định.
	result, err := svc.ListBusinesses(repository.BusinessListOptions{Page: 0, Limit: -5})
	require.NoError(t, err)
	assert.Len(t, result.Businesses, 3)
	assert.Equal(t, int64(3), result.Total)
}

func TestBusinessService_ListBusinesses_LimitClamped(t *testing.T) {
	svc, testDB := setupBusinessServiceTest(t)

	businesses := make([]model.Business, 0, 105)
	for i := 0; i < 105; i++ {
		businesses = append(businesses, model.Business{
			Name:  fmt.Sprintf("Công ty %03d", i),
			TaxID: fmt.Sprintf("03%08d", i),
		})
	}
	require.NoError(t, testDB.CreateInBatches(businesses, 50).Error)

	// Limit quá lớn bị ghìm về 100, không rơi về mặc định.
	result, err := svc.ListBusinesses(repository.BusinessListOptions{Page: 1, Limit: 500})
	require.NoError(t, err)
	assert.Len(t, result.Businesses, 100)
	assert.Equal(t, int64(105), result.Total)
}

func TestBusinessService_UpdateBusiness(t *testing.T) {
	svc, _ := setupBusinessServiceTest(t)

	created, err := svc.CreateBusiness(&model.Business{Name: "Công ty A", TaxID: "0312345678"}, nil)
	require.NoError(t, err)

	newName := "Công ty A mới"
	newNotes := "đổi tên từ tháng 8"
	updated, err := svc.UpdateBusiness(created.ID, BusinessMutation{
		Name:  &newName,
		Notes: &newNotes,
	})
	require.NoError(t, err)
	assert.Equal(t, newName, updated.Name)
	assert.Equal(t, newNotes, updated.Notes)
	assert.Equal(t, "0312345678", updated.TaxID)
}

func TestBusinessService_UpdateBusiness_NotFound(t *testing.T) {
	svc, _ := setupBusinessServiceTest(t)

	name := "x"
	_, err := svc.UpdateBusiness(9999, BusinessMutation{Name: &name})
	assert.ErrorIs(t, err, ErrBusinessNotFound)
}

func TestBusinessService_DeleteBusiness(t *testing.T) {
	svc, testDB := setupBusinessServiceTest(t)

	created, err := svc.CreateBusiness(&model.Business{Name: "Công ty A", TaxID: "0312345678"},
		&model.BusinessAccount{TaxAccountID: "0312345678-tk"})
	require.NoError(t, err)

	err = svc.DeleteBusiness(created.ID, "sai-mat-khau")
	assert.ErrorIs(t, err, ErrWrongDeletePassword)

	err = svc.DeleteBusiness(created.ID, testDeletePassword)
	assert.NoError(t, err)

	_, err = svc.GetBusinessByID(created.ID)
	assert.ErrorIs(t, err, ErrBusinessNotFound)

	// Bản ghi tài khoản bị xóa kèm theo foreign key
	var count int64
	require.NoError(t, testDB.Model(&model.BusinessAccount{}).
		Where("business_id = ?", created.ID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestBusinessService_DeleteBusiness_NotFound(t *testing.T) {
	svc, _ := setupBusinessServiceTest(t)

	err := svc.DeleteBusiness(9999, testDeletePassword)
	assert.ErrorIs(t, err, ErrBusinessNotFound)
}

func TestBusinessService_UpdateAccessCode(t *testing.T) {
	svc, _ := setupBusinessServiceTest(t)

	created, err := svc.CreateBusiness(&model.Business{Name: "Công ty A", TaxID: "0312345678"}, nil)
	require.NoError(t, err)

	updated, err := svc.UpdateAccessCode(created.ID, "MA-2026")
	require.NoError(t, err)
	assert.Equal(t, "MA-2026", updated.AccessCode)
}
