package repository

import (
	"testing"

	"github.com/hcanhquan/royalvietnam-backend/internal/app/model"
	"github.com/hcanhquan/royalvietnam-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupBusinessTest(t *testing.T) (*gorm.DB, BusinessRepository) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)

	return testDB, NewBusinessRepository(testDB)
}

func newTestBusiness(name, taxID string) *model.Business {
	return &model.Business{
		Name:    name,
		TaxID:   taxID,
		Address: "123 Nguyễn Huệ, Q.1, TP.HCM",
		Phone:   "0901234567",
		Email:   "lienhe@" + taxID + ".vn",
	}
}

func TestBusinessRepository_Create(t *testing.T) {
	testDB, repo := setupBusinessTest(t)
	defer db.CleanupTestDB(testDB)

	business := newTestBusiness("Công ty TNHH ABC", "0312345678")

	err := repo.Create(business)
	assert.NoError(t, err)
	assert.NotZero(t, business.ID)
}

func TestBusinessRepository_Create_DuplicateTaxID(t *testing.T) {
	testDB, repo := setupBusinessTest(t)
	defer db.CleanupTestDB(testDB)

	require.NoError(t, repo.Create(newTestBusiness("Công ty A", "0312345678")))

	err := repo.Create(newTestBusiness("Công ty B", "0312345678"))
	assert.Error(t, err)
}

func TestBusinessRepository_FindByID(t *testing.T) {
	testDB, repo := setupBusinessTest(t)
	defer db.CleanupTestDB(testDB)

	business := newTestBusiness("Công ty TNHH ABC", "0312345678")
	require.NoError(t, repo.Create(business))

	found, err := repo.FindByID(business.ID)
	assert.NoError(t, err)
	assert.Equal(t, business.Name, found.Name)
	assert.Equal(t, business.TaxID, found.TaxID)
}

func TestBusinessRepository_FindByID_NotFound(t *testing.T) {
	testDB, repo := setupBusinessTest(t)
	defer db.CleanupTestDB(testDB)

	_, err := repo.FindByID(9999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestBusinessRepository_FindByTaxID(t *testing.T) {
	testDB, repo := setupBusinessTest(t)
	defer db.CleanupTestDB(testDB)

	business := newTestBusiness("Công ty TNHH ABC", "0312345678")
	require.NoError(t, repo.Create(business))

	found, err := repo.FindByTaxID("0312345678")
	assert.NoError(t, err)
	assert.Equal(t, business.ID, found.ID)
}

func TestBusinessRepository_FindAll_Pagination(t *testing.T) {
	testDB, repo := setupBusinessTest(t)
	defer db.CleanupTestDB(testDB)

	require.NoError(t, repo.Create(newTestBusiness("Công ty A", "0300000001")))
	require.NoError(t, repo.Create(newTestBusiness("Công ty B", "0300000002")))
	require.NoError(t, repo.Create(newTestBusiness("Công ty C", "0300000003")))

	result, err := repo.FindAll(BusinessListOptions{Page: 1, Limit: 2, SortBy: "name", SortOrder: "asc"})
	assert.NoError(t, err)
	assert.Len(t, result.Businesses, 2)
	assert.Equal(t, int64(3), result.Total)
	assert.Equal(t, "Công ty A", result.Businesses[0].Name)

	result, err = repo.FindAll(BusinessListOptions{Page: 2, Limit: 2, SortBy: "name", SortOrder: "asc"})
	assert.NoError(t, err)
	assert.Len(t, result.Businesses, 1)
	assert.Equal(t, "Công ty C", result.Businesses[0].Name)
}

func TestBusinessRepository_FindAll_SortDescending(t *testing.T) {
	testDB, repo := setupBusinessTest(t)
	defer db.CleanupTestDB(testDB)

	require.NoError(t, repo.Create(newTestBusiness("Công ty A", "0300000001")))
	require.NoError(t, repo.Create(newTestBusiness("Công ty B", "0300000002")))

	result, err := repo.FindAll(BusinessListOptions{Page: 1, Limit: 10, SortBy: "taxId", SortOrder: "desc"})
	assert.NoError(t, err)
	assert.Equal(t, "0300000002", result.Businesses[0].TaxID)
}

func TestBusinessRepository_FindAll_UnknownSortFallsBack(t *testing.T) {
	testDB, repo := setupBusinessTest(t)
	defer db.CleanupTestDB(testDB)

	require.NoError(t, repo.Create(newTestBusiness("Công ty A", "0300000001")))

	result, err := repo.FindAll(BusinessListOptions{Page: 1, Limit: 10, SortBy: "password", SortOrder: "asc"})
	assert.NoError(t, err)
	assert.Len(t, result.Businesses, 1)
}

func TestBusinessRepository_UpdateFields(t *testing.T) {
	testDB, repo := setupBusinessTest(t)
	defer db.CleanupTestDB(testDB)

	business := newTestBusiness("Công ty TNHH ABC", "0312345678")
	require.NoError(t, repo.Create(business))

	err := repo.UpdateFields(business.ID, map[string]interface{}{
		"name":  "Công ty TNHH ABC mới",
		"phone": "0909999999",
	})
	assert.NoError(t, err)

	updated, err := repo.FindByID(business.ID)
	require.NoError(t, err)
	assert.Equal(t, "Công ty TNHH ABC mới", updated.Name)
	assert.Equal(t, "0909999999", updated.Phone)
	assert.Equal(t, "0312345678", updated.TaxID)
}

func TestBusinessRepository_Delete(t *testing.T) {
	testDB, repo := setupBusinessTest(t)
	defer db.CleanupTestDB(testDB)

	business := newTestBusiness("Công ty TNHH ABC", "0312345678")
	require.NoError(t, repo.Create(business))

	rows, err := repo.Delete(business.ID)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), rows)

	_, err = repo.FindByID(business.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestBusinessRepository_Delete_NotFound(t *testing.T) {
	testDB, repo := setupBusinessTest(t)
	defer db.CleanupTestDB(testDB)

	rows, err := repo.Delete(9999)
	assert.NoError(t, err)
	assert.Zero(t, rows)
}

func TestBusinessRepository_Search_Exact(t *testing.T) {
	testDB, repo := setupBusinessTest(t)
	defer db.CleanupTestDB(testDB)

	require.NoError(t, repo.Create(newTestBusiness("Công ty A", "0300000001")))
	require.NoError(t, repo.Create(newTestBusiness("Công ty B", "0300000002")))

	results, err := repo.Search("taxId", "0300000002")
	assert.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Công ty B", results[0].Name)
}

func TestBusinessRepository_Search_Partial(t *testing.T) {
	testDB, repo := setupBusinessTest(t)
	defer db.CleanupTestDB(testDB)

	require.NoError(t, repo.Create(newTestBusiness("Công ty Xây dựng Hòa Bình", "0300000001")))
	require.NoError(t, repo.Create(newTestBusiness("Công ty Thương mại Sài Gòn", "0300000002")))

	results, err := repo.Search("namePartial", "Xây dựng")
	assert.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "0300000001", results[0].TaxID)
}

func TestBusinessRepository_Search_UnknownField(t *testing.T) {
	testDB, repo := setupBusinessTest(t)
	defer db.CleanupTestDB(testDB)

	require.NoError(t, repo.Create(newTestBusiness("Công ty A", "0300000001")))

	results, err := repo.Search("password", "x")
	assert.NoError(t, err)
	assert.Empty(t, results)
}
