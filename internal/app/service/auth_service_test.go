package service

import (
	"context"
	"testing"

	"github.com/hcanhquan/royalvietnam-backend/internal/app/model"
	"github.com/hcanhquan/royalvietnam-backend/internal/app/repository"
	"github.com/hcanhquan/royalvietnam-backend/internal/db"
	"github.com/hcanhquan/royalvietnam-backend/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testEmployeePassword = "royalvietnam"

func setupAuthServiceTest(t *testing.T) (AuthService, session.Store) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	admin := &model.AdminUser{Username: "quanadmin", Password: "01020811", Role: model.RoleAdmin}
	require.NoError(t, testDB.Create(admin).Error)

	sessions := session.NewMemoryStore()
	adminRepo := repository.NewAdminRepository(testDB)
	return NewAuthService(adminRepo, sessions, testEmployeePassword), sessions
}

func TestAuthService_Login_Employee(t *testing.T) {
	svc, sessions := setupAuthServiceTest(t)
	ctx := context.Background()

	result, err := svc.Login(ctx, model.RoleEmployee, "nhanvien_01", testEmployeePassword)
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, "nhanvien_01", result.Identity.Username)
	assert.Equal(t, model.RoleEmployee, result.Identity.Role)

	identity, err := sessions.Resolve(ctx, result.Token)
	require.NoError(t, err)
	assert.Equal(t, model.RoleEmployee, identity.Role)
}

func TestAuthService_Login_Admin(t *testing.T) {
	svc, _ := setupAuthServiceTest(t)

	result, err := svc.Login(context.Background(), model.RoleAdmin, "quanadmin", "01020811")
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, result.Identity.Role)
	assert.Equal(t, "quanadmin", result.Identity.Username)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, _ := setupAuthServiceTest(t)

	_, err := svc.Login(context.Background(), model.RoleAdmin, "quanadmin", "sai-mat-khau")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	svc, _ := setupAuthServiceTest(t)

	_, err := svc.Login(context.Background(), model.RoleAdmin, "khongtontai", "sai-mat-khau")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_WrongEmployeePassword(t *testing.T) {
	svc, _ := setupAuthServiceTest(t)

	_, err := svc.Login(context.Background(), model.RoleEmployee, "nhanvien_01", "sai-mat-khau")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_UnsupportedUserType(t *testing.T) {
	svc, _ := setupAuthServiceTest(t)

	_, err := svc.Login(context.Background(), "manager", "quanadmin", "01020811")
	assert.ErrorIs(t, err, ErrUnsupportedUserType)
}

func TestAuthService_AdminLogin(t *testing.T) {
	svc, _ := setupAuthServiceTest(t)

	result, err := svc.AdminLogin(context.Background(), "quanadmin", "01020811")
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, result.Identity.Role)
}

func TestAuthService_Logout(t *testing.T) {
	svc, sessions := setupAuthServiceTest(t)
	ctx := context.Background()

	result, err := svc.Login(ctx, model.RoleAdmin, "quanadmin", "01020811")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, result.Token))

	_, err = sessions.Resolve(ctx, result.Token)
	assert.ErrorIs(t, err, session.ErrTokenNotFound)
}

func TestAuthService_ChangePassword(t *testing.T) {
	svc, _ := setupAuthServiceTest(t)
	ctx := context.Background()

	err := svc.ChangePassword("quanadmin", "sai", "matkhaumoi")
	assert.ErrorIs(t, err, ErrWrongPassword)

	err = svc.ChangePassword("khongtontai", "x", "y")
	assert.ErrorIs(t, err, ErrUserNotFound)

	require.NoError(t, svc.ChangePassword("quanadmin", "01020811", "matkhaumoi"))

	// Mật khẩu cũ hết hiệu lực, mật khẩu mới dùng được ngay.
	_, err = svc.Login(ctx, model.RoleAdmin, "quanadmin", "01020811")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	result, err := svc.Login(ctx, model.RoleAdmin, "quanadmin", "matkhaumoi")
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, result.Identity.Role)
}
