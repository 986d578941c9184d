package service

import (
	"context"
	"errors"

	"github.com/hcanhquan/royalvietnam-backend/internal/app/model"
	"github.com/hcanhquan/royalvietnam-backend/internal/app/repository"
	"github.com/hcanhquan/royalvietnam-backend/internal/session"
	"github.com/hcanhquan/royalvietnam-backend/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials  = errors.New("tên đăng nhập hoặc mật khẩu không đúng")
	ErrUnsupportedUserType = errors.New("loại người dùng không được hỗ trợ")
	ErrWrongPassword       = errors.New("mật khẩu hiện tại không đúng")
	ErrUserNotFound        = errors.New("không tìm thấy người dùng")
)

// LoginResult carries the issued token and the resolved identity.
type LoginResult struct {
	Token    string                 `json:"token"`
	Identity model.EmployeeIdentity `json:"user"`
}

type AuthService interface {
	Login(ctx context.Context, userType, identifier, password string) (*LoginResult, error)
	AdminLogin(ctx context.Context, username, password string) (*LoginResult, error)
	Logout(ctx context.Context, token string) error
	ChangePassword(username, currentPassword, newPassword string) error
}

type authService struct {
	adminRepo        repository.AdminRepository
	sessions         session.Store
	employeePassword string
}

func NewAuthService(adminRepo repository.AdminRepository, sessions session.Store, employeePassword string) AuthService {
	return &authService{
		adminRepo:        adminRepo,
		sessions:         sessions,
		employeePassword: employeePassword,
	}
}

// Login dispatches by user type. Admins authenticate against the account
// table, employees against a single shared password with any username.
func (s *authService) Login(ctx context.Context, userType, identifier, password string) (*LoginResult, error) {
	switch userType {
	case model.RoleAdmin:
		return s.AdminLogin(ctx, identifier, password)
	case model.RoleEmployee:
		if password != s.employeePassword {
			logger.Warn("Employee login rejected, wrong shared password", map[string]interface{}{
				"username": identifier,
			})
			return nil, ErrInvalidCredentials
		}

		identity := model.EmployeeIdentity{Username: identifier, Role: model.RoleEmployee}
		token, err := s.sessions.Issue(ctx, identity)
		if err != nil {
			return nil, err
		}

		logger.Info("Employee logged in", map[string]interface{}{
			"username": identifier,
		})
		return &LoginResult{Token: token, Identity: identity}, nil
	default:
		return nil, ErrUnsupportedUserType
	}
}

func (s *authService) AdminLogin(ctx context.Context, username, password string) (*LoginResult, error) {
	admin, err := s.adminRepo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if admin.Password != password {
		logger.Warn("Admin login rejected, wrong password", map[string]interface{}{
			"username": username,
		})
		return nil, ErrInvalidCredentials
	}

	identity := model.EmployeeIdentity{ID: admin.ID, Username: admin.Username, Role: admin.Role}
	token, err := s.sessions.Issue(ctx, identity)
	if err != nil {
		return nil, err
	}

	logger.Info("Admin logged in", map[string]interface{}{
		"username": username,
	})
	return &LoginResult{Token: token, Identity: identity}, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	return s.sessions.Revoke(ctx, token)
}

func (s *authService) ChangePassword(username, currentPassword, newPassword string) error {
	admin, err := s.adminRepo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	if admin.Password != currentPassword {
		return ErrWrongPassword
	}

	if err := s.adminRepo.UpdatePassword(admin.ID, newPassword); err != nil {
		return err
	}

	logger.Info("Admin password changed", map[string]interface{}{
		"username": username,
	})
	return nil
}
