package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hcanhquan/royalvietnam-backend/internal/app/service"
	"github.com/hcanhquan/royalvietnam-backend/internal/errors"
	"github.com/hcanhquan/royalvietnam-backend/internal/middleware"
)

type AuthController struct {
	authService service.AuthService
}

func NewAuthController(authService service.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

type LoginRequest struct {
	UserType   string `json:"userType" binding:"required"`
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

type AdminLoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required"`
}

// Login handles the unified login for admins and employees
// POST /api/auth/login
func (ctrl *AuthController) Login(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid login request", map[string]interface{}{
			"error": err.Error(),
		})
		errors.BadRequest(c, errors.ValidationInvalidInput, "Thiếu thông tin đăng nhập")
		return
	}

	result, err := ctrl.authService.Login(c.Request.Context(), req.UserType, req.Identifier, req.Password)
	if err != nil {
		switch err {
		case service.ErrUnsupportedUserType:
			errors.BadRequest(c, errors.ValidationInvalidInput, "Loại người dùng không được hỗ trợ")
		case service.ErrInvalidCredentials:
			errors.RespondWithError(c, http.StatusUnauthorized, errors.AuthInvalidCredentials, "Tên đăng nhập hoặc mật khẩu không đúng")
		default:
			log.Error("Login failed", err, nil)
			errors.InternalError(c, "")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": result.Token,
		"user":  result.Identity,
	})
}

// AdminLogin is the legacy admin-only login
// POST /api/auth/admin-login
func (ctrl *AuthController) AdminLogin(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errors.BadRequest(c, errors.ValidationInvalidInput, "Thiếu thông tin đăng nhập")
		return
	}

	result, err := ctrl.authService.AdminLogin(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if err == service.ErrInvalidCredentials {
			errors.RespondWithError(c, http.StatusUnauthorized, errors.AuthInvalidCredentials, "Tên đăng nhập hoặc mật khẩu không đúng")
			return
		}
		log.Error("Admin login failed", err, nil)
		errors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": result.Token,
		"admin": result.Identity,
	})
}

// Logout revokes the presented session token
// POST /api/auth/logout
func (ctrl *AuthController) Logout(c *gin.Context) {
	token, ok := middleware.GetSessionToken(c)
	if ok {
		if err := ctrl.authService.Logout(c.Request.Context(), token); err != nil {
			middleware.GetLoggerFromContext(c).Error("Failed to revoke session", err, nil)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Đã đăng xuất",
	})
}

// Me resolves the current session. An unknown token is not an error, it just
// reports unauthenticated.
// GET /api/auth/me
func (ctrl *AuthController) Me(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusOK, gin.H{
			"isAuthenticated": false,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"isAuthenticated": true,
		"user":            identity,
	})
}

// ChangePassword updates the admin's own password
// POST /api/auth/change-password
func (ctrl *AuthController) ChangePassword(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	identity, ok := middleware.GetIdentity(c)
	if !ok {
		errors.Unauthorized(c, "")
		return
	}

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errors.BadRequest(c, errors.ValidationInvalidInput, "Thiếu mật khẩu hiện tại hoặc mật khẩu mới")
		return
	}

	if err := ctrl.authService.ChangePassword(identity.Username, req.CurrentPassword, req.NewPassword); err != nil {
		switch err {
		case service.ErrWrongPassword:
			errors.RespondWithError(c, http.StatusUnauthorized, errors.AuthWrongPassword, "Mật khẩu hiện tại không đúng")
		case service.ErrUserNotFound:
			errors.NotFound(c, errors.ResourceNotFound, "Không tìm thấy người dùng")
		default:
			log.Error("Failed to change password", err, map[string]interface{}{
				"username": identity.Username,
			})
			errors.InternalError(c, "")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Đổi mật khẩu thành công",
	})
}
