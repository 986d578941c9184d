package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/hcanhquan/royalvietnam-backend/internal/app/model"
	"github.com/hcanhquan/royalvietnam-backend/internal/errors"
	"github.com/hcanhquan/royalvietnam-backend/internal/session"
)

// Context keys for the authenticated identity
const (
	IdentityKey = "identity"
	TokenKey    = "session_token"
)

type AuthMiddleware struct {
	sessions session.Store
}

func NewAuthMiddleware(sessions session.Store) *AuthMiddleware {
	return &AuthMiddleware{sessions: sessions}
}

// Authenticate resolves the Bearer token against the session store (required)
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		log := GetLoggerFromContext(c)

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			log.Warn("Missing authorization header", map[string]interface{}{
				"path": c.Request.URL.Path,
			})
			errors.Unauthorized(c, "Cần đăng nhập để tiếp tục")
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			log.Warn("Invalid authorization header format", map[string]interface{}{
				"path": c.Request.URL.Path,
			})
			errors.RespondWithError(c, http.StatusUnauthorized, errors.AuthTokenInvalid, "Định dạng xác thực không hợp lệ")
			c.Abort()
			return
		}
		token := parts[1]

		identity, err := m.sessions.Resolve(c.Request.Context(), token)
		if err != nil {
			log.Warn("Session token rejected", map[string]interface{}{
				"path":  c.Request.URL.Path,
				"error": err.Error(),
			})
			errors.RespondWithError(c, http.StatusUnauthorized, errors.AuthTokenInvalid, "Phiên đăng nhập không hợp lệ hoặc đã hết hạn")
			c.Abort()
			return
		}

		c.Set(IdentityKey, *identity)
		c.Set(TokenKey, token)

		log.Debug("User authenticated successfully", map[string]interface{}{
			"username": identity.Username,
			"role":     identity.Role,
		})

		c.Next()
	}
}

// OptionalAuthenticate resolves the Bearer token if present. A missing or
// unknown token continues unauthenticated instead of failing the request.
func (m *AuthMiddleware) OptionalAuthenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.Next()
			return
		}

		identity, err := m.sessions.Resolve(c.Request.Context(), parts[1])
		if err != nil {
			c.Next()
			return
		}

		c.Set(IdentityKey, *identity)
		c.Set(TokenKey, parts[1])
		c.Next()
	}
}

// RequireAdmin rejects non-admin sessions.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		log := GetLoggerFromContext(c)

		identity, ok := GetIdentity(c)
		if !ok {
			errors.Unauthorized(c, "Không tìm thấy thông tin phiên đăng nhập")
			c.Abort()
			return
		}

		if identity.Role != model.RoleAdmin {
			log.Warn("Admin-only endpoint rejected", map[string]interface{}{
				"username": identity.Username,
				"role":     identity.Role,
				"path":     c.Request.URL.Path,
			})
			errors.RespondWithError(c, http.StatusUnauthorized, errors.AuthzAdminOnly, "Chức năng chỉ dành cho quản trị viên")
			c.Abort()
			return
		}

		c.Next()
	}
}

// GetIdentity extracts the authenticated identity from context
func GetIdentity(c *gin.Context) (model.EmployeeIdentity, bool) {
	value, exists := c.Get(IdentityKey)
	if !exists {
		return model.EmployeeIdentity{}, false
	}
	identity, ok := value.(model.EmployeeIdentity)
	return identity, ok
}

// GetSessionToken extracts the raw session token from context
func GetSessionToken(c *gin.Context) (string, bool) {
	token := c.GetString(TokenKey)
	return token, token != ""
}
