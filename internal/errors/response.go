package errors

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse là cấu trúc phản hồi lỗi chuẩn của API.
type ErrorResponse struct {
	Error   string `json:"error"`   // Mã lỗi (xem codes.go)
	Message string `json:"message"` // Thông báo tiếng Việt
}

func RespondWithError(c *gin.Context, statusCode int, errorCode string, message string) {
	c.JSON(statusCode, ErrorResponse{
		Error:   errorCode,
		Message: message,
	})
}

// Các hàm rút gọn cho những phản hồi hay dùng.

func Unauthorized(c *gin.Context, message string) {
	if message == "" {
		message = "Cần đăng nhập để tiếp tục"
	}
	RespondWithError(c, http.StatusUnauthorized, AuthUnauthorized, message)
}

func Forbidden(c *gin.Context, message string) {
	if message == "" {
		message = "Không có quyền truy cập"
	}
	RespondWithError(c, http.StatusForbidden, AuthzForbidden, message)
}

func BadRequest(c *gin.Context, errorCode string, message string) {
	RespondWithError(c, http.StatusBadRequest, errorCode, message)
}

func NotFound(c *gin.Context, errorCode string, message string) {
	RespondWithError(c, http.StatusNotFound, errorCode, message)
}

func Conflict(c *gin.Context, errorCode string, message string) {
	RespondWithError(c, http.StatusConflict, errorCode, message)
}

func InternalError(c *gin.Context, message string) {
	if message == "" {
		message = "Đã xảy ra lỗi máy chủ. Vui lòng thử lại sau"
	}
	RespondWithError(c, http.StatusInternalServerError, InternalServerError, message)
}
