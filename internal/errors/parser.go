package errors

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// ErrorInfo gói mã lỗi và thông báo thân thiện với người dùng.
type ErrorInfo struct {
	Code    string
	Message string
}

// ParseError chuyển lỗi tầng dưới thành mã lỗi và thông báo tiếng Việt.
// Không để lộ chi tiết kỹ thuật ra ngoài.
func ParseError(err error, context string) ErrorInfo {
	if err == nil {
		return ErrorInfo{
			Code:    InternalServerError,
			Message: "Đã xảy ra lỗi máy chủ",
		}
	}

	errStr := strings.ToLower(err.Error())

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrorInfo{
			Code:    ResourceNotFound,
			Message: getNotFoundMessage(context),
		}
	}

	// Vi phạm unique constraint (Postgres 23505, SQLite "UNIQUE constraint failed")
	if strings.Contains(errStr, "duplicate key") ||
		strings.Contains(errStr, "unique constraint") {
		return parseDuplicateKeyError(errStr, context)
	}

	// Vi phạm foreign key (Postgres 23503)
	if strings.Contains(errStr, "foreign key constraint") {
		return ErrorInfo{
			Code:    ResourceNotFound,
			Message: "Dữ liệu tham chiếu không tồn tại",
		}
	}

	// Vi phạm not null (Postgres 23502)
	if strings.Contains(errStr, "null value") && strings.Contains(errStr, "not-null constraint") {
		return ErrorInfo{
			Code:    ValidationRequired,
			Message: "Thiếu trường bắt buộc",
		}
	}

	return ErrorInfo{
		Code:    InternalDatabaseError,
		Message: getDefaultErrorMessage(context),
	}
}

// IsDuplicateKey reports whether err is a unique-constraint violation from
// either Postgres or the SQLite driver used in tests.
func IsDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "duplicate key") ||
		strings.Contains(errStr, "unique constraint")
}

func parseDuplicateKeyError(errStr string, context string) ErrorInfo {
	if strings.Contains(errStr, "tax_id") {
		return ErrorInfo{
			Code:    BusinessTaxIDExists,
			Message: "Mã số thuế đã tồn tại",
		}
	}
	if strings.Contains(errStr, "username") {
		return ErrorInfo{
			Code:    ResourceAlreadyExists,
			Message: "Tên đăng nhập đã tồn tại",
		}
	}
	return ErrorInfo{
		Code:    ResourceAlreadyExists,
		Message: "Dữ liệu đã tồn tại",
	}
}

func getNotFoundMessage(context string) string {
	contextLower := strings.ToLower(context)

	if strings.Contains(contextLower, "business") || strings.Contains(contextLower, "doanh nghiệp") {
		return "Không tìm thấy doanh nghiệp"
	}
	if strings.Contains(contextLower, "account") || strings.Contains(contextLower, "tài khoản") {
		return "Không tìm thấy tài khoản doanh nghiệp"
	}
	if strings.Contains(contextLower, "document") || strings.Contains(contextLower, "hồ sơ") {
		return "Không tìm thấy giao dịch hồ sơ"
	}
	if strings.Contains(contextLower, "admin") {
		return "Không tìm thấy người dùng"
	}

	return "Không tìm thấy dữ liệu yêu cầu"
}

func getDefaultErrorMessage(context string) string {
	contextLower := strings.ToLower(context)

	if strings.Contains(contextLower, "create") || strings.Contains(contextLower, "tạo") {
		return "Đã xảy ra lỗi khi tạo mới. Vui lòng thử lại sau"
	}
	if strings.Contains(contextLower, "update") || strings.Contains(contextLower, "cập nhật") {
		return "Đã xảy ra lỗi khi cập nhật. Vui lòng thử lại sau"
	}
	if strings.Contains(contextLower, "delete") || strings.Contains(contextLower, "xóa") {
		return "Đã xảy ra lỗi khi xóa. Vui lòng thử lại sau"
	}

	return "Đã xảy ra lỗi máy chủ. Vui lòng thử lại sau"
}
