package errors

// Mã lỗi cố định, dạng CATEGORY_SPECIFIC_DETAIL.
// Frontend dựa vào mã này để hiển thị thông báo phù hợp.

const (
	// ==================== Xác thực (AUTH_) ====================
	AuthUnauthorized       = "AUTH_UNAUTHORIZED"        // Cần đăng nhập
	AuthInvalidCredentials = "AUTH_INVALID_CREDENTIALS" // Sai tài khoản/mật khẩu
	AuthTokenInvalid       = "AUTH_TOKEN_INVALID"       // Token không hợp lệ
	AuthWrongPassword      = "AUTH_WRONG_PASSWORD"      // Sai mật khẩu hiện tại

	// ==================== Phân quyền (AUTHZ_) ====================
	AuthzForbidden = "AUTHZ_FORBIDDEN"  // Không có quyền truy cập
	AuthzAdminOnly = "AUTHZ_ADMIN_ONLY" // Chỉ dành cho admin

	// ==================== Kiểm tra dữ liệu (VALIDATION_) ====================
	ValidationInvalidInput = "VALIDATION_INVALID_INPUT" // Dữ liệu không hợp lệ
	ValidationInvalidID    = "VALIDATION_INVALID_ID"    // ID không hợp lệ
	ValidationRequired     = "VALIDATION_REQUIRED"      // Thiếu trường bắt buộc

	// ==================== Tài nguyên (RESOURCE_) ====================
	ResourceNotFound      = "RESOURCE_NOT_FOUND"      // Không tìm thấy
	ResourceAlreadyExists = "RESOURCE_ALREADY_EXISTS" // Đã tồn tại
	ResourceConflict      = "RESOURCE_CONFLICT"       // Xung đột dữ liệu

	// ==================== Doanh nghiệp (BUSINESS_) ====================
	BusinessNotFound    = "BUSINESS_NOT_FOUND"     // Không tìm thấy doanh nghiệp
	BusinessTaxIDExists = "BUSINESS_TAX_ID_EXISTS" // Mã số thuế đã tồn tại
	BusinessWrongDeletePassword = "BUSINESS_WRONG_DELETE_PASSWORD" // Sai mật khẩu xóa

	// ==================== Hồ sơ (DOCUMENT_) ====================
	DocumentNotFound    = "DOCUMENT_NOT_FOUND"     // Không tìm thấy giao dịch hồ sơ
	DocumentInvalidType = "DOCUMENT_INVALID_TYPE"  // Loại hồ sơ không hợp lệ

	// ==================== Tải lên (UPLOAD_) ====================
	UploadInvalidFileType = "UPLOAD_INVALID_FILE_TYPE" // Sai định dạng tệp
	UploadFailed          = "UPLOAD_FAILED"            // Tải lên thất bại

	// ==================== Lỗi hệ thống (INTERNAL_) ====================
	InternalServerError   = "INTERNAL_SERVER_ERROR"   // Lỗi máy chủ
	InternalDatabaseError = "INTERNAL_DATABASE_ERROR" // Lỗi cơ sở dữ liệu
)
