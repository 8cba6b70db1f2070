package common

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

// HTTP Status Code Constants
const (
	StatusOK        = 200 // Thành công
	StatusCreated   = 201 // Tạo mới thành công
	StatusNoContent = 204 // Thành công nhưng không có nội dung trả về

	StatusBadRequest      = 400 // Yêu cầu không hợp lệ
	StatusUnauthorized    = 401 // Chưa xác thực
	StatusForbidden       = 403 // Không có quyền truy cập
	StatusNotFound        = 404 // Không tìm thấy tài nguyên
	StatusConflict        = 409 // Xung đột dữ liệu
	StatusTooManyRequests = 429 // Quá nhiều yêu cầu

	StatusInternalServerError = 500 // Lỗi server
	StatusServiceUnavailable  = 503 // Dịch vụ không khả dụng
)

// Response Messages
const (
	MsgSuccess   = "Thao tác thành công"
	MsgCreated   = "Tạo mới thành công"
	MsgNoContent = "Không có nội dung trả về"

	MsgBadRequest      = "Yêu cầu không hợp lệ"
	MsgUnauthorized    = "Vui lòng đăng nhập"
	MsgForbidden       = "Không có quyền truy cập"
	MsgNotFound        = "Không tìm thấy tài nguyên"
	MsgTooManyRequests = "Quá nhiều yêu cầu, vui lòng thử lại sau"
	MsgInternalError   = "Lỗi hệ thống"

	MsgTokenMissing = "Thiếu token xác thực"
	MsgTokenInvalid = "Token không hợp lệ hoặc đã hết hạn"

	MsgValidationError = "Dữ liệu không hợp lệ"
	MsgDatabaseError   = "Lỗi tương tác với cơ sở dữ liệu"
	MsgInvalidFormat   = "Định dạng dữ liệu không hợp lệ"
)

// ErrorCode định nghĩa mã lỗi chi tiết
type ErrorCode struct {
	Code        string // Mã lỗi (ví dụ: AUTH_001)
	Category    string // Phân loại lỗi (ví dụ: Authentication)
	SubCategory string // Phân loại con (ví dụ: Token)
	Description string // Mô tả chi tiết
}

// Định nghĩa các mã lỗi theo hệ thống phân cấp
var (
	// System Errors (SYS_xxx)
	ErrCodeInternalServer = ErrorCode{Code: "SYS_001", Category: "System", SubCategory: "Internal", Description: "Lỗi hệ thống nội bộ"}
	ErrCodeConfiguration  = ErrorCode{Code: "SYS_002", Category: "System", SubCategory: "Configuration", Description: "Thiếu hoặc sai cấu hình"}

	// Authentication Errors (AUTH_xxx)
	ErrCodeAuthToken       = ErrorCode{Code: "AUTH_001", Category: "Authentication", SubCategory: "Token", Description: "Lỗi liên quan đến token"}
	ErrCodeAuthCredentials = ErrorCode{Code: "AUTH_002", Category: "Authentication", SubCategory: "Credentials", Description: "Lỗi thông tin đăng nhập"}
	ErrCodeAuthRole        = ErrorCode{Code: "AUTH_003", Category: "Authentication", SubCategory: "Role", Description: "Lỗi liên quan đến vai trò người dùng"}
	ErrCodeAuthBlocked     = ErrorCode{Code: "AUTH_004", Category: "Authentication", SubCategory: "Account", Description: "Tài khoản đã bị khóa"}
	ErrCodeAuthResetCode   = ErrorCode{Code: "AUTH_005", Category: "Authentication", SubCategory: "ResetCode", Description: "Mã đặt lại mật khẩu không hợp lệ"}

	// Validation Errors (VAL_xxx)
	ErrCodeValidationInput    = ErrorCode{Code: "VAL_001", Category: "Validation", SubCategory: "Input", Description: "Lỗi dữ liệu đầu vào"}
	ErrCodeValidationFormat   = ErrorCode{Code: "VAL_002", Category: "Validation", SubCategory: "Format", Description: "Lỗi định dạng dữ liệu"}
	ErrCodeValidationPassword = ErrorCode{Code: "VAL_003", Category: "Validation", SubCategory: "Password", Description: "Mật khẩu không đạt chính sách"}

	// Database Errors (DB_xxx)
	ErrCodeDatabase           = ErrorCode{Code: "DB", Category: "Database", SubCategory: "General", Description: "Lỗi cơ sở dữ liệu chung"}
	ErrCodeDatabaseConnection = ErrorCode{Code: "DB_001", Category: "Database", SubCategory: "Connection", Description: "Lỗi kết nối cơ sở dữ liệu"}
	ErrCodeDatabaseQuery      = ErrorCode{Code: "DB_002", Category: "Database", SubCategory: "Query", Description: "Lỗi truy vấn dữ liệu"}
	ErrCodeDatabaseDuplicate  = ErrorCode{Code: "DB_003", Category: "Database", SubCategory: "Duplicate", Description: "Dữ liệu bị trùng"}

	// Business Logic Errors (BIZ_xxx)
	ErrCodeBusinessState     = ErrorCode{Code: "BIZ_001", Category: "Business", SubCategory: "State", Description: "Lỗi trạng thái nghiệp vụ"}
	ErrCodeBusinessOperation = ErrorCode{Code: "BIZ_002", Category: "Business", SubCategory: "Operation", Description: "Lỗi thao tác nghiệp vụ"}
	ErrCodeBusinessStock     = ErrorCode{Code: "BIZ_003", Category: "Business", SubCategory: "Stock", Description: "Không đủ tồn kho"}
)

// Error định nghĩa cấu trúc lỗi chi tiết
type Error struct {
	Code       ErrorCode // Mã lỗi chi tiết
	Message    string    // Thông báo lỗi
	StatusCode int       // HTTP status code
	Details    any       // Thông tin chi tiết thêm về lỗi
}

// Error trả về message của lỗi
func (e *Error) Error() string {
	return e.Message
}

// Is so khớp theo mã lỗi và message (hỗ trợ errors.Is với các lỗi định nghĩa sẵn)
func (e *Error) Is(target error) bool {
	var targetErr *Error
	if !errors.As(target, &targetErr) {
		return false
	}
	return e.Code.Code == targetErr.Code.Code && e.Message == targetErr.Message
}

// Unwrap trả về lỗi gốc nếu Details là error
func (e *Error) Unwrap() error {
	if err, ok := e.Details.(error); ok {
		return err
	}
	return nil
}

// NewError tạo một error mới với đầy đủ thông tin
func NewError(code ErrorCode, message string, statusCode int, details any) error {
	return &Error{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Details:    details,
	}
}

// WithDetails trả về bản sao của lỗi định nghĩa sẵn kèm details (vẫn khớp errors.Is)
func WithDetails(err error, details any) error {
	var e *Error
	if !errors.As(err, &e) {
		return err
	}
	return &Error{Code: e.Code, Message: e.Message, StatusCode: e.StatusCode, Details: details}
}

// NewValidationError tạo lỗi dữ liệu đầu vào với thông báo theo field
func NewValidationError(field string, message string) error {
	return NewError(ErrCodeValidationInput, message, StatusBadRequest, map[string]string{"field": field})
}

// Các lỗi định nghĩa sẵn
var (
	// Authentication / Authorization
	ErrTokenMissing          = NewError(ErrCodeAuthToken, MsgTokenMissing, StatusUnauthorized, nil)
	ErrTokenInvalid          = NewError(ErrCodeAuthToken, MsgTokenInvalid, StatusUnauthorized, nil)
	ErrInvalidCredentials    = NewError(ErrCodeAuthCredentials, "Email hoặc mật khẩu không chính xác", StatusBadRequest, nil)
	ErrAccessDenied          = NewError(ErrCodeAuthRole, "Bạn không có quyền thực hiện thao tác này", StatusForbidden, nil)
	ErrAccountBlocked        = NewError(ErrCodeAuthBlocked, "Tài khoản đã bị khóa, vui lòng liên hệ quản trị viên", StatusForbidden, nil)
	ErrInvalidOrExpiredCode  = NewError(ErrCodeAuthResetCode, "Mã xác thực không đúng hoặc đã hết hạn", StatusBadRequest, nil)
	ErrUserNotFound          = NewError(ErrCodeDatabaseQuery, "Không tìm thấy người dùng", StatusNotFound, nil)
	ErrMailerNotConfigured   = NewError(ErrCodeConfiguration, "Chưa cấu hình dịch vụ gửi email", StatusInternalServerError, nil)
	ErrWeakPassword          = NewError(ErrCodeValidationPassword, "Mật khẩu phải có ít nhất 8 ký tự, gồm chữ cái, chữ số và ký tự đặc biệt", StatusBadRequest, nil)
	ErrPasswordHashingFailed = NewError(ErrCodeInternalServer, "Không thể mã hóa mật khẩu", StatusInternalServerError, nil)

	// Validation
	ErrInvalidInput  = NewError(ErrCodeValidationInput, MsgValidationError, StatusBadRequest, nil)
	ErrInvalidFormat = NewError(ErrCodeValidationFormat, MsgInvalidFormat, StatusBadRequest, nil)
	ErrInvalidID     = NewError(ErrCodeValidationFormat, "ID không đúng định dạng", StatusBadRequest, nil)
	ErrRequiredField = NewError(ErrCodeValidationInput, "Thiếu thông tin bắt buộc", StatusBadRequest, nil)

	// Database
	ErrNotFound      = NewError(ErrCodeDatabaseQuery, "Không tìm thấy dữ liệu", StatusNotFound, nil)
	ErrAlreadyExists = NewError(ErrCodeDatabaseDuplicate, "Dữ liệu đã tồn tại", StatusBadRequest, nil)

	// Business
	ErrShopNotFound      = NewError(ErrCodeDatabaseQuery, "Không tìm thấy cửa hàng", StatusNotFound, nil)
	ErrShopInactive      = NewError(ErrCodeBusinessState, "Cửa hàng đang ngừng hoạt động", StatusBadRequest, nil)
	ErrProductNotFound   = NewError(ErrCodeDatabaseQuery, "Không tìm thấy sản phẩm", StatusNotFound, nil)
	ErrCategoryNotFound  = NewError(ErrCodeDatabaseQuery, "Không tìm thấy danh mục", StatusNotFound, nil)
	ErrOrderNotFound     = NewError(ErrCodeDatabaseQuery, "Không tìm thấy đơn hàng", StatusNotFound, nil)
	ErrInsufficientStock = NewError(ErrCodeBusinessStock, "Sản phẩm không đủ tồn kho", StatusBadRequest, nil)

	// System
	ErrInternal = NewError(ErrCodeInternalServer, MsgInternalError, StatusInternalServerError, nil)
)

// NewAlreadyExistsError trả về ErrAlreadyExists kèm tên field bị trùng
func NewAlreadyExistsError(field string) error {
	return WithDetails(ErrAlreadyExists, map[string]string{"field": field})
}

// MongoDB Specific Errors
var (
	ErrMongoNetwork   = NewError(ErrCodeDatabaseConnection, "Lỗi mạng khi kết nối MongoDB", StatusServiceUnavailable, nil)
	ErrMongoTimeout   = NewError(ErrCodeDatabaseConnection, "Kết nối MongoDB bị timeout", StatusServiceUnavailable, nil)
	ErrMongoDuplicate = ErrAlreadyExists
)

// ConvertMongoError chuyển đổi lỗi MongoDB sang lỗi hệ thống
func ConvertMongoError(err error) error {
	if err == nil {
		return nil
	}

	// Lỗi đã là *Error thì giữ nguyên
	var appErr *Error
	if errors.As(err, &appErr) {
		return err
	}

	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	if mongo.IsDuplicateKeyError(err) {
		return ErrMongoDuplicate
	}
	if mongo.IsNetworkError(err) {
		return ErrMongoNetwork
	}
	if mongo.IsTimeout(err) {
		return ErrMongoTimeout
	}

	return NewError(ErrCodeDatabase, MsgDatabaseError, StatusInternalServerError, err)
}

// HasCode kiểm tra err có phải *Error với mã lỗi code không
func HasCode(err error, code ErrorCode) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Code.Code == code.Code
}

// StatusOf trả về HTTP status của err, mặc định 500
func StatusOf(err error) int {
	var e *Error
	if errors.As(err, &e) && e.StatusCode != 0 {
		return e.StatusCode
	}
	return StatusInternalServerError
}
