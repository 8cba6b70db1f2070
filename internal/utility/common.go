package utility

import (
	"fmt"
	"strings"

	"github.com/tanavishali52/BE-saleman/internal/logger"
)

// GoProtect chạy f và bắt panic nếu có, ghi log thay vì làm dừng chương trình
func GoProtect(f func()) {
	defer func() {
		if err := recover(); err != nil {
			logger.GetErrorLogger().WithField("panic", fmt.Sprintf("%v", err)).Error("Đã bắt lỗi panic")
		}
	}()
	f()
}

// NormalizeEmail chuẩn hóa email (trim + lowercase) trước khi lưu hoặc tìm kiếm
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
