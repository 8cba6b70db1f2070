package utility

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"math/big"
)

// ResetCodeLength là số chữ số của mã đặt lại mật khẩu
const ResetCodeLength = 6

// GenerateNumericCode sinh mã gồm n chữ số bằng nguồn ngẫu nhiên an toàn
func GenerateNumericCode(n int) (string, error) {
	if n <= 0 {
		return "", fmt.Errorf("độ dài mã không hợp lệ: %d", n)
	}
	limit := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
	v, err := rand.Int(rand.Reader, limit)
	if err != nil {
		return "", fmt.Errorf("không thể sinh mã ngẫu nhiên: %w", err)
	}
	return fmt.Sprintf("%0*s", n, v.String()), nil
}

// HashCode băm mã xác thực (sha256, hex) trước khi lưu
func HashCode(code string) string {
	sum := sha256.Sum256([]byte(code))
	return hex.EncodeToString(sum[:])
}

// CompareCodeHash so sánh mã người dùng nhập với chuỗi băm đã lưu (constant time)
func CompareCodeHash(hashed, code string) bool {
	if hashed == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(hashed), []byte(HashCode(code))) == 1
}
