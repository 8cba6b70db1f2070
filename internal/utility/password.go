package utility

import (
	"unicode"
	"unicode/utf8"

	"github.com/tanavishali52/BE-saleman/internal/common"

	"golang.org/x/crypto/bcrypt"
)

// bcryptCost là cost factor khi băm mật khẩu
const bcryptCost = 10

// minPasswordLength là độ dài tối thiểu của mật khẩu (tính theo ký tự)
const minPasswordLength = 8

// CheckPasswordPolicy kiểm tra mật khẩu: ít nhất 8 ký tự, có chữ cái, chữ số và ký tự đặc biệt
func CheckPasswordPolicy(password string) error {
	if utf8.RuneCountInString(password) < minPasswordLength {
		return common.ErrWeakPassword
	}

	var hasLetter, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		case !unicode.IsSpace(r):
			hasSymbol = true
		}
	}

	if !hasLetter || !hasDigit || !hasSymbol {
		return common.ErrWeakPassword
	}
	return nil
}

// HashPassword băm mật khẩu bằng bcrypt
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", common.WithDetails(common.ErrPasswordHashingFailed, err)
	}
	return string(hashed), nil
}

// ComparePassword so sánh mật khẩu với chuỗi băm, trả về false nếu không khớp
func ComparePassword(hashedPassword, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)) == nil
}
