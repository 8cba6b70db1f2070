// Package models - model người dùng (User) thuộc domain auth.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User định nghĩa mô hình người dùng (admin hoặc salesman).
// Mật khẩu, mã reset và refresh token không bao giờ được trả về qua JSON.
type User struct {
	ID              primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name            string             `json:"name" bson:"name"`
	Phone           string             `json:"phone" bson:"phone"`
	Address         string             `json:"address" bson:"address"`
	Email           string             `json:"email,omitempty" bson:"email,omitempty" index:"unique,sparse"`
	IDCardNumber    string             `json:"idCardNumber,omitempty" bson:"idCardNumber,omitempty" index:"unique,sparse"`
	Password        string             `json:"-" bson:"password"`
	Role            Role               `json:"role" bson:"role" index:"single"`
	IsActive        bool               `json:"isActive" bson:"isActive"`
	ResetCode       string             `json:"-" bson:"resetCode,omitempty"`
	ResetCodeExpiry int64              `json:"-" bson:"resetCodeExpiry,omitempty" index:"single,sparse"`
	RefreshToken    string             `json:"-" bson:"refreshToken,omitempty" index:"single,sparse"`
	CreatedAt       int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt       int64              `json:"updatedAt" bson:"updatedAt"`
}

// Summary là thông tin rút gọn của người dùng khi join vào đơn hàng
type Summary struct {
	ID    primitive.ObjectID `json:"id"`
	Name  string             `json:"name"`
	Email string             `json:"email,omitempty"`
}

// Summary trả về thông tin rút gọn của người dùng
func (u User) Summary() Summary {
	return Summary{ID: u.ID, Name: u.Name, Email: u.Email}
}

// UserFilter điều kiện tìm người dùng. Các field rỗng bị bỏ qua.
type UserFilter struct {
	ID           primitive.ObjectID
	Email        string
	IDCardNumber string
	RefreshToken string
	Role         Role
	ExcludeID    primitive.ObjectID // Bỏ qua user này (dùng khi kiểm tra trùng lúc cập nhật)
}

// Identifies cho biết filter có chỉ định một người dùng cụ thể không (id, email, CCCD hoặc refresh token)
func (f UserFilter) Identifies() bool {
	return !f.ID.IsZero() || f.Email != "" || f.IDCardNumber != "" || f.RefreshToken != ""
}

// Matches kiểm tra user có thỏa filter không
func (f UserFilter) Matches(u User) bool {
	if !f.ID.IsZero() && u.ID != f.ID {
		return false
	}
	if f.Email != "" && u.Email != f.Email {
		return false
	}
	if f.IDCardNumber != "" && u.IDCardNumber != f.IDCardNumber {
		return false
	}
	if f.RefreshToken != "" && u.RefreshToken != f.RefreshToken {
		return false
	}
	if f.Role != "" && u.Role != f.Role {
		return false
	}
	if !f.ExcludeID.IsZero() && u.ID == f.ExcludeID {
		return false
	}
	return true
}

// UserUpdate mô tả thay đổi một phần trên User. Con trỏ nil = giữ nguyên.
type UserUpdate struct {
	Name         *string
	Phone        *string
	Address      *string
	Email        *string // "" = xóa email
	IDCardNumber *string // "" = xóa số CMND/CCCD
	Password     *string // Chuỗi đã băm
	IsActive     *bool

	// RefreshToken "" = xóa phiên đăng nhập
	RefreshToken *string

	// Mã reset (đã băm) và hạn dùng; ClearResetCode xóa cả hai
	ResetCode       *string
	ResetCodeExpiry *int64
	ClearResetCode  bool
}

// Apply áp dụng thay đổi lên user
func (up UserUpdate) Apply(u *User) {
	if up.Name != nil {
		u.Name = *up.Name
	}
	if up.Phone != nil {
		u.Phone = *up.Phone
	}
	if up.Address != nil {
		u.Address = *up.Address
	}
	if up.Email != nil {
		u.Email = *up.Email
	}
	if up.IDCardNumber != nil {
		u.IDCardNumber = *up.IDCardNumber
	}
	if up.Password != nil {
		u.Password = *up.Password
	}
	if up.IsActive != nil {
		u.IsActive = *up.IsActive
	}
	if up.RefreshToken != nil {
		u.RefreshToken = *up.RefreshToken
	}
	if up.ResetCode != nil {
		u.ResetCode = *up.ResetCode
	}
	if up.ResetCodeExpiry != nil {
		u.ResetCodeExpiry = *up.ResetCodeExpiry
	}
	if up.ClearResetCode {
		u.ResetCode = ""
		u.ResetCodeExpiry = 0
	}
}

func ptr[T any](v T) *T {
	return &v
}

// ClearSession xóa refresh token
func ClearSession() UserUpdate {
	return UserUpdate{RefreshToken: ptr("")}
}

// SetPassword đổi mật khẩu (đã băm), đồng thời xóa mã reset và phiên đăng nhập
func SetPassword(hash string) UserUpdate {
	return UserUpdate{Password: ptr(hash), RefreshToken: ptr(""), ClearResetCode: true}
}

// SetRefreshToken lưu refresh token mới (ghi đè phiên cũ)
func SetRefreshToken(token string) UserUpdate {
	return UserUpdate{RefreshToken: ptr(token)}
}

// SetResetCode lưu mã reset đã băm cùng hạn dùng
func SetResetCode(hash string, expiry int64) UserUpdate {
	return UserUpdate{ResetCode: ptr(hash), ResetCodeExpiry: ptr(expiry)}
}

// ClearResetCode xóa mã reset
func ClearResetCode() UserUpdate {
	return UserUpdate{ClearResetCode: true}
}

// SetActive bật/tắt tài khoản. Khóa tài khoản đồng thời xóa phiên đăng nhập.
func SetActive(active bool) UserUpdate {
	up := UserUpdate{IsActive: ptr(active)}
	if !active {
		up.RefreshToken = ptr("")
	}
	return up
}
