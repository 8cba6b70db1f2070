// Package models - model cửa hàng (Shop) mà salesman đặt hàng cho.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Shop là cửa hàng khách. cnic (số CMND chủ cửa hàng) là duy nhất.
type Shop struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	ShopName    string             `json:"shopName" bson:"shopName"`
	OwnerName   string             `json:"ownerName" bson:"ownerName"`
	CNIC        string             `json:"cnic" bson:"cnic" index:"unique"`
	PhoneNumber string             `json:"phoneNumber" bson:"phoneNumber"`
	Address     string             `json:"address" bson:"address"`
	City        string             `json:"city" bson:"city" index:"single"`
	IsActive    bool               `json:"isActive" bson:"isActive"`
	CreatedAt   int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt   int64              `json:"updatedAt" bson:"updatedAt"`
}

// Summary là phần thông tin cửa hàng được join vào đơn hàng
type Summary struct {
	ID        primitive.ObjectID `json:"id"`
	ShopName  string             `json:"shopName"`
	OwnerName string             `json:"ownerName"`
	Address   string             `json:"address"`
	City      string             `json:"city"`
}

// Summary trả về thông tin rút gọn của cửa hàng
func (s Shop) Summary() Summary {
	return Summary{ID: s.ID, ShopName: s.ShopName, OwnerName: s.OwnerName, Address: s.Address, City: s.City}
}

// ShopFilter điều kiện lọc cửa hàng. Field rỗng/nil bị bỏ qua.
type ShopFilter struct {
	CNIC      string
	City      string
	IsActive  *bool
	ExcludeID primitive.ObjectID
}

// Matches kiểm tra shop có thỏa filter không
func (f ShopFilter) Matches(s Shop) bool {
	if f.CNIC != "" && s.CNIC != f.CNIC {
		return false
	}
	if f.City != "" && s.City != f.City {
		return false
	}
	if f.IsActive != nil && s.IsActive != *f.IsActive {
		return false
	}
	if !f.ExcludeID.IsZero() && s.ID == f.ExcludeID {
		return false
	}
	return true
}

// ShopUpdate thay đổi một phần trên Shop. nil = giữ nguyên.
type ShopUpdate struct {
	ShopName    *string
	OwnerName   *string
	CNIC        *string
	PhoneNumber *string
	Address     *string
	City        *string
	IsActive    *bool
}

// Apply áp dụng thay đổi lên shop
func (up ShopUpdate) Apply(s *Shop) {
	if up.ShopName != nil {
		s.ShopName = *up.ShopName
	}
	if up.OwnerName != nil {
		s.OwnerName = *up.OwnerName
	}
	if up.CNIC != nil {
		s.CNIC = *up.CNIC
	}
	if up.PhoneNumber != nil {
		s.PhoneNumber = *up.PhoneNumber
	}
	if up.Address != nil {
		s.Address = *up.Address
	}
	if up.City != nil {
		s.City = *up.City
	}
	if up.IsActive != nil {
		s.IsActive = *up.IsActive
	}
}

// ToSet chuyển thay đổi thành map $set (key theo tên field bson)
func (up ShopUpdate) ToSet() map[string]interface{} {
	set := map[string]interface{}{}
	if up.ShopName != nil {
		set["shopName"] = *up.ShopName
	}
	if up.OwnerName != nil {
		set["ownerName"] = *up.OwnerName
	}
	if up.CNIC != nil {
		set["cnic"] = *up.CNIC
	}
	if up.PhoneNumber != nil {
		set["phoneNumber"] = *up.PhoneNumber
	}
	if up.Address != nil {
		set["address"] = *up.Address
	}
	if up.City != nil {
		set["city"] = *up.City
	}
	if up.IsActive != nil {
		set["isActive"] = *up.IsActive
	}
	return set
}
