package models

import (
	"github.com/tanavishali52/BE-saleman/internal/utility"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Item là sản phẩm trong kho. Price tính bằng cent, Quantity là số lượng tồn.
type Item struct {
	ID           primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name         string             `json:"name" bson:"name" index:"text"`
	CategoryType primitive.ObjectID `json:"categoryType" bson:"categoryType" index:"single"`
	Price        utility.Money      `json:"price" bson:"price"`
	Quantity     int64              `json:"quantity" bson:"quantity"`
	CreatedAt    int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt    int64              `json:"updatedAt" bson:"updatedAt"`
}

// ItemView là sản phẩm kèm thông tin danh mục
type ItemView struct {
	Item
	Category *CategorySummary `json:"category,omitempty"`
}

// ItemFilter điều kiện lọc sản phẩm
type ItemFilter struct {
	CategoryType primitive.ObjectID
}

// Matches kiểm tra item có thỏa filter không
func (f ItemFilter) Matches(it Item) bool {
	if !f.CategoryType.IsZero() && it.CategoryType != f.CategoryType {
		return false
	}
	return true
}

// ItemUpdate thay đổi một phần trên Item. nil = giữ nguyên.
type ItemUpdate struct {
	Name         *string
	CategoryType *primitive.ObjectID
	Price        *utility.Money
	Quantity     *int64
}

// Apply áp dụng thay đổi lên item
func (up ItemUpdate) Apply(it *Item) {
	if up.Name != nil {
		it.Name = *up.Name
	}
	if up.CategoryType != nil {
		it.CategoryType = *up.CategoryType
	}
	if up.Price != nil {
		it.Price = *up.Price
	}
	if up.Quantity != nil {
		it.Quantity = *up.Quantity
	}
}

// ToSet chuyển thay đổi thành map $set
func (up ItemUpdate) ToSet() map[string]interface{} {
	set := map[string]interface{}{}
	if up.Name != nil {
		set["name"] = *up.Name
	}
	if up.CategoryType != nil {
		set["categoryType"] = *up.CategoryType
	}
	if up.Price != nil {
		set["price"] = *up.Price
	}
	if up.Quantity != nil {
		set["quantity"] = *up.Quantity
	}
	return set
}
