package catalogdto

import "github.com/tanavishali52/BE-saleman/internal/utility"

// CreateCategoryInput đầu vào tạo danh mục
type CreateCategoryInput struct {
	Name string `json:"name" validate:"required,no_xss"`
}

// CreateItemInput đầu vào tạo sản phẩm. price là số thập phân tối đa 2 chữ số sau dấu phẩy.
type CreateItemInput struct {
	Name         string        `json:"name" validate:"required,no_xss"`
	CategoryType string        `json:"categoryType" validate:"required,object_id"`
	Price        utility.Money `json:"price" validate:"gte=0"`
	Quantity     int64         `json:"quantity" validate:"gte=0"`
}

// UpdateItemInput đầu vào cập nhật sản phẩm (nil = giữ nguyên)
type UpdateItemInput struct {
	Name         *string        `json:"name" validate:"omitempty,min=1,no_xss"`
	CategoryType *string        `json:"categoryType" validate:"omitempty,object_id"`
	Price        *utility.Money `json:"price" validate:"omitempty,gte=0"`
	Quantity     *int64         `json:"quantity" validate:"omitempty,gte=0"`
}
