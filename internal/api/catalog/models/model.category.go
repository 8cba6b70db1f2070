// Package models - danh mục (Category) và sản phẩm (Item) trong kho.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category là danh mục sản phẩm. Tên là duy nhất, không sửa sau khi tạo.
type Category struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name" index:"unique"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}

// CategorySummary là phần danh mục được join vào sản phẩm
type CategorySummary struct {
	ID   primitive.ObjectID `json:"id"`
	Name string             `json:"name"`
}
