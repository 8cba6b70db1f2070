package shopdto

// CreateShopInput đầu vào tạo cửa hàng
type CreateShopInput struct {
	ShopName    string `json:"shopName" validate:"required,no_xss"`
	OwnerName   string `json:"ownerName" validate:"required,no_xss"`
	CNIC        string `json:"cnic" validate:"required"`
	PhoneNumber string `json:"phoneNumber" validate:"required"`
	Address     string `json:"address" validate:"required,no_xss"`
	City        string `json:"city" validate:"required,no_xss"`
}

// UpdateShopInput đầu vào cập nhật cửa hàng (nil = giữ nguyên)
type UpdateShopInput struct {
	ShopName    *string `json:"shopName" validate:"omitempty,min=1,no_xss"`
	OwnerName   *string `json:"ownerName" validate:"omitempty,min=1,no_xss"`
	CNIC        *string `json:"cnic" validate:"omitempty,min=1"`
	PhoneNumber *string `json:"phoneNumber" validate:"omitempty,min=1"`
	Address     *string `json:"address" validate:"omitempty,min=1,no_xss"`
	City        *string `json:"city" validate:"omitempty,min=1,no_xss"`
}

// SetShopStatusInput đầu vào bật/tắt cửa hàng
type SetShopStatusInput struct {
	IsActive *bool `json:"isActive" validate:"required"`
}
