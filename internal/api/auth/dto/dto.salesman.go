package authdto

// CreateSalesmanInput đầu vào admin tạo tài khoản salesman.
type CreateSalesmanInput struct {
	Name         string `json:"name" validate:"required,no_xss"`
	Phone        string `json:"phone" validate:"required"`
	Address      string `json:"address" validate:"required,no_xss"`
	IDCardNumber string `json:"idCardNumber" validate:"required"`
	Email        string `json:"email" validate:"omitempty,email"`
	Password     string `json:"password" validate:"required,strong_password"`
}

// UpdateSalesmanInput đầu vào cập nhật salesman (field nil = giữ nguyên).
type UpdateSalesmanInput struct {
	Name         *string `json:"name" validate:"omitempty,min=1,no_xss"`
	Phone        *string `json:"phone" validate:"omitempty,min=1"`
	Address      *string `json:"address" validate:"omitempty,min=1,no_xss"`
	IDCardNumber *string `json:"idCardNumber" validate:"omitempty,min=1"`
	Email        *string `json:"email" validate:"omitempty,email"`
}

// SetStatusInput đầu vào bật/tắt tài khoản hoặc cửa hàng.
type SetStatusInput struct {
	IsActive *bool `json:"isActive" validate:"required"`
}
