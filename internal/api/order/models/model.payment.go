// Package models - đơn hàng (Order), dòng hàng và hình thức thanh toán.
package models

import (
	"fmt"
)

// PaymentType là hình thức thanh toán của đơn hàng (tập đóng)
type PaymentType string

const (
	PaymentHalf           PaymentType = "half"
	PaymentFull           PaymentType = "full"
	PaymentCashOnDelivery PaymentType = "cashOnDelivery"
)

// PaymentTypeOption là một lựa chọn thanh toán trả về cho client
type PaymentTypeOption struct {
	ID   int         `json:"id"`
	Type PaymentType `json:"type"`
}

// PaymentTypes trả về danh sách hình thức thanh toán theo thứ tự id
func PaymentTypes() []PaymentTypeOption {
	return []PaymentTypeOption{
		{ID: 1, Type: PaymentHalf},
		{ID: 2, Type: PaymentFull},
		{ID: 3, Type: PaymentCashOnDelivery},
	}
}

// ID trả về mã số của hình thức thanh toán (half=1, full=2, cashOnDelivery=3), 0 nếu không hợp lệ
func (p PaymentType) ID() int {
	switch p {
	case PaymentHalf:
		return 1
	case PaymentFull:
		return 2
	case PaymentCashOnDelivery:
		return 3
	}
	return 0
}

// Valid cho biết hình thức thanh toán có hợp lệ không
func (p PaymentType) Valid() bool {
	return p.ID() != 0
}

// ParsePaymentType chuyển chuỗi thành PaymentType (phân biệt hoa thường)
func ParsePaymentType(s string) (PaymentType, error) {
	p := PaymentType(s)
	if !p.Valid() {
		return "", fmt.Errorf("hình thức thanh toán không hợp lệ: %q", s)
	}
	return p, nil
}
