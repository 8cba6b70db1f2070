package orderdto

import "github.com/tanavishali52/BE-saleman/internal/utility"

// OrderItemInput là một dòng hàng khi đặt đơn
type OrderItemInput struct {
	ProductID string `json:"productId" validate:"required,object_id"`
	Quantity  int64  `json:"quantity" validate:"gte=1"`
}

// PlaceOrderInput đầu vào đặt đơn hàng
type PlaceOrderInput struct {
	ShopID        string           `json:"shopId" validate:"required,object_id"`
	Items         []OrderItemInput `json:"items" validate:"required,min=1,dive"`
	PaymentType   string           `json:"paymentType" validate:"required,payment_type"`
	PaymentAmount utility.Money    `json:"paymentAmount" validate:"gte=0"`
}

// RecordPaymentInput đầu vào ghi nhận số tiền đã thu (ghi đè, không cộng dồn)
type RecordPaymentInput struct {
	AmountPaid *utility.Money `json:"amountPaid" validate:"required"`
}
