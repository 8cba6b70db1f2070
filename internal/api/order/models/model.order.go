package models

import (
	authmodels "github.com/tanavishali52/BE-saleman/internal/api/auth/models"
	shopmodels "github.com/tanavishali52/BE-saleman/internal/api/shop/models"
	"github.com/tanavishali52/BE-saleman/internal/utility"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderLine là một dòng hàng. Tên và đơn giá được chụp lại tại thời điểm đặt.
type OrderLine struct {
	Product     primitive.ObjectID `json:"product" bson:"product"`
	ProductName string             `json:"productName" bson:"productName"`
	Quantity    int64              `json:"quantity" bson:"quantity"`
	UnitPrice   utility.Money      `json:"unitPrice" bson:"unitPrice"`
	LineTotal   utility.Money      `json:"lineTotal" bson:"lineTotal"`
}

// Order là đơn hàng salesman đặt cho một cửa hàng
type Order struct {
	ID            primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Shop          primitive.ObjectID `json:"shop" bson:"shop" index:"single;compound:shop_payment"`
	Salesman      primitive.ObjectID `json:"salesman" bson:"salesman" index:"single"`
	OrderLines    []OrderLine        `json:"orderLines" bson:"orderLines"`
	TotalAmount   utility.Money      `json:"totalAmount" bson:"totalAmount"`
	PaymentType   PaymentType        `json:"paymentType" bson:"paymentType" index:"compound:shop_payment"`
	PaymentTypeID int                `json:"paymentTypeId" bson:"paymentTypeId"`
	PaymentAmount utility.Money      `json:"paymentAmount" bson:"paymentAmount"`
	AmountPaid    utility.Money      `json:"amountPaid" bson:"amountPaid"`
	CreatedAt     int64              `json:"createdAt" bson:"createdAt" index:"single,order:-1"`
	UpdatedAt     int64              `json:"updatedAt" bson:"updatedAt"`
}

// OrderView là đơn hàng đã join thông tin cửa hàng và salesman
type OrderView struct {
	ID            primitive.ObjectID `json:"id"`
	Shop          shopmodels.Summary `json:"shop"`
	Salesman      authmodels.Summary `json:"salesman"`
	OrderLines    []OrderLine        `json:"orderLines"`
	TotalAmount   utility.Money      `json:"totalAmount"`
	PaymentType   PaymentType        `json:"paymentType"`
	PaymentTypeID int                `json:"paymentTypeId"`
	PaymentAmount utility.Money      `json:"paymentAmount"`
	AmountPaid    utility.Money      `json:"amountPaid"`
	CreatedAt     int64              `json:"createdAt"`
	UpdatedAt     int64              `json:"updatedAt"`
}

// NewOrderView ghép đơn hàng với thông tin cửa hàng và salesman
func NewOrderView(o Order, shop shopmodels.Summary, salesman authmodels.Summary) OrderView {
	if shop.ID.IsZero() {
		shop.ID = o.Shop
	}
	if salesman.ID.IsZero() {
		salesman.ID = o.Salesman
	}
	lines := o.OrderLines
	if lines == nil {
		lines = []OrderLine{}
	}
	return OrderView{
		ID:            o.ID,
		Shop:          shop,
		Salesman:      salesman,
		OrderLines:    lines,
		TotalAmount:   o.TotalAmount,
		PaymentType:   o.PaymentType,
		PaymentTypeID: o.PaymentTypeID,
		PaymentAmount: o.PaymentAmount,
		AmountPaid:    o.AmountPaid,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}

// OrderFilter điều kiện lọc đơn hàng
type OrderFilter struct {
	Shop     primitive.ObjectID
	Salesman primitive.ObjectID
}

// Matches kiểm tra đơn hàng có thỏa filter không
func (f OrderFilter) Matches(o Order) bool {
	if !f.Shop.IsZero() && o.Shop != f.Shop {
		return false
	}
	if !f.Salesman.IsZero() && o.Salesman != f.Salesman {
		return false
	}
	return true
}

// PaymentTypeTotals là tổng hợp đơn hàng theo một hình thức thanh toán
type PaymentTypeTotals struct {
	Count         int64         `json:"count" bson:"count"`
	PaymentAmount utility.Money `json:"paymentAmount" bson:"paymentAmount"`
	TotalAmount   utility.Money `json:"totalAmount" bson:"totalAmount"`
}

// PaymentGroupTotals là kết quả gom nhóm theo (shop, paymentType) từ kho đơn hàng
type PaymentGroupTotals struct {
	Shop              primitive.ObjectID `bson:"shop"`
	PaymentType       PaymentType        `bson:"paymentType"`
	PaymentTypeTotals `bson:",inline"`
}

// ShopOrdersSummary là tổng hợp đơn hàng của một cửa hàng
type ShopOrdersSummary struct {
	Shop           shopmodels.Summary `json:"shop"`
	IsActive       bool               `json:"isActive"`
	OrderCount     int64              `json:"orderCount"`
	TotalAmount    utility.Money      `json:"totalAmount"`
	Half           PaymentTypeTotals  `json:"half"`
	Full           PaymentTypeTotals  `json:"full"`
	CashOnDelivery PaymentTypeTotals  `json:"cashOnDelivery"`
}

// Add cộng một nhóm (shop, paymentType) vào tổng hợp của cửa hàng.
// Tổng vượt phạm vi int64 trả về utility.ErrMoneyOutOfRange và không thay đổi tổng hợp.
func (s *ShopOrdersSummary) Add(g PaymentGroupTotals) error {
	var bucket *PaymentTypeTotals
	switch g.PaymentType {
	case PaymentHalf:
		bucket = &s.Half
	case PaymentFull:
		bucket = &s.Full
	case PaymentCashOnDelivery:
		bucket = &s.CashOnDelivery
	default:
		return nil
	}

	paid, err := bucket.PaymentAmount.Add(g.PaymentAmount)
	if err != nil {
		return err
	}
	bucketTotal, err := bucket.TotalAmount.Add(g.TotalAmount)
	if err != nil {
		return err
	}
	shopTotal, err := s.TotalAmount.Add(g.TotalAmount)
	if err != nil {
		return err
	}

	bucket.Count += g.Count
	bucket.PaymentAmount = paid
	bucket.TotalAmount = bucketTotal
	s.OrderCount += g.Count
	s.TotalAmount = shopTotal
	return nil
}
