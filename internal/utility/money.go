package utility

import (
	"bytes"
	"fmt"
	"math"

	"github.com/tanavishali52/BE-saleman/internal/common"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// Money là số tiền tính theo đơn vị nhỏ nhất (cent), lưu int64 để tránh sai số làm tròn.
// JSON biểu diễn dạng số thập phân 2 chữ số (ví dụ 12.5 <-> 1250).
type Money int64

// moneyScale là số chữ số thập phân tối đa được chấp nhận
const moneyScale = 2

// ErrMoneyOutOfRange báo số tiền vượt quá phạm vi int64 (tính theo cent)
var ErrMoneyOutOfRange = common.NewError(common.ErrCodeValidationInput, "Số tiền vượt quá giới hạn cho phép", common.StatusBadRequest, nil)

// NewMoneyFromDecimal chuyển decimal thành Money, từ chối nếu có hơn 2 chữ số thập phân
func NewMoneyFromDecimal(d decimal.Decimal) (Money, error) {
	if !d.Equal(d.Truncate(moneyScale)) {
		return 0, fmt.Errorf("số tiền %s có quá %d chữ số thập phân", d.String(), moneyScale)
	}
	cents := d.Shift(moneyScale)
	if !cents.IsInteger() {
		return 0, fmt.Errorf("số tiền không hợp lệ: %s", d.String())
	}
	if !cents.BigInt().IsInt64() {
		return 0, ErrMoneyOutOfRange
	}
	return Money(cents.IntPart()), nil
}

// ParseMoney đọc số tiền từ chuỗi thập phân
func ParseMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("số tiền không hợp lệ: %w", err)
	}
	return NewMoneyFromDecimal(d)
}

// Decimal trả về giá trị thập phân của số tiền
func (m Money) Decimal() decimal.Decimal {
	return decimal.New(int64(m), -moneyScale)
}

// Mul nhân số tiền với số lượng, trả về ErrMoneyOutOfRange nếu tràn số
func (m Money) Mul(qty int64) (Money, error) {
	if m == 0 || qty == 0 {
		return 0, nil
	}
	product := int64(m) * qty
	if product/qty != int64(m) || (int64(m) == -1 && qty == math.MinInt64) || (qty == -1 && int64(m) == math.MinInt64) {
		return 0, ErrMoneyOutOfRange
	}
	return Money(product), nil
}

// Add cộng hai số tiền, trả về ErrMoneyOutOfRange nếu tràn số
func (m Money) Add(other Money) (Money, error) {
	if (other > 0 && m > math.MaxInt64-other) || (other < 0 && m < math.MinInt64-other) {
		return 0, ErrMoneyOutOfRange
	}
	return m + other, nil
}

// IsNegative cho biết số tiền âm
func (m Money) IsNegative() bool {
	return m < 0
}

// String trả về chuỗi dạng "12.50"
func (m Money) String() string {
	return m.Decimal().StringFixed(moneyScale)
}

// MarshalJSON ghi số tiền dạng số JSON (không có dấu nháy)
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.Decimal().String()), nil
}

// UnmarshalJSON chấp nhận số hoặc chuỗi số
func (m *Money) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	data = bytes.Trim(data, `"`)
	v, err := ParseMoney(string(data))
	if err != nil {
		return common.NewError(common.ErrCodeValidationInput, err.Error(), common.StatusBadRequest, nil)
	}
	*m = v
	return nil
}

// MarshalBSONValue lưu số tiền dạng int64 (cent) trong MongoDB
func (m Money) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(int64(m))
}

// UnmarshalBSONValue đọc số tiền từ int64/int32/double trong MongoDB
func (m *Money) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	raw := bson.RawValue{Type: t, Value: data}
	switch t {
	case bsontype.Int64:
		*m = Money(raw.Int64())
	case bsontype.Int32:
		*m = Money(raw.Int32())
	case bsontype.Double:
		d := decimal.NewFromFloat(raw.Double()).Shift(moneyScale).Round(0)
		if !d.BigInt().IsInt64() {
			return ErrMoneyOutOfRange
		}
		*m = Money(d.IntPart())
	case bsontype.Null:
		*m = 0
	default:
		return fmt.Errorf("không thể đọc Money từ kiểu bson %s", t)
	}
	return nil
}
