package utility

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestMoney_UnmarshalJSON(t *testing.T) {
	var v struct {
		Price Money `json:"price"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"price": 12.5}`), &v))
	assert.Equal(t, Money(1250), v.Price)

	require.NoError(t, json.Unmarshal([]byte(`{"price": "0.1"}`), &v))
	assert.Equal(t, Money(10), v.Price)

	assert.Error(t, json.Unmarshal([]byte(`{"price": 1.005}`), &v), "quá 2 chữ số thập phân")
	assert.Error(t, json.Unmarshal([]byte(`{"price": "abc"}`), &v))
}

func TestMoney_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(map[string]Money{"total": 30000, "paid": 1250})
	require.NoError(t, err)
	assert.JSONEq(t, `{"total": 300, "paid": 12.5}`, string(data))
}

func TestMoney_Arithmetic(t *testing.T) {
	// 0.1 * 3 không bị sai số dấu phẩy động
	price, err := ParseMoney("0.1")
	require.NoError(t, err)
	total, err := price.Mul(3)
	require.NoError(t, err)
	assert.Equal(t, "0.30", total.String())
	assert.True(t, Money(-1).IsNegative())

	sum, err := Money(150).Add(250)
	require.NoError(t, err)
	assert.Equal(t, Money(400), sum)
}

func TestMoney_OutOfRange(t *testing.T) {
	var v struct {
		Price Money `json:"price"`
	}

	// Các giá trị này trước đây bị tràn số âm thầm thành 0 hoặc số âm
	for _, raw := range []string{`100000000000000000000`, `184467440737095516.16`, `92233720368547758.08`, `-92233720368547758.09`} {
		err := json.Unmarshal([]byte(`{"price": `+raw+`}`), &v)
		assert.Error(t, err, raw)
	}

	maxMoney, err := ParseMoney("92233720368547758.07")
	require.NoError(t, err)
	assert.Equal(t, Money(math.MaxInt64), maxMoney)

	_, err = Money(1e17).Mul(100)
	assert.True(t, errors.Is(err, ErrMoneyOutOfRange))
	_, err = Money(math.MinInt64).Mul(-1)
	assert.True(t, errors.Is(err, ErrMoneyOutOfRange))
	_, err = Money(math.MaxInt64).Add(1)
	assert.True(t, errors.Is(err, ErrMoneyOutOfRange))
	_, err = Money(math.MinInt64).Add(-1)
	assert.True(t, errors.Is(err, ErrMoneyOutOfRange))

	zero, err := Money(math.MaxInt64).Mul(0)
	require.NoError(t, err)
	assert.Equal(t, Money(0), zero)

	huge, err := bson.Marshal(bson.M{"amount": 1e30})
	require.NoError(t, err)
	var out struct {
		Amount Money `bson:"amount"`
	}
	assert.Error(t, bson.Unmarshal(huge, &out))
}

func TestMoney_BSON(t *testing.T) {
	type doc struct {
		Amount Money `bson:"amount"`
	}

	data, err := bson.Marshal(doc{Amount: 1250})
	require.NoError(t, err)

	raw := bson.Raw(data)
	assert.Equal(t, int64(1250), raw.Lookup("amount").Int64())

	var out doc
	require.NoError(t, bson.Unmarshal(data, &out))
	assert.Equal(t, Money(1250), out.Amount)

	legacy, err := bson.Marshal(bson.M{"amount": 12.5})
	require.NoError(t, err)
	require.NoError(t, bson.Unmarshal(legacy, &out))
	assert.Equal(t, Money(1250), out.Amount)
}
