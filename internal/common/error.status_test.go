package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestError_IsMatchesCodeAndMessage(t *testing.T) {
	wrapped := fmt.Errorf("tạo đơn hàng: %w", ErrInsufficientStock)

	assert.True(t, errors.Is(wrapped, ErrInsufficientStock))
	assert.False(t, errors.Is(ErrProductNotFound, ErrNotFound), "cùng mã DB_002 nhưng khác message")
	assert.True(t, errors.Is(WithDetails(ErrInsufficientStock, map[string]any{"name": "P1"}), ErrInsufficientStock))
	assert.True(t, errors.Is(NewAlreadyExistsError("email"), ErrAlreadyExists))
}

func TestHasCodeAndStatusOf(t *testing.T) {
	err := NewValidationError("items", "Danh sách sản phẩm không được rỗng")

	assert.True(t, HasCode(err, ErrCodeValidationInput))
	assert.Equal(t, StatusBadRequest, StatusOf(err))
	assert.Equal(t, StatusForbidden, StatusOf(ErrAccessDenied))
	assert.Equal(t, StatusInternalServerError, StatusOf(errors.New("boom")))
}

func TestConvertMongoError(t *testing.T) {
	assert.Nil(t, ConvertMongoError(nil))
	assert.Equal(t, ErrNotFound, ConvertMongoError(mongo.ErrNoDocuments))
	assert.Equal(t, ErrShopNotFound, ConvertMongoError(ErrShopNotFound), "lỗi nghiệp vụ giữ nguyên")

	dup := mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000, Message: "E11000 duplicate key"}}}
	assert.True(t, errors.Is(ConvertMongoError(dup), ErrAlreadyExists))

	other := ConvertMongoError(errors.New("lỗi lạ"))
	assert.True(t, HasCode(other, ErrCodeDatabase))
	assert.Equal(t, StatusInternalServerError, StatusOf(other))
}
