package utility

import (
	"errors"
	"testing"

	"github.com/tanavishali52/BE-saleman/internal/common"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "admin@shop.vn", NormalizeEmail("  Admin@Shop.VN "))
}

func TestGoProtect_RecoversPanic(t *testing.T) {
	ran := false
	assert.NotPanics(t, func() {
		GoProtect(func() {
			ran = true
			panic("worker hỏng")
		})
	})
	assert.True(t, ran)
}

func TestParseObjectID(t *testing.T) {
	id, err := ParseObjectID("64b7f0c2a1b2c3d4e5f60718")
	assert.NoError(t, err)
	assert.Equal(t, "64b7f0c2a1b2c3d4e5f60718", id.Hex())

	_, err = ParseObjectID("abc")
	assert.True(t, errors.Is(err, common.ErrInvalidID))
}

func TestToMap(t *testing.T) {
	type sample struct {
		Name  string `bson:"name"`
		Price Money  `bson:"price,omitempty"`
	}

	m, err := ToMap(sample{Name: "P1"})
	assert.NoError(t, err)
	assert.Equal(t, "P1", m["name"])
	_, hasPrice := m["price"]
	assert.False(t, hasPrice)
}
