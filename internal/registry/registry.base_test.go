package registry

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tanavishali52/BE-saleman/internal/common"
)

func TestRegistry_RegisterAndGet(t *testing.T) {
	r := NewRegistry[int]()

	isNew, err := r.Register("orders", 1)
	assert.NoError(t, err)
	assert.True(t, isNew)

	isNew, err = r.Register("orders", 2)
	assert.NoError(t, err)
	assert.False(t, isNew, "ghi đè item cũ")

	v, ok := r.Get("orders")
	assert.True(t, ok)
	assert.Equal(t, 2, v)

	_, err = r.Register("", 3)
	assert.True(t, errors.Is(err, common.ErrRequiredField))

	assert.Equal(t, []string{"orders"}, r.Names())
}
