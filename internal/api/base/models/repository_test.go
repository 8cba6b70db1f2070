package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePage(t *testing.T) {
	page, limit := NormalizePage(0, 0)
	assert.Equal(t, DefaultPage, page)
	assert.Equal(t, DefaultLimit, limit)

	page, limit = NormalizePage(3, 1000)
	assert.Equal(t, int64(3), page)
	assert.Equal(t, MaxLimit, limit)
}

func TestNewPaginateResult(t *testing.T) {
	r := NewPaginateResult([]int{1, 2, 3}, 2, 3, 7)
	assert.Equal(t, int64(3), r.ItemCount)
	assert.Equal(t, int64(3), r.TotalPage)

	empty := NewPaginateResult[int](nil, 1, 10, 0)
	assert.NotNil(t, empty.Items)
	assert.Equal(t, int64(0), empty.TotalPage)

	mapped := MapPaginateResult(r, func(v int) string { return string(rune('a' + v - 1)) })
	assert.Equal(t, []string{"a", "b", "c"}, mapped.Items)
	assert.Equal(t, r.Total, mapped.Total)
}
