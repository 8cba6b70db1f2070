package utility

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateNumericCode(t *testing.T) {
	digits := regexp.MustCompile(`^[0-9]{6}$`)
	for i := 0; i < 50; i++ {
		code, err := GenerateNumericCode(ResetCodeLength)
		require.NoError(t, err)
		assert.Regexp(t, digits, code)
	}

	_, err := GenerateNumericCode(0)
	assert.Error(t, err)
}

func TestCompareCodeHash(t *testing.T) {
	hashed := HashCode("123456")
	assert.Len(t, hashed, 64)
	assert.True(t, CompareCodeHash(hashed, "123456"))
	assert.False(t, CompareCodeHash(hashed, "654321"))
	assert.False(t, CompareCodeHash("", ""))
}
