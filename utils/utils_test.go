package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"remapper/utils"
)

func TestUnpack2(t *testing.T) {
	t.Parallel()

	a, b := utils.Unpack2([]string{"own", "ID", "extra"})
	assert.Equal(t, "own", a)
	assert.Equal(t, "ID", b)

	a, b = utils.Unpack2([]string{"column"})
	assert.Equal(t, "column", a)
	assert.Empty(t, b)

	a, b = utils.Unpack2([]string(nil))
	assert.Empty(t, a)
	assert.Empty(t, b)
}

func TestBounds(t *testing.T) {
	t.Parallel()

	lo, hi := utils.SignedBounds(8)
	assert.Equal(t, int64(-128), lo)
	assert.Equal(t, int64(127), hi)

	lo, hi = utils.SignedBounds(64)
	assert.True(t, utils.IsInRange(lo, int64(-1<<63), hi))
	assert.Equal(t, uint64(65535), utils.UnsignedMax(16))
	assert.Equal(t, ^uint64(0), utils.UnsignedMax(64))

	assert.True(t, utils.IsInRange(0, 5, 10))
	assert.False(t, utils.IsInRange(0, 11, 10))
}
