package skynet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandomIntRange(t *testing.T) {
	for i := 0; i < 10000; i++ {
		n := RandomInt(0, 256)
		assert.GreaterOrEqual(t, n, 0)
		assert.Less(t, n, 256)
	}

	for i := 0; i < 1000; i++ {
		n := RandomInt(-5, 5)
		assert.GreaterOrEqual(t, n, -5)
		assert.Less(t, n, 5)
	}

	assert.Equal(t, 7, RandomInt(7, 8))
}

func TestRandomIntInvalidRange(t *testing.T) {
	assert.Panics(t, func() { RandomInt(5, 5) })
	assert.Panics(t, func() { RandomInt(5, 1) })
}

func TestFillRandBytes(t *testing.T) {
	buf := make([]byte, 4096)
	FillRandBytes(buf)

	seen := make(map[byte]bool)
	for _, b := range buf {
		seen[b] = true
	}
	// 4096 random bytes cover far more than a handful of values
	assert.Greater(t, len(seen), 100)

	FillRandBytes(nil)
}
