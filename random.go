package skynet

import (
	"math/rand/v2"
)

// RandomInt returns a random integer in [low, high). It panics when high <= low.
func RandomInt(low, high int) int {
	return low + rand.IntN(high-low)
}

// FillRandBytes fills every byte of buf with a random value
func FillRandBytes(buf []byte) {
	for i := range buf {
		buf[i] = byte(RandomInt(0, 256))
	}
}
