package skynet

import (
	"bytes"
	"unicode/utf16"
)

// ConcatBytes returns a new slice holding the contents of a followed by b
func ConcatBytes(a, b []byte) []byte {
	result := make([]byte, len(a)+len(b))
	n := copy(result, a)
	copy(result[n:], b)
	return result
}

// EqualBytes returns whether both slices have the same length and contents
func EqualBytes(a, b []byte) bool {
	return bytes.Equal(a, b)
}

// ASCIIToBytes converts an ASCII string to bytes, one byte per UTF-16 code unit.
// Code units outside the byte range are truncated to their lowest 8 bits. The string is decoded
// as UTF-8, invalid bytes become U+FFFD.
func ASCIIToBytes(str string) []byte {
	units := utf16.Encode([]rune(str))
	chars := make([]byte, len(units))
	for i, unit := range units {
		chars[i] = byte(unit)
	}
	return chars
}
