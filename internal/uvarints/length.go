package uvarints

import "math/bits"

// LengthInt возвращает длину в uvarint для данного целого числа.
func LengthInt(v uint64) int {
	if v == 0 {
		return 1
	}

	return (bits.Len64(v) + 6) / 7
}

// LengthString возвращает длину строки закодированной с префиксом длины.
func LengthString(s string) int {
	return LengthInt(uint64(len(s))) + len(s)
}
