package uvarints

import (
	"encoding/binary"
	"io"
)

// Write кодирование числа в ULEB128 и запись в буфер.
// Возвращается длина записанных данных.
func Write(dst io.Writer, v uint64) (n int, err error) {
	var buf [binary.MaxVarintLen64]byte
	l := binary.PutUvarint(buf[:], v)
	if _, err := dst.Write(buf[:l]); err != nil {
		return 0, err
	}

	return l, nil
}

// WriteString запись строки с префиксом длины в ULEB128.
func WriteString(dst io.Writer, s string) (n int, err error) {
	n, err = Write(dst, uint64(len(s)))
	if err != nil {
		return 0, err
	}

	if _, err := io.WriteString(dst, s); err != nil {
		return 0, err
	}

	return n + len(s), nil
}
