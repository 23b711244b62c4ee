package uvarints

import (
	"encoding/binary"
	"io"

	"github.com/sirkon/errors"
)

const (
	// ErrorLimitExceeded вычитанное значение превышает допустимое.
	ErrorLimitExceeded errors.Const = "decoded value exceeds the limit"
)

// Reader требования на источник данных, им является bufio.Reader,
// bytes.Reader и т.п.
type Reader interface {
	io.ByteReader
	io.Reader
}

// ReadLimited вычитывает закодированное в ULEB128 значение не
// превосходящее limit.
func ReadLimited(src io.ByteReader, limit uint64) (uint64, error) {
	v, err := binary.ReadUvarint(src)
	if err != nil {
		return 0, err
	}

	if v > limit {
		return 0, errors.Wrap(ErrorLimitExceeded, "check value").
			Uint64("value", v).
			Uint64("limit", limit)
	}

	return v, nil
}

// ReadString вычитывает строку с префиксом длины, длина не может
// превосходить limit.
func ReadString(src Reader, limit uint64) (string, error) {
	l, err := ReadLimited(src, limit)
	if err != nil {
		return "", errors.Wrap(err, "read string length")
	}

	buf := make([]byte, l)
	if _, err := io.ReadFull(src, buf); err != nil {
		return "", errors.Wrap(err, "read string data")
	}

	return string(buf), nil
}
