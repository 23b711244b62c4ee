package uvarints

import (
	"bytes"
	"io"
	"testing"

	"github.com/sirkon/errors"
	"github.com/sirkon/linecov/internal/testlog"
)

func TestLength(t *testing.T) {
	for _, v := range []uint64{0, 1, 127, 128, 300, 1 << 35, 1<<64 - 1} {
		var buf bytes.Buffer
		n, err := Write(&buf, v)
		if err != nil {
			testlog.Error(t, errors.Wrap(err, "write value"))
			return
		}

		if n != buf.Len() || n != LengthInt(v) {
			t.Errorf("length mismatch for %d: written %d, reported %d, computed %d", v, buf.Len(), n, LengthInt(v))
		}
	}
}

func TestString(t *testing.T) {
	var buf bytes.Buffer
	n, err := WriteString(&buf, "a.src")
	if err != nil {
		testlog.Error(t, errors.Wrap(err, "write string"))
		return
	}
	if n != LengthString("a.src") {
		t.Errorf("expected %d bytes written, got %d", LengthString("a.src"), n)
	}

	s, err := ReadString(bytes.NewReader(buf.Bytes()), 16)
	if err != nil {
		testlog.Error(t, errors.Wrap(err, "read string"))
		return
	}
	if s != "a.src" {
		t.Errorf("unexpected string %q", s)
	}

	if _, err := ReadString(bytes.NewReader(buf.Bytes()), 2); !errors.Is(err, ErrorLimitExceeded) {
		t.Errorf("limit error expected, got %v", err)
	}

	if _, err := ReadString(bytes.NewReader(buf.Bytes()[:3]), 16); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("unexpected EOF expected, got %v", err)
	}
}
