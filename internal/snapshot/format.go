package snapshot

import (
	"bufio"
	"fmt"
	"io"

	"github.com/sirkon/errors"
)

// Format формат сохранения слепка.
type Format int

const (
	// FormatBinary компактный двоичный формат, см. Snapshot.Dump.
	FormatBinary Format = iota
	// FormatMsgpack формат msgpack.
	FormatMsgpack
	// FormatYAML человекочитаемый YAML.
	FormatYAML
)

// ErrorUnknownFormat неизвестное название формата.
const ErrorUnknownFormat errors.Const = "unknown snapshot format"

func (f Format) String() string {
	switch f {
	case FormatBinary:
		return "bin"
	case FormatMsgpack:
		return "msgpack"
	case FormatYAML:
		return "yaml"
	default:
		return fmt.Sprintf("unknown format %d", int(f))
	}
}

// ParseFormat разбор названия формата.
func ParseFormat(name string) (Format, error) {
	switch name {
	case "bin", "binary":
		return FormatBinary, nil
	case "msgpack", "mp":
		return FormatMsgpack, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return 0, errors.Wrap(ErrorUnknownFormat, "parse format").Str("format", name)
	}
}

// Encode запись слепка в данном формате.
func Encode(dst io.Writer, s *Snapshot, f Format) error {
	switch f {
	case FormatBinary:
		if _, err := s.Dump(dst); err != nil {
			return errors.Wrap(err, "dump binary")
		}
		return nil
	case FormatMsgpack:
		return EncodeMsgpack(dst, s)
	case FormatYAML:
		return EncodeYAML(dst, s)
	default:
		return errors.Wrap(ErrorUnknownFormat, "encode").Str("format", f.String())
	}
}

// Decode чтение слепка в данном формате.
func Decode(src io.Reader, f Format) (*Snapshot, error) {
	switch f {
	case FormatBinary:
		return FromDump(bufio.NewReader(src))
	case FormatMsgpack:
		return DecodeMsgpack(src)
	case FormatYAML:
		return DecodeYAML(src)
	default:
		return nil, errors.Wrap(ErrorUnknownFormat, "decode").Str("format", f.String())
	}
}
