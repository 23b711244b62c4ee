package snapshot

import (
	"io"

	"github.com/sirkon/errors"
	"github.com/sirkon/linecov/internal/uvarints"
)

// Dump сериализация слепка в двоичный формат. Возвращает количество
// записанных байт.
// Формат:
//
//  1. Количество файлов.
//  2. Для каждого файла длина имени файла, имя файла, количество строк
//     и счётчики строк.
//
// Все числа кодируются в ULEB128.
func (s *Snapshot) Dump(dst io.Writer) (int, error) {
	res, err := uvarints.Write(dst, uint64(s.Len()))
	if err != nil {
		return 0, errors.Wrap(err, "dump files count")
	}

	for i := 0; i < s.Len(); i++ {
		n, err := dumpFile(dst, &s.Files[i])
		if err != nil {
			return 0, errors.Wrap(err, "dump file").
				Int("file-index", i).
				Str("file-name", s.Files[i].Name)
		}

		res += n
	}

	return res, nil
}

// DumpSize размер слепка в двоичном формате.
func (s *Snapshot) DumpSize() int {
	res := uvarints.LengthInt(uint64(s.Len()))
	for i := 0; i < s.Len(); i++ {
		f := &s.Files[i]
		res += uvarints.LengthString(f.Name)
		res += uvarints.LengthInt(uint64(len(f.Counts)))
		for _, c := range f.Counts {
			res += uvarints.LengthInt(c)
		}
	}

	return res
}

func dumpFile(dst io.Writer, f *File) (int, error) {
	res, err := uvarints.WriteString(dst, f.Name)
	if err != nil {
		return 0, errors.Wrap(err, "dump file name")
	}

	n, err := uvarints.Write(dst, uint64(len(f.Counts)))
	if err != nil {
		return 0, errors.Wrap(err, "dump lines count")
	}
	res += n

	for i, c := range f.Counts {
		n, err := uvarints.Write(dst, c)
		if err != nil {
			return 0, errors.Wrap(err, "dump line counter").Int("line-index", i)
		}

		res += n
	}

	return res, nil
}
