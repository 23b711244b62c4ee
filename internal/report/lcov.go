package report

import (
	"bufio"
	"io"
	"strconv"

	"github.com/sirkon/errors"
	"github.com/sirkon/linecov/internal/snapshot"
)

// WriteLCOV выводит слепок в формате LCOV tracefile. Для каждого файла
// выводятся строки с ненулевым счётчиком, номера строк отсчитываются
// с единицы. Нулевой счётчик неотличим от неинструментированной строки,
// поэтому LF совпадает с LH. Файлы без имени пропускаются.
func WriteLCOV(w io.Writer, testName string, s *snapshot.Snapshot) error {
	bw := bufio.NewWriter(w)
	var buf []byte

	for i := 0; i < s.Len(); i++ {
		f := &s.Files[i]
		if f.Name == "" {
			continue
		}

		buf = buf[:0]
		buf = append(buf, "TN:"...)
		buf = append(buf, testName...)
		buf = append(buf, "\nSF:"...)
		buf = append(buf, f.Name...)
		buf = append(buf, '\n')

		var hit int
		for j, c := range f.Counts {
			if c == 0 {
				continue
			}

			hit++
			buf = append(buf, "DA:"...)
			buf = strconv.AppendInt(buf, int64(j+1), 10)
			buf = append(buf, ',')
			buf = strconv.AppendUint(buf, c, 10)
			buf = append(buf, '\n')
		}

		buf = append(buf, "LF:"...)
		buf = strconv.AppendInt(buf, int64(hit), 10)
		buf = append(buf, "\nLH:"...)
		buf = strconv.AppendInt(buf, int64(hit), 10)
		buf = append(buf, "\nend_of_record\n"...)

		if _, err := bw.Write(buf); err != nil {
			return errors.Wrap(err, "write file record").Str("file-name", f.Name)
		}
	}

	if err := bw.Flush(); err != nil {
		return errors.Wrap(err, "flush lcov output")
	}

	return nil
}
