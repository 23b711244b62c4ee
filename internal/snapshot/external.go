package snapshot

import (
	"math"
	"strconv"

	"github.com/sirkon/errors"
	"github.com/sirkon/linecov/internal/coverr"
)

// External внешнее представление слепка в терминах хост-среды: имена
// файлов (keys) и параллельные им вектора счётчиков (line_count), где
// числа представлены как double.
type External struct {
	Keys      []string
	LineCount [][]float64
}

// maxExactCount граница значений счётчика представимых в uint64.
const maxExactCount = float64(math.MaxUint64)

// ToExternal преобразование слепка во внешнее представление. Результат
// не разделяет память со слепком.
func ToExternal(s *Snapshot) External {
	res := External{
		Keys:      make([]string, s.Len()),
		LineCount: make([][]float64, s.Len()),
	}

	for i := 0; i < s.Len(); i++ {
		f := s.Files[i]
		res.Keys[i] = f.Name

		counts := make([]float64, len(f.Counts))
		for j, c := range f.Counts {
			counts[j] = float64(c)
		}
		res.LineCount[i] = counts
	}

	return res
}

// FromExternal проверка и преобразование внешнего представления в слепок.
// Возвращается первое найденное нарушение. Никакое хранилище при этом
// не затрагивается.
func FromExternal(ext External) (*Snapshot, error) {
	if len(ext.Keys) != len(ext.LineCount) {
		return nil, errors.Wrap(
			coverr.NewInvalidInput("fields keys and line_count have different number of elements"),
			"check external snapshot shape",
		).
			Int("keys-count", len(ext.Keys)).
			Int("line-count-count", len(ext.LineCount))
	}

	res := &Snapshot{
		Files: make([]File, len(ext.Keys)),
	}
	for i, name := range ext.Keys {
		counts := make([]uint64, len(ext.LineCount[i]))
		for j, v := range ext.LineCount[i] {
			c, err := CountFromFloat(v)
			if err != nil {
				return nil, errors.Wrap(err, "convert line count").
					Int("file-index", i).
					Str("file-name", name).
					Int("line-index", j)
			}

			counts[j] = c
		}

		res.Files[i] = File{
			Name:   name,
			Counts: counts,
		}
	}

	return res, nil
}

// CountFromFloat преобразование числа хост-среды в счётчик строки.
// Значение должно быть неотрицательным целым.
func CountFromFloat(v float64) (uint64, error) {
	if math.IsNaN(v) {
		return 0, coverr.NewInvalidInput("value is NaN")
	}

	if math.IsInf(v, 0) || v != math.Trunc(v) {
		return 0, coverr.NewInvalidInput("value is non-integer double", strconv.FormatFloat(v, 'g', -1, 64))
	}

	if v < 0 {
		return 0, coverr.NewInvalidInput("negative count", strconv.FormatFloat(v, 'g', -1, 64))
	}

	if v >= maxExactCount {
		return 0, coverr.NewInvalidInput("count does not fit into a counter", strconv.FormatFloat(v, 'g', -1, 64))
	}

	return uint64(v), nil
}
