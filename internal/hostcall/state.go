package hostcall

import (
	"strconv"

	"github.com/sirkon/linecov/internal/coverr"
	"github.com/sirkon/linecov/internal/snapshot"
)

// FromSnapshot представление слепка в виде структуры хоста. Счётчики
// отдаются векторами float64, структура принимается обратно как аргумент
// замены состояния.
func FromSnapshot(s *snapshot.Snapshot) Struct {
	ext := snapshot.ToExternal(s)

	keys := make([]Value, len(ext.Keys))
	for i, key := range ext.Keys {
		keys[i] = key
	}

	counts := make([]Value, len(ext.LineCount))
	for i, c := range ext.LineCount {
		counts[i] = c
	}

	return Struct{
		FieldKeys:      keys,
		FieldLineCount: counts,
	}
}

// ToExternal разбор значения хоста во внешнее представление состояния.
// Пустой маркер даёт пустое представление.
func ToExternal(v Value) (snapshot.External, error) {
	if isEmptyMarker(v) {
		return snapshot.External{}, nil
	}

	st, err := singleStruct(v)
	if err != nil {
		return snapshot.External{}, err
	}

	rawKeys, okKeys := st[FieldKeys]
	rawCounts, okCounts := st[FieldLineCount]
	if !okKeys || !okCounts {
		return snapshot.External{}, coverr.NewInvalidInput("input struct must have 'keys' and 'line_count' fields")
	}

	keys, err := keysField(rawKeys)
	if err != nil {
		return snapshot.External{}, err
	}

	counts, err := lineCountField(rawCounts)
	if err != nil {
		return snapshot.External{}, err
	}

	if len(keys) != len(counts) {
		return snapshot.External{}, coverr.NewInvalidInput(
			"input struct fields .keys and .line_count have different number of elements",
			strconv.Itoa(len(keys))+" vs "+strconv.Itoa(len(counts)),
		)
	}

	return snapshot.External{
		Keys:      keys,
		LineCount: counts,
	}, nil
}

// stateSource источник замены состояния из значения хоста. Значение
// разбирается уже после очистки хранилища.
type stateSource struct {
	v Value
}

func (s stateSource) Snapshot() (*snapshot.Snapshot, error) {
	ext, err := ToExternal(s.v)
	if err != nil {
		return nil, err
	}

	return snapshot.FromExternal(ext)
}

func isEmptyMarker(v Value) bool {
	switch x := v.(type) {
	case nil:
		return true
	case []float64:
		return len(x) == 0
	default:
		return false
	}
}

func singleStruct(v Value) (Struct, error) {
	switch x := v.(type) {
	case Struct:
		return x, nil
	case map[string]Value:
		return x, nil
	case []Struct:
		if len(x) != 1 {
			return nil, coverr.NewInvalidInput("input struct must have size 1x1", strconv.Itoa(len(x))+" elements given")
		}
		return x[0], nil
	default:
		return nil, coverr.NewInvalidInput("input must be a struct")
	}
}

func keysField(v Value) ([]string, error) {
	switch x := v.(type) {
	case []string:
		return x, nil
	case []Value:
		res := make([]string, len(x))
		for i, item := range x {
			key, ok := item.(string)
			if !ok {
				return nil, coverr.NewInvalidInput("input key element must be string", "key "+strconv.Itoa(i+1))
			}
			res[i] = key
		}
		return res, nil
	default:
		return nil, coverr.NewInvalidInput("input keys must be a cell array of strings")
	}
}

func lineCountField(v Value) ([][]float64, error) {
	switch x := v.(type) {
	case [][]float64:
		return x, nil
	case []Value:
		res := make([][]float64, len(x))
		for i, item := range x {
			switch c := item.(type) {
			case []float64:
				res[i] = c
			case float64:
				res[i] = []float64{c}
			default:
				return nil, coverr.NewInvalidInput(
					"input line count array must all be of double type",
					"line count "+strconv.Itoa(i+1),
				)
			}
		}
		return res, nil
	default:
		return nil, coverr.NewInvalidInput("input line counts must be a cell array of double arrays")
	}
}
