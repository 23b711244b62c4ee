package hostcall

import (
	"strconv"

	"github.com/sirkon/errors"
	"github.com/sirkon/linecov/internal/coverr"
	"github.com/sirkon/linecov/internal/snapshot"
	"github.com/sirkon/linecov/internal/tracker"
)

// Value значение в представлении хоста: число, строка, числовой вектор,
// структура или массив значений.
type Value = any

// Struct структура хоста с именованными полями.
type Struct map[string]Value

// Поля структуры состояния.
const (
	FieldKeys      = "keys"
	FieldLineCount = "line_count"
)

// OpDispatch название операции выбора обработчика для логирования.
const OpDispatch = "dispatch"

// Call выбирает операцию по количеству аргументов:
//
//   - без аргументов выгрузка состояния.
//   - один аргумент замена состояния. Аргумент это пустой маркер []float64{}
//     или структура с полями keys и line_count.
//   - три аргумента регистрация исполнения строки. Аргументы это номер файла,
//     имя файла и номер строки, номера отсчитываются с единицы.
//
// Остальные количества аргументов дают ошибку InvalidUsage. При nout равном
// единице возвращается текущее состояние в виде Struct.
func Call(p *tracker.Protocol, nout int, args ...Value) (Value, error) {
	var (
		snap *snapshot.Snapshot
		err  error
	)

	switch len(args) {
	case 0:
		snap, err = p.Export(nout)
	case 1:
		snap, err = p.Replace(stateSource{v: args[0]}, nout)
	case 3:
		snap, err = record(p, nout, args[0], args[1], args[2])
	default:
		return nil, p.Reject(
			OpDispatch,
			coverr.NewInvalidUsage(
				"this function accepts zero, one, or three inputs",
				strconv.Itoa(len(args))+" given",
			),
		)
	}
	if err != nil {
		return nil, err
	}

	if snap == nil {
		return nil, nil
	}

	return FromSnapshot(snap), nil
}

func record(p *tracker.Protocol, nout int, index, name, line Value) (*snapshot.Snapshot, error) {
	fileIndex, err := oneBasedArg(index, "arg 1 of 3")
	if err != nil {
		return nil, p.Reject(tracker.OpRecord, errors.Wrap(err, "get file index"))
	}

	filename, ok := name.(string)
	if !ok {
		return nil, p.Reject(
			tracker.OpRecord,
			coverr.NewInvalidInput("arg 2 of 3 must be a string"),
		)
	}

	lineIndex, err := oneBasedArg(line, "arg 3 of 3")
	if err != nil {
		return nil, p.Reject(tracker.OpRecord, errors.Wrap(err, "get line number"))
	}

	return p.Record(fileIndex, filename, lineIndex, nout)
}
