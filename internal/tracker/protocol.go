package tracker

import (
	"strconv"

	"github.com/sirkon/errors"
	"github.com/sirkon/linecov/internal/coverr"
	"github.com/sirkon/linecov/internal/snapshot"
)

// Названия операций для логирования.
const (
	OpRecord  = "record"
	OpReplace = "replace"
	OpExport  = "export"
)

// Protocol три операции над хранилищем процесса: регистрация исполнения
// строки, полная замена состояния и выгрузка состояния.
//
// Каждая операция может вернуть текущее состояние: nout задаёт количество
// запрошенных результатов, 0 означает, что состояние не нужно, 1 что нужно,
// большие значения недопустимы.
type Protocol struct {
	proc *Process
}

// New конструктор протокола над данным контекстом процесса.
func New(proc *Process) *Protocol {
	return &Protocol{
		proc: proc,
	}
}

// Process возвращает контекст процесса.
func (p *Protocol) Process() *Process {
	return p.proc
}

// Record регистрирует одно исполнение строки line файла fileIndex с именем
// filename. Индексы отсчитываются с нуля.
func (p *Protocol) Record(fileIndex int, filename string, line int, nout int) (*snapshot.Snapshot, error) {
	if err := checkOutputs(nout); err != nil {
		return nil, p.failed(OpRecord, err)
	}

	store := p.proc.Store()
	if err := store.RecordHit(fileIndex, filename, line); err != nil {
		return nil, p.failed(
			OpRecord,
			errors.Wrap(err, "record hit").
				Int("file-index", fileIndex).
				Str("file-name", filename).
				Int("line-index", line),
		)
	}

	return p.output(nout), nil
}

// Replace полностью заменяет состояние данными источника.
//
// Хранилище очищается до разбора и проверки источника, поэтому при ошибке
// в данных оно остаётся пустым, а не в прежнем состоянии.
func (p *Protocol) Replace(src Source, nout int) (*snapshot.Snapshot, error) {
	if err := checkOutputs(nout); err != nil {
		return nil, p.failed(OpReplace, err)
	}

	store := p.proc.Store()
	store.Clear()

	snap, err := src.Snapshot()
	if err != nil {
		return nil, p.failed(OpReplace, errors.Wrap(err, "get replacement state"))
	}

	if err := store.ReplaceAll(snap); err != nil {
		return nil, p.failed(OpReplace, errors.Wrap(err, "replace state"))
	}

	p.proc.log.StateReplaced(store.Len())
	return p.output(nout), nil
}

// Export возвращает текущее состояние без его изменения.
func (p *Protocol) Export(nout int) (*snapshot.Snapshot, error) {
	if err := checkOutputs(nout); err != nil {
		return nil, p.failed(OpExport, err)
	}

	p.proc.Store()
	return p.output(nout), nil
}

// Reject сообщает об ошибке операции op, обнаруженной до обращения к
// протоколу, и возвращает её же.
func (p *Protocol) Reject(op string, err error) error {
	return p.failed(op, err)
}

func (p *Protocol) output(nout int) *snapshot.Snapshot {
	if nout == 0 {
		return nil
	}

	return p.proc.Store().Export()
}

func (p *Protocol) failed(op string, err error) error {
	p.proc.log.OperationFailed(op, err)
	return err
}

func checkOutputs(nout int) error {
	switch {
	case nout < 0:
		return coverr.NewInvalidUsage("negative number of outputs", strconv.Itoa(nout))
	case nout > 1:
		return coverr.NewInvalidUsage("this function accepts at most one output", strconv.Itoa(nout)+" requested")
	default:
		return nil
	}
}
