package linestore

import (
	"math"
	"strconv"

	"github.com/sirkon/errors"
	"github.com/sirkon/linecov/internal/coverr"
)

// FileRecord счётчики исполнения строк одного файла и связанное с ним
// имя файла.
//
// Длина lines это логическое количество строк (наибольший затронутый
// индекс плюс один), ёмкость lines может быть больше и наружу не видна.
type FileRecord struct {
	name     string
	bound    bool
	lines    []uint64
	maxLines int
}

// NewFileRecord создание пустой записи. maxLines ограничивает ёмкость
// массива счётчиков, 0 снимает ограничение.
func NewFileRecord(maxLines int) *FileRecord {
	return &FileRecord{
		maxLines: maxLines,
	}
}

// Name возвращает имя файла, пустая строка если имя ещё не задано.
func (r *FileRecord) Name() string {
	return r.name
}

// Bound проверка того, что имя файла уже задано.
func (r *FileRecord) Bound() bool {
	return r.bound
}

// Lines логическое количество строк.
func (r *FileRecord) Lines() int {
	return len(r.lines)
}

// Count возвращает значение счётчика строки с данным индексом (с нуля).
// Для строк за пределами логической длины возвращается 0.
func (r *FileRecord) Count(line int) uint64 {
	if line < 0 || line >= len(r.lines) {
		return 0
	}

	return r.lines[line]
}

// BindFilename связывает запись с именем файла, если оно ещё не задано.
// Если имя уже задано и отличается от данного, то возвращается ошибка
// FilenameMismatch.
func (r *FileRecord) BindFilename(name string) error {
	if err := r.checkFilename(name); err != nil {
		return err
	}

	if !r.bound {
		r.name = name
		r.bound = true
	}

	return nil
}

// Increment увеличивает счётчик строки на единицу, наращивая массив
// счётчиков при необходимости. Счётчик насыщается на math.MaxUint64.
func (r *FileRecord) Increment(line int) error {
	if line < 0 {
		return coverr.NewInvalidInput("negative line index", strconv.Itoa(line))
	}

	if err := r.ensureLineCapacity(line); err != nil {
		return err
	}

	if r.lines[line] != math.MaxUint64 {
		r.lines[line]++
	}

	return nil
}

// ResetFrom отбрасывает предыдущее содержимое записи, безусловно задаёт имя
// файла и копирует счётчики как есть.
func (r *FileRecord) ResetFrom(counts []uint64, name string) {
	lines := make([]uint64, len(counts))
	copy(lines, counts)

	*r = FileRecord{
		name:     name,
		bound:    true,
		lines:    lines,
		maxLines: r.maxLines,
	}
}

func (r *FileRecord) checkFilename(name string) error {
	if !r.bound || r.name == name {
		return nil
	}

	return errors.Wrap(
		coverr.NewFilenameMismatch("file index is already bound to a different file name"),
		"bind file name",
	).
		Str("bound-name", r.name).
		Str("given-name", name)
}

// ensureLineCapacity делает строку с данным индексом адресуемой.
func (r *FileRecord) ensureLineCapacity(line int) error {
	if line < cap(r.lines) {
		if line >= len(r.lines) {
			r.lines = r.lines[:line+1]
		}
		return nil
	}

	capacity, err := grownCapacity(cap(r.lines), line, r.maxLines)
	if err != nil {
		return errors.Wrap(err, "grow line counters").Int("line-index", line)
	}

	lines := make([]uint64, line+1, capacity)
	copy(lines, r.lines)
	r.lines = lines

	return nil
}

// checkLineCapacity проверка возможности адресовать строку без изменения
// записи.
func (r *FileRecord) checkLineCapacity(line int) error {
	if line < cap(r.lines) {
		return nil
	}

	if _, err := grownCapacity(cap(r.lines), line, r.maxLines); err != nil {
		return errors.Wrap(err, "grow line counters").Int("line-index", line)
	}

	return nil
}

func (r *FileRecord) counts() []uint64 {
	res := make([]uint64, len(r.lines))
	copy(res, r.lines)
	return res
}
