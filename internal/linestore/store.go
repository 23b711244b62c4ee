package linestore

import (
	"strconv"

	"github.com/sirkon/errors"
	"github.com/sirkon/linecov/internal/coverr"
)

// Store хранилище состояния покрытия: упорядоченный набор записей
// файлов адресуемых плотным индексом с нуля. Поиск по имени файла
// не производится никогда.
//
// Длина files это логическое количество файлов, nil элементы
// соответствуют ещё не затронутым индексам.
type Store struct {
	files []*FileRecord
	lim   limits
}

// New создание пустого хранилища.
func New(opts ...Option) *Store {
	s := &Store{
		lim: limits{
			fileSlots: DefaultMaxFileSlots,
			lineSlots: DefaultMaxLineSlots,
		},
	}
	for _, opt := range opts {
		opt(s, optRestriction{})
	}

	return s
}

// Len логическое количество файлов.
func (s *Store) Len() int {
	return len(s.files)
}

// File возвращает запись файла с данным индексом или nil, если
// запись отсутствует.
func (s *Store) File(index int) *FileRecord {
	if index < 0 || index >= len(s.files) {
		return nil
	}

	return s.files[index]
}

// RecordHit регистрирует одно исполнение строки line файла с индексом
// fileIndex. Индексы отсчитываются с нуля.
//
// Все проверки производятся до изменения хранилища: при ошибке
// состояние остаётся прежним.
func (s *Store) RecordHit(fileIndex int, filename string, line int) error {
	if fileIndex < 0 {
		return coverr.NewInvalidInput("negative file index", strconv.Itoa(fileIndex))
	}
	if line < 0 {
		return coverr.NewInvalidInput("negative line index", strconv.Itoa(line))
	}

	rec := s.File(fileIndex)
	if rec != nil {
		if err := rec.checkFilename(filename); err != nil {
			return errors.Wrap(err, "check file name").Int("file-index", fileIndex)
		}
		if err := rec.checkLineCapacity(line); err != nil {
			return errors.Wrap(err, "check line capacity").Int("file-index", fileIndex)
		}
	} else {
		if err := s.checkFileCapacity(fileIndex); err != nil {
			return errors.Wrap(err, "check file capacity")
		}
		if err := NewFileRecord(s.lim.lineSlots).checkLineCapacity(line); err != nil {
			return errors.Wrap(err, "check line capacity").Int("file-index", fileIndex)
		}
	}

	if err := s.ensureFileCapacity(fileIndex); err != nil {
		return errors.Wrap(err, "grow files")
	}

	if rec == nil {
		rec = NewFileRecord(s.lim.lineSlots)
		s.files[fileIndex] = rec
	}

	if err := rec.BindFilename(filename); err != nil {
		return errors.Wrap(err, "bind file name").Int("file-index", fileIndex)
	}

	if err := rec.Increment(line); err != nil {
		return errors.Wrap(err, "increment line counter").Int("file-index", fileIndex)
	}

	return nil
}

// Clear удаляет все записи.
func (s *Store) Clear() {
	s.files = nil
}

// ensureFileCapacity делает индекс файла адресуемым. Новые элементы
// соответствуют отсутствующим записям.
func (s *Store) ensureFileCapacity(index int) error {
	if index < cap(s.files) {
		if index >= len(s.files) {
			s.files = s.files[:index+1]
		}
		return nil
	}

	capacity, err := grownCapacity(cap(s.files), index, s.lim.fileSlots)
	if err != nil {
		return errors.Wrap(err, "compute files capacity").Int("file-index", index)
	}

	files := make([]*FileRecord, index+1, capacity)
	copy(files, s.files)
	s.files = files

	return nil
}

func (s *Store) checkFileCapacity(index int) error {
	if index < cap(s.files) {
		return nil
	}

	if _, err := grownCapacity(cap(s.files), index, s.lim.fileSlots); err != nil {
		return errors.Wrap(err, "compute files capacity").Int("file-index", index)
	}

	return nil
}
