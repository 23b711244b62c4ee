package linestore

import (
	"strconv"

	"github.com/sirkon/errors"
	"github.com/sirkon/linecov/internal/coverr"
	"github.com/sirkon/linecov/internal/snapshot"
)

// ReplaceAll отбрасывает текущее содержимое хранилища и заполняет его
// данными слепка: запись с индексом i получает имя и счётчики файла i
// слепка. Пустой слепок даёт пустое хранилище.
//
// Новый набор записей строится целиком до замены, при ошибке хранилище
// не изменяется.
func (s *Store) ReplaceAll(src *snapshot.Snapshot) error {
	n := src.Len()
	if s.lim.fileSlots > 0 && n > s.lim.fileSlots {
		return coverr.NewAllocationFailure(
			"too many files",
			strconv.Itoa(n)+" files with limit of "+strconv.Itoa(s.lim.fileSlots),
		)
	}

	files := make([]*FileRecord, n)
	for i := range files {
		f := &src.Files[i]
		if s.lim.lineSlots > 0 && len(f.Counts) > s.lim.lineSlots {
			return errors.Wrap(
				coverr.NewAllocationFailure(
					"too many lines",
					strconv.Itoa(len(f.Counts))+" lines with limit of "+strconv.Itoa(s.lim.lineSlots),
				),
				"replace file",
			).
				Int("file-index", i).
				Str("file-name", f.Name)
		}

		rec := NewFileRecord(s.lim.lineSlots)
		rec.ResetFrom(f.Counts, f.Name)
		files[i] = rec
	}

	s.files = files
	return nil
}
