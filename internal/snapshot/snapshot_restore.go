package snapshot

import (
	"math"

	"github.com/sirkon/errors"
	"github.com/sirkon/linecov/internal/uvarints"
)

// Ограничения на вычитываемые значения. Повреждённые данные не должны
// приводить к огромным выделениям памяти.
const (
	maxRestoredFiles    = 1 << 24
	maxRestoredLines    = 1 << 30
	maxRestoredNameSize = 1 << 16

	restorePreallocLimit = 1024
)

// FromDump восстановление слепка сохранённого с помощью Dump.
func FromDump(src uvarints.Reader) (*Snapshot, error) {
	count, err := uvarints.ReadLimited(src, maxRestoredFiles)
	if err != nil {
		return nil, errors.Wrap(err, "restore files count")
	}

	res := &Snapshot{
		Files: make([]File, 0, min(int(count), restorePreallocLimit)),
	}
	for i := 0; i < int(count); i++ {
		f, err := restoreFile(src)
		if err != nil {
			return nil, errors.Wrap(err, "restore file").
				Int("file-index", i).
				Int("files-count", int(count))
		}

		res.Files = append(res.Files, f)
	}

	return res, nil
}

func restoreFile(src uvarints.Reader) (File, error) {
	name, err := uvarints.ReadString(src, maxRestoredNameSize)
	if err != nil {
		return File{}, errors.Wrap(err, "restore file name")
	}

	lines, err := uvarints.ReadLimited(src, maxRestoredLines)
	if err != nil {
		return File{}, errors.Wrap(err, "restore lines count")
	}

	counts := make([]uint64, 0, min(int(lines), restorePreallocLimit))
	for i := 0; i < int(lines); i++ {
		c, err := uvarints.ReadLimited(src, math.MaxUint64)
		if err != nil {
			return File{}, errors.Wrap(err, "restore line counter").
				Int("line-index", i).
				Str("file-name", name)
		}

		counts = append(counts, c)
	}

	return File{
		Name:   name,
		Counts: counts,
	}, nil
}
