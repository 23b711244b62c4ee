package snapshot

import "golang.org/x/exp/slices"

// Snapshot плоское представление состояния покрытия: последовательность
// файлов выровненная по индексу файла в хранилище.
type Snapshot struct {
	Files []File
}

// File имя файла и счётчики его строк. Counts[i] это число исполнений
// строки i+1.
type File struct {
	Name   string
	Counts []uint64
}

// New создание слепка из данных файлов. Данные не копируются.
func New(files ...File) *Snapshot {
	return &Snapshot{
		Files: files,
	}
}

// Len количество файлов в слепке.
func (s *Snapshot) Len() int {
	if s == nil {
		return 0
	}

	return len(s.Files)
}

// Clone глубокая копия слепка.
func (s *Snapshot) Clone() *Snapshot {
	if s == nil {
		return &Snapshot{}
	}

	res := &Snapshot{
		Files: make([]File, len(s.Files)),
	}
	for i, f := range s.Files {
		res.Files[i] = File{
			Name:   f.Name,
			Counts: cloneCounts(f.Counts),
		}
	}

	return res
}

// Equal побитовое сравнение слепков. Пустой и nil набор счётчиков
// считаются равными.
func (s *Snapshot) Equal(o *Snapshot) bool {
	if s.Len() != o.Len() {
		return false
	}

	for i := 0; i < s.Len(); i++ {
		a, b := s.Files[i], o.Files[i]
		if a.Name != b.Name || !slices.Equal(a.Counts, b.Counts) {
			return false
		}
	}

	return true
}

func cloneCounts(v []uint64) []uint64 {
	if len(v) == 0 {
		return []uint64{}
	}

	return slices.Clone(v)
}
