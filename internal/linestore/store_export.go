package linestore

import "github.com/sirkon/linecov/internal/snapshot"

// Export создаёт независимую копию состояния. Файлы без имени получают
// пустое имя, отсутствующие записи выглядят как файлы без строк.
// Наружу выдаются только логические строки каждого файла.
func (s *Store) Export() *snapshot.Snapshot {
	res := &snapshot.Snapshot{
		Files: make([]snapshot.File, len(s.files)),
	}

	for i, rec := range s.files {
		if rec == nil {
			res.Files[i] = snapshot.File{
				Name:   "",
				Counts: []uint64{},
			}
			continue
		}

		res.Files[i] = snapshot.File{
			Name:   rec.name,
			Counts: rec.counts(),
		}
	}

	return res
}
