package tracker

import "github.com/sirkon/linecov/internal/snapshot"

// Source источник данных для замены состояния. Snapshot возвращает
// проверенный слепок, nil означает пустое состояние.
type Source interface {
	Snapshot() (*snapshot.Snapshot, error)
}

// Empty источник пустого состояния.
func Empty() Source {
	return emptySource{}
}

// FromSnapshot источник возвращающий копию данного слепка.
func FromSnapshot(s *snapshot.Snapshot) Source {
	return snapshotSource{s: s}
}

// FromExternal источник из внешнего представления, оно проверяется
// при обращении.
func FromExternal(ext snapshot.External) Source {
	return externalSource{ext: ext}
}

type emptySource struct{}

func (emptySource) Snapshot() (*snapshot.Snapshot, error) {
	return nil, nil
}

type snapshotSource struct {
	s *snapshot.Snapshot
}

func (s snapshotSource) Snapshot() (*snapshot.Snapshot, error) {
	return s.s.Clone(), nil
}

type externalSource struct {
	ext snapshot.External
}

func (s externalSource) Snapshot() (*snapshot.Snapshot, error) {
	return snapshot.FromExternal(s.ext)
}
