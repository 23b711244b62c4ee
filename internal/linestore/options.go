package linestore

// Ограничения по умолчанию на ёмкость массивов в элементах.
const (
	DefaultMaxFileSlots = 1 << 20
	DefaultMaxLineSlots = 1 << 25
)

type limits struct {
	fileSlots int
	lineSlots int
}

// Option определение опции хранилища.
type Option func(s *Store, _ optRestriction)

type optRestriction struct{}

// WithMaxFileSlots ограничение ёмкости массива файлов. Значение 0
// снимает ограничение.
func WithMaxFileSlots(n int) Option {
	return func(s *Store, _ optRestriction) {
		s.lim.fileSlots = n
	}
}

// WithMaxLineSlots ограничение ёмкости массива счётчиков одного файла.
// Значение 0 снимает ограничение.
func WithMaxLineSlots(n int) Option {
	return func(s *Store, _ optRestriction) {
		s.lim.lineSlots = n
	}
}
