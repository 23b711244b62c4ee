package archive

import "time"

// DefaultTimeout время ожидания блокировки файла архива по умолчанию.
const DefaultTimeout = 5 * time.Second

// Option опция открытия архива.
type Option func(c *config, _ optRestriction)

// WithTimeout задаёт время ожидания блокировки файла архива.
func WithTimeout(timeout time.Duration) Option {
	return func(c *config, _ optRestriction) {
		c.timeout = timeout
	}
}

// WithClock задаёт источник времени создания контрольных точек.
func WithClock(now func() time.Time) Option {
	return func(c *config, _ optRestriction) {
		c.now = now
	}
}

type config struct {
	timeout time.Duration
	now     func() time.Time
}

type optRestriction struct{}
