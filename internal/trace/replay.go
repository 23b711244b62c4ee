package trace

import (
	"github.com/sirkon/errors"
	"github.com/sirkon/linecov/internal/hostcall"
	"github.com/sirkon/linecov/internal/tracker"
)

// Replay передаёт события протоколу по одному через интерфейс хоста.
// Исполнение останавливается на первой ошибке.
func Replay(p *tracker.Protocol, events []Event) error {
	for _, ev := range events {
		if _, err := hostcall.Call(p, 0, ev.File, ev.Name, ev.Line); err != nil {
			return errors.Wrap(err, "replay event").
				Int("trace-line", ev.Pos).
				Int("file-number", ev.File).
				Int("line-number", ev.Line).
				Str("file-name", ev.Name)
		}
	}

	return nil
}
