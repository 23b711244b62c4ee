package report

import (
	"strconv"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/sirkon/linecov/internal/snapshot"
)

// Render текстовое представление слепка по строке на каждую исполненную
// строку файла.
func Render(s *snapshot.Snapshot) string {
	var b strings.Builder
	for i := 0; i < s.Len(); i++ {
		f := &s.Files[i]
		b.WriteString("file ")
		b.WriteString(strconv.Itoa(i + 1))
		b.WriteByte(' ')
		b.WriteString(strconv.Quote(f.Name))
		b.WriteByte('\n')

		for j, c := range f.Counts {
			if c == 0 {
				continue
			}

			b.WriteString("    ")
			b.WriteString(strconv.Itoa(j + 1))
			b.WriteString(": ")
			b.WriteString(strconv.FormatUint(c, 10))
			b.WriteByte('\n')
		}
	}

	return b.String()
}

// Diff построчная разница представлений двух слепков. Добавленные строки
// отмечаются "+", удалённые "-", совпадающие выводятся с отступом.
func Diff(a, b *snapshot.Snapshot) (text string, differs bool) {
	dmp := diffmatchpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(Render(a), Render(b))
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), lines)

	var res strings.Builder
	for _, d := range diffs {
		var prefix string
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			prefix = "+ "
			differs = true
		case diffmatchpatch.DiffDelete:
			prefix = "- "
			differs = true
		default:
			prefix = "  "
		}

		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			res.WriteString(prefix)
			res.WriteString(line)
		}
	}

	return res.String(), differs
}
