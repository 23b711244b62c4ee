package report

import (
	"io"
	"math"
	"os"
	"regexp"
	"strconv"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/rodaine/table"
	"github.com/sirkon/linecov/internal/snapshot"
)

// FileStats сводка покрытия одного файла.
type FileStats struct {
	Name    string
	Lines   int
	Covered int
	Hits    uint64
	Ratio   float64
}

// TotalName имя итоговой строки сводки.
const TotalName = "total"

// Summarize сводки по всем файлам слепка в порядке индексов.
func Summarize(s *snapshot.Snapshot) []FileStats {
	res := make([]FileStats, 0, s.Len())
	for i := 0; i < s.Len(); i++ {
		f := &s.Files[i]

		st := FileStats{
			Name:  f.Name,
			Lines: len(f.Counts),
		}
		for _, c := range f.Counts {
			if c == 0 {
				continue
			}
			st.Covered++
			st.Hits = addSaturating(st.Hits, c)
		}
		st.Ratio = ratio(st.Covered, st.Lines)

		res = append(res, st)
	}

	return res
}

// Total итог по набору сводок.
func Total(stats []FileStats) FileStats {
	res := FileStats{
		Name: TotalName,
	}
	for _, st := range stats {
		res.Lines += st.Lines
		res.Covered += st.Covered
		res.Hits = addSaturating(res.Hits, st.Hits)
	}
	res.Ratio = ratio(res.Covered, res.Lines)

	return res
}

// WriteSummary выводит таблицу сводок с итоговой строкой. При colorize
// доля покрытия раскрашивается по порогам.
func WriteSummary(w io.Writer, stats []FileStats, colorize bool) {
	header := color.New(color.Bold)
	if colorize {
		header.EnableColor()
	} else {
		header.DisableColor()
	}

	tbl := table.New("File", "Lines", "Covered", "Hits", "Ratio").
		WithWriter(w).
		WithHeaderFormatter(header.SprintfFunc()).
		WithWidthFunc(visibleWidth)

	for _, st := range stats {
		addStatsRow(tbl, st, colorize)
	}
	addStatsRow(tbl, Total(stats), colorize)

	tbl.Print()
}

func addStatsRow(tbl table.Table, st FileStats, colorize bool) {
	name := st.Name
	if name == "" {
		name = "-"
	}

	tbl.AddRow(name, st.Lines, st.Covered, st.Hits, ratioText(st.Ratio, colorize))
}

// ColorizeFor проверка того, что вывод в файл стоит раскрашивать.
func ColorizeFor(f *os.File) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Пороги раскраски доли покрытия.
const (
	goodRatio = 0.8
	fairRatio = 0.5
)

func ratioText(r float64, colorize bool) string {
	text := strconv.FormatFloat(r*100, 'f', 1, 64) + "%"
	if !colorize {
		return text
	}

	var c *color.Color
	switch {
	case r >= goodRatio:
		c = color.New(color.FgGreen)
	case r >= fairRatio:
		c = color.New(color.FgYellow)
	default:
		c = color.New(color.FgRed)
	}
	c.EnableColor()

	return c.Sprint(text)
}

var ansiSequence = regexp.MustCompile("\x1b\\[[0-9;]*m")

func visibleWidth(s string) int {
	return utf8.RuneCountInString(ansiSequence.ReplaceAllString(s, ""))
}

func ratio(covered, lines int) float64 {
	if lines == 0 {
		return 0
	}

	return float64(covered) / float64(lines)
}

func addSaturating(a, b uint64) uint64 {
	if a > math.MaxUint64-b {
		return math.MaxUint64
	}

	return a + b
}
