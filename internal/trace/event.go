package trace

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/sirkon/errors"
	"github.com/sirkon/linecov/internal/coverr"
)

// Event одно исполнение строки: номер файла, номер строки и имя файла.
// Номера отсчитываются с единицы. Pos номер строки трассы с событием.
type Event struct {
	Pos  int
	File int
	Line int
	Name string
}

// Parse чтение событий трассы. Каждое событие записывается строкой вида
//
//	<номер файла> <номер строки> <имя файла>
//
// где имя файла занимает остаток строки, включая завершающие пробелы.
// Пустые строки и строки начинающиеся с # пропускаются.
func Parse(r io.Reader) ([]Event, error) {
	var res []Event

	scanner := bufio.NewScanner(r)
	var pos int
	for scanner.Scan() {
		pos++

		// Имя файла сохраняет завершающие пробелы, отбрасывается только
		// перевод каретки.
		text := strings.TrimLeft(strings.TrimSuffix(scanner.Text(), "\r"), " \t")
		if strings.TrimSpace(text) == "" || strings.HasPrefix(text, "#") {
			continue
		}

		ev, err := parseEvent(text)
		if err != nil {
			return nil, errors.Wrap(err, "parse trace event").Int("trace-line", pos)
		}

		ev.Pos = pos
		res = append(res, ev)
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read trace").Int("trace-line", pos)
	}

	return res, nil
}

func parseEvent(text string) (Event, error) {
	fileText, rest, ok := cutField(text)
	if !ok {
		return Event{}, coverr.NewInvalidInput("malformed trace event", "line number and file name expected")
	}

	lineText, name, ok := cutField(rest)
	if !ok {
		return Event{}, coverr.NewInvalidInput("malformed trace event", "file name expected")
	}

	file, err := strconv.Atoi(fileText)
	if err != nil {
		return Event{}, coverr.NewInvalidInput("malformed file number", strconv.Quote(fileText))
	}

	line, err := strconv.Atoi(lineText)
	if err != nil {
		return Event{}, coverr.NewInvalidInput("malformed line number", strconv.Quote(lineText))
	}

	return Event{
		File: file,
		Line: line,
		Name: name,
	}, nil
}

// cutField отделяет первое поле от остатка строки.
func cutField(text string) (field, rest string, ok bool) {
	i := strings.IndexAny(text, " \t")
	if i < 0 {
		return text, "", false
	}

	rest = strings.TrimLeft(text[i:], " \t")
	return text[:i], rest, rest != ""
}
