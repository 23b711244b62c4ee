package testlog

import (
	"strings"

	"github.com/sirkon/linecov/internal/coverr"
)

const (
	bold  = "\033[1m"
	red   = "\033[1;31m"
	reset = "\033[0m"
)

// TestingPrinter обёртка над *testing.T для вывода данных.
type TestingPrinter interface {
	Helper()
	Log(a ...any)
	Error(a ...any)
}

// Log выводит ошибку в лог теста.
func Log(t TestingPrinter, err error) {
	t.Helper()
	t.Log(renderString(err, bold))
}

// Error выводит ошибку и помечает тест проваленным.
func Error(t TestingPrinter, err error) {
	t.Helper()
	t.Error(renderString(err, red))
}

// Check ничего не делает и возвращает false если ошибки нет.
// Иначе выводит ошибку и возвращает true.
func Check(t TestingPrinter, err error) bool {
	if err == nil {
		return false
	}

	t.Helper()
	t.Error(renderString(err, red))
	return true
}

func renderString(err error, highlight string) string {
	if err == nil {
		return "<nil>"
	}

	var b strings.Builder
	b.WriteString(highlight)
	b.WriteString(err.Error())
	b.WriteString(reset)
	b.WriteByte('\n')

	if code := coverr.AsCode(err); code != coverr.CodeInternal {
		b.WriteString("    " + bold + "category" + reset + ": ")
		b.WriteString(code.ID())
		b.WriteByte('\n')
	}

	return b.String()
}
