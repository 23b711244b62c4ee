package testlog_test

import (
	stderrs "errors"
	"strings"
	"testing"

	"github.com/sirkon/errors"
	"github.com/sirkon/linecov/internal/coverr"
	"github.com/sirkon/linecov/internal/testlog"
)

type recorder struct {
	logs   []string
	errors []string
}

func (r *recorder) Helper() {}

func (r *recorder) Log(a ...any) {
	r.logs = append(r.logs, a[0].(string))
}

func (r *recorder) Error(a ...any) {
	r.errors = append(r.errors, a[0].(string))
}

func TestLogging(t *testing.T) {
	t.Run("log-std-error", func(t *testing.T) {
		testlog.Log(t, stderrs.New("not an error"))
	})

	t.Run("coded-error-category", func(t *testing.T) {
		var r recorder
		testlog.Log(&r, errors.Wrap(coverr.NewFilenameMismatch("a.src vs b.src"), "record hit"))
		if len(r.logs) != 1 || !strings.Contains(r.logs[0], "linecov:FilenameMismatch") {
			t.Errorf("category must be rendered, got %q", r.logs)
		}
	})

	t.Run("check", func(t *testing.T) {
		var r recorder
		if testlog.Check(&r, nil) {
			t.Error("nil error must not be reported")
		}
		if !testlog.Check(&r, errors.New("failure")) || len(r.errors) != 1 {
			t.Error("non-nil error must be reported")
		}
	})
}
