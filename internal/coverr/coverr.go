package coverr

import "strings"

// Error ошибка операции над состоянием покрытия. Code задаёт категорию
// ошибки, Msg содержит человекочитаемое описание.
type Error struct {
	Code ErrorCode
	Msg  string
}

func (e Error) Error() string {
	if e.Msg != "" {
		var b strings.Builder
		b.WriteString(e.Code.ID())
		b.WriteString(": ")
		b.WriteString(e.Msg)
		return b.String()
	}

	return e.Code.ID()
}

func newCodedError(code ErrorCode, msg ...string) Error {
	e := Error{
		Code: code,
	}
	switch len(msg) {
	case 0:
	case 1:
		e.Msg = msg[0]
	default:
		e.Msg = strings.Join(msg, ": ")
	}

	return e
}

// NewInvalidUsage ошибка неверного количества аргументов или запрошенных
// результатов.
func NewInvalidUsage(msg ...string) Error {
	return newCodedError(CodeInvalidUsage, msg...)
}

// NewInvalidInput ошибка входных данных: неверный тип, нецелое число,
// NaN или отрицательный счётчик.
func NewInvalidInput(msg ...string) Error {
	return newCodedError(CodeInvalidInput, msg...)
}

// NewFilenameMismatch ошибка повторного связывания индекса файла с другим
// именем.
func NewFilenameMismatch(msg ...string) Error {
	return newCodedError(CodeFilenameMismatch, msg...)
}

// NewAllocationFailure ошибка невозможности нарастить хранилище.
func NewAllocationFailure(msg ...string) Error {
	return newCodedError(CodeAllocationFailure, msg...)
}
