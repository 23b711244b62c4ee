package coverr

import "errors"

// IDPrefix префикс стабильных идентификаторов ошибок.
const IDPrefix = "linecov:"

// AsCode получить код соответствующий ошибке.
func AsCode(err error) ErrorCode {
	if err == nil {
		return CodeOK
	}

	var target Error
	if !errors.As(err, &target) {
		return CodeInternal
	}

	return target.Code
}

// Is проверяет, что ошибка относится к данной категории.
func Is(err error, code ErrorCode) bool {
	return err != nil && AsCode(err) == code
}

// ErrorCode категории ошибок.
type ErrorCode int32

const (
	// CodeUnknown неиспользуемый код ошибки.
	CodeUnknown ErrorCode = 0

	// CodeOK ошибки нет.
	CodeOK ErrorCode = 200

	// CodeInternal ошибка не относящаяся ни к одной из категорий.
	CodeInternal ErrorCode = 1000

	// CodeInvalidUsage неверное число аргументов или результатов.
	CodeInvalidUsage ErrorCode = 4000

	// CodeInvalidInput недопустимые входные данные.
	CodeInvalidInput ErrorCode = 4001

	// CodeFilenameMismatch индекс файла повторно использован для другого файла.
	CodeFilenameMismatch ErrorCode = 4002

	// CodeAllocationFailure не удалось нарастить хранилище.
	CodeAllocationFailure ErrorCode = 5000
)

func (c ErrorCode) String() string {
	switch c {
	case CodeOK:
		return "OK"
	case CodeInternal:
		return "Internal"
	case CodeInvalidUsage:
		return "InvalidUsage"
	case CodeInvalidInput:
		return "InvalidInput"
	case CodeFilenameMismatch:
		return "FilenameMismatch"
	case CodeAllocationFailure:
		return "AllocationFailure"
	default:
		return "Unknown"
	}
}

// ID стабильный идентификатор категории, например linecov:InvalidInput.
func (c ErrorCode) ID() string {
	return IDPrefix + c.String()
}
