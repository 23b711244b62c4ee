package logging

// Logger абстракция предназначенная для логирования в строго определённых ситуациях.
// Реализация логирования должна делаться пользователями библиотеки.
type Logger interface {
	// StoreInitialized хранилище создано при первом обращении.
	StoreInitialized()
	// StoreReleased хранилище освобождено, files количество файлов в нём
	// на момент освобождения.
	StoreReleased(files int)
	// StateReplaced состояние полностью заменено данными из files файлов.
	StateReplaced(files int)
	// OperationFailed операция op завершилась ошибкой.
	OperationFailed(op string, err error)
}

// Nop возвращает логгер ничего не делающий.
func Nop() Logger {
	return nopLogger{}
}

type nopLogger struct{}

func (nopLogger) StoreInitialized()             {}
func (nopLogger) StoreReleased(int)             {}
func (nopLogger) StateReplaced(int)             {}
func (nopLogger) OperationFailed(string, error) {}
