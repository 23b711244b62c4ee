package main

import (
	"github.com/sirkon/linecov/internal/logging"
	"github.com/sirkon/message"
)

var _ logging.Logger = messageLogger{}

// messageLogger реализация logging.Logger через message. События жизненного
// цикла хранилища выводятся только в подробном режиме.
type messageLogger struct {
	verbose bool
}

func (l messageLogger) StoreInitialized() {
	if l.verbose {
		message.Info("coverage store initialized")
	}
}

func (l messageLogger) StoreReleased(files int) {
	if l.verbose {
		message.Infof("coverage store released with %d files", files)
	}
}

func (l messageLogger) StateReplaced(files int) {
	if l.verbose {
		message.Infof("coverage state replaced with %d files", files)
	}
}

func (l messageLogger) OperationFailed(op string, err error) {
	if l.verbose {
		message.Warningf("%s failed: %s", op, err)
	}
}
