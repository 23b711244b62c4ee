package tracker

import (
	"github.com/sirkon/linecov/internal/linestore"
	"github.com/sirkon/linecov/internal/logging"
)

// Process контекст уровня процесса, владеющий единственным хранилищем
// покрытия. Хранилище создаётся лениво при первом обращении и живёт до
// вызова Teardown.
//
// Process не предназначен для конкурентного использования.
type Process struct {
	store *linestore.Store
	opts  []linestore.Option
	log   logging.Logger
}

// NewProcess создание контекста. Опции передаются хранилищу при его
// создании.
func NewProcess(log logging.Logger, opts ...linestore.Option) *Process {
	if log == nil {
		log = logging.Nop()
	}

	return &Process{
		opts: opts,
		log:  log,
	}
}

// Initialized проверка того, что хранилище уже создано.
func (p *Process) Initialized() bool {
	return p.store != nil
}

// Store возвращает хранилище, создавая его при необходимости.
func (p *Process) Store() *linestore.Store {
	if p.store == nil {
		p.store = linestore.New(p.opts...)
		p.log.StoreInitialized()
	}

	return p.store
}

// Teardown освобождает хранилище. Повторные вызовы ничего не делают,
// последующее обращение к Store создаст новое пустое хранилище.
func (p *Process) Teardown() {
	if p.store == nil {
		return
	}

	files := p.store.Len()
	p.store.Clear()
	p.store = nil
	p.log.StoreReleased(files)
}
