package adapter

import (
	"errors"
	"fmt"
	"sync"
)

// ErrUnknownProcedure is passed to the failure callback when no procedure is
// registered under the requested name.
var ErrUnknownProcedure = errors.New("unknown procedure")

// Procedure is a named backend function callable through a
// [ProcedureBridge].
type Procedure func(args ...any) (any, error)

// ProcedureBridge is an in-process [Bridge]: procedures are registered by
// name and run asynchronously, each run settling exactly one callback.
type ProcedureBridge struct {
	lock       sync.RWMutex
	procedures map[string]Procedure
}

// NewProcedureBridge returns an empty bridge.
func NewProcedureBridge() *ProcedureBridge {
	return &ProcedureBridge{procedures: make(map[string]Procedure)}
}

// Register binds proc to name, replacing any previous binding.
func (b *ProcedureBridge) Register(name string, proc Procedure) {
	b.lock.Lock()
	defer b.lock.Unlock()
	b.procedures[name] = proc
}

// Run implements [Bridge].
func (b *ProcedureBridge) Run(name string, onSuccess func(value any), onFailure func(reason any), args ...any) {
	b.lock.RLock()
	proc := b.procedures[name]
	b.lock.RUnlock()

	go func() {
		if proc == nil {
			onFailure(fmt.Errorf("%w: %s", ErrUnknownProcedure, name))
			return
		}

		value, err := callProcedure(name, proc, args)
		if err != nil {
			onFailure(err)
			return
		}
		onSuccess(value)
	}()
}

func callProcedure(name string, proc Procedure, args []any) (value any, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("procedure %s panicked: %v", name, r)
		}
	}()
	return proc(args...)
}
