package modules

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/noisebase/noisebase/log"
)

var errNoModule = errors.New("missing module (is nil!)")

// StartWorker starts a generic worker in a new goroutine and returns immediately. The worker is tracked by the module and waited for at shutdown.
func (m *Module) StartWorker(name string, fn func(context.Context) error) {
	go func() {
		err := m.RunWorker(name, fn)
		switch {
		case err == nil:
			return
		case errors.Is(err, context.Canceled):
			log.Debugf("%s: worker %s was canceled", m.Name, name)
		default:
			log.Errorf("%s: worker %s failed: %s", m.Name, name, err)
		}
	}()
}

// RunWorker runs a generic worker and blocks until it is finished. Panics are recovered and returned as errors.
func (m *Module) RunWorker(name string, fn func(context.Context) error) (err error) {
	if m == nil {
		log.Errorf(`modules: cannot start worker "%s" with nil module`, name)
		return errNoModule
	}

	m.workerGroup.Add(1)
	defer m.workerGroup.Done()

	defer func() {
		if panicVal := recover(); panicVal != nil {
			err = fmt.Errorf("%s: worker %s panicked: %s", m.Name, name, panicVal)
			log.Errorf("%s\n%s", err, debug.Stack())
		}
	}()

	return fn(m.Ctx)
}
