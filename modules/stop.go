package modules

import (
	"errors"
	"sync/atomic"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/tevino/abool"

	"github.com/noisebase/noisebase/log"
)

var (
	shutdownSignal       = make(chan struct{})
	shutdownSignalClosed = abool.NewBool(false)

	exitStatusCode int32
)

// ShuttingDown returns a channel read on the global shutdown signal.
func ShuttingDown() <-chan struct{} {
	return shutdownSignal
}

// SetExitStatusCode sets the exit code that the program shall exit with.
func SetExitStatusCode(n int) {
	atomic.StoreInt32(&exitStatusCode, int32(n))
}

// GetExitStatusCode waits for the shutdown to complete and returns the exit code.
func GetExitStatusCode() int {
	return int(atomic.LoadInt32(&exitStatusCode))
}

// Shutdown stops all modules in the reverse dependency order.
func Shutdown() error {
	if shutdownSignalClosed.SetToIf(false, true) {
		close(shutdownSignal)
	} else {
		// shutdown was already issued
		return errors.New("shutdown already initiated")
	}

	if startComplete.IsSet() {
		log.Warning("modules: starting shutdown...")
	} else {
		log.Warning("modules: aborting, shutting down...")
	}

	modulesLock.Lock()
	defer modulesLock.Unlock()

	var multierr *multierror.Error

	for {
		readyToStop := make([]*Module, 0, len(modules))
		stopped := 0
		for _, m := range modules {
			if m.readyToStop() {
				readyToStop = append(readyToStop, m)
			}
			if m.Stopped.IsSet() || !m.Started.IsSet() {
				stopped++
			}
		}
		if stopped == len(modules) {
			break
		}
		if len(readyToStop) == 0 {
			multierr = multierror.Append(multierr, errors.New("modules: dependency loop detected while stopping"))
			break
		}

		for _, m := range readyToStop {
			m.inTransition.Set()
			err := m.stopModule()
			m.inTransition.UnSet()
			m.Stopped.Set()
			if err != nil {
				log.Errorf("modules: could not stop module %s: %s", m.Name, err)
				multierr = multierror.Append(multierr, err)
			}
		}
	}

	if multierr.ErrorOrNil() != nil {
		SetExitStatusCode(1)
	}

	log.Info("modules: shutdown complete")
	log.Shutdown()
	return multierr.ErrorOrNil()
}

func (m *Module) stopModule() error {
	// signal workers and wait for them to finish
	m.cancelCtx()

	done := make(chan struct{})
	go func() {
		m.workerGroup.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(3 * time.Second):
		return errors.New("timed out while waiting for module workers to finish")
	}

	return m.stop()
}
