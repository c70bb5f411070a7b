package modules

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/tevino/abool"
)

var (
	modulesLock sync.Mutex
	modules     = make(map[string]*Module)

	// ErrCleanExit is returned by Start() when the program is interrupted before starting.
	ErrCleanExit = errors.New("clean exit requested")
)

// Module represents a module with a prep/start/stop lifecycle.
type Module struct {
	Name string

	// lifecycle mgmt
	Prepped      *abool.AtomicBool
	Started      *abool.AtomicBool
	Stopped      *abool.AtomicBool
	inTransition *abool.AtomicBool

	// lifecycle callback functions
	prep  func() error
	start func() error
	stop  func() error

	// shutdown mgmt
	Ctx         context.Context
	cancelCtx   func()
	workerGroup sync.WaitGroup

	// dependency mgmt
	depNames   []string
	depModules []*Module
}

// ShuttingDown lets you listen for the module's shutdown signal.
func (m *Module) ShuttingDown() <-chan struct{} {
	return m.Ctx.Done()
}

// IsStopping returns whether the module has started shutting down.
func (m *Module) IsStopping() bool {
	return m.Ctx.Err() != nil
}

func dummyAction() error {
	return nil
}

// Register registers a new module. The control functions `prep`, `start` and `stop` are technically optional. `stop` is called _after_ all added module workers finished.
func Register(name string, prep, start, stop func() error, dependencies ...string) *Module {
	ctx, cancelCtx := context.WithCancel(context.Background())

	newModule := &Module{
		Name:         name,
		Prepped:      abool.NewBool(false),
		Started:      abool.NewBool(false),
		Stopped:      abool.NewBool(false),
		inTransition: abool.NewBool(false),
		prep:         prep,
		start:        start,
		stop:         stop,
		Ctx:          ctx,
		cancelCtx:    cancelCtx,
		depNames:     dependencies,
	}

	// replace nil control functions
	if newModule.prep == nil {
		newModule.prep = dummyAction
	}
	if newModule.start == nil {
		newModule.start = dummyAction
	}
	if newModule.stop == nil {
		newModule.stop = dummyAction
	}

	modulesLock.Lock()
	defer modulesLock.Unlock()

	if _, ok := modules[name]; ok {
		panic(fmt.Sprintf("modules: module %s is already registered", name))
	}
	modules[name] = newModule

	return newModule
}

// initDependencies resolves the registered dependency names to modules.
func initDependencies() error {
	for _, m := range modules {
		m.depModules = make([]*Module, 0, len(m.depNames))
		for _, depName := range m.depNames {
			depModule, ok := modules[depName]
			if !ok {
				return fmt.Errorf("module %s declares dependency on unregistered module %s", m.Name, depName)
			}
			m.depModules = append(m.depModules, depModule)
		}
	}
	return nil
}

func (m *Module) readyToPrep() bool {
	if m.Prepped.IsSet() || m.inTransition.IsSet() {
		return false
	}
	for _, dep := range m.depModules {
		if !dep.Prepped.IsSet() {
			return false
		}
	}
	return true
}

func (m *Module) readyToStart() bool {
	if !m.Prepped.IsSet() || m.Started.IsSet() || m.inTransition.IsSet() {
		return false
	}
	for _, dep := range m.depModules {
		if !dep.Started.IsSet() {
			return false
		}
	}
	return true
}

func (m *Module) readyToStop() bool {
	if !m.Started.IsSet() || m.Stopped.IsSet() || m.inTransition.IsSet() {
		return false
	}
	// wait for modules that depend on this one
	for _, other := range modules {
		if other.Started.IsSet() && !other.Stopped.IsSet() {
			for _, dep := range other.depModules {
				if dep == m {
					return false
				}
			}
		}
	}
	return true
}
