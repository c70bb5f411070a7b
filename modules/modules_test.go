package modules

import (
	"context"
	"testing"
	"time"
)

var startOrder string

func makeStart(name string) func() error {
	return func() error {
		startOrder += name + " "
		return nil
	}
}

func TestModules(t *testing.T) {
	base := Register("base", nil, makeStart("base"), nil)
	Register("feeder", nil, makeStart("feeder"), nil, "base")
	Register("consumer", nil, makeStart("consumer"), nil, "feeder")

	err := Start()
	if err != nil {
		t.Fatalf("failed to start modules: %s", err)
	}

	if startOrder != "base feeder consumer " {
		t.Errorf("modules started in wrong order: %s", startOrder)
	}
	if !StartCompleted() {
		t.Error("start must be reported as completed")
	}

	// workers
	workerRan := make(chan struct{})
	base.StartWorker("test worker", func(ctx context.Context) error {
		close(workerRan)
		<-ctx.Done()
		return ctx.Err()
	})
	select {
	case <-workerRan:
	case <-time.After(time.Second):
		t.Fatal("worker did not run")
	}

	err = base.RunWorker("panic worker", func(ctx context.Context) error {
		panic("totally expected")
	})
	if err == nil {
		t.Error("panicking worker must return an error")
	}

	err = Shutdown()
	if err != nil {
		t.Errorf("failed to shut down: %s", err)
	}
	err = Shutdown()
	if err == nil {
		t.Error("second shutdown must report an error")
	}
}

func TestRegisterDuplicate(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("duplicate registration must panic")
		}
	}()
	Register("base", nil, nil, nil)
}

func TestUnknownDependency(t *testing.T) {
	modulesLock.Lock()
	defer modulesLock.Unlock()

	modules["broken"] = &Module{Name: "broken", depNames: []string{"missing"}}
	defer delete(modules, "broken")

	if err := initDependencies(); err == nil {
		t.Error("unresolvable dependency must be reported")
	}
}
