package metrics

import (
	"io"
	"sync"

	vm "github.com/VictoriaMetrics/metrics"

	"github.com/noisebase/noisebase/log"
	"github.com/noisebase/noisebase/modules"
)

var (
	registryLock sync.RWMutex
	registry     = make(map[string]*Counter)
)

// Counter is a numeric metric that only ever goes up.
type Counter struct {
	ID string

	counter *vm.Counter
}

// Inc increments the counter by 1.
func (c *Counter) Inc() {
	c.counter.Inc()
}

// Add adds n to the counter.
func (c *Counter) Add(n int) {
	c.counter.Add(n)
}

// Get returns the current counter value.
func (c *Counter) Get() uint64 {
	return c.counter.Get()
}

// NewCounter registers a new counter with the given ID. Registering the same ID twice returns the existing counter.
func NewCounter(id string) *Counter {
	registryLock.Lock()
	defer registryLock.Unlock()

	if existing, ok := registry[id]; ok {
		return existing
	}

	newCounter := &Counter{
		ID:      id,
		counter: vm.GetOrCreateCounter(id),
	}
	registry[id] = newCounter
	return newCounter
}

// WritePrometheus writes all registered metrics in prometheus text exposition format to the given writer.
func WritePrometheus(w io.Writer) {
	vm.WritePrometheus(w, false)
}

func init() {
	modules.Register("metrics", nil, nil, stop)
}

func stop() error {
	registryLock.RLock()
	defer registryLock.RUnlock()

	// final counts are part of the shutdown log for diagnostics
	for _, c := range registry {
		log.Debugf("metrics: %s=%d", c.ID, c.Get())
	}
	return nil
}
