// Package hwsource abstracts hardware noise-source backends behind a small capability interface, so the entropy lifecycle manager can be exercised against a simulated backend on hosts without the real registers.
package hwsource

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrSourceInactive is returned when bytes are requested from a backend that is not enabled.
var ErrSourceInactive = errors.New("hwsource: source is not enabled")

// Source is a hardware noise-mixing entropy source. Enable reconfigures the analog front end to continuously mix sampled noise into the hardware random pool, ReadBytes drains generated bytes from that pool, and Disable restores the front end for ADC/radio use.
//
// Backends do not guard against radio/ADC contention themselves; that contract lives with the caller, see the entropy package.
type Source interface {
	Enable() error
	ReadBytes(b []byte) error
	Disable() error
	String() string
}

var (
	sourcesLock sync.RWMutex
	sources     = make(map[string]Source)
)

// Register registers a hardware backend under the given name. Backends register themselves in init, the active backend is selected by configuration at module start.
func Register(name string, source Source) {
	sourcesLock.Lock()
	defer sourcesLock.Unlock()

	if _, ok := sources[name]; ok {
		panic(fmt.Sprintf("hwsource: backend %s is already registered", name))
	}
	sources[name] = source
}

// Get returns the backend registered under the given name.
func Get(name string) (Source, error) {
	sourcesLock.RLock()
	defer sourcesLock.RUnlock()

	source, ok := sources[name]
	if !ok {
		return nil, fmt.Errorf("hwsource: no backend registered as %q (available: %v)", name, names())
	}
	return source, nil
}

// Names returns the names of all registered backends.
func Names() []string {
	sourcesLock.RLock()
	defer sourcesLock.RUnlock()
	return names()
}

func names() []string {
	list := make([]string, 0, len(sources))
	for name := range sources {
		list = append(list, name)
	}
	sort.Strings(list)
	return list
}
