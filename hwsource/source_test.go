package hwsource

import (
	"testing"
)

type dummySource struct{}

func (dummySource) Enable() error            { return nil }
func (dummySource) ReadBytes(b []byte) error { return nil }
func (dummySource) Disable() error           { return nil }
func (dummySource) String() string           { return "dummy" }

func TestRegistry(t *testing.T) {
	Register("dummy", dummySource{})

	s, err := Get("dummy")
	if err != nil {
		t.Fatalf("failed to get registered backend: %s", err)
	}
	if s.String() != "dummy" {
		t.Errorf("got wrong backend: %s", s)
	}

	_, err = Get("missing")
	if err == nil {
		t.Error("unregistered backend must not resolve")
	}

	found := false
	for _, name := range Names() {
		if name == "dummy" {
			found = true
		}
	}
	if !found {
		t.Error("registered backend missing from Names()")
	}

	defer func() {
		if recover() == nil {
			t.Error("duplicate registration must panic")
		}
	}()
	Register("dummy", dummySource{})
}
