package sim

import (
	"bytes"
	"testing"

	"github.com/noisebase/noisebase/config"
	"github.com/noisebase/noisebase/hwsource"
)

func TestLifecycle(t *testing.T) {
	s := New()

	b := make([]byte, 16)
	if err := s.ReadBytes(b); err == nil {
		t.Error("reading from a disabled source must fail")
	}
	if err := s.Disable(); err == nil {
		t.Error("disabling a disabled source must fail")
	}

	if err := s.Enable(); err != nil {
		t.Fatalf("failed to enable: %s", err)
	}
	if err := s.Enable(); err == nil {
		t.Error("enabling an enabled source must fail")
	}

	first := make([]byte, 16)
	second := make([]byte, 16)
	if err := s.ReadBytes(first); err != nil {
		t.Fatalf("failed to read: %s", err)
	}
	if err := s.ReadBytes(second); err != nil {
		t.Fatalf("failed to read: %s", err)
	}
	if bytes.Equal(first, second) {
		t.Error("successive reads must not be identical")
	}

	if err := s.Disable(); err != nil {
		t.Fatalf("failed to disable: %s", err)
	}
	if err := s.ReadBytes(b); err == nil {
		t.Error("reading after disable must fail")
	}
}

func TestCycles(t *testing.T) {
	s := New()
	var previous []byte

	for i := 0; i < 3; i++ {
		if err := s.Enable(); err != nil {
			t.Fatalf("cycle %d: failed to enable: %s", i, err)
		}
		out := make([]byte, 16)
		if err := s.ReadBytes(out); err != nil {
			t.Fatalf("cycle %d: failed to read: %s", i, err)
		}
		if previous != nil && bytes.Equal(previous, out) {
			t.Errorf("cycle %d: output identical to previous cycle", i)
		}
		previous = out
		if err := s.Disable(); err != nil {
			t.Fatalf("cycle %d: failed to disable: %s", i, err)
		}
	}
}

func TestCipherOption(t *testing.T) {
	for _, cipherName := range []string{"aes", "serpent"} {
		if err := config.SetConfigOption("entropy/sim_cipher", cipherName); err != nil {
			t.Fatalf("failed to set cipher option: %s", err)
		}
		key := make([]byte, 32)
		if _, err := newCipher(key); err != nil {
			t.Errorf("failed to create %s cipher: %s", cipherName, err)
		}
	}

	if err := config.SetConfigOption("entropy/sim_cipher", "rot13"); err == nil {
		t.Error("invalid cipher name must be rejected by config validation")
	}
}

func TestRegistered(t *testing.T) {
	s, err := hwsource.Get("sim")
	if err != nil {
		t.Fatalf("sim backend not registered: %s", err)
	}
	if s.String() != "sim" {
		t.Errorf("unexpected backend name: %s", s)
	}
}
