package metrics

import (
	"bytes"
	"strings"
	"testing"
)

func TestCounter(t *testing.T) {
	c := NewCounter("test_total")
	c.Inc()
	c.Add(9)
	if c.Get() != 10 {
		t.Errorf("expected counter at 10, got %d", c.Get())
	}

	// same ID returns same counter
	c2 := NewCounter("test_total")
	if c2 != c {
		t.Error("expected existing counter for duplicate ID")
	}

	buf := new(bytes.Buffer)
	WritePrometheus(buf)
	if !strings.Contains(buf.String(), "test_total 10") {
		t.Errorf("prometheus output missing counter: %s", buf.String())
	}
}
