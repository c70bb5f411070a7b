package container

import (
	"bytes"
	"testing"
)

func TestContainerDataHandling(t *testing.T) {
	c := New([]byte("The quick "))
	c.Append([]byte("brown fox "))
	c.Append([]byte("jumps"))

	if c.Length() != 25 {
		t.Errorf("unexpected length: %d", c.Length())
	}

	compiled := c.CompileData()
	if !bytes.Equal(compiled, []byte("The quick brown fox jumps")) {
		t.Errorf("unexpected compiled data: %q", compiled)
	}

	// compiling again returns the same data
	if !bytes.Equal(c.CompileData(), compiled) {
		t.Error("second compile must return the same data")
	}

	c.Reset()
	if c.Length() != 0 {
		t.Error("container not empty after reset")
	}
	if c.CompileData() != nil {
		t.Error("empty container must compile to nil")
	}
}

func TestContainerBlocks(t *testing.T) {
	c := New()
	c.AppendNumber(127)
	c.AppendAsBlock([]byte("payload"))

	data := c.CompileData()
	if len(data) != 1+1+7 {
		t.Errorf("unexpected compiled length: %d", len(data))
	}
	if data[0] != 127 {
		t.Errorf("unexpected varint byte: %d", data[0])
	}
	if data[1] != 7 {
		t.Errorf("unexpected block length byte: %d", data[1])
	}
	if !bytes.Equal(data[2:], []byte("payload")) {
		t.Errorf("unexpected block data: %q", data[2:])
	}
}
