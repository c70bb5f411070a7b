package varint

import (
	"bytes"
	"testing"
)

func TestPackUnpack(t *testing.T) {
	for _, n := range []uint64{0, 1, 127, 128, 255, 256, 65535, 1 << 32, 1<<64 - 1} {
		packed := Pack64(n)
		unpacked, read, err := Unpack64(packed)
		if err != nil {
			t.Fatalf("failed to unpack %d: %s", n, err)
		}
		if unpacked != n {
			t.Errorf("roundtrip of %d returned %d", n, unpacked)
		}
		if read != len(packed) {
			t.Errorf("unpacking %d consumed %d of %d bytes", n, read, len(packed))
		}
	}

	if _, _, err := Unpack64(nil); err == nil {
		t.Error("unpacking an empty buffer must fail")
	}
	if _, _, err := Unpack8(Pack16(300)); err == nil {
		t.Error("unpacking an oversized value must fail")
	}
}

func TestBlocks(t *testing.T) {
	data := PrependLength([]byte("hello"))
	block, read, err := GetNextBlock(append(data, "trailing"...))
	if err != nil {
		t.Fatalf("failed to get block: %s", err)
	}
	if !bytes.Equal(block, []byte("hello")) {
		t.Errorf("unexpected block: %q", block)
	}
	if read != len(data) {
		t.Errorf("block consumed %d of %d bytes", read, len(data))
	}

	if _, _, err := GetNextBlock(PrependLength([]byte("hello"))[:3]); err == nil {
		t.Error("truncated block must fail")
	}
}
