package hexutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	assert.Equal(t, "00FF0A", Encode([]byte{0x00, 0xFF, 0x0A}))
	assert.Equal(t, "", Encode(nil))
	assert.Equal(t, "DEADBEEF", Encode([]byte{0xDE, 0xAD, 0xBE, 0xEF}))
}

func TestEncodeLaws(t *testing.T) {
	sequences := [][]byte{
		nil,
		{0x00},
		{0xFF},
		{0x0F, 0xF0},
		{0x00, 0x01, 0x02, 0x03, 0x7F, 0x80, 0xFE, 0xFF},
	}
	// append a longer sequence covering all byte values
	all := make([]byte, 256)
	for i := range all {
		all[i] = byte(i)
	}
	sequences = append(sequences, all)

	for _, seq := range sequences {
		encoded := Encode(seq)

		// exactly two characters per byte
		require.Len(t, encoded, len(seq)*2)

		// restricted to the 16 hex digit characters
		for _, c := range encoded {
			assert.Contains(t, hextable, string(c))
		}

		// round trip
		decoded, err := Decode(encoded)
		require.NoError(t, err)
		if len(seq) == 0 {
			assert.Empty(t, decoded)
		} else {
			assert.Equal(t, seq, decoded)
		}
	}
}

func TestAppendEncode(t *testing.T) {
	buf := make([]byte, 0, 32)
	buf = AppendEncode(buf, []byte{0x01, 0x23})
	buf = AppendEncode(buf, []byte{0xAB})
	assert.Equal(t, "0123AB", string(buf))
}

func TestDecodeErrors(t *testing.T) {
	_, err := Decode("ABC")
	assert.Error(t, err, "odd length must be rejected")

	_, err = Decode("ZZ")
	assert.Error(t, err, "non-hex characters must be rejected")

	// lowercase is accepted on decode
	decoded, err := Decode(strings.ToLower("00FF0A"))
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0xFF, 0x0A}, decoded)
}
