package hexutil

import (
	"fmt"
)

const hextable = "0123456789ABCDEF"

// Encode returns the uppercase hexadecimal encoding of src: exactly two characters per byte, most-significant nibble first. The output is built in a single pre-sized allocation.
func Encode(src []byte) string {
	return string(AppendEncode(make([]byte, 0, len(src)*2), src))
}

// AppendEncode appends the uppercase hexadecimal encoding of src to dst and returns the extended buffer.
func AppendEncode(dst []byte, src []byte) []byte {
	for _, b := range src {
		dst = append(dst, hextable[b>>4], hextable[b&0x0F])
	}
	return dst
}

// Decode reverses Encode. It accepts both upper- and lowercase digits.
func Decode(s string) ([]byte, error) {
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("hexutil: odd input length %d", len(s))
	}

	dst := make([]byte, len(s)/2)
	for i := 0; i < len(dst); i++ {
		hi, ok := fromHexChar(s[i*2])
		if !ok {
			return nil, fmt.Errorf("hexutil: invalid character %q at %d", s[i*2], i*2)
		}
		lo, ok := fromHexChar(s[i*2+1])
		if !ok {
			return nil, fmt.Errorf("hexutil: invalid character %q at %d", s[i*2+1], i*2+1)
		}
		dst[i] = hi<<4 | lo
	}
	return dst, nil
}

func fromHexChar(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
