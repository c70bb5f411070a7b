package varint

import (
	"encoding/binary"
)

// PrependLength prepends the varint encoded length of the byte slice to itself.
func PrependLength(data []byte) []byte {
	return append(Pack64(uint64(len(data))), data...)
}

// GetNextBlock extracts the varint-length-prefixed block from the beginning of the given byte slice and returns the block and the total number of bytes consumed.
func GetNextBlock(data []byte) ([]byte, int, error) {
	l, n, err := Unpack64(data)
	if err != nil {
		return nil, 0, err
	}
	length := int(l)
	totalLength := length + n
	if totalLength > len(data) {
		return nil, 0, errTooSmall
	}
	return data[n:totalLength], totalLength, nil
}

// Pack8 packs a uint8 into a VarInt.
func Pack8(n uint8) []byte {
	if n < 128 {
		return []byte{n}
	}
	return []byte{n, 0x01}
}

// Pack16 packs a uint16 into a VarInt.
func Pack16(n uint16) []byte {
	buf := make([]byte, 3)
	w := binary.PutUvarint(buf, uint64(n))
	return buf[:w]
}

// Pack32 packs a uint32 into a VarInt.
func Pack32(n uint32) []byte {
	buf := make([]byte, 5)
	w := binary.PutUvarint(buf, uint64(n))
	return buf[:w]
}

// Pack64 packs a uint64 into a VarInt.
func Pack64(n uint64) []byte {
	buf := make([]byte, 10)
	w := binary.PutUvarint(buf, n)
	return buf[:w]
}

// Unpack8 unpacks a VarInt into a uint8. It returns the extracted int, how many bytes were used and an error.
func Unpack8(data []byte) (uint8, int, error) {
	n, r, err := Unpack64(data)
	if err != nil {
		return 0, 0, err
	}
	if n > 0xFF {
		return 0, 0, &valueExceededError{max: "8 bits"}
	}
	return uint8(n), r, nil
}

// Unpack16 unpacks a VarInt into a uint16. It returns the extracted int, how many bytes were used and an error.
func Unpack16(data []byte) (uint16, int, error) {
	n, r, err := Unpack64(data)
	if err != nil {
		return 0, 0, err
	}
	if n > 0xFFFF {
		return 0, 0, &valueExceededError{max: "16 bits"}
	}
	return uint16(n), r, nil
}

// Unpack32 unpacks a VarInt into a uint32. It returns the extracted int, how many bytes were used and an error.
func Unpack32(data []byte) (uint32, int, error) {
	n, r, err := Unpack64(data)
	if err != nil {
		return 0, 0, err
	}
	if n > 0xFFFFFFFF {
		return 0, 0, &valueExceededError{max: "32 bits"}
	}
	return uint32(n), r, nil
}

// Unpack64 unpacks a VarInt into a uint64. It returns the extracted int, how many bytes were used and an error.
func Unpack64(data []byte) (uint64, int, error) {
	if len(data) == 0 {
		return 0, 0, errEmptyBuf
	}
	n, r := binary.Uvarint(data)
	if r == 0 {
		return 0, 0, errTooSmall
	}
	if r < 0 {
		return 0, 0, &valueExceededError{max: "64 bits"}
	}
	return n, r, nil
}
