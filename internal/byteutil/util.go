package byteutil

import (
	"encoding/binary"
	"fmt"
)

const int64Size = 8

func EncodeInt64ToBytes(v int64) []byte {
	b := make([]byte, int64Size)
	binary.BigEndian.PutUint64(b, uint64(v))
	return b
}

func DecodeBytesToInt64(b []byte) (int64, error) {
	if len(b) != int64Size {
		return 0, fmt.Errorf("decode int64: want %d bytes, got %d", int64Size, len(b))
	}

	return int64(binary.BigEndian.Uint64(b)), nil
}
