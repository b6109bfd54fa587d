package byteutil

import "testing"

func TestEncodeDecodeInt64(t *testing.T) {
	t.Parallel()

	for _, v := range []int64{0, 1, 5, 1 << 40, -3} {
		got, err := DecodeBytesToInt64(EncodeInt64ToBytes(v))
		if err != nil {
			t.Fatalf("decode %d: %v", v, err)
		}
		if got != v {
			t.Errorf("expected %d got %d", v, got)
		}
	}
}

func TestDecodeWrongSize(t *testing.T) {
	t.Parallel()

	if _, err := DecodeBytesToInt64([]byte{1, 2, 3}); err == nil {
		t.Fatal("expected error for short input")
	}
}
