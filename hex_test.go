package hexcore

import (
	"bytes"
	"errors"
	"testing"
)

var (
	vectorBytes = []byte{0x01, 0x23, 0x45, 0x67, 0x89, 0xab, 0xcd, 0xef}
	vectorLower = []byte("0123456789abcdef")
	vectorUpper = []byte("0123456789ABCDEF")
)

func TestEncode_Vector(t *testing.T) {
	dst := make([]byte, len(vectorLower))
	if err := Encode(dst, vectorBytes); err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	if !bytes.Equal(dst, vectorLower) {
		t.Errorf("Encode() = %q, want %q", dst, vectorLower)
	}
}

func TestEncodeUpper_Vector(t *testing.T) {
	dst := make([]byte, len(vectorUpper))
	if err := EncodeUpper(dst, vectorBytes); err != nil {
		t.Fatalf("EncodeUpper() error: %v", err)
	}
	if !bytes.Equal(dst, vectorUpper) {
		t.Errorf("EncodeUpper() = %q, want %q", dst, vectorUpper)
	}
}

func TestDecode_Vectors(t *testing.T) {
	for _, src := range [][]byte{vectorLower, vectorUpper} {
		t.Run(string(src), func(t *testing.T) {
			dst := make([]byte, len(vectorBytes))
			if err := Decode(dst, src); err != nil {
				t.Fatalf("Decode() error: %v", err)
			}
			if !bytes.Equal(dst, vectorBytes) {
				t.Errorf("Decode() = %x, want %x", dst, vectorBytes)
			}
		})
	}
}

func TestBuffer_RoundTrip(t *testing.T) {
	all := make([]byte, 256)
	for i := range all {
		all[i] = byte(i)
	}

	encoders := map[string]func(dst, src []byte) error{
		"lower": Encode,
		"upper": EncodeUpper,
	}

	for name, enc := range encoders {
		t.Run(name, func(t *testing.T) {
			hexBuf := make([]byte, EncodedLen(len(all)))
			if err := enc(hexBuf, all); err != nil {
				t.Fatalf("encode error: %v", err)
			}
			out := make([]byte, DecodedLen(len(hexBuf)))
			if err := Decode(out, hexBuf); err != nil {
				t.Fatalf("Decode() error: %v", err)
			}
			if !bytes.Equal(out, all) {
				t.Error("round-trip mismatch")
			}
		})
	}
}

func TestBuffer_Empty(t *testing.T) {
	if err := Encode(nil, nil); err != nil {
		t.Errorf("Encode(nil, nil) error: %v", err)
	}
	if err := EncodeUpper([]byte{}, []byte{}); err != nil {
		t.Errorf("EncodeUpper(empty) error: %v", err)
	}
	if err := Decode(nil, nil); err != nil {
		t.Errorf("Decode(nil, nil) error: %v", err)
	}
}

func TestDecode_SizeContract(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		dstLen int
	}{
		{"hex too short", "0123", 3},
		{"hex too long", "012345", 2},
		{"odd hex", "012", 1},
		{"empty dst", "00", 0},
		{"empty src", "", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := bytes.Repeat([]byte{0xee}, tt.dstLen)
			err := Decode(dst, []byte(tt.src))
			if !errors.Is(err, ErrInvalidSize) {
				t.Fatalf("Decode() error = %v, want ErrInvalidSize", err)
			}

			var sizeErr *SizeError
			if !errors.As(err, &sizeErr) {
				t.Fatalf("Decode() error should be *SizeError, got %T", err)
			}
			if sizeErr.HexLen != len(tt.src) || sizeErr.ByteLen != tt.dstLen {
				t.Errorf("SizeError = {%d, %d}, want {%d, %d}", sizeErr.HexLen, sizeErr.ByteLen, len(tt.src), tt.dstLen)
			}

			for i, b := range dst {
				if b != 0xee {
					t.Errorf("dst[%d] = %#02x, dst must be untouched", i, b)
				}
			}
		})
	}
}

func TestDecode_SizeCheckedBeforeDigits(t *testing.T) {
	// Invalid digits must not mask the size violation.
	err := Decode(make([]byte, 1), []byte("zzzz"))
	if !errors.Is(err, ErrInvalidSize) {
		t.Errorf("Decode() error = %v, want ErrInvalidSize", err)
	}
	if errors.Is(err, ErrNonHexByte) {
		t.Error("size violation should not report ErrNonHexByte")
	}
}

func TestEncode_SizeContract(t *testing.T) {
	encoders := map[string]func(dst, src []byte) error{
		"lower": Encode,
		"upper": EncodeUpper,
	}

	for name, enc := range encoders {
		t.Run(name, func(t *testing.T) {
			for _, dstLen := range []int{0, 3, 5, 15, 17} {
				dst := bytes.Repeat([]byte{'?'}, dstLen)
				err := enc(dst, vectorBytes[:4])
				if !errors.Is(err, ErrInvalidSize) {
					t.Errorf("dst len %d: error = %v, want ErrInvalidSize", dstLen, err)
				}
				if !bytes.Equal(dst, bytes.Repeat([]byte{'?'}, dstLen)) {
					t.Errorf("dst len %d: dst written on size violation", dstLen)
				}
			}
		})
	}
}

func TestDecode_NonHexByte(t *testing.T) {
	tests := []struct {
		name       string
		src        string
		wantOffset int
		wantByte   byte
	}{
		{"first high", "g0", 0, 'g'},
		{"first low", "0z", 1, 'z'},
		{"later pair", "0011g2", 4, 'g'},
		{"later low", "00112G", 5, 'G'},
		{"space", "00 1", 2, ' '},
		{"prefix", "0x12", 1, 'x'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := make([]byte, len(tt.src)/2)
			err := Decode(dst, []byte(tt.src))
			if !errors.Is(err, ErrNonHexByte) {
				t.Fatalf("Decode(%q) error = %v, want ErrNonHexByte", tt.src, err)
			}

			var decErr *DecodeError
			if !errors.As(err, &decErr) {
				t.Fatalf("Decode(%q) error should be *DecodeError, got %T", tt.src, err)
			}
			if decErr.Offset != tt.wantOffset || decErr.Byte != tt.wantByte {
				t.Errorf("DecodeError = {%d, %q}, want {%d, %q}", decErr.Offset, decErr.Byte, tt.wantOffset, tt.wantByte)
			}
		})
	}
}

func TestDecode_StopsAtFirstBadPair(t *testing.T) {
	dst := []byte{0xee, 0xee, 0xee}
	err := Decode(dst, []byte("01zz03"))
	if !errors.Is(err, ErrNonHexByte) {
		t.Fatalf("Decode() error = %v, want ErrNonHexByte", err)
	}
	if dst[2] != 0xee {
		t.Errorf("dst[2] = %#02x, pairs after the failure must not be decoded", dst[2])
	}
}

func TestEncodedLen(t *testing.T) {
	for _, n := range []int{0, 1, 8, 1024} {
		if got := EncodedLen(n); got != 2*n {
			t.Errorf("EncodedLen(%d) = %d, want %d", n, got, 2*n)
		}
		if got := DecodedLen(2 * n); got != n {
			t.Errorf("DecodedLen(%d) = %d, want %d", 2*n, got, n)
		}
	}
}
