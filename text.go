package hexcore

import (
	"slices"
	"unsafe"
)

// IsHexDigit reports whether b is one of 0-9, a-f or A-F.
func IsHexDigit(b byte) bool {
	_, ok := nibble(b)
	return ok
}

// IsHex reports whether every byte of b is a hex digit.
// An empty slice is valid.
func IsHex(b []byte) bool {
	for _, c := range b {
		if !IsHexDigit(c) {
			return false
		}
	}
	return true
}

// EncodeText is Encode returning dst as a string.
//
// The string shares memory with dst and is valid only while dst is left
// unmodified. Use it for short-lived text, e.g. with io.StringWriter.
func EncodeText(dst, src []byte) (string, error) {
	if err := Encode(dst, src); err != nil {
		return "", err
	}
	return view(dst), nil
}

// EncodeTextUpper is EncodeUpper returning dst as a string.
// The same aliasing rules as EncodeText apply.
func EncodeTextUpper(dst, src []byte) (string, error) {
	if err := EncodeUpper(dst, src); err != nil {
		return "", err
	}
	return view(dst), nil
}

// view reinterprets hex output as a string. Encoder output is pure ASCII.
func view(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(b), len(b))
}

// EncodeToString returns the lowercase hex encoding of src.
func EncodeToString(src []byte) string {
	dst := make([]byte, EncodedLen(len(src)))
	_ = Encode(dst, src) // dst length is exact
	return view(dst)
}

// EncodeToStringUpper returns the uppercase hex encoding of src.
func EncodeToStringUpper(src []byte) string {
	dst := make([]byte, EncodedLen(len(src)))
	_ = EncodeUpper(dst, src) // dst length is exact
	return view(dst)
}

// DecodeString returns the bytes represented by the hex string s.
// Odd-length input fails with ErrInvalidSize, non-hex input with ErrNonHexByte.
func DecodeString(s string) ([]byte, error) {
	if len(s)%2 != 0 {
		return nil, newSizeError(len(s), DecodedLen(len(s)))
	}
	dst := make([]byte, DecodedLen(len(s)))
	if err := Decode(dst, []byte(s)); err != nil {
		return nil, err
	}
	return dst, nil
}

// AppendEncode appends the lowercase hex encoding of src to dst.
func AppendEncode(dst, src []byte) []byte {
	n := len(dst)
	dst = grow(dst, EncodedLen(len(src)))
	_ = Encode(dst[n:], src) // dst length is exact
	return dst
}

// AppendEncodeUpper appends the uppercase hex encoding of src to dst.
func AppendEncodeUpper(dst, src []byte) []byte {
	n := len(dst)
	dst = grow(dst, EncodedLen(len(src)))
	_ = EncodeUpper(dst[n:], src) // dst length is exact
	return dst
}

// AppendDecode appends the bytes decoded from the hex digits in src to dst.
// On error the returned slice has the length dst had on entry.
func AppendDecode(dst, src []byte) ([]byte, error) {
	if len(src)%2 != 0 {
		return dst, newSizeError(len(src), DecodedLen(len(src)))
	}
	n := len(dst)
	dst = grow(dst, DecodedLen(len(src)))
	if err := Decode(dst[n:], src); err != nil {
		return dst[:n], err
	}
	return dst, nil
}

func grow(b []byte, n int) []byte {
	return slices.Grow(b, n)[:len(b)+n]
}
