package hexcore

const (
	lowerDigits = "0123456789abcdef"
	upperDigits = "0123456789ABCDEF"
)

// nibble maps a single hex digit to its 4-bit value.
func nibble(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// DecodePair decodes the byte encoded by the hex digits hi and lo.
// Digits are accepted in either case. If either digit is not a hex digit,
// DecodePair returns 0 and ErrNonHexByte.
func DecodePair(hi, lo byte) (byte, error) {
	a, ok := nibble(hi)
	if !ok {
		return 0, ErrNonHexByte
	}
	b, ok := nibble(lo)
	if !ok {
		return 0, ErrNonHexByte
	}
	return a<<4 | b&0x0f, nil
}

// EncodeByte returns the lowercase hex digits for b, high nibble first.
func EncodeByte(b byte) (hi, lo byte) {
	return lowerDigits[b>>4], lowerDigits[b&0x0f]
}

// EncodeByteUpper returns the uppercase hex digits for b, high nibble first.
func EncodeByteUpper(b byte) (hi, lo byte) {
	return upperDigits[b>>4], upperDigits[b&0x0f]
}
