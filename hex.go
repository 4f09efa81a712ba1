package hexcore

// EncodedLen returns the length of the hex encoding of n bytes.
func EncodedLen(n int) int { return n * 2 }

// DecodedLen returns the number of bytes decoded from n hex digits.
func DecodedLen(n int) int { return n / 2 }

// Decode decodes the hex digits in src into dst.
//
// len(src) must be exactly 2*len(dst); otherwise Decode returns a *SizeError
// wrapping ErrInvalidSize without reading src or writing dst. dst[i] is decoded
// from src[2i] and src[2i+1]. Decoding stops at the first invalid pair with a
// *DecodeError wrapping ErrNonHexByte; dst is then partially written and its
// contents must not be relied upon.
//
// dst must not overlap src.
func Decode(dst, src []byte) error {
	if len(src) != EncodedLen(len(dst)) {
		return newSizeError(len(src), len(dst))
	}
	for i := range dst {
		hi, lo := src[2*i], src[2*i+1]
		b, err := DecodePair(hi, lo)
		if err != nil {
			if _, ok := nibble(hi); !ok {
				return newDecodeError(2*i, hi)
			}
			return newDecodeError(2*i+1, lo)
		}
		dst[i] = b
	}
	return nil
}

// Encode writes the lowercase hex encoding of src into dst.
//
// len(dst) must be exactly 2*len(src); otherwise Encode returns a *SizeError
// wrapping ErrInvalidSize and leaves dst untouched. dst must not overlap src.
func Encode(dst, src []byte) error {
	return encode(dst, src, EncodeByte)
}

// EncodeUpper writes the uppercase hex encoding of src into dst.
// It has the same size contract as Encode.
func EncodeUpper(dst, src []byte) error {
	return encode(dst, src, EncodeByteUpper)
}

func encode(dst, src []byte, pair func(byte) (byte, byte)) error {
	if len(dst) != EncodedLen(len(src)) {
		return newSizeError(len(dst), len(src))
	}
	for i, v := range src {
		dst[2*i], dst[2*i+1] = pair(v)
	}
	return nil
}
