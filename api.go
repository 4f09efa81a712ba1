// Package hexcore provides hexadecimal encoding and decoding over caller-supplied
// buffers, plus the helpers higher-level libraries build on it.
//
// # Core
//
// The core converts single bytes and whole buffers:
//
//	DecodePair(hi, lo)      - two hex digits to one byte (either case)
//	EncodeByte(b)           - one byte to two lowercase digits
//	EncodeByteUpper(b)      - one byte to two uppercase digits
//	Decode(dst, src)        - hex buffer to byte buffer
//	Encode(dst, src)        - byte buffer to lowercase hex buffer
//	EncodeUpper(dst, src)   - byte buffer to uppercase hex buffer
//
// Buffer operations require the hex buffer to be exactly twice the length of the
// byte buffer. A mismatch returns a *SizeError wrapping ErrInvalidSize before
// anything is read or written. A bad digit returns a *DecodeError wrapping
// ErrNonHexByte. Output buffers must not overlap input buffers.
//
//	src := []byte{0x01, 0x23, 0x45, 0x67, 0x89, 0xab, 0xcd, 0xef}
//	dst := make([]byte, hexcore.EncodedLen(len(src)))
//	_ = hexcore.Encode(dst, src) // "0123456789abcdef"
//
// Accepted digits are exactly 0-9, a-f and A-F. Whitespace, separators and "0x"
// prefixes are rejected.
//
// # Helpers
//
//   - IsHexDigit, IsHex - validity predicates
//   - EncodeText, EncodeTextUpper - encode and view the buffer as a string
//   - EncodeToString, EncodeToStringUpper, DecodeString - allocating forms
//   - AppendEncode, AppendEncodeUpper, AppendDecode - append forms
//   - Bytes - a []byte that marshals as hex text
//
// # Fingerprints
//
// Deterministic digests rendered as hex:
//
//   - SHA256(), SHA512() - standard library digests
//   - BLAKE2b256(), BLAKE2b512() - golang.org/x/crypto/blake2b
//   - Upper(f) - uppercase variant of any fingerprinter
//   - Lookup(algo) - builtin fingerprinter by FingerprintAlgo
//
// # Armor
//
// Armor wraps any Codec and hex-encodes its output:
//
//	armored := hexcore.NewArmor(msgpack.New(), hexcore.WithUpper())
//	data, _ := armored.Marshal(v)     // hex text of the MessagePack bytes
//	_ = armored.Unmarshal(data, &out)
//
// The following codec implementations are available as submodules:
//
//   - json - JSON encoding (application/json)
//   - xml - XML encoding (application/xml)
//   - yaml - YAML encoding (application/yaml)
//   - msgpack - MessagePack encoding (application/msgpack)
//   - bson - BSON encoding (application/bson)
//
// # Rendering
//
// Render turns binary struct fields into hex text for display and logging.
// Fields are selected with the `hex` struct tag:
//
//	type Object struct {
//	    Sum  [32]byte `hex:"lower"`
//	    Salt []byte   `hex:"upper"`
//	}
//
// Types implementing Renderable bypass reflection.
//
// # Signals
//
// Armor and Render emit capitan signals (see signals.go). The core functions
// emit nothing.
package hexcore
