package hexcore

// Bytes is a byte slice whose text form is lowercase hex.
//
// Bytes implements encoding.TextMarshaler and encoding.TextUnmarshaler, so it
// is written as a hex string by JSON, XML, YAML and any other codec that
// honours those interfaces. Parsing accepts either case.
type Bytes []byte

// String returns the lowercase hex encoding of b.
func (b Bytes) String() string {
	return EncodeToString(b)
}

// MarshalText implements encoding.TextMarshaler.
func (b Bytes) MarshalText() ([]byte, error) {
	return AppendEncode(make([]byte, 0, EncodedLen(len(b))), b), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *Bytes) UnmarshalText(text []byte) error {
	dec, err := AppendDecode(make([]byte, 0, DecodedLen(len(text))), text)
	if err != nil {
		return err
	}
	*b = dec
	return nil
}
