package hexcore

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrNonHexByte indicates a byte outside 0-9, a-f, A-F was found while decoding.
	ErrNonHexByte = errors.New("encountered non-hexadecimal byte")

	// ErrInvalidSize indicates hex text and byte buffers do not satisfy the 2:1 length ratio.
	ErrInvalidSize = errors.New("hex string was not of valid size")

	// ErrUnknownAlgo indicates a fingerprint algorithm is not registered.
	ErrUnknownAlgo = errors.New("unknown fingerprint algorithm")

	// ErrInvalidTag indicates a hex struct tag has an invalid value.
	ErrInvalidTag = errors.New("invalid tag")

	// ErrMarshal indicates an armored codec failed to marshal.
	ErrMarshal = errors.New("marshal failed")

	// ErrUnmarshal indicates an armored codec failed to unmarshal.
	ErrUnmarshal = errors.New("unmarshal failed")
)

// DecodeError reports the position and value of the first non-hex byte.
type DecodeError struct {
	Err    error // ErrNonHexByte
	Offset int   // index of the offending byte in the hex input
	Byte   byte  // the offending byte
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s 0x%02x at offset %d", e.Err.Error(), e.Byte, e.Offset)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// SizeError reports a hex/byte buffer pair that breaks the 2:1 length ratio.
type SizeError struct {
	Err     error // ErrInvalidSize
	HexLen  int
	ByteLen int
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("%s: %d hex bytes for %d bytes", e.Err.Error(), e.HexLen, e.ByteLen)
}

func (e *SizeError) Unwrap() error {
	return e.Err
}

// ConfigError represents a configuration error such as an unknown algorithm
// or a malformed struct tag.
type ConfigError struct {
	Err   error  // Underlying sentinel error (ErrUnknownAlgo, ErrInvalidTag)
	Field string // Field name that triggered the error
	Value string // Algorithm or tag value that was rejected
}

func (e *ConfigError) Error() string {
	if e.Field != "" && e.Value != "" {
		return fmt.Sprintf("%s %q (field %s)", e.Err.Error(), e.Value, e.Field)
	}
	if e.Value != "" {
		return fmt.Sprintf("%s %q", e.Err.Error(), e.Value)
	}
	if e.Field != "" {
		return fmt.Sprintf("%s (field %s)", e.Err.Error(), e.Field)
	}
	return e.Err.Error()
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// CodecError represents a marshal/unmarshal error.
// Both the sentinel and the cause are reachable through errors.Is.
type CodecError struct {
	Err   error // Underlying sentinel error (ErrMarshal, ErrUnmarshal)
	Cause error // Original error from the hex layer or the wrapped codec
}

func (e *CodecError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Err.Error(), e.Cause)
	}
	return e.Err.Error()
}

func (e *CodecError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}

func newDecodeError(offset int, b byte) error {
	return &DecodeError{Err: ErrNonHexByte, Offset: offset, Byte: b}
}

func newSizeError(hexLen, byteLen int) error {
	return &SizeError{Err: ErrInvalidSize, HexLen: hexLen, ByteLen: byteLen}
}

func newConfigError(sentinel error, value, field string) error {
	return &ConfigError{Err: sentinel, Value: value, Field: field}
}

func newCodecError(sentinel, cause error) error {
	return &CodecError{Err: sentinel, Cause: cause}
}
