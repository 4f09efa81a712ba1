package hexcore

import (
	"crypto/sha256"
	"crypto/sha512"

	"golang.org/x/crypto/blake2b"
)

// Fingerprinter renders a deterministic digest of data as hex text.
// Use for checksums and identification, NOT for passwords.
type Fingerprinter interface {
	Fingerprint(data []byte) string
}

// digestFingerprinter hex-encodes the output of a fixed digest function.
type digestFingerprinter struct {
	sum   func([]byte) []byte
	upper bool
}

func (f *digestFingerprinter) Fingerprint(data []byte) string {
	if f.upper {
		return EncodeToStringUpper(f.sum(data))
	}
	return EncodeToString(f.sum(data))
}

// SHA256 returns a SHA-256 fingerprinter.
// The result is a 64-character lowercase hex string.
func SHA256() Fingerprinter {
	return &digestFingerprinter{sum: func(b []byte) []byte {
		s := sha256.Sum256(b)
		return s[:]
	}}
}

// SHA512 returns a SHA-512 fingerprinter.
// The result is a 128-character lowercase hex string.
func SHA512() Fingerprinter {
	return &digestFingerprinter{sum: func(b []byte) []byte {
		s := sha512.Sum512(b)
		return s[:]
	}}
}

// BLAKE2b256 returns a BLAKE2b-256 fingerprinter.
func BLAKE2b256() Fingerprinter {
	return &digestFingerprinter{sum: func(b []byte) []byte {
		s := blake2b.Sum256(b)
		return s[:]
	}}
}

// BLAKE2b512 returns a BLAKE2b-512 fingerprinter.
func BLAKE2b512() Fingerprinter {
	return &digestFingerprinter{sum: func(b []byte) []byte {
		s := blake2b.Sum512(b)
		return s[:]
	}}
}

// Upper returns a fingerprinter producing uppercase digits.
// Fingerprinters not built by this package have their output re-encoded.
func Upper(f Fingerprinter) Fingerprinter {
	if d, ok := f.(*digestFingerprinter); ok {
		return &digestFingerprinter{sum: d.sum, upper: true}
	}
	return &upperFingerprinter{inner: f}
}

type upperFingerprinter struct {
	inner Fingerprinter
}

func (f *upperFingerprinter) Fingerprint(data []byte) string {
	out := []byte(f.inner.Fingerprint(data))
	for i, c := range out {
		if 'a' <= c && c <= 'f' {
			out[i] = c - 'a' + 'A'
		}
	}
	return string(out)
}

// builtinFingerprinters returns the default fingerprinter registry.
func builtinFingerprinters() map[FingerprintAlgo]Fingerprinter {
	return map[FingerprintAlgo]Fingerprinter{
		FingerprintSHA256:     SHA256(),
		FingerprintSHA512:     SHA512(),
		FingerprintBLAKE2b256: BLAKE2b256(),
		FingerprintBLAKE2b512: BLAKE2b512(),
	}
}

var builtins = builtinFingerprinters()

// Lookup returns the builtin fingerprinter for algo.
func Lookup(algo FingerprintAlgo) (Fingerprinter, error) {
	f, ok := builtins[algo]
	if !ok {
		return nil, newConfigError(ErrUnknownAlgo, string(algo), "")
	}
	return f, nil
}
