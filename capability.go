package hexcore

// FingerprintAlgo represents a supported digest for fingerprints.
type FingerprintAlgo string

const (
	// FingerprintSHA256 uses SHA-256 (64 hex digits).
	FingerprintSHA256 FingerprintAlgo = "sha256"

	// FingerprintSHA512 uses SHA-512 (128 hex digits).
	FingerprintSHA512 FingerprintAlgo = "sha512"

	// FingerprintBLAKE2b256 uses BLAKE2b with a 256-bit digest.
	FingerprintBLAKE2b256 FingerprintAlgo = "blake2b-256"

	// FingerprintBLAKE2b512 uses BLAKE2b with a 512-bit digest.
	FingerprintBLAKE2b512 FingerprintAlgo = "blake2b-512"
)

// Case selects the letter case of encoded hex digits.
// Use these constants in struct tags: `hex:"upper"`
type Case string

const (
	// CaseLower emits 0-9a-f.
	CaseLower Case = "lower"

	// CaseUpper emits 0-9A-F.
	CaseUpper Case = "upper"
)

var validFingerprintAlgos = map[FingerprintAlgo]bool{
	FingerprintSHA256:     true,
	FingerprintSHA512:     true,
	FingerprintBLAKE2b256: true,
	FingerprintBLAKE2b512: true,
}

var validCases = map[Case]bool{
	CaseLower: true,
	CaseUpper: true,
}

// IsValidFingerprintAlgo returns true if the algorithm is a known fingerprint algorithm.
func IsValidFingerprintAlgo(algo FingerprintAlgo) bool {
	return validFingerprintAlgos[algo]
}

// IsValidCase returns true if c is CaseLower or CaseUpper.
func IsValidCase(c Case) bool {
	return validCases[c]
}
