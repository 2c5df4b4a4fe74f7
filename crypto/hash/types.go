package hash

import "github.com/onflow/sha2/sha2"

//revive:disable:var-naming

// HashingAlgorithm is an identifier for a hashing algorithm.
type HashingAlgorithm int

const (
	// Supported hashing algorithms
	UnknownHashingAlgorithm HashingAlgorithm = iota
	SHA2_224
	SHA2_256
	SHA2_384
	SHA2_512
	SHA2_512_224
	SHA2_512_256
)

var algorithmNames = [...]string{"UNKNOWN", "SHA2_224", "SHA2_256", "SHA2_384", "SHA2_512", "SHA2_512_224", "SHA2_512_256"}

// String returns the string representation of this hashing algorithm.
func (f HashingAlgorithm) String() string {
	if f < 0 || int(f) >= len(algorithmNames) {
		return algorithmNames[UnknownHashingAlgorithm]
	}
	return algorithmNames[f]
}

const (
	// Lengths of hash outputs in bytes
	HashLenSha2_224     = sha2.Size224
	HashLenSha2_256     = sha2.Size256
	HashLenSha2_384     = sha2.Size384
	HashLenSha2_512     = sha2.Size512
	HashLenSha2_512_224 = sha2.Size512_224
	HashLenSha2_512_256 = sha2.Size512_256
)
