package hash

import (
	"bytes"
	"encoding/hex"
	"errors"
)

// Hash is the output of a hasher.
type Hash []byte

// Equal checks if a hash is equal to a given hash.
func (h Hash) Equal(input Hash) bool {
	return bytes.Equal(h, input)
}

// Hex returns the hex string representation of the hash.
func (h Hash) Hex() string {
	return hex.EncodeToString(h)
}

// String returns the hex string representation of the hash.
func (h Hash) String() string {
	return h.Hex()
}

// Hasher interface
type Hasher interface {
	// Algorithm returns the hashing algorithm of the hasher.
	Algorithm() HashingAlgorithm
	// Size returns the hash output length in bytes.
	Size() int
	// BlockSize returns the block size of the underlying hash function.
	BlockSize() int
	// ComputeHash resets the state, hashes the input and returns the output.
	// The state is not reset after the call so further writes append to data.
	ComputeHash([]byte) Hash
	// Write appends data to the state. It returns an error if the state can
	// not absorb more data, along with the number of bytes absorbed before.
	Write([]byte) (int, error)
	// SumHash returns the hash of the data written so far. It does not change
	// the state, so writing can continue. It returns nil if a previous Write
	// failed and the hasher was not reset since.
	SumHash() Hash
	// Sum appends the hash of the data written so far to b.
	Sum(b []byte) []byte
	// SumBits returns the hash of the data written so far followed by the
	// count most significant bits of b, count in [0, 7].
	SumBits(b byte, count uint) (Hash, error)
	// Reset resets the state.
	Reset()
}

var (
	// ErrUnsupportedAlgorithm is returned for algorithms this package does not
	// implement.
	ErrUnsupportedAlgorithm = errors.New("unsupported hashing algorithm")
	// ErrInvalidHash is returned for hashes that do not fit their algorithm.
	ErrInvalidHash = errors.New("invalid hash")
	// ErrInvalidCheckpoint is returned when a checkpoint can not be restored
	// into a hasher.
	ErrInvalidCheckpoint = errors.New("invalid hasher checkpoint")
)

// NewHasher returns a hasher of the given algorithm.
func NewHasher(algo HashingAlgorithm, opts ...Option) (Hasher, error) {
	switch algo {
	case SHA2_224:
		return NewSHA2_224(opts...), nil
	case SHA2_256:
		return NewSHA2_256(opts...), nil
	case SHA2_384:
		return NewSHA2_384(opts...), nil
	case SHA2_512:
		return NewSHA2_512(opts...), nil
	case SHA2_512_224:
		return NewSHA2_512_224(opts...), nil
	case SHA2_512_256:
		return NewSHA2_512_256(opts...), nil
	default:
		return nil, errorf(ErrUnsupportedAlgorithm, "algorithm %s", algo)
	}
}
