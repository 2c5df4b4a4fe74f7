package hash

import (
	"encoding"
	"fmt"
	"hash"

	"github.com/rs/zerolog"

	"github.com/onflow/sha2/module"
	"github.com/onflow/sha2/sha2"
)

// sha2Algo adapts a SHA-2 context to the Hasher interface.
type sha2Algo[W sha2.Word, P sha2.Params[W]] struct {
	ctx     sha2.Context[W, P]
	algo    HashingAlgorithm
	log     zerolog.Logger
	metrics module.HashingMetrics
}

var (
	_ Hasher                     = (*sha2Algo[uint32, sha2.SHA256])(nil)
	_ hash.Hash                  = (*sha2Algo[uint32, sha2.SHA256])(nil)
	_ encoding.BinaryMarshaler   = (*sha2Algo[uint64, sha2.SHA512])(nil)
	_ encoding.BinaryUnmarshaler = (*sha2Algo[uint64, sha2.SHA512])(nil)
)

func newSHA2[W sha2.Word, P sha2.Params[W]](algo HashingAlgorithm, opts []Option) *sha2Algo[W, P] {
	cfg := defaultConfig()
	for _, apply := range opts {
		apply(cfg)
	}
	return &sha2Algo[W, P]{
		ctx:  *sha2.New[W, P](),
		algo: algo,
		log: cfg.log.With().
			Str("component", "hasher").
			Str("algorithm", algo.String()).
			Logger(),
		metrics: cfg.metrics,
	}
}

// NewSHA2_224 returns a new instance of SHA2-224 hasher
func NewSHA2_224(opts ...Option) Hasher {
	return newSHA2[uint32, sha2.SHA224](SHA2_224, opts)
}

// NewSHA2_256 returns a new instance of SHA2-256 hasher
func NewSHA2_256(opts ...Option) Hasher {
	return newSHA2[uint32, sha2.SHA256](SHA2_256, opts)
}

// NewSHA2_384 returns a new instance of SHA2-384 hasher
func NewSHA2_384(opts ...Option) Hasher {
	return newSHA2[uint64, sha2.SHA384](SHA2_384, opts)
}

// NewSHA2_512 returns a new instance of SHA2-512 hasher
func NewSHA2_512(opts ...Option) Hasher {
	return newSHA2[uint64, sha2.SHA512](SHA2_512, opts)
}

// NewSHA2_512_224 returns a new instance of SHA2-512/224 hasher
func NewSHA2_512_224(opts ...Option) Hasher {
	return newSHA2[uint64, sha2.SHA512_224](SHA2_512_224, opts)
}

// NewSHA2_512_256 returns a new instance of SHA2-512/256 hasher
func NewSHA2_512_256(opts ...Option) Hasher {
	return newSHA2[uint64, sha2.SHA512_256](SHA2_512_256, opts)
}

func (s *sha2Algo[W, P]) Algorithm() HashingAlgorithm {
	return s.algo
}

func (s *sha2Algo[W, P]) Size() int {
	return s.ctx.Size()
}

func (s *sha2Algo[W, P]) BlockSize() int {
	return s.ctx.BlockSize()
}

// Reset resets the hasher to its initial state.
func (s *sha2Algo[W, P]) Reset() {
	_ = s.ctx.Reset()
}

// Write absorbs data into the hasher's state. On error, n counts the bytes
// absorbed before the state was corrupted.
func (s *sha2Algo[W, P]) Write(p []byte) (int, error) {
	n, err := s.ctx.Write(p)
	if n > 0 {
		s.metrics.BytesHashed(s.algo.String(), n)
	}
	if err != nil {
		s.fail(err, len(p))
		return n, fmt.Errorf("could not write %d of %d bytes to %s hasher: %w", len(p)-n, len(p), s.algo, err)
	}
	return n, nil
}

// ComputeHash calculates and returns the SHA2 output of input byte array.
// It does not reset the state to allow further writing.
func (s *sha2Algo[W, P]) ComputeHash(data []byte) Hash {
	s.Reset()
	_, _ = s.Write(data)
	return s.SumHash()
}

// SumHash returns the SHA2 output.
// It does not reset the state to allow further writing.
func (s *sha2Algo[W, P]) SumHash() Hash {
	return s.Sum(nil)
}

// Sum appends the SHA2 output to b.
// It does not reset the state to allow further writing.
// Nothing is appended if the state is corrupted; Write reported the error.
func (s *sha2Algo[W, P]) Sum(b []byte) []byte {
	// finalize a copy so the caller can keep writing
	ctx := s.ctx
	out := make([]byte, ctx.Size())
	if err := ctx.Result(out); err != nil {
		s.fail(err, 0)
		return b
	}
	s.metrics.DigestComputed(s.algo.String())
	return append(b, out...)
}

// SumBits returns the SHA2 output of the written data followed by the count
// leading bits of bits.
// It does not reset the state to allow further writing.
func (s *sha2Algo[W, P]) SumBits(bits byte, count uint) (Hash, error) {
	ctx := s.ctx
	err := ctx.FinalBits(bits, count)
	if err != nil {
		s.fail(err, 0)
		return nil, fmt.Errorf("could not append %d final bits to %s hasher: %w", count, s.algo, err)
	}
	out := make([]byte, ctx.Size())
	err = ctx.Result(out)
	if err != nil {
		s.fail(err, 0)
		return nil, fmt.Errorf("could not compute %s hash: %w", s.algo, err)
	}
	s.metrics.DigestComputed(s.algo.String())
	return out, nil
}

func (s *sha2Algo[W, P]) fail(err error, size int) {
	status := sha2.StatusOf(err)
	s.metrics.HashingFailed(s.algo.String(), status.String())
	s.log.Warn().
		Err(err).
		Int("size", size).
		Str("status", status.String()).
		Msg("hasher rejected operation")
}
