// Package sha2 implements the SHA-2 family of hash functions as a single
// incremental engine, generic over the word width of the variant.
package sha2

import (
	"encoding/binary"
	"fmt"
	"math"
	"math/bits"
)

// Digest lengths in bytes.
const (
	Size224     = 28
	Size256     = 32
	Size384     = 48
	Size512     = 64
	Size512_224 = 28
	Size512_256 = 32
)

// Block sizes in bytes of the 32-bit and 64-bit word families.
const (
	BlockSize256 = 64
	BlockSize512 = 128
)

var (
	finalBitsMask   = [8]byte{0x00, 0x80, 0xc0, 0xe0, 0xf0, 0xf8, 0xfc, 0xfe}
	finalBitsMarker = [8]byte{0x80, 0x40, 0x20, 0x10, 0x08, 0x04, 0x02, 0x01}
)

// Context is the running state of one hash computation for the parameter set
// P. A Context is not safe for concurrent use; independent contexts share
// nothing.
type Context[W Word, P Params[W]] struct {
	params P

	h [hashWords]W

	block [maxBlockSize]byte
	idx   int // pending bytes in block

	// message length in bits, as a 128-bit counter
	lengthHi uint64
	lengthLo uint64

	computed bool
	status   Status
}

// New returns a Context in its initial state.
func New[W Word, P Params[W]]() *Context[W, P] {
	s := &Context[W, P]{}
	s.init()
	return s
}

// New224 returns a SHA-224 context.
func New224() *Context[uint32, SHA224] { return New[uint32, SHA224]() }

// New256 returns a SHA-256 context.
func New256() *Context[uint32, SHA256] { return New[uint32, SHA256]() }

// New384 returns a SHA-384 context.
func New384() *Context[uint64, SHA384] { return New[uint64, SHA384]() }

// New512 returns a SHA-512 context.
func New512() *Context[uint64, SHA512] { return New[uint64, SHA512]() }

// New512_224 returns a SHA-512/224 context.
func New512_224() *Context[uint64, SHA512_224] { return New[uint64, SHA512_224]() }

// New512_256 returns a SHA-512/256 context.
func New512_256() *Context[uint64, SHA512_256] { return New[uint64, SHA512_256]() }

func (s *Context[W, P]) init() {
	s.h = s.params.InitialHash()
	s.block = [maxBlockSize]byte{}
	s.idx = 0
	s.lengthHi = 0
	s.lengthLo = 0
	s.computed = false
	s.status = Success
}

// Size returns the digest length in bytes.
func (s *Context[W, P]) Size() int { return s.params.Size() }

// BlockSize returns the message block size in bytes.
func (s *Context[W, P]) BlockSize() int { return s.params.BlockSize() }

// Name returns the name of the variant.
func (s *Context[W, P]) Name() string { return s.params.Name() }

// Status returns the corruption status.
func (s *Context[W, P]) Status() Status { return s.status }

// Computed reports whether the context has been finalized.
func (s *Context[W, P]) Computed() bool { return s.computed }

// Reset returns the context to its initial state. It is the only way to clear
// a corrupted context and always succeeds.
func (s *Context[W, P]) Reset() error {
	s.init()
	return nil
}

// Input appends p to the message.
//
// An empty p is always accepted. Input on a finalized context corrupts it
// with StateError. If the bit-length counter would overflow, the bytes that
// still fit are consumed and the context is corrupted with StateError.
func (s *Context[W, P]) Input(p []byte) error {
	_, err := s.Write(p)
	return err
}

// Write is Input, also returning how many bytes of p were consumed. The count
// is less than len(p) only when err is not nil.
func (s *Context[W, P]) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if s.status != Success {
		return 0, s.status.err()
	}
	if s.computed {
		s.status = StateError
		return 0, s.status.err()
	}

	blockSize := s.params.BlockSize()
	written := 0
	for written < len(p) {
		want := blockSize - s.idx
		if rest := len(p) - written; want > rest {
			want = rest
		}
		n := s.fit(want)

		copy(s.block[s.idx:], p[written:written+n])
		s.idx += n
		s.addBits(uint64(n) * 8)
		written += n

		if s.idx == blockSize {
			s.compress()
		}
		if n < want {
			s.status = StateError
			return written, s.status.err()
		}
	}
	return written, nil
}

// FinalBits appends the count most significant bits of b as the end of the
// message and finalizes the context.
//
// A count of 0 is accepted without touching the context, even when it is
// finalized or corrupted. A count of 8 or more corrupts the context with
// BadParam.
func (s *Context[W, P]) FinalBits(b byte, count uint) error {
	if count == 0 {
		return nil
	}
	if s.status != Success {
		return s.status.err()
	}
	if s.computed {
		s.status = StateError
		return s.status.err()
	}
	if count >= 8 {
		s.status = BadParam
		return s.status.err()
	}
	if uint64(count) > s.room() {
		s.status = StateError
		return s.status.err()
	}

	s.addBits(uint64(count))
	s.finalize((b & finalBitsMask[count]) | finalBitsMarker[count])
	return nil
}

// Result finalizes the context if needed and writes the digest to dst, which
// must be exactly Size bytes long. Later calls write the same digest again.
func (s *Context[W, P]) Result(dst []byte) error {
	if s.status != Success {
		return s.status.err()
	}
	size := s.params.Size()
	if len(dst) != size {
		panic(fmt.Sprintf("sha2: %s digest buffer has %d bytes, expected %d", s.params.Name(), len(dst), size))
	}

	if !s.computed {
		s.finalize(0x80)
	}

	var out [hashWords * 8]byte
	ws := s.params.WordSize()
	for i, w := range s.h {
		s.params.PutWord(out[i*ws:], w)
	}
	copy(dst, out[:size])
	return nil
}

// room returns how many more bits the length counter can take, saturated at
// math.MaxUint64.
func (s *Context[W, P]) room() uint64 {
	if s.lengthHi != math.MaxUint64 {
		return math.MaxUint64
	}
	return math.MaxUint64 - s.lengthLo
}

// fit returns how many of n bytes can be counted without overflow.
func (s *Context[W, P]) fit(n int) int {
	if limit := s.room() / 8; uint64(n) > limit {
		return int(limit)
	}
	return n
}

// addBits adds n to the length counter. Callers check room first.
func (s *Context[W, P]) addBits(n uint64) {
	var carry uint64
	s.lengthLo, carry = bits.Add64(s.lengthLo, n, 0)
	s.lengthHi += carry
}

// compress folds the full block into the intermediate hash.
func (s *Context[W, P]) compress() {
	p := s.params
	ws := p.WordSize()
	rounds := p.Rounds()

	var w [maxRounds]W
	for t := 0; t < 16; t++ {
		w[t] = p.ParseWord(s.block[t*ws:])
	}
	for t := 16; t < rounds; t++ {
		w[t] = p.LowerSigma1(w[t-2]) + w[t-7] + p.LowerSigma0(w[t-15]) + w[t-16]
	}

	a, b, c, d := s.h[0], s.h[1], s.h[2], s.h[3]
	e, f, g, h := s.h[4], s.h[5], s.h[6], s.h[7]

	for t := 0; t < rounds; t++ {
		t1 := h + p.UpperSigma1(e) + ch(e, f, g) + p.Constant(t) + w[t]
		t2 := p.UpperSigma0(a) + maj(a, b, c)
		h = g
		g = f
		f = e
		e = d + t1
		d = c
		c = b
		b = a
		a = t1 + t2
	}

	s.h[0] += a
	s.h[1] += b
	s.h[2] += c
	s.h[3] += d
	s.h[4] += e
	s.h[5] += f
	s.h[6] += g
	s.h[7] += h

	s.idx = 0
}

// finalize pads the message with pad, appends the length and compresses the
// trailing block(s).
func (s *Context[W, P]) finalize(pad byte) {
	blockSize := s.params.BlockSize()
	lengthAt := blockSize - s.params.LengthSize()

	s.block[s.idx] = pad
	s.idx++
	if s.idx > lengthAt {
		zero(s.block[s.idx:blockSize])
		s.compress()
	}
	zero(s.block[s.idx:lengthAt])

	field := s.block[lengthAt:blockSize]
	if len(field) == 16 {
		binary.BigEndian.PutUint64(field, s.lengthHi)
		field = field[8:]
	}
	binary.BigEndian.PutUint64(field, s.lengthLo)
	s.compress()

	zero(s.block[:])
	s.lengthHi = 0
	s.lengthLo = 0
	s.computed = true
}

func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
