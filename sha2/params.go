package sha2

const (
	// maxBlockSize and maxRounds size the fixed buffers of a Context so one
	// layout serves every parameter set.
	maxBlockSize = 128
	maxRounds    = 80

	// hashWords is the number of words in the intermediate hash of every
	// SHA-2 variant.
	hashWords = 8
)

// Params is the constant bundle describing one SHA-2 variant. It contributes
// no control flow: the Context drives the algorithm and asks the parameter
// set for sizes, constants and the width-specific mixing functions.
//
// Implementations are zero-size types bound as a type parameter of Context,
// so the variant is fixed at construction and never dispatched at runtime.
type Params[W Word] interface {
	// Name is the conventional name of the variant, e.g. "SHA-256".
	Name() string
	// WordSize is the width of W in bytes.
	WordSize() int
	// BlockSize is the message block size in bytes.
	BlockSize() int
	// Rounds is the length of the message schedule.
	Rounds() int
	// Size is the digest length in bytes.
	Size() int
	// LengthSize is the number of trailing bytes of the final block that hold
	// the message bit length.
	LengthSize() int

	// InitialHash is H0.
	InitialHash() [hashWords]W
	// Constant returns K[t] for t in [0, Rounds).
	Constant(t int) W

	// ParseWord reads a big-endian word from the start of b. It panics if b is
	// shorter than WordSize.
	ParseWord(b []byte) W
	// PutWord writes w big-endian at the start of b. It panics if b is
	// shorter than WordSize.
	PutWord(b []byte, w W)

	UpperSigma0(x W) W
	UpperSigma1(x W) W
	LowerSigma0(x W) W
	LowerSigma1(x W) W
}
