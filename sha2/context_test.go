package sha2

import (
	"bytes"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// engine is the method set shared by every Context instantiation.
type engine interface {
	Input(p []byte) error
	FinalBits(b byte, count uint) error
	Result(dst []byte) error
	Reset() error
	Size() int
	BlockSize() int
	Name() string
	Status() Status
	Computed() bool
}

type variant struct {
	name      string
	new       func() engine
	reference func([]byte) []byte
}

var variants = []variant{
	{"SHA-224", func() engine { return New224() }, func(b []byte) []byte { d := sha256.Sum224(b); return d[:] }},
	{"SHA-256", func() engine { return New256() }, func(b []byte) []byte { d := sha256.Sum256(b); return d[:] }},
	{"SHA-384", func() engine { return New384() }, func(b []byte) []byte { d := sha512.Sum384(b); return d[:] }},
	{"SHA-512", func() engine { return New512() }, func(b []byte) []byte { d := sha512.Sum512(b); return d[:] }},
	{"SHA-512/224", func() engine { return New512_224() }, func(b []byte) []byte { d := sha512.Sum512_224(b); return d[:] }},
	{"SHA-512/256", func() engine { return New512_256() }, func(b []byte) []byte { d := sha512.Sum512_256(b); return d[:] }},
}

func digest(t require.TestingT, s engine, chunks ...[]byte) []byte {
	for _, c := range chunks {
		require.NoError(t, s.Input(c))
	}
	out := make([]byte, s.Size())
	require.NoError(t, s.Result(out))
	return out
}

func fromHex(t *testing.T, s string) []byte {
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func TestKnownAnswers(t *testing.T) {
	million := bytes.Repeat([]byte("a"), 1_000_000)

	cases := []struct {
		name     string
		new      func() engine
		msg      []byte
		expected string
	}{
		{"sha256 empty", func() engine { return New256() }, nil,
			"e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"},
		{"sha256 abc", func() engine { return New256() }, []byte("abc"),
			"ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
		{"sha256 two blocks", func() engine { return New256() }, []byte("abcdbcdecdefdefgefghfghighijhijkijkljklmklmnlmnomnopnopq"),
			"248d6a61d20638b8e5c026930c3e6039a33ce45964ff2167f6ecedd419db06c1"},
		{"sha256 million a", func() engine { return New256() }, million,
			"cdc76e5c9914fb9281a1c7e284d73e67f1809a48a497200e046d39ccc7112cd0"},
		{"sha224 abc", func() engine { return New224() }, []byte("abc"),
			"23097d223405d8228642a477bda255b32aadbce4bda0b3f7e36c9da7"},
		{"sha512 empty", func() engine { return New512() }, nil,
			"cf83e1357eefb8bdf1542850d66d8007d620e4050b5715dc83f4a921d36ce9ce" +
				"47d0d13c5d85f2b0ff8318d2877eec2f63b931bd47417a81a538327af927da3e"},
		{"sha512 abc", func() engine { return New512() }, []byte("abc"),
			"ddaf35a193617abacc417349ae20413112e6fa4e89a97ea20a9eeee64b55d39a" +
				"2192992a274fc1a836ba3c23a3feebbd454d4423643ce80e2a9ac94fa54ca49f"},
		{"sha512 two blocks", func() engine { return New512() },
			[]byte("abcdefghbcdefghicdefghijdefghijkefghijklfghijklmghijklmnhijklmnoijklmnopjklmnopqklmnopqrlmnopqrsmnopqrstnopqrstu"),
			"8e959b75dae313da8cf4f72814fc143f8f7779c6eb9f7fa17299aeadb6889018" +
				"501d289e4900f7e4331b99dec4b5433ac7d329eeb6dd26545e96e55b874be909"},
		{"sha512 million a", func() engine { return New512() }, million,
			"e718483d0ce769644e2e42c7bc15b4638e1f98b13b2044285632a803afa973eb" +
				"de0ff244877ea60a4cb0432ce577c31beb009c5c2c49aa2e4eadb217ad8cc09b"},
		{"sha384 abc", func() engine { return New384() }, []byte("abc"),
			"cb00753f45a35e8bb5a03d699ac65007272c32ab0eded1631a8b605a43ff5bed" +
				"8086072ba1e7cc2358baeca134c825a7"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.expected, hex.EncodeToString(digest(t, c.new(), c.msg)))
		})
	}
}

func TestMatchesStandardLibrary(t *testing.T) {
	r := time.Now().UnixNano()
	rand.Seed(r)
	t.Logf("math rand seed is %d", r)

	for _, v := range variants {
		t.Run(v.name, func(t *testing.T) {
			s := v.new()
			require.Equal(t, v.name, s.Name())
			// every length up to a few blocks crosses each padding branch
			for l := 0; l < 3*s.BlockSize()+17; l++ {
				msg := make([]byte, l)
				_, _ = rand.Read(msg)
				require.NoError(t, s.Reset())
				require.Equal(t, v.reference(msg), digest(t, s, msg), "length %d", l)
			}
		})
	}
}

func TestChunkingInvariance(t *testing.T) {
	for _, v := range variants {
		v := v
		t.Run(v.name, func(t *testing.T) {
			rapid.Check(t, func(t *rapid.T) {
				msg := rapid.SliceOfN(rapid.Byte(), 0, 600).Draw(t, "msg")
				cuts := rapid.SliceOfN(rapid.IntRange(0, len(msg)), 0, 12).Draw(t, "cuts")

				var chunks [][]byte
				prev := 0
				for _, c := range cuts {
					if c < prev {
						continue
					}
					chunks = append(chunks, msg[prev:c])
					prev = c
				}
				chunks = append(chunks, msg[prev:])

				whole := digest(t, v.new(), msg)
				require.Equal(t, whole, digest(t, v.new(), chunks...))
				require.Equal(t, v.reference(msg), whole)
			})
		})
	}

	t.Run("byte at a time", func(t *testing.T) {
		msg := make([]byte, 300)
		_, _ = rand.Read(msg)
		for _, v := range variants {
			s := v.new()
			for i := range msg {
				require.NoError(t, s.Input(msg[i:i+1]))
			}
			out := make([]byte, s.Size())
			require.NoError(t, s.Result(out))
			assert.Equal(t, v.reference(msg), out, v.name)
		}
	})
}

func TestResultIdempotent(t *testing.T) {
	for _, v := range variants {
		s := v.new()
		require.NoError(t, s.Input([]byte("idempotent")))

		first := make([]byte, s.Size())
		second := make([]byte, s.Size())
		require.NoError(t, s.Result(first))
		require.NoError(t, s.Result(second))
		assert.Equal(t, first, second, v.name)
		assert.True(t, s.Computed())
	}
}

func TestBlockBoundary(t *testing.T) {
	s := New256()
	msg := bytes.Repeat([]byte{0x5a}, BlockSize256)
	require.NoError(t, s.Input(msg))
	assert.Empty(t, s.State().Pending, "a full block is compressed as soon as it fills")
	out := make([]byte, Size256)
	require.NoError(t, s.Result(out))
	expected := sha256.Sum256(msg)
	assert.Equal(t, expected[:], out)

	// lengths where the pad byte leaves no room for the length field
	for _, l := range []int{55, 56, 63, 64, 119, 120} {
		msg := bytes.Repeat([]byte{0xa5}, l)
		expected := sha256.Sum256(msg)
		assert.Equal(t, expected[:], digest(t, New256(), msg), "length %d", l)
	}
	for _, l := range []int{111, 112, 119, 120, 127, 128, 239, 240} {
		msg := bytes.Repeat([]byte{0xa5}, l)
		expected := sha512.Sum512(msg)
		assert.Equal(t, expected[:], digest(t, New512(), msg), "length %d", l)
	}
}

func TestFinalBits(t *testing.T) {
	t.Run("one zero bit", func(t *testing.T) {
		s := New256()
		require.NoError(t, s.FinalBits(0x00, 1))
		out := make([]byte, Size256)
		require.NoError(t, s.Result(out))
		assert.Equal(t, "bd4f9e98beb68c6ead3243b1b4c7fed75fa4feaab1f84795cbd8a98676a2a375", hex.EncodeToString(out))
	})

	t.Run("only the leading bits are used", func(t *testing.T) {
		for count := uint(1); count < 8; count++ {
			for _, v := range variants {
				a, b := v.new(), v.new()
				require.NoError(t, a.Input([]byte("prefix")))
				require.NoError(t, b.Input([]byte("prefix")))
				require.NoError(t, a.FinalBits(0xff, count))
				require.NoError(t, b.FinalBits(0xff&finalBitsMask[count], count))
				assert.Equal(t, digest(t, a), digest(t, b), "%s with %d bits", v.name, count)
			}
		}
	})

	t.Run("bit count changes the digest", func(t *testing.T) {
		a, b := New256(), New256()
		require.NoError(t, a.FinalBits(0x00, 1))
		require.NoError(t, b.FinalBits(0x00, 2))
		assert.NotEqual(t, digest(t, a), digest(t, b))
	})

	t.Run("zero count is a no-op", func(t *testing.T) {
		s := New256()
		require.NoError(t, s.Input([]byte("abc")))
		before := s.State()
		require.NoError(t, s.FinalBits(0xff, 0))
		assert.Equal(t, before, s.State())

		// also on finalized and corrupted contexts
		out := make([]byte, Size256)
		require.NoError(t, s.Result(out))
		require.NoError(t, s.FinalBits(0xff, 0))
		require.ErrorIs(t, s.Input([]byte("x")), ErrStateError)
		before = s.State()
		require.NoError(t, s.FinalBits(0xff, 0))
		assert.Equal(t, before, s.State())
	})

	t.Run("count of eight is a bad parameter", func(t *testing.T) {
		s := New512()
		require.ErrorIs(t, s.FinalBits(0x00, 8), ErrBadParam)
		assert.Equal(t, BadParam, s.Status())
		assert.ErrorIs(t, s.Input([]byte("x")), ErrBadParam)
		assert.ErrorIs(t, s.Result(make([]byte, Size512)), ErrBadParam)

		before := s.State()
		require.NoError(t, s.FinalBits(0xff, 0))
		assert.Equal(t, BadParam, s.Status())
		assert.Equal(t, before, s.State())
	})

	t.Run("after finalization", func(t *testing.T) {
		s := New256()
		require.NoError(t, s.Result(make([]byte, Size256)))
		require.ErrorIs(t, s.FinalBits(0x00, 3), ErrStateError)
		assert.Equal(t, StateError, s.Status())
	})
}

func TestStickyCorruption(t *testing.T) {
	for _, v := range variants {
		t.Run(v.name, func(t *testing.T) {
			s := v.new()
			require.NoError(t, s.Input([]byte("abc")))
			out := make([]byte, s.Size())
			require.NoError(t, s.Result(out))

			// empty input on a finalized context is not a misuse
			require.NoError(t, s.Input(nil))
			assert.Equal(t, Success, s.Status())
			assert.True(t, s.Computed())
			require.NoError(t, s.Result(out))
			assert.Equal(t, v.reference([]byte("abc")), out)

			require.ErrorIs(t, s.Input([]byte("more")), ErrStateError)
			assert.Equal(t, StateError, StatusOf(s.Input([]byte("more"))))

			assert.ErrorIs(t, s.FinalBits(0x80, 3), ErrStateError)
			assert.ErrorIs(t, s.Result(out), ErrStateError)
			assert.NoError(t, s.Input(nil), "empty input always succeeds")
			assert.Equal(t, StateError, s.Status())

			require.NoError(t, s.Reset())
			assert.Equal(t, Success, s.Status())
			assert.False(t, s.Computed())
			assert.Equal(t, v.reference([]byte("abc")), digest(t, s, []byte("abc")))
		})
	}
}

func TestCorruptionDoesNotMutate(t *testing.T) {
	s := New256()
	require.NoError(t, s.Input([]byte("abc")))
	require.ErrorIs(t, s.FinalBits(0x00, 9), ErrBadParam)

	before := s.State()
	require.ErrorIs(t, s.Input([]byte("def")), ErrBadParam)
	require.ErrorIs(t, s.FinalBits(0x00, 1), ErrBadParam)
	require.ErrorIs(t, s.Result(make([]byte, Size256)), ErrBadParam)
	assert.Equal(t, before, s.State())
}

func TestCounterOverflow(t *testing.T) {
	t.Run("input", func(t *testing.T) {
		s := New256()
		s.lengthHi = math.MaxUint64
		s.lengthLo = math.MaxUint64 - 10*8 - 3

		err := s.Input(bytes.Repeat([]byte{1}, 20))
		require.ErrorIs(t, err, ErrStateError)
		assert.Equal(t, StateError, s.Status())

		// the ten bytes that still fit were consumed
		st := s.State()
		assert.Len(t, st.Pending, 10)
		assert.Equal(t, uint64(math.MaxUint64-3), st.LengthLo)

		require.ErrorIs(t, s.Input([]byte{2}), ErrStateError)
		assert.Equal(t, st, s.State())
	})

	t.Run("write reports consumed bytes", func(t *testing.T) {
		s := New384()
		s.lengthHi = math.MaxUint64
		s.lengthLo = math.MaxUint64 - 3*8

		n, err := s.Write([]byte{1, 2, 3, 4, 5})
		require.ErrorIs(t, err, ErrStateError)
		assert.Equal(t, 3, n)
		assert.Len(t, s.State().Pending, 3)

		n, err = s.Write([]byte{6})
		require.ErrorIs(t, err, ErrStateError)
		assert.Zero(t, n)
	})

	t.Run("input across a block", func(t *testing.T) {
		s := New512()
		s.lengthHi = math.MaxUint64
		s.lengthLo = math.MaxUint64 - 200*8

		require.ErrorIs(t, s.Input(make([]byte, 300)), ErrStateError)
		st := s.State()
		assert.Len(t, st.Pending, 200-BlockSize512)
		assert.Equal(t, uint64(math.MaxUint64), st.LengthLo)
	})

	t.Run("final bits", func(t *testing.T) {
		s := New256()
		s.lengthHi = math.MaxUint64
		s.lengthLo = math.MaxUint64 - 2

		require.ErrorIs(t, s.FinalBits(0x00, 3), ErrStateError)
		assert.False(t, s.Computed())
		require.NoError(t, s.Reset())
		assert.Equal(t, Success, s.Status())
	})

	t.Run("carry into the high word", func(t *testing.T) {
		s := New256()
		s.lengthLo = math.MaxUint64 - 7
		require.NoError(t, s.Input([]byte{0}))
		assert.Equal(t, uint64(1), s.lengthHi)
		assert.Equal(t, uint64(0), s.lengthLo)
	})
}

func TestResultBufferSize(t *testing.T) {
	s := New256()
	assert.Panics(t, func() { _ = s.Result(make([]byte, Size224)) })
	assert.Panics(t, func() { _ = New512().Result(make([]byte, Size256)) })
}

func TestResetRestoresInitialState(t *testing.T) {
	fresh := New512()
	s := New512()
	require.NoError(t, s.Input(bytes.Repeat([]byte{7}, 300)))
	require.NoError(t, s.Reset())
	assert.Equal(t, *fresh, *s)
}

func BenchmarkInput(b *testing.B) {
	buf := make([]byte, 8192)
	out256 := make([]byte, Size256)
	out512 := make([]byte, Size512)

	b.Run("SHA-256", func(b *testing.B) {
		s := New256()
		b.SetBytes(int64(len(buf)))
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_ = s.Reset()
			_ = s.Input(buf)
			_ = s.Result(out256)
		}
	})

	b.Run("SHA-512", func(b *testing.B) {
		s := New512()
		b.SetBytes(int64(len(buf)))
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_ = s.Reset()
			_ = s.Input(buf)
			_ = s.Result(out512)
		}
	})
}
