package sha2

import "encoding/binary"

// family256 holds everything the 32-bit word variants have in common.
type family256 struct{}

func (family256) WordSize() int   { return 4 }
func (family256) BlockSize() int  { return 64 }
func (family256) Rounds() int     { return 64 }
func (family256) LengthSize() int { return 8 }

func (family256) Constant(t int) uint32 { return k256[t] }

func (family256) ParseWord(b []byte) uint32 {
	return binary.BigEndian.Uint32(b)
}

func (family256) PutWord(b []byte, w uint32) {
	binary.BigEndian.PutUint32(b, w)
}

func (family256) UpperSigma0(x uint32) uint32 {
	return rotr(x, 2) ^ rotr(x, 13) ^ rotr(x, 22)
}

func (family256) UpperSigma1(x uint32) uint32 {
	return rotr(x, 6) ^ rotr(x, 11) ^ rotr(x, 25)
}

func (family256) LowerSigma0(x uint32) uint32 {
	return rotr(x, 7) ^ rotr(x, 18) ^ (x >> 3)
}

func (family256) LowerSigma1(x uint32) uint32 {
	return rotr(x, 17) ^ rotr(x, 19) ^ (x >> 10)
}

// SHA256 is the parameter set of SHA-256.
type SHA256 struct{ family256 }

func (SHA256) Name() string { return "SHA-256" }
func (SHA256) Size() int    { return Size256 }

func (SHA256) InitialHash() [hashWords]uint32 {
	return [hashWords]uint32{
		0x6a09e667, 0xbb67ae85, 0x3c6ef372, 0xa54ff53a,
		0x510e527f, 0x9b05688c, 0x1f83d9ab, 0x5be0cd19,
	}
}

// SHA224 is the parameter set of SHA-224, SHA-256 with its own H0 and a
// truncated digest.
type SHA224 struct{ family256 }

func (SHA224) Name() string { return "SHA-224" }
func (SHA224) Size() int    { return Size224 }

func (SHA224) InitialHash() [hashWords]uint32 {
	return [hashWords]uint32{
		0xc1059ed8, 0x367cd507, 0x3070dd17, 0xf70e5939,
		0xffc00b31, 0x68581511, 0x64f98fa7, 0xbefa4fa4,
	}
}

var k256 = [64]uint32{
	0x428a2f98, 0x71374491, 0xb5c0fbcf, 0xe9b5dba5, 0x3956c25b, 0x59f111f1, 0x923f82a4, 0xab1c5ed5,
	0xd807aa98, 0x12835b01, 0x243185be, 0x550c7dc3, 0x72be5d74, 0x80deb1fe, 0x9bdc06a7, 0xc19bf174,
	0xe49b69c1, 0xefbe4786, 0x0fc19dc6, 0x240ca1cc, 0x2de92c6f, 0x4a7484aa, 0x5cb0a9dc, 0x76f988da,
	0x983e5152, 0xa831c66d, 0xb00327c8, 0xbf597fc7, 0xc6e00bf3, 0xd5a79147, 0x06ca6351, 0x14292967,
	0x27b70a85, 0x2e1b2138, 0x4d2c6dfc, 0x53380d13, 0x650a7354, 0x766a0abb, 0x81c2c92e, 0x92722c85,
	0xa2bfe8a1, 0xa81a664b, 0xc24b8b70, 0xc76c51a3, 0xd192e819, 0xd6990624, 0xf40e3585, 0x106aa070,
	0x19a4c116, 0x1e376c08, 0x2748774c, 0x34b0bcb5, 0x391c0cb3, 0x4ed8aa4a, 0x5b9cca4f, 0x682e6ff3,
	0x748f82ee, 0x78a5636f, 0x84c87814, 0x8cc70208, 0x90befffa, 0xa4506ceb, 0xbef9a3f7, 0xc67178f2,
}
