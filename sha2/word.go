package sha2

import "math/bits"

// Word is the unsigned integer type a parameter set computes with.
//
// Go's operators already provide everything the rounds need on such a type:
// &, |, ^ and unary ^ for the bitwise functions, << and >> as logical shifts,
// and + which wraps modulo 2^w for unsigned integers.
type Word interface {
	~uint32 | ~uint64
}

// wordBits returns the width of W in bits.
func wordBits[W Word]() uint {
	return uint(bits.Len64(uint64(^W(0))))
}

// rotr rotates x right by n bits, n in [1, w-1].
func rotr[W Word](x W, n uint) W {
	return x>>n | x<<(wordBits[W]()-n)
}

// ch and maj are shared by every parameter set.
func ch[W Word](e, f, g W) W {
	return (e & f) ^ (^e & g)
}

func maj[W Word](a, b, c W) W {
	return (a & b) ^ (a & c) ^ (b & c)
}
