package unittest

import (
	crand "crypto/rand"
	"fmt"
)

// RandomBytes returns n bytes from crypto/rand.
func RandomBytes(n int) []byte {
	b := make([]byte, n)
	read, err := crand.Read(b)
	if err != nil {
		panic("cannot read random bytes")
	}
	if read != n {
		panic(fmt.Errorf("cannot read enough random bytes (got %d of %d)", read, n))
	}
	return b
}

// RandomMessages returns count random messages, the i-th one being i*step
// bytes long so that every batch covers the padding branches.
func RandomMessages(count int, step int) [][]byte {
	msgs := make([][]byte, count)
	for i := range msgs {
		msgs[i] = RandomBytes(i * step)
	}
	return msgs
}
