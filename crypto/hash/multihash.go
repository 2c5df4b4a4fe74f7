package hash

import (
	"github.com/multiformats/go-multihash"
)

// multicodec codes of the SHA-2 family
var multihashCodes = map[HashingAlgorithm]uint64{
	SHA2_224:     0x1013,
	SHA2_256:     multihash.SHA2_256,
	SHA2_384:     0x20,
	SHA2_512:     multihash.SHA2_512,
	SHA2_512_224: 0x1014,
	SHA2_512_256: 0x1015,
}

var hashLengths = map[HashingAlgorithm]int{
	SHA2_224:     HashLenSha2_224,
	SHA2_256:     HashLenSha2_256,
	SHA2_384:     HashLenSha2_384,
	SHA2_512:     HashLenSha2_512,
	SHA2_512_224: HashLenSha2_512_224,
	SHA2_512_256: HashLenSha2_512_256,
}

// Multihash frames h as a self-describing multihash of algorithm algo.
func Multihash(algo HashingAlgorithm, h Hash) (multihash.Multihash, error) {
	code, ok := multihashCodes[algo]
	if !ok {
		return nil, errorf(ErrUnsupportedAlgorithm, "no multihash code for %s", algo)
	}
	if len(h) != hashLengths[algo] {
		return nil, errorf(ErrInvalidHash, "%s hash must be %d bytes but got %d", algo, hashLengths[algo], len(h))
	}
	mh, err := multihash.Encode(h, code)
	if err != nil {
		return nil, errorf(ErrInvalidHash, "could not encode multihash: %v", err)
	}
	return mh, nil
}

// DecodeMultihash splits a multihash produced by Multihash into its
// algorithm and digest.
func DecodeMultihash(mh []byte) (HashingAlgorithm, Hash, error) {
	decoded, err := multihash.Decode(mh)
	if err != nil {
		return UnknownHashingAlgorithm, nil, errorf(ErrInvalidHash, "could not decode multihash: %v", err)
	}
	for algo, code := range multihashCodes {
		if code != decoded.Code {
			continue
		}
		if len(decoded.Digest) != hashLengths[algo] {
			return UnknownHashingAlgorithm, nil, errorf(ErrInvalidHash, "%s multihash carries %d bytes", algo, len(decoded.Digest))
		}
		return algo, Hash(decoded.Digest), nil
	}
	return UnknownHashingAlgorithm, nil, errorf(ErrUnsupportedAlgorithm, "multihash code %#x", decoded.Code)
}
