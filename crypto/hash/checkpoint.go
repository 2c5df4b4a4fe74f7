package hash

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/onflow/sha2/sha2"
)

// checkpoint is the encoded form of a hasher's state.
type checkpoint struct {
	Algorithm HashingAlgorithm `cbor:"1,keyasint"`
	Hash      []uint64         `cbor:"2,keyasint"`
	Pending   []byte           `cbor:"3,keyasint"`
	LengthHi  uint64           `cbor:"4,keyasint"`
	LengthLo  uint64           `cbor:"5,keyasint"`
	Computed  bool             `cbor:"6,keyasint"`
	Status    sha2.Status      `cbor:"7,keyasint"`
}

// MarshalBinary encodes the hasher's state as CBOR, so that hashing can be
// resumed later by UnmarshalBinary on a hasher of the same algorithm.
func (s *sha2Algo[W, P]) MarshalBinary() ([]byte, error) {
	st := s.ctx.State()
	cp := checkpoint{
		Algorithm: s.algo,
		Hash:      make([]uint64, len(st.Hash)),
		Pending:   st.Pending,
		LengthHi:  st.LengthHi,
		LengthLo:  st.LengthLo,
		Computed:  st.Computed,
		Status:    st.Status,
	}
	for i, w := range st.Hash {
		cp.Hash[i] = uint64(w)
	}

	data, err := cbor.Marshal(cp)
	if err != nil {
		return nil, fmt.Errorf("could not encode %s checkpoint: %w", s.algo, err)
	}
	return data, nil
}

// UnmarshalBinary restores a state encoded by MarshalBinary. The hasher is
// left untouched if the checkpoint is invalid.
func (s *sha2Algo[W, P]) UnmarshalBinary(data []byte) error {
	var cp checkpoint
	err := cbor.Unmarshal(data, &cp)
	if err != nil {
		return fmt.Errorf("could not decode %s checkpoint: %w", s.algo, err)
	}
	if cp.Algorithm != s.algo {
		return errorf(ErrInvalidCheckpoint, "checkpoint of %s can not resume a %s hasher", cp.Algorithm, s.algo)
	}

	var st sha2.State[W]
	if len(cp.Hash) != len(st.Hash) {
		return errorf(ErrInvalidCheckpoint, "expecting %d hash words but got %d", len(st.Hash), len(cp.Hash))
	}
	for i, w := range cp.Hash {
		st.Hash[i] = W(w)
		if uint64(st.Hash[i]) != w {
			return errorf(ErrInvalidCheckpoint, "hash word %d overflows the word size", i)
		}
	}
	st.Pending = cp.Pending
	st.LengthHi = cp.LengthHi
	st.LengthLo = cp.LengthLo
	st.Computed = cp.Computed
	st.Status = cp.Status

	err = s.ctx.Restore(st)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidCheckpoint, err)
	}
	return nil
}
