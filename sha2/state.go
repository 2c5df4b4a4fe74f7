package sha2

import "fmt"

// State is a copy of everything a Context holds. It can be stored and later
// restored into a Context of the same parameter set to resume hashing.
type State[W Word] struct {
	Hash     [hashWords]W
	Pending  []byte // buffered bytes of the current block
	LengthHi uint64
	LengthLo uint64
	Computed bool
	Status   Status
}

// State returns a snapshot of the context.
func (s *Context[W, P]) State() State[W] {
	pending := make([]byte, s.idx)
	copy(pending, s.block[:s.idx])
	return State[W]{
		Hash:     s.h,
		Pending:  pending,
		LengthHi: s.lengthHi,
		LengthLo: s.lengthLo,
		Computed: s.computed,
		Status:   s.status,
	}
}

// Restore replaces the context's state with st. The context is left untouched
// if st can not belong to its parameter set.
func (s *Context[W, P]) Restore(st State[W]) error {
	if len(st.Pending) >= s.params.BlockSize() {
		return fmt.Errorf("%w: %d pending bytes for a %d byte block", ErrInvalidState, len(st.Pending), s.params.BlockSize())
	}
	if !st.Status.valid() {
		return fmt.Errorf("%w: unknown status %d", ErrInvalidState, st.Status)
	}
	if st.Computed && len(st.Pending) != 0 {
		return fmt.Errorf("%w: finalized context with pending bytes", ErrInvalidState)
	}

	s.h = st.Hash
	s.block = [maxBlockSize]byte{}
	s.idx = copy(s.block[:], st.Pending)
	s.lengthHi = st.LengthHi
	s.lengthLo = st.LengthLo
	s.computed = st.Computed
	s.status = st.Status
	return nil
}
