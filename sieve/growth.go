package sieve

import "fmt"

// growTo ensures the sieve is computed at least up to odd bound n.
// Values below 3 require no storage at all.
func (s *Sieve) growTo(n uint64) error {
	if n < 3 {
		return nil
	}
	need := (n-1)/(2*bitsPerSegment) + 1
	return s.growToSegs(need)
}

// growToSegs ensures at least need segments are computed, growing
// storage and invoking the compute engine for the newly added range.
// Iterators call this directly with a segment count derived from
// their own position, the same way growTo derives one from a bound.
func (s *Sieve) growToSegs(need uint64) error {
	if need <= s.bm.numSegsComputed {
		return nil
	}

	if err := s.bm.reserve(need); err != nil {
		return fmt.Errorf("sieve: grow to segment %d: %w", need, err)
	}

	computeRange(&s.bm, s.bm.numSegsComputed, need, s.numThreads)
	s.bm.numSegsComputed = need

	if s.logger != nil {
		s.logger.Printf("sieve: computed through segment %d (bound %d)", need-1, 2*bitsPerSegment*need-1)
	}
	return nil
}

// mustGrowTo grows the sieve and panics (wrapping ErrOutOfMemory) on
// failure, for the convenience query/iterator paths whose spec.md
// signatures have no room for an explicit error return.
func (s *Sieve) mustGrowTo(n uint64) {
	if err := s.growTo(n); err != nil {
		panic(err)
	}
}

// mustGrowToSegs is the growToSegs analogue of mustGrowTo.
func (s *Sieve) mustGrowToSegs(need uint64) {
	if err := s.growToSegs(need); err != nil {
		panic(err)
	}
}
