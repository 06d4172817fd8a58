package sieve

import "math/bits"

// ForwardIterator walks primes in increasing order, auto-growing the
// sieve when it runs off the end of the currently computed range. It
// holds an exclusive reference to its Sieve for its lifetime: calling
// Next may trigger growth, so the iterator must own the only active
// cursor into that sieve.
type ForwardIterator struct {
	s          *Sieve
	preStart   bool
	wordIdx    uint64
	word       uint64
	endWordIdx uint64
}

// Iterate returns the default forward iterator, starting at 2.
func (s *Sieve) Iterate() *ForwardIterator {
	return &ForwardIterator{
		s:          s,
		preStart:   true,
		wordIdx:    ^uint64(0),
		endWordIdx: wordsPerSegment * s.bm.numSegsComputed,
	}
}

// IterateForwardFrom returns an iterator over primes strictly greater
// than x, growing the sieve as needed to discover the first one.
func (s *Sieve) IterateForwardFrom(x uint64) *ForwardIterator {
	if x < 2 {
		return s.Iterate()
	}

	kNative := (x + 1) >> 1
	seg := kNative / bitsPerSegment
	if seg >= s.bm.numSegsComputed {
		s.mustGrowToSegs(seg + 1)
	}

	j := kNative + unusedPerSegment*seg
	wordIdx := j / 64
	mask := ^uint64(0) << (j % 64)

	return &ForwardIterator{
		s:          s,
		wordIdx:    wordIdx,
		word:       (^s.bm.words[wordIdx]) & mask,
		endWordIdx: wordsPerSegment * s.bm.numSegsComputed,
	}
}

func (it *ForwardIterator) skipEmptyWords() {
	for it.word == 0 {
		it.wordIdx++
		if it.wordIdx >= it.endWordIdx {
			it.s.mustGrowToSegs(it.s.bm.numSegsComputed + 1)
			it.endWordIdx = wordsPerSegment * it.s.bm.numSegsComputed
		}
		it.word = ^it.s.bm.words[it.wordIdx]
	}
}

// Next returns the next prime in increasing order. The forward
// iterator never ends: ok is always true.
func (it *ForwardIterator) Next() (uint64, bool) {
	if it.preStart {
		it.preStart = false
		return 2, true
	}

	it.skipEmptyWords()
	bit := bits.TrailingZeros64(it.word)
	n := numberAt(it.wordIdx, uint(bit))
	it.word &= it.word - 1
	return n, true
}

// ReverseIterator walks primes in decreasing order down to and
// including 2, then terminates.
type ReverseIterator struct {
	s       *Sieve
	wordIdx uint64
	word    uint64
	done    bool
}

// IterateBackwardFrom returns an iterator over primes strictly less
// than x, down to and including 2. x <= 2 yields no primes.
func (s *Sieve) IterateBackwardFrom(x uint64) *ReverseIterator {
	if x <= 2 {
		return &ReverseIterator{done: true}
	}

	kNative := x >> 1
	seg := kNative / bitsPerSegment
	if seg >= s.bm.numSegsComputed {
		s.mustGrowToSegs(seg + 1)
	}

	j := kNative + unusedPerSegment*seg
	wordIdx := j / 64
	bitInWord := j % 64

	var mask uint64
	if bitInWord > 0 {
		mask = (uint64(1) << bitInWord) - 1
	}

	return &ReverseIterator{
		s:       s,
		wordIdx: wordIdx,
		word:    (^s.bm.words[wordIdx]) & mask,
	}
}

// Next returns the next prime in decreasing order. ok is false once
// the iterator has yielded 2 and terminated.
func (it *ReverseIterator) Next() (uint64, bool) {
	if it.done {
		return 0, false
	}

	for it.word == 0 {
		if it.wordIdx == 0 {
			it.done = true
			return 2, true
		}
		it.wordIdx--
		it.word = ^it.s.bm.words[it.wordIdx]
	}

	bit := 63 - bits.LeadingZeros64(it.word)
	n := numberAt(it.wordIdx, uint(bit))
	it.word &^= uint64(1) << uint(bit)
	return n, true
}
