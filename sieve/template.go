package sieve

import "sync"

// tinyPrimes are the primes whose product is bitsPerSegment; their
// combined multiples tile each segment exactly, giving the pre-sieve
// template a period of exactly one segment in segment-space.
var tinyPrimes = [6]uint64{3, 5, 7, 11, 13, 17}

var (
	templateOnce  sync.Once
	templateWords []uint64 // segment s >= 1 copies this verbatim
	seg0Words     []uint64 // segment 0: template with tinyPrimes themselves cleared
)

// buildTemplate computes the pre-sieve template once: bit k is set iff
// 2k+1 shares a factor with 3*5*7*11*13*17. The trailing unused bits
// are forced to 1 (composite / no mapping).
func buildTemplate() {
	words := make([]uint64, wordsPerSegment)
	for _, p := range tinyPrimes {
		// every odd multiple of p, including p itself: the template
		// marks compositeness by divisibility alone, independent of
		// any particular segment's starting offset.
		for m := p; m < 2*bitsPerSegment; m += 2 * p {
			k := (m - 1) / 2
			words[k/64] |= 1 << (k % 64)
		}
	}
	for b := bitsPerSegment; b < wordsPerSegment*64; b++ {
		words[b/64] |= 1 << (b % 64)
	}

	seg0 := make([]uint64, wordsPerSegment)
	copy(seg0, words)
	for _, p := range tinyPrimes {
		k := (p - 1) / 2
		seg0[k/64] &^= 1 << (k % 64)
	}

	templateWords = words
	seg0Words = seg0
}

// populateSegment copies the pre-sieve template into dst (a
// wordsPerSegment-length slice), clearing the tiny primes themselves
// when seg == 0.
func populateSegment(dst []uint64, seg uint64) {
	templateOnce.Do(buildTemplate)
	if seg == 0 {
		copy(dst, seg0Words)
		return
	}
	copy(dst, templateWords)
}
