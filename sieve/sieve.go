// Package sieve implements a dynamically growing segmented prime
// sieve: constant-time primality queries and forward/reverse
// iteration over primes, extending its computed range transparently
// as queries demand it.
package sieve

import (
	"log"

	"github.com/jmilz/primesieve/internal/cpuconf"
)

// Sieve holds a segmented bitmap of odd-number compositeness and the
// bookkeeping needed to grow it on demand. A Sieve is not safe for
// concurrent use by multiple goroutines; callers sharing one across
// goroutines must provide their own synchronization.
type Sieve struct {
	bm         bitmap
	numThreads int
	logger     *log.Logger
}

// New creates a sieve, optionally pre-computing up to x. x == 0
// allocates no storage. numThreads == 0 auto-detects from the host's
// physical core count; any value is clamped to [1, cpuconf.MaxThreads].
func New(x uint64, numThreads int) (*Sieve, error) {
	s := &Sieve{
		numThreads: cpuconf.NumThreads(numThreads),
	}
	if err := s.growTo(x); err != nil {
		return nil, err
	}
	return s, nil
}

// SetLogger attaches a logger for growth/compute milestones. A nil
// logger (the default) disables this reporting entirely.
func (s *Sieve) SetLogger(l *log.Logger) {
	s.logger = l
}

// GrowTo computes the sieve up to x so that subsequent primality
// queries at or below x are answered without further growth.
func (s *Sieve) GrowTo(x uint64) error {
	return s.growTo(x)
}

// IsPrime reports whether x is prime, growing the sieve first if x
// exceeds the currently computed bound.
func (s *Sieve) IsPrime(x uint64) bool {
	if x == 2 {
		return true
	}
	if x < 2 || x%2 == 0 {
		return false
	}

	seg := segmentOf(x)
	if seg >= s.bm.numSegsComputed {
		s.mustGrowTo(x)
	}

	word, bit := bitAddressOf(x)
	return s.bm.words[word]&(1<<bit) == 0
}

// NextPrime returns the smallest prime strictly greater than x,
// growing the sieve as necessary.
func (s *Sieve) NextPrime(x uint64) uint64 {
	it := s.IterateForwardFrom(x)
	p, _ := it.Next()
	return p
}

// PrevPrime returns the largest prime strictly less than x. The
// precondition x > 2 is unchecked: callers must respect it, matching
// this sieve's documented (not runtime-enforced) undefined behavior
// for x <= 2.
func (s *Sieve) PrevPrime(x uint64) uint64 {
	it := s.IterateBackwardFrom(x)
	p, _ := it.Next()
	return p
}
