package sieve

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTemplateMarksTinyPrimeMultiples(t *testing.T) {
	populateSegment(make([]uint64, wordsPerSegment), 1) // force buildTemplate

	for k := uint64(0); k < bitsPerSegment; k++ {
		n := 2*k + 1
		divisible := false
		for _, p := range tinyPrimes {
			if n%p == 0 {
				divisible = true
				break
			}
		}
		bit := templateWords[k/64]&(1<<(k%64)) != 0
		require.Equalf(t, divisible, bit, "template bit for n=%d", n)
	}
}

func TestSegmentZeroTinyPrimesThemselvesAreNotMarkedComposite(t *testing.T) {
	words := make([]uint64, wordsPerSegment)
	computeSegmentZero(words)

	for _, p := range tinyPrimes {
		k := (p - 1) / 2
		bit := words[k/64]&(1<<(k%64)) != 0
		require.Falsef(t, bit, "tiny prime %d marked composite in segment 0", p)
	}
}

func TestComputeSegmentZeroMatchesOracle(t *testing.T) {
	words := make([]uint64, wordsPerSegment)
	computeSegmentZero(words)

	hi := 2*bitsPerSegment - 1
	for n := uint64(1); n <= hi; n += 2 {
		k := (n - 1) / 2
		isPrimeBit := words[k/64]&(1<<(k%64)) == 0
		require.Equalf(t, oraclePrime(n), isPrimeBit, "segment 0 bit for n=%d", n)
	}
}

func TestComputeSegmentMatchesOracleAcrossSeam(t *testing.T) {
	bm := &bitmap{}
	require.NoError(t, bm.reserve(2))
	computeRange(bm, 0, 2, 1)
	bm.numSegsComputed = 2

	lo := 2*bitsPerSegment + 1
	hi := 2 * bitsPerSegment * 2 - 1
	for n := lo; n <= hi; n += 2 {
		word, bit := bitAddressOf(n)
		isPrimeBit := bm.words[word]&(1<<bit) == 0
		require.Equalf(t, oraclePrime(n), isPrimeBit, "segment 1 bit for n=%d", n)
	}
}

func TestComputeRangeIndependentOfThreadCount(t *testing.T) {
	const segs = 6

	bm1 := &bitmap{}
	require.NoError(t, bm1.reserve(segs))
	computeRange(bm1, 0, segs, 1)

	bm8 := &bitmap{}
	require.NoError(t, bm8.reserve(segs))
	computeRange(bm8, 0, segs, 8)

	require.Equal(t, bm1.words, bm8.words)
}
