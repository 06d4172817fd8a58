// Package cpuconf resolves the worker thread count for parallel sieve
// computation, auto-detecting from CPU topology when the caller leaves
// it unspecified.
package cpuconf

import "github.com/klauspost/cpuid/v2"

// MaxThreads is the hard cap on worker goroutines for a single
// computeRange call, regardless of what the host reports.
const MaxThreads = 32

// NumThreads resolves want into a thread count in [1, MaxThreads].
// want == 0 means auto-detect from the host's physical core count.
func NumThreads(want int) int {
	if want == 0 {
		want = cpuid.CPU.PhysicalCores
		if want < 1 {
			want = 1
		}
	}
	if want > MaxThreads {
		want = MaxThreads
	}
	if want < 1 {
		want = 1
	}
	return want
}
