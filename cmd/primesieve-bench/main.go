// Command primesieve-bench is a manual profiling harness for the
// sieve package. It is not part of the library's public API; it
// exists the same way the teacher program's own main.go does, to
// drive a large computation under pprof.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/pprof"
	"time"

	"github.com/jmilz/primesieve/sieve"
)

func main() {
	bound := flag.Uint64("bound", 1_000_000_000, "grow the sieve up to this bound")
	threads := flag.Int("threads", 0, "worker thread count (0 = auto)")
	cpuProfile := flag.String("cpuprofile", "", "write a CPU profile to this file")
	flag.Parse()

	if *cpuProfile != "" {
		f, err := os.Create(*cpuProfile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to create profile: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "failed to start profile: %v\n", err)
			os.Exit(1)
		}
		defer pprof.StopCPUProfile()
	}

	fmt.Printf("Growing sieve to %d with %d threads...\n", *bound, *threads)
	start := time.Now()

	s, err := sieve.New(0, *threads)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create sieve: %v\n", err)
		os.Exit(1)
	}
	if err := s.GrowTo(*bound); err != nil {
		fmt.Fprintf(os.Stderr, "failed to grow sieve: %v\n", err)
		os.Exit(1)
	}

	elapsed := time.Since(start)
	fmt.Printf("Computed through %d in %s\n", *bound, elapsed)

	count := 0
	it := s.Iterate()
	for {
		p, _ := it.Next()
		if p > *bound {
			break
		}
		count++
	}
	fmt.Printf("Primes found: %d\n", count)
}
