package sieve

import "testing"

func BenchmarkGrowTo1e7(b *testing.B) {
	for i := 0; i < b.N; i++ {
		s, err := New(0, 0)
		if err != nil {
			b.Fatal(err)
		}
		if err := s.GrowTo(10_000_000); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkIsPrime(b *testing.B) {
	s, err := New(10_000_000, 0)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	n := uint64(3)
	for i := 0; i < b.N; i++ {
		s.IsPrime(n)
		n += 2
		if n > 10_000_000 {
			n = 3
		}
	}
}

func BenchmarkForwardIterate(b *testing.B) {
	s, err := New(10_000_000, 0)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	it := s.Iterate()
	for i := 0; i < b.N; i++ {
		it.Next()
	}
}
