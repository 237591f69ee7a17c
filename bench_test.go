package dynstack

import (
	"fmt"
	"runtime"
	"testing"
)

func BenchmarkNewRelease(b *testing.B) {
	r := NewRegion(make([]byte, 1<<20), nil)
	sizes := []int{8, 64, 256, 1024}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("size-%d", size), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				s := New[byte](r, size)
				s.Release()
			}
		})
	}
}

func BenchmarkRegionVsBuiltin(b *testing.B) {
	b.Run("region", func(b *testing.B) {
		r := NewRegion(make([]byte, 1<<20), nil)
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			s := NewForOverwrite[byte](r, 64)
			s.Release()
		}
	})

	b.Run("builtin", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_ = make([]byte, 64)
		}
	})
}

// BenchmarkRealisticUsage tests scenarios where a region should excel
func BenchmarkRealisticUsage(b *testing.B) {
	type TestStruct struct {
		ID   int64
		Data [56]byte // Total 64 bytes
	}

	// Nested scratch buffers, as a recursive algorithm would use them
	b.Run("NestedScratch/Region", func(b *testing.B) {
		r := NewRegion(make([]byte, 64<<10), nil)
		var descend func(depth int)
		descend = func(depth int) {
			if depth == 0 {
				return
			}
			s := NewForOverwrite[float64](r, 32)
			defer s.Release()
			s.Data()[0] = float64(depth)
			descend(depth - 1)
		}

		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			descend(16)
		}
	})

	b.Run("NestedScratch/Builtin", func(b *testing.B) {
		var descend func(depth int)
		descend = func(depth int) {
			if depth == 0 {
				return
			}
			s := make([]float64, 32)
			s[0] = float64(depth)
			descend(depth - 1)
		}

		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			descend(16)
			if i%1000 == 0 {
				runtime.GC()
			}
		}
	})

	b.Run("StructAllocs/Region", func(b *testing.B) {
		r := NewRegion(make([]byte, 64<<10), nil)
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			s := New[TestStruct](r, 50)
			for j := range s.Data() {
				s.Data()[j].ID = int64(j)
			}
			s.Release()
		}
	})

	b.Run("StructAllocs/Builtin", func(b *testing.B) {
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			s := make([]TestStruct, 50)
			for j := range s {
				s[j].ID = int64(j)
			}
		}
	})

	b.Run("Reserve/Region", func(b *testing.B) {
		r := NewRegion(make([]byte, 64<<10), nil)
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			for j := 0; j < 100; j++ {
				Reserve[TestStruct](r, 4)
			}
			r.Reset()
		}
	})
}
