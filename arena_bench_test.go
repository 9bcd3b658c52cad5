package lzarena

import (
	"testing"
)

func BenchmarkArena_Alloc64(b *testing.B) {
	a, err := New()
	if err != nil {
		b.Fatal(err)
	}
	defer a.Close()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := a.Alloc(64, 8); err != nil {
			b.Fatal(err)
		}
		if i%10000 == 9999 {
			a.Reset()
		}
	}
}

func BenchmarkArena_AllocMixed(b *testing.B) {
	sizes := []int{8, 24, 64, 200, 1024}

	a, err := New()
	if err != nil {
		b.Fatal(err)
	}
	defer a.Close()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := a.Alloc(sizes[i%len(sizes)], 8); err != nil {
			b.Fatal(err)
		}
		if i%4096 == 4095 {
			a.Reset()
		}
	}
}

func BenchmarkArena_AllocVsMake(b *testing.B) {
	b.Run("arena", func(b *testing.B) {
		a, err := New()
		if err != nil {
			b.Fatal(err)
		}
		defer a.Close()

		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			buf, err := a.Alloc(128, 8)
			if err != nil {
				b.Fatal(err)
			}
			buf[0] = 1
			if i%8192 == 8191 {
				a.Reset()
			}
		}
	})

	b.Run("make", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			buf := make([]byte, 128)
			buf[0] = 1
		}
	})
}

func BenchmarkRegion_Alloc(b *testing.B) {
	src, err := NewSource(BackendMmap)
	if err != nil {
		b.Fatal(err)
	}
	buf, err := src.Acquire(1 << 20)
	if err != nil {
		b.Fatal(err)
	}
	defer src.Release(buf)

	r := NewRegion(buf)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, ok := r.Alloc(64, 8); !ok {
			r.Reset()
		}
	}
}
