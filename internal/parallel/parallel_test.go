package parallel

import (
	"sync"
	"testing"
)

func TestChunksCoverRange(t *testing.T) {
	cfg := Config{Enabled: true, NumWorkers: 4, MinChunkSize: 8}

	n := 1000
	seen := make([]int, n)
	var mu sync.Mutex
	calls := 0

	Chunks(n, func(s, e int) {
		mu.Lock()
		calls++
		mu.Unlock()
		for i := s; i < e; i++ {
			seen[i]++
		}
	}, cfg)

	for i, c := range seen {
		if c != 1 {
			t.Fatalf("Index %d visited %d times", i, c)
		}
	}
	if calls != 4 {
		t.Errorf("Expected 4 chunks, got %d", calls)
	}
}

func TestChunks_Sequential(t *testing.T) {
	cfg := Config{Enabled: false}

	calls := 0
	Chunks(100, func(s, e int) {
		calls++
		if s != 0 || e != 100 {
			t.Errorf("Expected [0, 100), got [%d, %d)", s, e)
		}
	}, cfg)

	if calls != 1 {
		t.Errorf("Expected 1 call, got %d", calls)
	}
}

func TestChunks_SmallInput(t *testing.T) {
	// Inputs below two chunks are not split.
	cfg := DefaultConfig()

	calls := 0
	Chunks(2*cfg.MinChunkSize-1, func(_, _ int) {
		calls++
	}, cfg)

	if calls != 1 {
		t.Errorf("Expected 1 call, got %d", calls)
	}
}

func TestChunks_Empty(t *testing.T) {
	Chunks(0, func(_, _ int) {
		t.Error("f called for empty range")
	}, DefaultConfig())
}

func TestCopy(t *testing.T) {
	cfg := Config{Enabled: true, NumWorkers: 3, MinChunkSize: 16}

	src := make([]float32, 1001)
	for i := range src {
		src[i] = float32(i)
	}
	dst := make([]float32, len(src))

	if n := Copy(dst, src, cfg); n != len(src) {
		t.Fatalf("Expected %d copied, got %d", len(src), n)
	}
	for i := range src {
		if dst[i] != src[i] {
			t.Fatalf("Mismatch at %d: %v != %v", i, dst[i], src[i])
		}
	}
}

func TestCopy_ShortDestination(t *testing.T) {
	src := []int16{1, 2, 3, 4}
	dst := make([]int16, 2)

	if n := Copy(dst, src, DefaultConfig()); n != 2 {
		t.Errorf("Expected 2 copied, got %d", n)
	}
	if dst[0] != 1 || dst[1] != 2 {
		t.Errorf("Unexpected dst %v", dst)
	}
}

func BenchmarkCopy(b *testing.B) {
	cfg := DefaultConfig()
	n := 1 << 22
	src := make([]float32, n)
	dst := make([]float32, n)

	b.Run("parallel", func(b *testing.B) {
		b.SetBytes(int64(n * 4))
		for i := 0; i < b.N; i++ {
			Copy(dst, src, cfg)
		}
	})

	b.Run("sequential", func(b *testing.B) {
		cfgSeq := cfg
		cfgSeq.Enabled = false
		b.SetBytes(int64(n * 4))
		for i := 0; i < b.N; i++ {
			Copy(dst, src, cfgSeq)
		}
	})
}
