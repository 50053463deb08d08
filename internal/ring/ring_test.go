// File: internal/ring/ring_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package ring

import (
	"bytes"
	"errors"
	"math/rand"
	"runtime"
	"sync"
	"testing"

	"github.com/momentics/hioload-ring/api"
)

func mustRing(t *testing.T, capacity int) *Ring {
	t.Helper()
	r, err := New(capacity)
	if err != nil {
		t.Fatalf("New(%d): %v", capacity, err)
	}
	t.Cleanup(r.Close)
	return r
}

func TestNewRejectsDegenerateCapacity(t *testing.T) {
	for _, c := range []int{-1, 0, 1} {
		_, err := New(c)
		if err == nil {
			t.Errorf("New(%d): expected error", c)
			continue
		}
		if !errors.Is(err, api.ErrInvalidArgument) {
			t.Errorf("New(%d): err = %v, want ErrInvalidArgument match", c, err)
		}
	}
}

func TestFreshRingAvailability(t *testing.T) {
	for _, c := range []int{2, 3, 8, 64, 4096} {
		r := mustRing(t, c)
		if got := r.AvailableRead(); got != 0 {
			t.Errorf("cap %d: AvailableRead = %d, want 0", c, got)
		}
		if got := r.AvailableWrite(); got != c-1 {
			t.Errorf("cap %d: AvailableWrite = %d, want %d", c, got, c-1)
		}
		if got := r.Cap(); got != c-1 {
			t.Errorf("cap %d: Cap = %d, want %d", c, got, c-1)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	r := mustRing(t, 64)
	in := []byte("the quick brown fox jumps over the lazy dog")

	if n := r.Write(in); n != len(in) {
		t.Fatalf("Write = %d, want %d", n, len(in))
	}
	out := make([]byte, len(in))
	if n := r.Read(out); n != len(in) {
		t.Fatalf("Read = %d, want %d", n, len(in))
	}
	if !bytes.Equal(in, out) {
		t.Errorf("round trip mismatch: %q != %q", in, out)
	}
}

func TestSaturation(t *testing.T) {
	r := mustRing(t, 16)
	in := make([]byte, 32)
	for i := range in {
		in[i] = byte(i)
	}

	n := r.Write(in)
	if n != 15 {
		t.Fatalf("Write = %d, want 15 (usable capacity)", n)
	}
	if got := r.AvailableWrite(); got != 0 {
		t.Errorf("AvailableWrite after saturation = %d, want 0", got)
	}
	// A saturated ring accepts nothing more.
	if n := r.Write([]byte{0xff}); n != 0 {
		t.Errorf("Write on full ring = %d, want 0", n)
	}
	out := make([]byte, 15)
	if n := r.Read(out); n != 15 {
		t.Fatalf("Read = %d, want 15", n)
	}
	if !bytes.Equal(out, in[:15]) {
		t.Errorf("saturated write corrupted data: %v != %v", out, in[:15])
	}
}

func TestStarvation(t *testing.T) {
	r := mustRing(t, 16)
	out := make([]byte, 8)
	if n := r.Read(out); n != 0 {
		t.Fatalf("Read on empty ring = %d, want 0", n)
	}
	if got := r.AvailableRead(); got != 0 {
		t.Errorf("AvailableRead = %d, want 0", got)
	}
	if got := r.AvailableWrite(); got != 15 {
		t.Errorf("AvailableWrite = %d, want 15 (cursors must be unchanged)", got)
	}
}

func TestWrapAroundSplit(t *testing.T) {
	r := mustRing(t, 8)

	// Advance both cursors to offset 6.
	if n := r.Write(make([]byte, 6)); n != 6 {
		t.Fatalf("priming write = %d, want 6", n)
	}
	if n := r.Read(make([]byte, 6)); n != 6 {
		t.Fatalf("priming read = %d, want 6", n)
	}

	// 5 bytes from offset 6 must split 2 at the tail + 3 at the head.
	in := []byte{10, 20, 30, 40, 50}
	if n := r.Write(in); n != 5 {
		t.Fatalf("wrapping write = %d, want 5", n)
	}
	out := make([]byte, 5)
	if n := r.Read(out); n != 5 {
		t.Fatalf("wrapping read = %d, want 5", n)
	}
	if !bytes.Equal(in, out) {
		t.Errorf("wrap-around reordered bytes: %v != %v", out, in)
	}
}

func TestOccupancyIdentity(t *testing.T) {
	r := mustRing(t, 32)
	rnd := rand.New(rand.NewSource(7))

	scratch := make([]byte, 32)
	for i := 0; i < 2000; i++ {
		if rnd.Intn(2) == 0 {
			r.Write(scratch[:rnd.Intn(len(scratch))])
		} else {
			r.Read(scratch[:rnd.Intn(len(scratch))])
		}
		if sum := r.AvailableRead() + r.AvailableWrite(); sum != 31 {
			t.Fatalf("iteration %d: AvailableRead+AvailableWrite = %d, want 31", i, sum)
		}
	}
}

func TestReset(t *testing.T) {
	r := mustRing(t, 16)
	r.Write([]byte{1, 2, 3, 4, 5})
	r.Reset()

	if got := r.AvailableRead(); got != 0 {
		t.Fatalf("AvailableRead after reset = %d, want 0", got)
	}
	if got := r.AvailableWrite(); got != 15 {
		t.Fatalf("AvailableWrite after reset = %d, want 15", got)
	}
	// Previously written bytes must be gone: fill the ring and check
	// only the fresh bytes come out.
	in := make([]byte, 15)
	for i := range in {
		in[i] = 0xAA
	}
	r.Write(in)
	out := make([]byte, 15)
	r.Read(out)
	if !bytes.Equal(in, out) {
		t.Errorf("stale bytes survived reset: %v", out)
	}
}

func TestResetZeroesStorage(t *testing.T) {
	r := mustRing(t, 16)
	r.Write([]byte{9, 9, 9, 9})
	r.Reset()
	for i, v := range r.buf {
		if v != 0 {
			t.Fatalf("storage byte %d not zeroed after reset: %d", i, v)
		}
	}
}

// TestFIFOPrefixProperty drives randomized write/read chunks through a
// small ring on a single goroutine and checks the consumed stream is
// exactly a prefix of the produced stream.
func TestFIFOPrefixProperty(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		rnd := rand.New(rand.NewSource(seed))
		r := mustRing(t, 2+rnd.Intn(62))

		var produced, consumed []byte
		next := byte(0)
		chunk := make([]byte, 32)

		for i := 0; i < 5000; i++ {
			if rnd.Intn(2) == 0 {
				n := rnd.Intn(len(chunk)) + 1
				for j := 0; j < n; j++ {
					chunk[j] = next + byte(j)
				}
				w := r.Write(chunk[:n])
				produced = append(produced, chunk[:w]...)
				next += byte(w)
			} else {
				n := rnd.Intn(len(chunk)) + 1
				got := r.Read(chunk[:n])
				consumed = append(consumed, chunk[:got]...)
			}
		}
		// Drain the remainder.
		for {
			got := r.Read(chunk)
			if got == 0 {
				break
			}
			consumed = append(consumed, chunk[:got]...)
		}
		if !bytes.Equal(produced, consumed) {
			t.Fatalf("seed %d: consumed stream diverged from produced (%d vs %d bytes)",
				seed, len(consumed), len(produced))
		}
	}
}

// TestConcurrentStress runs a producer goroutine against a consumer
// goroutine with randomized chunk sizes and asserts the consumed
// stream is the produced monotone byte sequence: no gaps, duplicates,
// or corruption. Zero-progress iterations yield so the pair makes
// progress even on GOMAXPROCS=1.
func TestConcurrentStress(t *testing.T) {
	const total = 1 << 20

	for _, capacity := range []int{8, 61, 256, 4096} {
		r := mustRing(t, capacity)

		var wg sync.WaitGroup
		consumed := make([]byte, 0, total)

		wg.Add(2)
		go func() {
			defer wg.Done()
			rnd := rand.New(rand.NewSource(1))
			chunk := make([]byte, 64)
			sent := 0
			for sent < total {
				n := rnd.Intn(len(chunk)) + 1
				if n > total-sent {
					n = total - sent
				}
				for i := 0; i < n; i++ {
					chunk[i] = byte(sent + i)
				}
				w := r.Write(chunk[:n])
				sent += w
				if w == 0 {
					runtime.Gosched()
				}
			}
		}()
		go func() {
			defer wg.Done()
			rnd := rand.New(rand.NewSource(2))
			chunk := make([]byte, 64)
			for len(consumed) < total {
				n := rnd.Intn(len(chunk)) + 1
				got := r.Read(chunk[:n])
				consumed = append(consumed, chunk[:got]...)
				if got == 0 {
					runtime.Gosched()
				}
			}
		}()
		wg.Wait()

		for i, v := range consumed {
			if v != byte(i) {
				t.Fatalf("cap %d: byte %d corrupted: got %d, want %d",
					capacity, i, v, byte(i))
			}
		}
	}
}

func BenchmarkWriteRead(b *testing.B) {
	r, err := New(64 * 1024)
	if err != nil {
		b.Fatal(err)
	}
	defer r.Close()

	chunk := make([]byte, 512)
	b.SetBytes(int64(len(chunk)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.Write(chunk)
		r.Read(chunk)
	}
}
