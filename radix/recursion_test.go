package radix

import (
	"math/rand"
	"sort"
	"testing"
)

func TestRecurseSortsUnsigned(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for _, n := range []int{0, 1, 2, 17, 1000} {
		for _, up := range []bool{true, false} {
			d := make([]uint32, n)
			for i := range d {
				d[i] = rng.Uint32()
			}
			want := append([]uint32(nil), d...)
			sort.Slice(want, func(i, j int) bool {
				if up {
					return want[i] < want[j]
				}
				return want[i] > want[j]
			})

			policy := Policy{KeyBits: 32, Category: Unsigned}
			Recurse(d, 0, n-1, 31, 0, up, 16, scalarPartitionFor[uint32](), lessFor[uint32](policy), policy)

			for i := range d {
				if d[i] != want[i] {
					t.Fatalf("n=%d up=%v mismatch at %d: got %v want %v", n, up, i, d, want)
				}
			}
		}
	}
}

func TestRecurseThresholdFallbackMatchesFullDescent(t *testing.T) {
	// cmpThresh = 16, n = 16: should take the insertion-sort fallback
	// immediately, yet produce the same order as a full bit descent.
	rng := rand.New(rand.NewSource(16))
	d := make([]uint32, 16)
	for i := range d {
		d[i] = rng.Uint32()
	}
	policy := Policy{KeyBits: 32, Category: Unsigned}

	viaFallback := append([]uint32(nil), d...)
	Recurse(viaFallback, 0, 15, 31, 0, true, 16, scalarPartitionFor[uint32](), lessFor[uint32](policy), policy)

	viaFullDescent := append([]uint32(nil), d...)
	Recurse(viaFullDescent, 0, 15, 31, 0, true, 0, scalarPartitionFor[uint32](), lessFor[uint32](policy), policy)

	for i := range viaFallback {
		if viaFallback[i] != viaFullDescent[i] {
			t.Fatalf("threshold fallback diverged from full descent at %d: %v vs %v", i, viaFallback, viaFullDescent)
		}
	}
}

func TestRecurseSignedWraparound(t *testing.T) {
	d := []uint32{
		asU32(-5), asU32(3), asU32(-1),
		asU32(0), asU32(2147483647), asU32(-2147483648),
	}
	policy := Policy{KeyBits: 32, Category: Signed}
	Recurse(d, 0, len(d)-1, 31, 0, true, 1, scalarPartitionFor[uint32](), lessFor[uint32](policy), policy)

	want := []int32{-2147483648, -5, -1, 0, 3, 2147483647}
	for i, w := range want {
		if int32(d[i]) != w {
			t.Fatalf("signed sort mismatch at %d: got %v want %v", i, int32(d[i]), w)
		}
	}
}

func TestRecurseDuplicates(t *testing.T) {
	d := []uint32{5, 5, 5, 5, 5, 5, 5, 5}
	policy := Policy{KeyBits: 32, Category: Unsigned}
	Recurse(d, 0, len(d)-1, 31, 0, true, 1, scalarPartitionFor[uint32](), lessFor[uint32](policy), policy)
	for _, v := range d {
		if v != 5 {
			t.Fatalf("duplicate-only input corrupted: %v", d)
		}
	}
}

func TestRecurseSingleElement(t *testing.T) {
	d := []uint32{42}
	policy := Policy{KeyBits: 32, Category: Unsigned}
	Recurse(d, 0, 0, 31, 0, true, 16, scalarPartitionFor[uint32](), lessFor[uint32](policy), policy)
	if d[0] != 42 {
		t.Fatalf("single-element sort corrupted value: %v", d)
	}
}
