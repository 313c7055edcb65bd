package radix

import "github.com/ti-uni-bielefeld/SIMDRadixSort/hwy"

// vectorBytes is the register width this partitioner assumes (512-bit /
// 64 bytes), fixed independently of the running CPU; see capability_*.go
// for the runtime gate that decides whether simdPartition may run at all.
const vectorBytes = 64

// byteWidth returns sizeof(T) for the element types this package supports.
func byteWidth[T Elem]() int {
	return bitsOf[T]() / 8
}

// lanesPerVector is V in spec §4.5: the number of T-sized lanes in one
// 512-bit vector register.
func lanesPerVector[T Elem]() int {
	return vectorBytes / byteWidth[T]()
}

// bitTestMask returns a mask that is true in every lane of w whose bit
// (given as a one-bit value, not a bit index) is set.
func bitTestMask[T Elem](w hwy.Vec[T], bit T) hwy.Mask[T] {
	masked := hwy.And(w, hwy.Set(bit))
	return hwy.NotEqual(masked, hwy.Zero[T]())
}

// simdPartition is the wide-vector compress-store bit partitioner (spec
// §4.5). It visits the aligned middle of [left,right] one vector at a
// time, holding exactly one vector register of scratch space (scratch)
// so that every element is read once and written once, then finishes the
// unaligned remainder with the right-limited scalar partitioner.
//
// Ground truth: original_source/SIMDRadixSortGeneric.H's
// SimdRadixBitSorterCompress::bitSorter. hwy.Vec/Mask/CompressStore/
// MaskNot are the compress-store primitive family from
// janpfeifer-go-highway/hwy/compress.go, reused here at the fixed 512-bit
// width spec.md mandates rather than through hwy's own runtime dispatch.
func simdPartition[T Elem](d []T, bitNo, left, right int, up bool) int {
	V := lanesPerVector[T]()
	bit := SetBit[T](bitNo)
	isZero := func(v T) bool { return v&bit == 0 }

	n := right + 1 - left
	aligned := n &^ (V - 1)
	r0, w0 := left, left
	r1 := left + aligned
	w1 := r1
	posSeq := w1

	if r0 >= r1 {
		// Range too small for even one vector; fall straight to scalar.
		return scalarPartitionRightLimited(d, isZero, w0, right, posSeq, up)
	}

	r1 -= V
	scratch := hwy.Load(d[r1 : r1+V])

	for r0 < r1 {
		w := scratch

		oneMask := bitTestMask(w, bit)
		zeroMask := hwy.MaskNot(oneMask)
		leftMask, rightMask := zeroMask, oneMask
		if !up {
			leftMask, rightMask = oneMask, zeroMask
		}
		popLeft := leftMask.CountTrue()
		popRight := rightMask.CountTrue()

		// Exactly one side needs a fresh vector before this iteration's
		// stores. w1-popRight<r1 and r0==r1-V (both sides "free") cannot
		// both hold at once given V elements still unread on each side;
		// forcing the right side whenever it alone is short preserves
		// the one-vector-in-hand invariant.
		var next hwy.Vec[T]
		if (w1 - popRight) < r1 {
			r1 -= V
			next = hwy.Load(d[r1 : r1+V])
		} else {
			next = hwy.Load(d[r0 : r0+V])
			r0 += V
		}

		hwy.CompressStore(w, leftMask, d[w0:])
		w0 += popLeft
		w1 -= popRight
		hwy.CompressStore(w, rightMask, d[w1:])

		scratch = next
	}

	// Postamble: one vector remains in scratch; store both sides without
	// reloading, since r0==r1 means nothing is left to read.
	oneMask := bitTestMask(scratch, bit)
	zeroMask := hwy.MaskNot(oneMask)
	leftMask, rightMask := zeroMask, oneMask
	if !up {
		leftMask, rightMask = oneMask, zeroMask
	}
	w0 += hwy.CompressStore(scratch, leftMask, d[w0:])
	w1 -= rightMask.CountTrue()
	hwy.CompressStore(scratch, rightMask, d[w1:])

	return scalarPartitionRightLimited(d, isZero, w0, right, posSeq, up)
}
