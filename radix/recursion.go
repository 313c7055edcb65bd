package radix

// Partitioner partitions d[left:right+1] on bitNo under direction up and
// returns the split index, matching either scalarPartition, simdPartition
// or their 128-bit counterparts once their bitNo/isZero closures are bound.
type Partitioner[T any] func(d []T, bitNo, left, right int, up bool) int

// LessFunc is a total-order comparator for the insertion-sort fallback,
// already aware of sign/float category and direction (see policy.go's
// Less for the native-element instantiation).
type LessFunc[T any] func(a, b T, up bool) bool

// Recurse is the recursion driver (spec §4.6): it walks from bitHigh down
// to bitLow, partitioning one bit at a time and recursing into both
// halves, falling back to insertion sort once a range shrinks to
// cmpThresh or below. Only the head (first) level applies the sign/float
// policy's upHigh/upLeft/upRight; every level below it keeps the
// direction chosen for its half constant, via recurseTail.
func Recurse[T any](d []T, left, right, bitHigh, bitLow int, up bool, cmpThresh int,
	partition Partitioner[T], less LessFunc[T], policy Policy) {

	if right-left <= cmpThresh {
		insertionSort(d, left, right, func(a, b T) bool { return less(a, b, up) })
		return
	}

	s := partition(d, bitHigh, left, right, policy.UpHigh(up))
	bitNo := bitHigh - 1
	if bitNo < bitLow {
		return
	}
	// The insertion-sort fallback below the head orders by the caller's
	// direction, not by the half's partition direction: for floats the
	// negative half is partitioned opposite to the order its values end in.
	tailLess := func(a, b T, _ bool) bool { return less(a, b, up) }
	recurseTail(d, left, s-1, bitNo, bitLow, policy.UpLeft(up), cmpThresh, partition, tailLess)
	recurseTail(d, s, right, bitNo, bitLow, policy.UpRight(up), cmpThresh, partition, tailLess)
}

// recurseTail handles every level below the head: direction up is plain
// and constant for the whole subtree.
func recurseTail[T any](d []T, left, right, bitNo, bitLow int, up bool, cmpThresh int,
	partition Partitioner[T], less LessFunc[T]) {

	if right-left <= cmpThresh {
		insertionSort(d, left, right, func(a, b T) bool { return less(a, b, up) })
		return
	}

	s := partition(d, bitNo, left, right, up)
	bitNo--
	if bitNo < bitLow {
		return
	}
	recurseTail(d, left, s-1, bitNo, bitLow, up, cmpThresh, partition, less)
	recurseTail(d, s, right, bitNo, bitLow, up, cmpThresh, partition, less)
}
