package radix

// insertionSort sorts d[left:right+1] using less as the ordering
// predicate. It is the comparison fallback below the recursion driver's
// threshold and the base case the SIMD and scalar partitioners never need
// to reach on their own.
//
// Elements are shifted with copy rather than one-at-a-time assignment so
// that wider, payload-bearing element layouts shift as a single memory
// move rather than a field-by-field copy - mirroring the block-move
// insertion sort in original_source/SIMDRadixSortGeneric.H, itself
// adapted from Heineman et al., "Algorithms in a Nutshell".
//
// The shift stops at the first element key does not sort before, so equal
// keys keep their order here; the radix sort as a whole is not stable.
func insertionSort[T any](d []T, left, right int, less func(a, b T) bool) {
	for i := left + 1; i <= right; i++ {
		key := d[i]
		j := i - 1
		for j >= left && less(key, d[j]) {
			j--
		}
		j++
		if j == i {
			continue
		}
		copy(d[j+1:i+1], d[j:i])
		d[j] = key
	}
}
