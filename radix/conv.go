package radix

import "unsafe"

// These reinterpret a signed or floating-point slice as its equal-width
// unsigned counterpart over the same backing array, so the sort can run
// entirely in terms of the bit-pattern transforms in policy.go without
// copying the buffer. Go has no checked representation-preserving cast
// between numeric slice element types; unsafe.Slice over the same
// pointer and length is the standard way to get one.
func asUint32s(d []int32) []uint32 {
	if len(d) == 0 {
		return nil
	}
	return unsafe.Slice((*uint32)(unsafe.Pointer(&d[0])), len(d))
}

func asUint64s(d []int64) []uint64 {
	if len(d) == 0 {
		return nil
	}
	return unsafe.Slice((*uint64)(unsafe.Pointer(&d[0])), len(d))
}

func asUint32sFloat(d []float32) []uint32 {
	if len(d) == 0 {
		return nil
	}
	return unsafe.Slice((*uint32)(unsafe.Pointer(&d[0])), len(d))
}

func asUint64sFloat(d []float64) []uint64 {
	if len(d) == 0 {
		return nil
	}
	return unsafe.Slice((*uint64)(unsafe.Pointer(&d[0])), len(d))
}
