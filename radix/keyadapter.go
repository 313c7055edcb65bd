package radix

import "github.com/ti-uni-bielefeld/SIMDRadixSort/hwy"

// Elem is the element/lane type the partitioner moves and tests. Elements
// up to 8 bytes (the key plus any embedded payload bits above keyBits) are
// represented natively; the 16-byte emulated case lives in uint128.go.
type Elem interface {
	hwy.UnsignedInts
}

// KeyOf returns the unsigned bit-pattern view of v's key portion: the low
// keyBits bits of v, with any payload bits above keyBits cleared. It
// performs no sign or float interpretation; that is policy's job.
func KeyOf[T Elem](v T, keyBits int) T {
	return v & keyMask[T](keyBits)
}

// SetBit returns a key of width T with only bit b set. b must be in
// [0, bitsOf(T)-1].
func SetBit[T Elem](b int) T {
	return T(1) << uint(b)
}

// keyMask returns a mask with the low keyBits bits set. keyBits equal to
// the full width of T is handled specially since 1<<width overflows T.
func keyMask[T Elem](keyBits int) T {
	width := bitsOf[T]()
	if keyBits >= width {
		return ^T(0)
	}
	if keyBits <= 0 {
		return 0
	}
	return (T(1) << uint(keyBits)) - 1
}

// bitsOf returns the bit width of T.
func bitsOf[T Elem]() int {
	var zero T
	switch any(zero).(type) {
	case uint8:
		return 8
	case uint16:
		return 16
	case uint32:
		return 32
	case uint64:
		return 64
	default:
		return 64
	}
}
