package radix

// Uint128 is the emulated 16-byte element used when an 8-byte key (K=8) is
// paired with an 8-byte payload (E=16), the one case in spec.md's data
// model that cannot be represented by a native Go integer. Lo holds bits
// 0-63 (the key, since K never exceeds 64 bits) and Hi holds the payload.
//
// original_source/SIMDRadixSortGeneric.H represents this as
// uint128_t{half[2]} and hand-specializes every operation on it (setBitNo,
// operator&, the AVX-512 test_mask emulation) rather than forcing it
// through the generic template; this type and the functions below do the
// same for the same reason: Go's arithmetic operators aren't defined on
// struct types, so a single generic implementation over "any" element
// type can't also express bit-AND without a per-type escape hatch.
type Uint128 struct {
	Lo, Hi uint64
}

// setBit128 returns a Uint128 key with only bit b set. b is always < 64
// in every configuration this package exposes (K<=8 bytes), but the
// high-half branch is kept for fidelity to spec.md §4.1's "supports
// 128-bit by selecting a half."
func setBit128(b int) Uint128 {
	if b < 64 {
		return Uint128{Lo: uint64(1) << uint(b)}
	}
	return Uint128{Hi: uint64(1) << uint(b-64)}
}

// isZero128 reports whether v's bit tested by mask is clear. Since K<=8
// for every supported instantiation, mask.Hi is always zero and this
// degenerates to a test of the low half alone.
func isZero128(v, mask Uint128) bool {
	return v.Lo&mask.Lo == 0 && v.Hi&mask.Hi == 0
}
