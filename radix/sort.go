package radix

// scalarPartitionFor binds scalarPartition's isZero closure to bitNo,
// producing a Partitioner that matches simdPartition's signature so both
// can be passed interchangeably to Recurse and the coordinator.
func scalarPartitionFor[T Elem]() Partitioner[T] {
	return func(d []T, bitNo, left, right int, up bool) int {
		bit := SetBit[T](bitNo)
		isZero := func(v T) bool { return v&bit == 0 }
		return scalarPartition(d, isZero, left, right, up)
	}
}

func lessFor[T Elem](policy Policy) LessFunc[T] {
	return func(a, b T, up bool) bool { return Less(policy, a, b, up) }
}

// SortSequential sorts d in place over policy.KeyBits key bits using only
// the scalar partitioner, ascending if up, else descending (spec §4.6,
// entry point sortSequential).
func SortSequential[T Elem](d []T, policy Policy, up bool, cmpThresh int) {
	if len(d) == 0 {
		return
	}
	bitHigh := policy.KeyBits - 1
	Recurse(d, 0, len(d)-1, bitHigh, 0, up, cmpThresh, scalarPartitionFor[T](), lessFor[T](policy), policy)
}

// SortSimd sorts d in place using the wide-vector compress-store
// partitioner, falling back to ErrUnsupportedTarget when the running
// target lacks the required 512-bit ISA (spec §6, entry point sortSimd).
func SortSimd[T Elem](d []T, policy Policy, up bool, cmpThresh int) error {
	if !simdCapable() {
		return ErrUnsupportedTarget
	}
	if len(d) == 0 {
		return nil
	}
	bitHigh := policy.KeyBits - 1
	Recurse(d, 0, len(d)-1, bitHigh, 0, up, cmpThresh, simdPartition[T], lessFor[T](policy), policy)
	return nil
}

// SortSequentialThreaded sorts d in place with the master/slave parallel
// coordinator driving the scalar partitioner (spec §4.8, entry point
// sortSequentialThreaded). It returns the run's Stats, or nil and an
// error when cfg is invalid.
func SortSequentialThreaded[T Elem](d []T, policy Policy, up bool, cmpThresh int, cfg RadixThreadConfig) (*Stats, error) {
	bitHigh := policy.KeyBits - 1
	c, err := NewCoordinator(cfg, d, bitHigh, 0, up, cmpThresh, scalarPartitionFor[T](), lessFor[T](policy), policy)
	if err != nil {
		return nil, err
	}
	return c.Run(), nil
}

// SortSimdThreaded sorts d in place with the master/slave parallel
// coordinator driving the wide-vector partitioner (spec §4.8, entry
// point sortSimdThreaded), rejecting the call on targets lacking the
// required ISA exactly as SortSimd does.
func SortSimdThreaded[T Elem](d []T, policy Policy, up bool, cmpThresh int, cfg RadixThreadConfig) (*Stats, error) {
	if !simdCapable() {
		return nil, ErrUnsupportedTarget
	}
	bitHigh := policy.KeyBits - 1
	c, err := NewCoordinator(cfg, d, bitHigh, 0, up, cmpThresh, simdPartition[T], lessFor[T](policy), policy)
	if err != nil {
		return nil, err
	}
	return c.Run(), nil
}

// --- Typed convenience wrappers (spec §6: "parameterized by key
// category, key width K, element width E, and direction UP") ---

func policyFor[T Elem](category Category) Policy {
	return Policy{KeyBits: bitsOf[T](), Category: category}
}

// Uint32sAscending sorts a []uint32 in place, ascending.
func Uint32sAscending(d []uint32) { SortSequential(d, policyFor[uint32](Unsigned), true, 16) }

// Uint32sDescending sorts a []uint32 in place, descending.
func Uint32sDescending(d []uint32) { SortSequential(d, policyFor[uint32](Unsigned), false, 16) }

// Uint64sAscending sorts a []uint64 in place, ascending.
func Uint64sAscending(d []uint64) { SortSequential(d, policyFor[uint64](Unsigned), true, 16) }

// Uint64sDescending sorts a []uint64 in place, descending.
func Uint64sDescending(d []uint64) { SortSequential(d, policyFor[uint64](Unsigned), false, 16) }

// Int32sAscending sorts a []int32 in place, ascending, honoring two's-
// complement order (negative values first).
func Int32sAscending(d []int32) {
	u := asUint32s(d)
	SortSequential(u, policyFor[uint32](Signed), true, 16)
}

// Int32sDescending sorts a []int32 in place, descending.
func Int32sDescending(d []int32) {
	u := asUint32s(d)
	SortSequential(u, policyFor[uint32](Signed), false, 16)
}

// Int64sAscending sorts a []int64 in place, ascending.
func Int64sAscending(d []int64) {
	u := asUint64s(d)
	SortSequential(u, policyFor[uint64](Signed), true, 16)
}

// Int64sDescending sorts a []int64 in place, descending.
func Int64sDescending(d []int64) {
	u := asUint64s(d)
	SortSequential(u, policyFor[uint64](Signed), false, 16)
}

// Float32sAscending sorts a []float32 in place, ascending, honoring
// IEEE-754 sign-magnitude order including NaN and -0.0 (policy.go's Less).
func Float32sAscending(d []float32) {
	u := asUint32sFloat(d)
	SortSequential(u, policyFor[uint32](Float), true, 16)
}

// Float32sDescending sorts a []float32 in place, descending.
func Float32sDescending(d []float32) {
	u := asUint32sFloat(d)
	SortSequential(u, policyFor[uint32](Float), false, 16)
}

// Float64sAscending sorts a []float64 in place, ascending.
func Float64sAscending(d []float64) {
	u := asUint64sFloat(d)
	SortSequential(u, policyFor[uint64](Float), true, 16)
}

// Float64sDescending sorts a []float64 in place, descending.
func Float64sDescending(d []float64) {
	u := asUint64sFloat(d)
	SortSequential(u, policyFor[uint64](Float), false, 16)
}

// --- 128-bit element (K=8 key + 8-byte payload, spec §3's resolved
// "K=16" case) ---

// scalarPartition128For binds scalarPartition's isZero closure to a given
// bit over Uint128 elements, producing the Partitioner[Uint128] the
// recursion driver needs.
func scalarPartition128For() Partitioner[Uint128] {
	return func(d []Uint128, bitNo, left, right int, up bool) int {
		bit := setBit128(bitNo)
		isZero := func(v Uint128) bool { return isZero128(v, bit) }
		return scalarPartition(d, isZero, left, right, up)
	}
}

func less128For(keyBits int) LessFunc[Uint128] {
	return func(a, b Uint128, up bool) bool {
		mask := uint64(1)<<uint(keyBits) - 1
		if keyBits >= 64 {
			mask = ^uint64(0)
		}
		ka, kb := a.Lo&mask, b.Lo&mask
		if up {
			return ka < kb
		}
		return ka > kb
	}
}

// Uint128sAscendingByKey sorts a []Uint128 in place by its Lo (key) half,
// ascending, using the scalar partitioner. keyBits is the width of the
// unsigned key packed into Lo.
func Uint128sAscendingByKey(d []Uint128, keyBits, cmpThresh int) {
	if len(d) == 0 {
		return
	}
	policy := Policy{KeyBits: keyBits, Category: Unsigned}
	Recurse(d, 0, len(d)-1, keyBits-1, 0, true, cmpThresh, scalarPartition128For(), less128For(keyBits), policy)
}

// Uint128sDescendingByKey is Uint128sAscendingByKey sorting descending.
func Uint128sDescendingByKey(d []Uint128, keyBits, cmpThresh int) {
	if len(d) == 0 {
		return
	}
	policy := Policy{KeyBits: keyBits, Category: Unsigned}
	Recurse(d, 0, len(d)-1, keyBits-1, 0, false, cmpThresh, scalarPartition128For(), less128For(keyBits), policy)
}

// Uint128sSimdAscendingByKey is Uint128sAscendingByKey using the
// wide-vector compress-store partitioner (simdPartition128) instead of
// the scalar one, rejecting the call on targets lacking the required
// ISA exactly as SortSimd does.
func Uint128sSimdAscendingByKey(d []Uint128, keyBits, cmpThresh int) error {
	if !simdCapable() {
		return ErrUnsupportedTarget
	}
	if len(d) == 0 {
		return nil
	}
	policy := Policy{KeyBits: keyBits, Category: Unsigned}
	Recurse(d, 0, len(d)-1, keyBits-1, 0, true, cmpThresh, simdPartition128, less128For(keyBits), policy)
	return nil
}

// Uint128sSimdDescendingByKey is Uint128sSimdAscendingByKey sorting
// descending.
func Uint128sSimdDescendingByKey(d []Uint128, keyBits, cmpThresh int) error {
	if !simdCapable() {
		return ErrUnsupportedTarget
	}
	if len(d) == 0 {
		return nil
	}
	policy := Policy{KeyBits: keyBits, Category: Unsigned}
	Recurse(d, 0, len(d)-1, keyBits-1, 0, false, cmpThresh, simdPartition128, less128For(keyBits), policy)
	return nil
}

// Uint64sWithPayload sorts keys by key ascending, carrying each key's
// payload along for the ride, by packing (key,payload) into Uint128 and
// delegating to Uint128sAscendingByKey. This is the payload-bearing path
// spec §3's element/key distinction exists for: keys and payloads never
// need separate moves because the pair already travels as one element.
func Uint64sWithPayload(keys, payloads []uint64) {
	if len(keys) != len(payloads) {
		panic("radix: keys and payloads must have equal length")
	}
	d := make([]Uint128, len(keys))
	for i := range keys {
		d[i] = Uint128{Lo: keys[i], Hi: payloads[i]}
	}
	Uint128sAscendingByKey(d, 64, 16)
	for i := range d {
		keys[i], payloads[i] = d[i].Lo, d[i].Hi
	}
}
