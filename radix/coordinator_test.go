package radix

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoordinatorLifoQueueMode(t *testing.T) {
	rng := rand.New(rand.NewSource(55))
	d := make([]uint32, 50_000)
	for i := range d {
		d[i] = rng.Uint32()
	}
	want := append([]uint32(nil), d...)
	sort.Slice(want, func(i, j int) bool { return want[i] < want[j] })

	cfg := RadixThreadConfig{NumThreads: 4, QueueMode: LIFO, UseSlaves: false}
	_, err := SortSequentialThreaded(d, Policy{KeyBits: 32, Category: Unsigned}, true, 16, cfg)
	assert.NoError(t, err)
	assert.Equal(t, want, d)
}

func TestCoordinatorWithoutSlavesStillCompletes(t *testing.T) {
	d := []uint32{9, 4, 1, 8, 3, 7, 2, 6, 5, 0}
	cfg := RadixThreadConfig{NumThreads: 3, QueueMode: FIFO, UseSlaves: false}
	_, err := SortSequentialThreaded(d, Policy{KeyBits: 32, Category: Unsigned}, true, 2, cfg)
	assert.NoError(t, err)
	assert.Equal(t, []uint32{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, d)
}

func TestCoordinatorEmptyInput(t *testing.T) {
	var d []uint32
	cfg := RadixThreadConfig{NumThreads: 2, QueueMode: FIFO}
	stats, err := SortSequentialThreaded(d, Policy{KeyBits: 32, Category: Unsigned}, true, 16, cfg)
	assert.NoError(t, err)
	assert.Equal(t, 0, stats.MaxQueueLen)
}

func TestCoordinatorDescendingDirection(t *testing.T) {
	d := []uint32{1, 5, 3, 9, 2, 8}
	cfg := RadixThreadConfig{NumThreads: 2, QueueMode: FIFO, UseSlaves: true, SlaveFac: 0.1}
	_, err := SortSequentialThreaded(d, Policy{KeyBits: 32, Category: Unsigned}, false, 1, cfg)
	assert.NoError(t, err)
	assert.Equal(t, []uint32{9, 8, 5, 3, 2, 1}, d)
}

// TestCoordinatorSignedSingleThreadHeadChunk exercises the isHead branch of
// runMasterChunk's threshold fallback directly: with one thread the whole
// input is the head chunk and chunkThresh never forces a further descent,
// so any double application of Policy.UpHigh shows up immediately as
// negatives sorting after positives.
func TestCoordinatorSignedSingleThreadHeadChunk(t *testing.T) {
	d := []uint32{
		asU32(-5), asU32(3), asU32(-1),
		asU32(0), asU32(2147483647), asU32(-2147483648),
	}
	cfg := RadixThreadConfig{NumThreads: 1, QueueMode: FIFO}
	_, err := SortSequentialThreaded(d, Policy{KeyBits: 32, Category: Signed}, true, 1, cfg)
	assert.NoError(t, err)
	want := []int32{-2147483648, -5, -1, 0, 3, 2147483647}
	for i, w := range want {
		assert.Equal(t, w, int32(d[i]))
	}
}

// TestCoordinatorSignedMultiThreadNonHeadChunk forces bitNo to descend past
// the sign bit before any sub-range falls under chunkThresh, so the
// threshold fallback runs on a non-head chunk and must use recurseTail
// (constant direction) rather than re-running the sign/float split on an
// ordinary bit.
func TestCoordinatorSignedMultiThreadNonHeadChunk(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	d := make([]uint32, 4000)
	for i := range d {
		d[i] = uint32(int32(rng.Int31() - 1<<30))
	}
	want := append([]uint32(nil), d...)
	sort.Slice(want, func(i, j int) bool { return int32(want[i]) < int32(want[j]) })

	cfg := RadixThreadConfig{NumThreads: 4, QueueMode: FIFO, UseSlaves: true, SlaveFac: 0.5}
	_, err := SortSequentialThreaded(d, Policy{KeyBits: 32, Category: Signed}, true, 16, cfg)
	assert.NoError(t, err)
	assert.Equal(t, want, d)
}
