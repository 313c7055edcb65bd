package radix

import "sync"

// QueueMode selects the work deque's pop end (spec §4.8).
type QueueMode int

const (
	FIFO QueueMode = iota
	LIFO
)

// NoMaster marks a Chunk that was self-enqueued by a worker continuing its
// own recursion, as opposed to a slave portion awaiting a master's
// handshake.
const NoMaster = -1

// RadixThreadConfig configures a Coordinator (spec §6, §4.8).
type RadixThreadConfig struct {
	NumThreads int
	QueueMode  QueueMode
	UseSlaves  bool
	SlaveFac   float64
}

// Chunk is one unit of work on the coordinator's global deque.
//
// IsHead marks the very first chunk seeded for a given top-level sort
// call: only it resolves the sign/float Policy's upHigh/upLeft/upRight
// split (spec §4.2); every chunk it or any slave spawns inherits a fixed
// Up direction and is never a head. Slave chunks are always non-head,
// since by construction they are a sub-portion of an already-policy-
// resolved master range.
type Chunk struct {
	Left, Right int
	BitNo       int
	Up          bool
	IsHead      bool

	MasterIdx int
	SlaveIdx  int
}

// slaveHandshake holds one master's in-flight slave results, guarded by
// its own mutex+condvar so masters awaiting their own slaves never
// contend with the global work-deque lock (spec §4.8, §5).
type slaveHandshake struct {
	mu      sync.Mutex
	cond    *sync.Cond
	ready   int
	total   int
	regions []Region // indexed by slaveIdx, so completion order never reorders them
}

func newSlaveHandshake() *slaveHandshake {
	h := &slaveHandshake{}
	h.cond = sync.NewCond(&h.mu)
	return h
}

// Coordinator runs the master/slave work-stealing sort described in
// spec §4.8: a pool of worker goroutines drains a shared deque of
// Chunks, partitioning bit by bit and re-enqueuing the half it doesn't
// keep for itself, occasionally splitting a chunk too large to finish
// alone into slave portions handled by other idle workers.
//
// Ground truth: original_source/SIMDRadixSortGenericThreads.H's
// RadixThreadSorter, translated from its pthread mutex+condvar pair
// into sync.Mutex/sync.Cond.
type Coordinator[T any] struct {
	cfg RadixThreadConfig

	mu       sync.Mutex
	cond     *sync.Cond
	deque    []Chunk
	sleeping int
	done     bool

	masters []*slaveHandshake

	d                []T
	bitLow           int
	cmpThresh        int
	chunkThresh      int
	chunkSlaveThresh int
	partition        Partitioner[T]
	less             LessFunc[T]
	policy           Policy

	stats *Stats
}

// NewCoordinator validates cfg and builds a Coordinator ready to run
// over d; it returns ErrInvalidConfig rather than panicking on a bad
// configuration, matching the error-returning half of spec §7's
// contract. chunkThresh and chunkSlaveThresh are derived exactly as
// spec §4.8 prescribes: chunkThresh = totalElems/numThreads,
// chunkSlaveThresh = slaveFac*chunkThresh.
func NewCoordinator[T any](cfg RadixThreadConfig, d []T, bitHigh, bitLow int,
	up bool, cmpThresh int, partition Partitioner[T], less LessFunc[T], policy Policy) (*Coordinator[T], error) {

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	chunkThresh := len(d) / cfg.NumThreads
	if chunkThresh < 1 {
		chunkThresh = 1
	}
	// Every insertion-sort fallback orders by the caller's direction up,
	// not by the partition direction of the chunk it runs on: for floats
	// the negative half is partitioned opposite to the order its values
	// end in.
	callerLess := func(a, b T, _ bool) bool { return less(a, b, up) }
	c := &Coordinator[T]{
		cfg:              cfg,
		d:                d,
		bitLow:           bitLow,
		cmpThresh:        cmpThresh,
		chunkThresh:      chunkThresh,
		chunkSlaveThresh: int(cfg.SlaveFac * float64(chunkThresh)),
		partition:        partition,
		less:             callerLess,
		policy:           policy,
		stats:            newStats(cfg.NumThreads),
		masters:          make([]*slaveHandshake, cfg.NumThreads),
	}
	c.cond = sync.NewCond(&c.mu)
	for i := range c.masters {
		c.masters[i] = newSlaveHandshake()
	}
	if len(d) > 0 {
		c.push(Chunk{Left: 0, Right: len(d) - 1, BitNo: bitHigh, Up: up, IsHead: true, MasterIdx: NoMaster, SlaveIdx: NoMaster})
	}
	return c, nil
}

// MustNewCoordinator is NewCoordinator for call sites that want spec §7's
// literal fatal-on-bad-config contract instead of an error return.
func MustNewCoordinator[T any](cfg RadixThreadConfig, d []T, bitHigh, bitLow int,
	up bool, cmpThresh int, partition Partitioner[T], less LessFunc[T], policy Policy) *Coordinator[T] {

	c, err := NewCoordinator(cfg, d, bitHigh, bitLow, up, cmpThresh, partition, less, policy)
	if err != nil {
		fatal(err)
	}
	return c
}

// Run starts NumThreads workers, blocks until the deque empties and
// every worker has gone to sleep, and returns the collected Stats.
func (c *Coordinator[T]) Run() *Stats {
	var wg sync.WaitGroup
	wg.Add(c.cfg.NumThreads)
	for i := 0; i < c.cfg.NumThreads; i++ {
		go func(idx int) {
			defer wg.Done()
			c.worker(idx)
		}(i)
	}
	wg.Wait()
	return c.stats
}

func (c *Coordinator[T]) push(ch Chunk) {
	c.deque = append(c.deque, ch)
	c.stats.noteQueueLen(len(c.deque))
	c.cond.Signal()
}

func (c *Coordinator[T]) pop() (Chunk, bool) {
	if len(c.deque) == 0 {
		return Chunk{}, false
	}
	var ch Chunk
	switch c.cfg.QueueMode {
	case LIFO:
		ch = c.deque[len(c.deque)-1]
		c.deque = c.deque[:len(c.deque)-1]
	default:
		ch = c.deque[0]
		c.deque = c.deque[1:]
	}
	return ch, true
}

// worker is one goroutine's run of the loop in spec §4.8 step 1-2: sleep
// while the deque is empty, self-terminate once every worker is asleep
// simultaneously (the sleeping-count protocol that detects global
// completion without a separate done-channel), otherwise pop and
// dispatch by whether the chunk carries a master.
func (c *Coordinator[T]) worker(idx int) {
	for {
		c.mu.Lock()
		for len(c.deque) == 0 && !c.done {
			c.sleeping++
			if c.sleeping >= c.cfg.NumThreads {
				c.done = true
				c.cond.Broadcast()
				c.mu.Unlock()
				return
			}
			c.cond.Wait()
			c.sleeping--
		}
		if c.done {
			c.mu.Unlock()
			return
		}
		ch, ok := c.pop()
		c.mu.Unlock()
		if !ok {
			continue
		}

		if ch.MasterIdx != NoMaster {
			c.runSlaveChunk(idx, ch)
			continue
		}
		c.runMasterChunk(idx, ch)
	}
}

// runSlaveChunk partitions exactly the slave's assigned sub-range and
// reports the resulting Region back to its master's handshake (spec
// §4.8 step 3).
func (c *Coordinator[T]) runSlaveChunk(idx int, ch Chunk) {
	split := c.partition(c.d, ch.BitNo, ch.Left, ch.Right, ch.Up)
	c.stats.recordChunk(idx, ch.Right+1-ch.Left)

	h := c.masters[ch.MasterIdx]
	h.mu.Lock()
	h.regions[ch.SlaveIdx] = Region{Left: ch.Left, Split: split, Right: ch.Right}
	h.ready++
	if h.ready == h.total {
		h.cond.Broadcast()
	}
	h.mu.Unlock()
}

// runMasterChunk runs the inner loop of spec §4.8 step 4: below
// chunkThresh, hand off to the sequential recursion driver and stop
// (Recurse for a head chunk, so the sign/float split still happens once;
// recurseTail for anything below the head, since its current bit is
// never the sign bit); above chunkSlaveThresh with slaves enabled,
// delegate most of the range to other workers and stitch; otherwise
// partition the whole range itself. Either way it then decrements
// bitNo, enqueues the right half, and continues locally on the left
// half to reduce queue churn.
func (c *Coordinator[T]) runMasterChunk(idx int, ch Chunk) {
	left, right, bitNo, up := ch.Left, ch.Right, ch.BitNo, ch.Up
	isHead := ch.IsHead

	for {
		elems := right + 1 - left
		if elems <= 0 {
			return
		}

		if elems <= c.chunkThresh {
			if isHead {
				// Recurse applies policy.UpHigh itself on its first
				// partition, so it takes the untransformed direction.
				Recurse(c.d[left:right+1], 0, elems-1, bitNo, c.bitLow, up, c.cmpThresh, c.partition, c.less, c.policy)
			} else {
				// bitNo here is not the sign bit, so no UpHigh/UpLeft/
				// UpRight split applies: direction stays constant.
				recurseTail(c.d[left:right+1], 0, elems-1, bitNo, c.bitLow, up, c.cmpThresh, c.partition, c.less)
			}
			c.stats.recordChunk(idx, elems)
			return
		}

		headUp := up
		if isHead {
			headUp = c.policy.UpHigh(up)
		}

		var split int
		if c.cfg.UseSlaves && elems > c.chunkSlaveThresh {
			split = c.runWithSlaves(idx, left, right, bitNo, headUp)
		} else {
			split = c.partition(c.d, bitNo, left, right, headUp)
		}
		c.stats.recordChunk(idx, elems)

		bitNo--
		if bitNo < c.bitLow {
			return
		}

		var leftUp, rightUp bool
		if isHead {
			leftUp = c.policy.UpLeft(up)
			rightUp = c.policy.UpRight(up)
		} else {
			leftUp, rightUp = up, up
		}

		c.mu.Lock()
		c.push(Chunk{Left: split, Right: right, BitNo: bitNo, Up: rightUp, IsHead: false, MasterIdx: NoMaster, SlaveIdx: NoMaster})
		c.mu.Unlock()

		right, up = split-1, leftUp
		isHead = false
	}
}

// runWithSlaves splits [left,right] into portions = elems/chunkThresh+1
// equal pieces, the first absorbing the remainder, enqueues all but the
// first as slave chunks under idx's handshake, partitions the first
// portion itself, waits for every slave to report, and stitches the
// resulting Regions into one global split index (spec §4.7, §4.8).
func (c *Coordinator[T]) runWithSlaves(idx, left, right, bitNo int, up bool) int {
	h := c.masters[idx]
	elems := right + 1 - left
	portions := elems/c.chunkThresh + 1
	if portions < 2 {
		return c.partition(c.d, bitNo, left, right, up)
	}
	size := elems / portions
	firstSize := size + elems%portions

	h.mu.Lock()
	h.ready = 0
	h.total = portions - 1
	h.regions = make([]Region, portions)
	h.mu.Unlock()

	c.mu.Lock()
	for p := 1; p < portions; p++ {
		pl := left + firstSize + (p-1)*size
		pr := pl + size - 1
		if p == portions-1 {
			pr = right
		}
		c.push(Chunk{Left: pl, Right: pr, BitNo: bitNo, Up: up, IsHead: false, MasterIdx: idx, SlaveIdx: p})
	}
	c.mu.Unlock()

	firstRight := left + firstSize - 1
	mySplit := c.partition(c.d, bitNo, left, firstRight, up)

	h.mu.Lock()
	h.regions[0] = Region{Left: left, Split: mySplit, Right: firstRight}
	for h.ready < h.total {
		h.cond.Wait()
	}
	regions := append([]Region(nil), h.regions...)
	h.mu.Unlock()

	return Stitch(c.d, regions)
}
