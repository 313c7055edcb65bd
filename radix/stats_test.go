package radix

import "testing"

func TestStatsRecordChunk(t *testing.T) {
	s := newStats(2)
	s.recordChunk(0, 100)
	s.recordChunk(0, 50)
	s.recordChunk(1, 7)

	if s.ElementsByThread[0] != 150 || s.ChunksByThread[0] != 2 {
		t.Fatalf("thread 0 stats wrong: %+v", s)
	}
	if s.ElementsByThread[1] != 7 || s.ChunksByThread[1] != 1 {
		t.Fatalf("thread 1 stats wrong: %+v", s)
	}
}

func TestStatsNoteQueueLenTracksHighWaterMark(t *testing.T) {
	s := newStats(1)
	s.noteQueueLen(3)
	s.noteQueueLen(1)
	s.noteQueueLen(8)
	s.noteQueueLen(2)
	if s.MaxQueueLen != 8 {
		t.Fatalf("MaxQueueLen = %d, want 8", s.MaxQueueLen)
	}
}

func TestStatsNilReceiverIsNoOp(t *testing.T) {
	var s *Stats
	s.recordChunk(0, 10)
	s.noteQueueLen(5)
}
