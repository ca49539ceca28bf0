package repository

import "sync/atomic"

// Sequence is a process-wide monotonic id source shared by all entity kinds.
type Sequence struct {
	last atomic.Int64
}

// NewSequence creates a sequence whose first id is start+1.
func NewSequence(start int64) *Sequence {
	s := &Sequence{}
	s.last.Store(start)
	return s
}

// NextID returns the next identifier
func (s *Sequence) NextID() int64 {
	return s.last.Add(1)
}
