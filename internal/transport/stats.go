package transport

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/dm/esdash/internal/api"
)

// historySize is the logical capacity of the transport history. The backing
// slice may grow to twice this before being compacted back down.
const historySize = 100

// Record is one completed transport: the request, its outcome, and timing.
// Records are immutable once pushed.
type Record struct {
	Request     api.Request
	Failure     string // empty on success
	IssuedAt    time.Time
	CompletedAt time.Time
}

// Latency returns the request round-trip time.
func (r Record) Latency() time.Duration {
	return r.CompletedAt.Sub(r.IssuedAt)
}

// Failed reports whether the record's outcome was a backend failure.
func (r Record) Failed() bool {
	return r.Failure != ""
}

// Stats is the aggregate transport state shared between the controller
// (writer) and the render path (reader). The in-flight counter is atomic;
// the history ring is guarded by an internal lock that is never exposed.
type Stats struct {
	inFlight atomic.Int64

	mu      sync.RWMutex
	history []Record // newest first
}

// NewStats returns an empty Stats.
func NewStats() *Stats {
	return &Stats{}
}

// InFlight returns the number of requests sent but not yet answered.
func (s *Stats) InFlight() int64 {
	return s.inFlight.Load()
}

// Latest returns the most recent completed transport record, if any.
func (s *Stats) Latest() (Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.history) == 0 {
		return Record{}, false
	}
	return s.history[0], true
}

// History returns a newest-first copy of the history ring.
func (s *Stats) History() []Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Record, len(s.history))
	copy(out, s.history)
	return out
}

func (s *Stats) addInFlight(delta int64) {
	s.inFlight.Add(delta)
}

// push prepends a record, compacting the ring back to historySize once it
// exceeds twice that. Compaction keeps the newest entries.
func (s *Stats) push(rec Record) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.history = append(s.history, Record{})
	copy(s.history[1:], s.history)
	s.history[0] = rec

	if len(s.history) > 2*historySize {
		s.history = s.history[:historySize]
	}
}
