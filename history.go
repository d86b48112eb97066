package qport

import (
	"sync"
	"time"
)

/*
StepRecord is an immutable record of one completed protocol step. Records
carry a monotonically increasing sequence number so observers that attach
late can replay the run in the exact order it happened.
*/
type StepRecord struct {
	Sequence  uint64
	Stage     Stage
	Note      string
	Snapshot  *Snapshot
	Timestamp time.Time
}

/*
History is the ordered ledger of a run's steps: the run's log as structured
data, append-only and replayable. An interactive caller gets the same record
it would have built by hand from the per-step return values.
*/
type History struct {
	mu      sync.RWMutex
	records []StepRecord
}

func newHistory() *History {
	return &History{records: make([]StepRecord, 0, 8)}
}

func (h *History) append(stage Stage, note string, snap *Snapshot) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.records = append(h.records, StepRecord{
		Sequence:  uint64(len(h.records)),
		Stage:     stage,
		Note:      note,
		Snapshot:  snap,
		Timestamp: time.Now(),
	})
}

// Records returns a copy of the full ledger in order.
func (h *History) Records() []StepRecord {
	h.mu.RLock()
	defer h.mu.RUnlock()

	out := make([]StepRecord, len(h.records))
	copy(out, h.records)
	return out
}

// Since returns all records with a sequence number at or after the given
// one, letting a late observer catch up on what it missed.
func (h *History) Since(sequence uint64) []StepRecord {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if sequence >= uint64(len(h.records)) {
		return []StepRecord{}
	}

	out := make([]StepRecord, len(h.records[sequence:]))
	copy(out, h.records[sequence:])
	return out
}

// Replay invokes fn for every record in order.
func (h *History) Replay(fn func(StepRecord)) {
	for _, record := range h.Records() {
		fn(record)
	}
}
