package qport

import "sync"

/*
SnapshotFilter decides whether a subscriber receives a given snapshot.

Parameters:
  - *Snapshot: the snapshot about to be delivered

Returns:
  - bool: true to deliver, false to skip this subscriber
*/
type SnapshotFilter func(*Snapshot) bool

// StageIs filters a subscription down to snapshots taken at one stage.
func StageIs(stage Stage) SnapshotFilter {
	return func(s *Snapshot) bool {
		return s.Stage == stage
	}
}

/*
Broadcast fans each step's snapshot out to subscribers, the push half of the
display contract: a UI that would otherwise poll after every button press
instead receives each snapshot on a channel. Delivery is non-blocking; a
subscriber that stops draining loses snapshots rather than stalling the run.
*/
type Broadcast struct {
	mu   sync.RWMutex
	subs []subscriber
}

type subscriber struct {
	ch      chan *Snapshot
	filters []SnapshotFilter
}

func newBroadcast() *Broadcast {
	return &Broadcast{subs: make([]subscriber, 0)}
}

// Subscribe registers a new observer. All supplied filters must pass for a
// snapshot to be delivered; no filters means every snapshot.
func (b *Broadcast) Subscribe(filters ...SnapshotFilter) <-chan *Snapshot {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan *Snapshot, 8)
	b.subs = append(b.subs, subscriber{ch: ch, filters: filters})
	return ch
}

func (b *Broadcast) send(snap *Snapshot) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, sub := range b.subs {
		if !sub.accepts(snap) {
			continue
		}
		select {
		case sub.ch <- snap:
		default:
		}
	}
}

// Close closes every subscriber channel; used when a run's owner discards it.
func (b *Broadcast) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, sub := range b.subs {
		close(sub.ch)
	}
	b.subs = nil
}

func (s subscriber) accepts(snap *Snapshot) bool {
	for _, filter := range s.filters {
		if !filter(snap) {
			return false
		}
	}
	return true
}
