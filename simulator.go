package qport

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

/*
Simulator is a registry of independent teleportation runs keyed by UUID. Each
run owns its own register and sampler, so runs created here may be driven
concurrently from separate goroutines; the registry's lock guards only its
own map. A caller re-running the demo with new amplitudes creates a new run
rather than resetting an old one.
*/
type Simulator struct {
	mu   sync.RWMutex
	runs map[uuid.UUID]*Teleporter
}

func NewSimulator() *Simulator {
	return &Simulator{
		runs: make(map[uuid.UUID]*Teleporter),
	}
}

// NewRun creates and registers a fresh run for the given amplitudes.
func (s *Simulator) NewRun(alpha, beta complex128, opts ...TeleporterOption) (uuid.UUID, *Teleporter, error) {
	t, err := NewTeleporter(alpha, beta, opts...)
	if err != nil {
		return uuid.Nil, nil, fmt.Errorf("failed to create run: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.New()
	s.runs[id] = t
	return id, t, nil
}

// Run looks up a registered run by its ID.
func (s *Simulator) Run(id uuid.UUID) (*Teleporter, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.runs[id]
	return t, ok
}

// Remove discards a run, closing its observer channels.
func (s *Simulator) Remove(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.runs[id]
	if !ok {
		return false
	}

	t.Close()
	delete(s.runs, id)
	return true
}

// ActiveRuns returns the number of registered runs.
func (s *Simulator) ActiveRuns() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.runs)
}

// IDs returns the IDs of all registered runs, in no particular order.
func (s *Simulator) IDs() []uuid.UUID {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]uuid.UUID, 0, len(s.runs))
	for id := range s.runs {
		ids = append(ids, id)
	}
	return ids
}
