package qport

import (
	"math"
	"sync"
)

/*
Stats aggregates the results of an ensemble: how often each classical
outcome occurred, how faithful the recovered states were, and how many runs
failed outright. All counters are guarded, since ensemble workers record
concurrently.
*/
type Stats struct {
	mu sync.RWMutex

	Runs     int64
	Faithful int64
	Failures int64

	outcomeCounts [4]int64

	fidelitySum float64
	fidelityMin float64
	fidelityMax float64
}

func newStats() *Stats {
	return &Stats{fidelityMin: math.Inf(1), fidelityMax: math.Inf(-1)}
}

func (s *Stats) record(res *Result, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Runs++
	if err != nil {
		s.Failures++
		return
	}

	s.outcomeCounts[res.Outcome.index()]++
	if res.Faithful {
		s.Faithful++
	}
	s.fidelitySum += res.Fidelity
	s.fidelityMin = math.Min(s.fidelityMin, res.Fidelity)
	s.fidelityMax = math.Max(s.fidelityMax, res.Fidelity)
}

// OutcomeFrequency returns the observed relative frequency of one classical
// outcome over the successful runs.
func (s *Stats) OutcomeFrequency(o Outcome) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	succeeded := s.Runs - s.Failures
	if succeeded == 0 {
		return 0
	}
	return float64(s.outcomeCounts[o.index()]) / float64(succeeded)
}

// MeanFidelity returns the average fidelity over the successful runs.
func (s *Stats) MeanFidelity() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	succeeded := s.Runs - s.Failures
	if succeeded == 0 {
		return 0
	}
	return s.fidelitySum / float64(succeeded)
}

// MinFidelity returns the lowest fidelity any successful run produced.
func (s *Stats) MinFidelity() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fidelityMin
}

// Export returns the aggregates as a flat map for display or logging.
func (s *Stats) Export() map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	succeeded := s.Runs - s.Failures
	mean := 0.0
	if succeeded > 0 {
		mean = s.fidelitySum / float64(succeeded)
	}

	return map[string]any{
		"runs":          s.Runs,
		"faithful":      s.Faithful,
		"failures":      s.Failures,
		"mean_fidelity": mean,
		"min_fidelity":  s.fidelityMin,
		"max_fidelity":  s.fidelityMax,
		"outcome_00":    s.outcomeCounts[0],
		"outcome_01":    s.outcomeCounts[1],
		"outcome_10":    s.outcomeCounts[2],
		"outcome_11":    s.outcomeCounts[3],
	}
}
