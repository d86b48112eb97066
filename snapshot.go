package qport

import (
	"fmt"
	"time"
)

// Stage identifies where a run is in the fixed teleportation circuit.
type Stage int

const (
	StageInitialized Stage = iota
	StageEntangled
	StageAliceApplied
	StageMeasured
	StageCorrected
)

func (s Stage) String() string {
	switch s {
	case StageInitialized:
		return "INITIALIZED"
	case StageEntangled:
		return "ENTANGLED"
	case StageAliceApplied:
		return "ALICE_APPLIED"
	case StageMeasured:
		return "MEASURED"
	case StageCorrected:
		return "CORRECTED"
	}
	return fmt.Sprintf("Stage(%d)", int(s))
}

// BasisState is one row of the display contract: a basis index with its
// ket label, amplitude and Born probability.
type BasisState struct {
	Index       int
	Label       string
	Amplitude   complex128
	Probability float64
}

// Marginal is the reduced probability table of a single qubit.
type Marginal struct {
	Qubit string
	P0    float64
	P1    float64
}

/*
Snapshot is what the engine hands back after every protocol step: a copy of
the full amplitude vector, the per-basis probability series a caller would
chart, per-qubit marginals, the current norm, and the classical bits once
they exist. Snapshots are detached from the live register and safe to hold.
*/
type Snapshot struct {
	Stage      Stage
	Amplitudes []complex128
	Basis      []BasisState
	Marginals  []Marginal
	Norm       float64
	Outcome    *Outcome
	TakenAt    time.Time
}

func newSnapshot(stage Stage, r *Register, outcome *Outcome) *Snapshot {
	amps := r.Amplitudes()
	probs := r.BasisProbabilities()

	basis := make([]BasisState, len(amps))
	for i := range amps {
		basis[i] = BasisState{
			Index:       i,
			Label:       fmt.Sprintf("|%03b⟩", i),
			Amplitude:   amps[i],
			Probability: probs[i],
		}
	}

	marginals := make([]Marginal, 0, numQubits)
	for _, q := range []struct {
		name string
		bit  int
	}{
		{"Q", QubitQ},
		{"A", QubitA},
		{"B", QubitB},
	} {
		p0, p1 := r.Marginal(q.bit)
		marginals = append(marginals, Marginal{Qubit: q.name, P0: p0, P1: p1})
	}

	var o *Outcome
	if outcome != nil {
		copied := *outcome
		o = &copied
	}

	return &Snapshot{
		Stage:      stage,
		Amplitudes: amps,
		Basis:      basis,
		Marginals:  marginals,
		Norm:       r.Norm(),
		Outcome:    o,
		TakenAt:    time.Now(),
	}
}
