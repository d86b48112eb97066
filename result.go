package qport

import "time"

/*
Result is the completed run's report card: the state that went in, the state
Bob ended up holding, the classical bits that crossed the wire, and how
closely the two states agree. Fidelity is global-phase-invariant, so a
Faithful result means the protocol worked even when the raw amplitudes differ
by a unit scalar.
*/
type Result struct {
	Original  Qubit
	Recovered Qubit
	Outcome   Outcome

	// Fidelity is |⟨original|recovered⟩|²; Delta is its distance from 1.
	Fidelity float64
	Delta    float64
	Faithful bool

	StartedAt   time.Time
	CompletedAt time.Time
}
