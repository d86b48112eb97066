package qport

import (
	"fmt"
	"math"
	"math/cmplx"
)

// Qubit positions within a basis index, written |QAB⟩: Q is the qubit to
// teleport, A is Alice's half of the entangled pair, B is Bob's half.
const (
	QubitB = 0
	QubitA = 1
	QubitQ = 2

	numQubits = 3
	numStates = 1 << numQubits
)

/*
Register holds the dense 8-amplitude state vector of the three-qubit
composite system, indexed by the 3-bit (Q,A,B) pattern. The sum of squared
magnitudes is 1 at every point before measurement collapse and is restored
by the collapse itself.
*/
type Register struct {
	amps []complex128
}

// newRegister builds the tensor product q ⊗ |0⟩ ⊗ |0⟩: only the two
// amplitudes with A=0, B=0 are populated.
func newRegister(q Qubit) *Register {
	amps := make([]complex128, numStates)
	amps[0b000] = q.Alpha
	amps[0b100] = q.Beta
	return &Register{amps: amps}
}

// Amplitudes returns a copy of the state vector; the register's own storage
// is never handed out.
func (r *Register) Amplitudes() []complex128 {
	out := make([]complex128, len(r.amps))
	copy(out, r.amps)
	return out
}

// Norm returns the total squared magnitude of the state vector.
func (r *Register) Norm() float64 {
	return normSquared(r.amps...)
}

// BasisProbabilities returns the Born-rule probability of each basis state.
func (r *Register) BasisProbabilities() []float64 {
	probs := make([]float64, len(r.amps))
	for i, amp := range r.amps {
		abs := cmplx.Abs(amp)
		probs[i] = abs * abs
	}
	return probs
}

// Marginal returns the probability of measuring the given qubit as 0 and 1,
// accumulated over every basis state.
func (r *Register) Marginal(qubit int) (p0, p1 float64) {
	bit := 1 << qubit
	for i, amp := range r.amps {
		abs := cmplx.Abs(amp)
		if i&bit != 0 {
			p1 += abs * abs
		} else {
			p0 += abs * abs
		}
	}
	return p0, p1
}

/*
settle corrects accumulated floating drift after a linear transform. Drift
within tolerance is ignored, drift up to the ceiling is renormalized, and
drift beyond the ceiling is reported as a NumericDriftError since a unitary
cannot legitimately move the norm that far.
*/
func (r *Register) settle(tolerance, ceiling float64) error {
	norm := r.Norm()
	deviation := math.Abs(norm - 1)
	if deviation <= tolerance {
		return nil
	}
	if deviation > ceiling {
		return &NumericDriftError{Norm: norm}
	}

	scale := complex(1/math.Sqrt(norm), 0)
	for i := range r.amps {
		r.amps[i] *= scale
	}
	return nil
}

/*
jointProbabilities returns the probability of each joint (Q,A) measurement
outcome, summing the squared magnitudes of the two amplitudes (B=0 and B=1)
consistent with each of the four bit patterns. Outcomes are indexed
m1<<1 | m2.
*/
func (r *Register) jointProbabilities() [4]float64 {
	var probs [4]float64
	for i, amp := range r.amps {
		abs := cmplx.Abs(amp)
		probs[i>>1] += abs * abs
	}
	return probs
}

/*
project collapses the register onto the given (Q,A) outcome: amplitudes
inconsistent with it are zeroed and the two survivors are rescaled by 1/√p to
restore unit norm. An outcome with no probability mass cannot be projected
onto and is rejected before any mutation.
*/
func (r *Register) project(o Outcome) error {
	probs := r.jointProbabilities()
	p := probs[o.index()]
	if p <= minOutcomeProbability {
		return fmt.Errorf("%w: outcome (%d,%d) has zero probability", ErrInvalidState, o.M1, o.M2)
	}

	scale := complex(1/math.Sqrt(p), 0)
	for i := range r.amps {
		if i>>1 == o.index() {
			r.amps[i] *= scale
		} else {
			r.amps[i] = 0
		}
	}
	return nil
}

// outcomes below this mass are treated as impossible rather than sampled
// into, keeping 1/√p finite
const minOutcomeProbability = 1e-12
