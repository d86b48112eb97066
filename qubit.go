package qport

import (
	"fmt"
	"math"
	"math/cmplx"
)

type Qubit struct {
	Alpha complex128 // |0⟩ amplitude
	Beta  complex128 // |1⟩ amplitude
}

/*
NewQubit builds a single-qubit state from the two supplied amplitudes.

User-entered amplitudes commonly carry rounding error, so an out-of-norm pair
is renormalized defensively (divided by its norm) rather than rejected. This
is a deliberate policy, not a hidden correction. The one input that cannot be
salvaged is the zero vector, which describes no qubit at all and is rejected
with ErrInvalidState.
*/
func NewQubit(alpha, beta complex128) (Qubit, error) {
	norm := math.Sqrt(normSquared(alpha, beta))
	if norm == 0 {
		return Qubit{}, fmt.Errorf("%w: both amplitudes are zero", ErrInvalidState)
	}

	q := Qubit{Alpha: alpha, Beta: beta}
	if math.Abs(norm-1) > defaultTolerance {
		q.Alpha /= complex(norm, 0)
		q.Beta /= complex(norm, 0)
	}
	return q, nil
}

// Probabilities returns the Born-rule probabilities of measuring |0⟩ and |1⟩.
func (q Qubit) Probabilities() (p0, p1 float64) {
	p0 = cmplx.Abs(q.Alpha) * cmplx.Abs(q.Alpha)
	p1 = cmplx.Abs(q.Beta) * cmplx.Abs(q.Beta)
	return p0, p1
}

/*
Fidelity returns |⟨q|other⟩|², the squared overlap between two qubit states.
It is 1 exactly when the states are equal up to a global phase, which makes it
the right equality test for teleportation: the protocol recovers the original
state only up to an unobservable unit-magnitude scalar.
*/
func (q Qubit) Fidelity(other Qubit) float64 {
	overlap := cmplx.Conj(q.Alpha)*other.Alpha + cmplx.Conj(q.Beta)*other.Beta
	return cmplx.Abs(overlap) * cmplx.Abs(overlap)
}

func normSquared(amps ...complex128) float64 {
	var sum float64
	for _, a := range amps {
		abs := cmplx.Abs(a)
		sum += abs * abs
	}
	return sum
}
