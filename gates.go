package qport

import "math"

// Gate is a 2×2 unitary acting on a single qubit. Multi-qubit application
// happens structurally over the composite vector's indices, so the 8×8
// tensor expansion is never materialized.
type Gate [2][2]complex128

var (
	// Identity = [1 0]
	//            [0 1]
	Identity = Gate{
		{1, 0},
		{0, 1},
	}

	// PauliX = [0 1]
	//          [1 0]
	PauliX = Gate{
		{0, 1},
		{1, 0},
	}

	// PauliZ = [1  0]
	//          [0 -1]
	PauliZ = Gate{
		{1, 0},
		{0, -1},
	}

	// Hadamard = 1/√2 * [1  1]
	//                   [1 -1]
	Hadamard = Gate{
		{complex(1/math.Sqrt2, 0), complex(1/math.Sqrt2, 0)},
		{complex(1/math.Sqrt2, 0), complex(-1/math.Sqrt2, 0)},
	}
)

/*
Apply transforms the register by the gate on the target qubit, pairing each
basis index where the target bit is 0 with its partner where the bit is 1 and
mixing the two amplitudes through the gate matrix.
*/
func (r *Register) Apply(g Gate, target int) {
	bit := 1 << target
	for i := range r.amps {
		if i&bit != 0 {
			continue
		}
		j := i | bit
		a0, a1 := r.amps[i], r.amps[j]
		r.amps[i] = g[0][0]*a0 + g[0][1]*a1
		r.amps[j] = g[1][0]*a0 + g[1][1]*a1
	}
}

// ApplyCNOT flips the target bit wherever the control bit is set, which on
// the amplitude vector is a swap of the two target-partner amplitudes.
func (r *Register) ApplyCNOT(control, target int) {
	cBit := 1 << control
	tBit := 1 << target
	for i := range r.amps {
		if i&cBit != 0 && i&tBit == 0 {
			j := i | tBit
			r.amps[i], r.amps[j] = r.amps[j], r.amps[i]
		}
	}
}
