package qport

import (
	"math"
	"math/cmplx"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestGateApplication(t *testing.T) {
	Convey("Given a register initialized to |000⟩", t, func() {
		q, err := NewQubit(1, 0)
		So(err, ShouldBeNil)
		reg := newRegister(q)

		Convey("When applying X to qubit B", func() {
			reg.Apply(PauliX, QubitB)

			Convey("Then the amplitude moves to |001⟩", func() {
				So(cmplx.Abs(reg.amps[0b001]-1), ShouldBeLessThan, 1e-12)
				So(cmplx.Abs(reg.amps[0b000]), ShouldBeLessThan, 1e-12)
			})
		})

		Convey("When applying Hadamard to qubit Q", func() {
			reg.Apply(Hadamard, QubitQ)

			Convey("Then |000⟩ and |100⟩ split the amplitude equally", func() {
				want := complex(1/math.Sqrt2, 0)
				So(cmplx.Abs(reg.amps[0b000]-want), ShouldBeLessThan, 1e-12)
				So(cmplx.Abs(reg.amps[0b100]-want), ShouldBeLessThan, 1e-12)
			})

			Convey("Then a second Hadamard undoes the first", func() {
				reg.Apply(Hadamard, QubitQ)
				So(cmplx.Abs(reg.amps[0b000]-1), ShouldBeLessThan, 1e-12)
			})
		})

		Convey("When applying Z to a superposed qubit", func() {
			reg.Apply(Hadamard, QubitB)
			reg.Apply(PauliZ, QubitB)

			Convey("Then only the |1⟩ component flips sign", func() {
				So(real(reg.amps[0b000]), ShouldAlmostEqual, 1/math.Sqrt2, 1e-12)
				So(real(reg.amps[0b001]), ShouldAlmostEqual, -1/math.Sqrt2, 1e-12)
			})
		})
	})
}

func TestCNOT(t *testing.T) {
	Convey("Given a register with the control qubit superposed", t, func() {
		q, err := NewQubit(1, 0)
		So(err, ShouldBeNil)
		reg := newRegister(q)
		reg.Apply(Hadamard, QubitA)

		Convey("When applying CNOT with A as control and B as target", func() {
			reg.ApplyCNOT(QubitA, QubitB)

			Convey("Then the A=1 branch carries a flipped B", func() {
				want := complex(1/math.Sqrt2, 0)
				So(cmplx.Abs(reg.amps[0b000]-want), ShouldBeLessThan, 1e-12)
				So(cmplx.Abs(reg.amps[0b011]-want), ShouldBeLessThan, 1e-12)
				So(cmplx.Abs(reg.amps[0b010]), ShouldBeLessThan, 1e-12)
			})
		})
	})
}

func TestGatesPreserveNorm(t *testing.T) {
	Convey("Given a register in a generic state", t, func() {
		q, err := NewQubit(complex(0.6, 0.48), complex(0, 0.64))
		So(err, ShouldBeNil)
		reg := newRegister(q)
		reg.Apply(Hadamard, QubitA)
		reg.ApplyCNOT(QubitA, QubitB)

		Convey("When applying each gate in turn", func() {
			for _, g := range []Gate{Identity, PauliX, PauliZ, Hadamard} {
				reg.Apply(g, QubitQ)

				Convey("Then the norm stays at 1 for "+gateName(g), func() {
					So(reg.Norm(), ShouldAlmostEqual, 1, 1e-9)
				})
			}
		})
	})
}

func gateName(g Gate) string {
	switch g {
	case Identity:
		return "identity"
	case PauliX:
		return "X"
	case PauliZ:
		return "Z"
	case Hadamard:
		return "Hadamard"
	}
	return "unknown"
}
