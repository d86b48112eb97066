package qport

import (
	"errors"
	"math/cmplx"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestNewRegister(t *testing.T) {
	Convey("Given a qubit to teleport", t, func() {
		q, err := NewQubit(complex(0.6, 0), complex(0, 0.8))
		So(err, ShouldBeNil)

		Convey("When building the composite register", func() {
			reg := newRegister(q)

			Convey("Then only the A=0,B=0 amplitudes are populated", func() {
				So(reg.amps[0b000], ShouldEqual, q.Alpha)
				So(reg.amps[0b100], ShouldEqual, q.Beta)
				for _, i := range []int{0b001, 0b010, 0b011, 0b101, 0b110, 0b111} {
					So(cmplx.Abs(reg.amps[i]), ShouldEqual, 0)
				}
			})

			Convey("Then the register is unit norm", func() {
				So(reg.Norm(), ShouldAlmostEqual, 1, 1e-12)
			})

			Convey("Then Amplitudes hands out a detached copy", func() {
				amps := reg.Amplitudes()
				amps[0] = 0
				So(reg.amps[0], ShouldEqual, q.Alpha)
			})
		})
	})
}

func TestMarginals(t *testing.T) {
	Convey("Given a register holding ψ ⊗ |00⟩", t, func() {
		q, err := NewQubit(complex(0.6, 0), complex(0.8, 0))
		So(err, ShouldBeNil)
		reg := newRegister(q)

		Convey("When reading per-qubit marginals", func() {
			p0, p1 := reg.Marginal(QubitQ)

			Convey("Then Q carries the Born probabilities of ψ", func() {
				So(p0, ShouldAlmostEqual, 0.36, 1e-12)
				So(p1, ShouldAlmostEqual, 0.64, 1e-12)
			})

			Convey("Then A and B are still firmly |0⟩", func() {
				a0, a1 := reg.Marginal(QubitA)
				b0, b1 := reg.Marginal(QubitB)
				So(a0, ShouldAlmostEqual, 1, 1e-12)
				So(a1, ShouldAlmostEqual, 0, 1e-12)
				So(b0, ShouldAlmostEqual, 1, 1e-12)
				So(b1, ShouldAlmostEqual, 0, 1e-12)
			})
		})

		Convey("When reading basis probabilities", func() {
			probs := reg.BasisProbabilities()

			Convey("Then they sum to 1 and sit on the two populated indices", func() {
				var total float64
				for _, p := range probs {
					total += p
				}
				So(total, ShouldAlmostEqual, 1, 1e-12)
				So(probs[0b000], ShouldAlmostEqual, 0.36, 1e-12)
				So(probs[0b100], ShouldAlmostEqual, 0.64, 1e-12)
			})
		})
	})
}

func TestSettle(t *testing.T) {
	Convey("Given a register whose norm has drifted", t, func() {
		q, err := NewQubit(1, 0)
		So(err, ShouldBeNil)

		Convey("When the drift is within tolerance", func() {
			reg := newRegister(q)
			reg.amps[0b000] = complex(1+1e-9, 0)

			Convey("Then settle leaves it alone", func() {
				So(reg.settle(1e-6, 1e-3), ShouldBeNil)
				So(real(reg.amps[0b000]), ShouldAlmostEqual, 1+1e-9, 1e-15)
			})
		})

		Convey("When the drift is between tolerance and ceiling", func() {
			reg := newRegister(q)
			reg.amps[0b000] = complex(1+1e-5, 0)

			Convey("Then settle renormalizes silently", func() {
				So(reg.settle(1e-6, 1e-3), ShouldBeNil)
				So(reg.Norm(), ShouldAlmostEqual, 1, 1e-12)
			})
		})

		Convey("When the drift is past the hard ceiling", func() {
			reg := newRegister(q)
			reg.amps[0b000] = complex(1.1, 0)

			Convey("Then settle reports a NumericDriftError", func() {
				err := reg.settle(1e-6, 1e-3)
				So(err, ShouldNotBeNil)

				var drift *NumericDriftError
				So(errors.As(err, &drift), ShouldBeTrue)
				So(drift.Norm, ShouldAlmostEqual, 1.21, 1e-9)
			})
		})
	})
}
