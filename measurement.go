package qport

import (
	"fmt"
	"math/rand"
	"time"
)

// Bit is a classical bit produced by measurement.
type Bit int

// Outcome carries the two classical bits of Alice's joint measurement:
// M1 from qubit Q, M2 from qubit A.
type Outcome struct {
	M1 Bit
	M2 Bit
}

// Outcomes lists the four joint (Q,A) measurement outcomes in index order.
var Outcomes = [4]Outcome{
	{M1: 0, M2: 0},
	{M1: 0, M2: 1},
	{M1: 1, M2: 0},
	{M1: 1, M2: 1},
}

func (o Outcome) String() string {
	return fmt.Sprintf("(%d,%d)", o.M1, o.M2)
}

// index maps the outcome onto the jointProbabilities table, M1 as the high
// bit. It matches the basis-index layout: (i>>1) of a basis state is the
// outcome index its amplitude contributes to.
func (o Outcome) index() int {
	return int(o.M1)<<1 | int(o.M2)
}

/*
Sampler is the source of randomness behind Measure, the only nondeterministic
operation in the protocol. It is an interface so tests can substitute a
deterministic source; *math/rand.Rand satisfies it directly.
*/
type Sampler interface {
	Float64() float64
}

func newSeededSampler(seed int64) Sampler {
	return rand.New(rand.NewSource(seed))
}

func newDefaultSampler() Sampler {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

/*
sampleOutcome draws one joint (Q,A) outcome from the register's probability
table. The table is renormalized before sampling so that accumulated floating
error can never fail the draw, then walked cumulatively against a single
uniform variate. The final outcome is the fallback should rounding leave the
cumulative sum fractionally short of 1.
*/
func (r *Register) sampleOutcome(s Sampler) Outcome {
	probs := r.jointProbabilities()

	var total float64
	for _, p := range probs {
		total += p
	}
	if total > 0 {
		for i := range probs {
			probs[i] /= total
		}
	}

	u := s.Float64()
	var cumulative float64
	last := 0
	for i, p := range probs {
		if p <= minOutcomeProbability {
			continue
		}
		cumulative += p
		last = i
		if u <= cumulative {
			return Outcomes[i]
		}
	}
	return Outcomes[last]
}
