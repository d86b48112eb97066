package qport

import (
	"errors"
	"fmt"
)

// ErrInvalidState signals a degenerate or unusable qubit state, such as the
// zero vector (0,0) or an attempt to force a measurement outcome that has
// zero probability.
var ErrInvalidState = errors.New("invalid qubit state")

/*
ProtocolSequenceError reports a protocol step invoked out of its required
order. It is a usage error, not a quantum-mechanical one: the engine's state
is left untouched and the caller may retry in the correct order.
*/
type ProtocolSequenceError struct {
	Op       string
	Current  Stage
	Required Stage
}

func (e *ProtocolSequenceError) Error() string {
	return fmt.Sprintf(
		"protocol sequence violation: %s requires stage %s, current stage is %s",
		e.Op, e.Required, e.Current,
	)
}

/*
NumericDriftError reports that the composite state's norm drifted beyond the
hard ceiling. Drift within the soft tolerance is silently renormalized;
crossing the ceiling indicates an implementation defect rather than routine
floating-point noise, so it is surfaced instead of corrected.
*/
type NumericDriftError struct {
	Norm float64
}

func (e *NumericDriftError) Error() string {
	return fmt.Sprintf("state norm drifted to %g, beyond the hard ceiling", e.Norm)
}
