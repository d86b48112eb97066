package qport

import (
	"fmt"
	"time"

	"github.com/theapemachine/errnie"
)

/*
Teleporter runs one teleportation of a single qubit state from Alice to Bob
through the fixed three-qubit circuit: entangle the shared pair, apply
Alice's local gates, measure Alice's two qubits, transmit the two classical
bits, correct Bob's qubit. Each step requires the run to be at the specific
predecessor stage; out-of-order calls return a ProtocolSequenceError and
leave the state untouched.

A Teleporter owns exactly one mutable register and is not safe for concurrent
mutation. Independent runs in separate instances share nothing.
*/
type Teleporter struct {
	original  Qubit
	register  *Register
	stage     Stage
	outcome   *Outcome
	config    *Config
	sampler   Sampler
	history   *History
	broadcast *Broadcast
	startedAt time.Time
}

/*
NewTeleporter constructs a run from the caller-supplied amplitudes. The pair
is defensively renormalized when it is off unit norm (see NewQubit); the
degenerate (0,0) input is rejected with ErrInvalidState before any state is
built. The resulting register is the tensor product (α,β) ⊗ |0⟩ ⊗ |0⟩.
*/
func NewTeleporter(alpha, beta complex128, opts ...TeleporterOption) (*Teleporter, error) {
	q, err := NewQubit(alpha, beta)
	if err != nil {
		return nil, err
	}

	t := &Teleporter{
		original:  q,
		register:  newRegister(q),
		stage:     StageInitialized,
		config:    NewConfig(),
		history:   newHistory(),
		broadcast: newBroadcast(),
		startedAt: time.Now(),
	}

	for _, opt := range opts {
		opt(t)
	}
	if t.sampler == nil {
		t.sampler = newDefaultSampler()
	}

	errnie.Info(
		"NewTeleporter - |ψ⟩ = %v|0⟩ + %v|1⟩",
		t.original.Alpha,
		t.original.Beta,
	)

	t.record("initialized", nil)
	return t, nil
}

// Stage returns the run's current position in the protocol.
func (t *Teleporter) Stage() Stage {
	return t.stage
}

// Original returns the qubit state the run set out to teleport, after the
// constructor's defensive normalization.
func (t *Teleporter) Original() Qubit {
	return t.original
}

// Snapshot returns the current state without advancing the protocol.
func (t *Teleporter) Snapshot() *Snapshot {
	return newSnapshot(t.stage, t.register, t.outcome)
}

// History returns the ordered ledger of completed steps.
func (t *Teleporter) History() []StepRecord {
	return t.history.Records()
}

// Observe subscribes to the snapshots emitted after every completed step.
// Filters narrow the subscription to particular stages.
func (t *Teleporter) Observe(filters ...SnapshotFilter) <-chan *Snapshot {
	return t.broadcast.Subscribe(filters...)
}

/*
Entangle prepares the shared Bell pair: Hadamard on A followed by CNOT with A
as control and B as target takes (A,B) from |00⟩ to (|00⟩+|11⟩)/√2, tensored
with Q. A pure linear transform with no randomness; the only failure mode is
numeric drift past the hard ceiling.
*/
func (t *Teleporter) Entangle() (*Snapshot, error) {
	if err := t.require("Entangle", StageInitialized); err != nil {
		return nil, err
	}

	t.register.Apply(Hadamard, QubitA)
	t.register.ApplyCNOT(QubitA, QubitB)
	if err := t.register.settle(t.config.Tolerance, t.config.DriftCeiling); err != nil {
		return nil, err
	}

	t.stage = StageEntangled
	return t.record("entangled A and B into a Bell pair", nil), nil
}

/*
AliceOperations applies Alice's local circuit: CNOT with Q as control and A
as target, then Hadamard on Q. After this the four joint (Q,A) outcomes are
equiprobable for every input state.
*/
func (t *Teleporter) AliceOperations() (*Snapshot, error) {
	if err := t.require("AliceOperations", StageEntangled); err != nil {
		return nil, err
	}

	t.register.ApplyCNOT(QubitQ, QubitA)
	t.register.Apply(Hadamard, QubitQ)
	if err := t.register.settle(t.config.Tolerance, t.config.DriftCeiling); err != nil {
		return nil, err
	}

	t.stage = StageAliceApplied
	return t.record("applied Alice's CNOT and Hadamard", nil), nil
}

/*
Measure performs Alice's joint projective measurement of Q and A: the four
outcome probabilities are sampled through the injected Sampler, inconsistent
amplitudes are zeroed, and the two survivors are rescaled to restore unit
norm. The sampled bits are the classical message for Bob's correction.
*/
func (t *Teleporter) Measure() (Outcome, *Snapshot, error) {
	if err := t.require("Measure", StageAliceApplied); err != nil {
		return Outcome{}, nil, err
	}

	outcome := t.register.sampleOutcome(t.sampler)
	if err := t.register.project(outcome); err != nil {
		return Outcome{}, nil, err
	}

	errnie.Info("Measure - Alice observed (m1,m2) = (%d,%d)", outcome.M1, outcome.M2)

	t.outcome = &outcome
	t.stage = StageMeasured
	snap := t.record(
		fmt.Sprintf("measured Q and A as (%d,%d)", outcome.M1, outcome.M2),
		&outcome,
	)
	return outcome, snap, nil
}

/*
MeasureAs collapses onto a caller-chosen outcome instead of sampling,
sharing the projection path with Measure. Forcing an outcome that carries no
probability mass is rejected with ErrInvalidState before any mutation. This
exists for deterministic verification; the interactive flow uses Measure.
*/
func (t *Teleporter) MeasureAs(outcome Outcome) (*Snapshot, error) {
	if err := t.require("MeasureAs", StageAliceApplied); err != nil {
		return nil, err
	}

	if err := t.register.project(outcome); err != nil {
		return nil, err
	}

	t.outcome = &outcome
	t.stage = StageMeasured
	return t.record(
		fmt.Sprintf("forced measurement of Q and A as (%d,%d)", outcome.M1, outcome.M2),
		&outcome,
	), nil
}

/*
BobCorrection consumes the classical message and applies the conditioned
gate to qubit B: identity for (0,0), X for (0,1), Z for (1,0), and X then Z
for (1,1). m1 selects Z, m2 selects X. After this B carries the original
(α,β) exactly, up to a global phase.
*/
func (t *Teleporter) BobCorrection() (*Snapshot, error) {
	if err := t.require("BobCorrection", StageMeasured); err != nil {
		return nil, err
	}

	outcome := *t.outcome
	if outcome.M2 == 1 {
		t.register.Apply(PauliX, QubitB)
	}
	if outcome.M1 == 1 {
		t.register.Apply(PauliZ, QubitB)
	}
	if err := t.register.settle(t.config.Tolerance, t.config.DriftCeiling); err != nil {
		return nil, err
	}

	t.stage = StageCorrected
	return t.record(
		fmt.Sprintf("applied Bob's correction for (%d,%d)", outcome.M1, outcome.M2),
		&outcome,
	), nil
}

/*
BobQubit reads the teleported state off qubit B after correction. The
register is collapsed, so only the block matching the measured (Q,A) bits
carries amplitude; its B=0 and B=1 entries are the recovered pair, already
unit-norm from the measurement rescale.
*/
func (t *Teleporter) BobQubit() (Qubit, error) {
	if err := t.require("BobQubit", StageCorrected); err != nil {
		return Qubit{}, err
	}

	base := int(t.outcome.M1)<<QubitQ | int(t.outcome.M2)<<QubitA
	return Qubit{
		Alpha: t.register.amps[base],
		Beta:  t.register.amps[base|1<<QubitB],
	}, nil
}

// Result assembles the run's outcome: the recovered pair, its fidelity to
// the original input, and whether the two agree within tolerance.
func (t *Teleporter) Result() (*Result, error) {
	recovered, err := t.BobQubit()
	if err != nil {
		return nil, err
	}

	fidelity := t.original.Fidelity(recovered)
	return &Result{
		Original:    t.original,
		Recovered:   recovered,
		Outcome:     *t.outcome,
		Fidelity:    fidelity,
		Delta:       1 - fidelity,
		Faithful:    1-fidelity <= t.config.Tolerance,
		StartedAt:   t.startedAt,
		CompletedAt: time.Now(),
	}, nil
}

// Run drives a freshly initialized run through all four steps and returns
// the final result.
func (t *Teleporter) Run() (*Result, error) {
	if _, err := t.Entangle(); err != nil {
		return nil, err
	}
	if _, err := t.AliceOperations(); err != nil {
		return nil, err
	}
	if _, _, err := t.Measure(); err != nil {
		return nil, err
	}
	if _, err := t.BobCorrection(); err != nil {
		return nil, err
	}
	return t.Result()
}

// Close releases the run's observer channels. The final state stays
// readable through Snapshot, History and Result.
func (t *Teleporter) Close() {
	t.broadcast.Close()
}

func (t *Teleporter) require(op string, required Stage) error {
	if t.stage != required {
		return &ProtocolSequenceError{Op: op, Current: t.stage, Required: required}
	}
	return nil
}

// record captures a snapshot of the step just completed, appends it to the
// history ledger and fans it out to observers.
func (t *Teleporter) record(note string, outcome *Outcome) *Snapshot {
	snap := newSnapshot(t.stage, t.register, outcome)
	t.history.append(t.stage, note, snap)
	t.broadcast.send(snap)
	return snap
}
