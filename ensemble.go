package qport

import (
	"context"
	"math/rand"
	"runtime"
	"sync"

	"github.com/theapemachine/errnie"
)

/*
Ensemble executes a batch of independent teleportation runs and aggregates
their results. Re-running the interactive demo over and over is how one sees
the outcome law and unit fidelity emerge; the ensemble is that loop as a
bounded concurrent batch. Every run gets its own Teleporter and its own
sub-seeded sampler, so a batch with a fixed base seed is fully reproducible
while its runs still execute in parallel.
*/
type Ensemble struct {
	runs     int
	workers  int
	baseSeed int64
	seeded   bool
}

// EnsembleOption is a function type for configuring an Ensemble
type EnsembleOption func(*Ensemble)

// WithWorkers bounds the batch's concurrency
func WithWorkers(n int) EnsembleOption {
	return func(e *Ensemble) {
		if n > 0 {
			e.workers = n
		}
	}
}

// WithBaseSeed makes the batch reproducible: run i samples with seed
// baseSeed+i for both its input state and its measurement
func WithBaseSeed(seed int64) EnsembleOption {
	return func(e *Ensemble) {
		e.baseSeed = seed
		e.seeded = true
	}
}

func NewEnsemble(runs int, opts ...EnsembleOption) *Ensemble {
	e := &Ensemble{
		runs:    runs,
		workers: runtime.NumCPU(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

/*
Run executes the batch and returns the aggregated statistics. Each run draws
a uniformly random normalized input state, teleports it through the full
protocol, and records its result. Cancelling the context stops the batch
early; stats over the runs completed so far are still returned along with
the context's error.
*/
func (e *Ensemble) Run(ctx context.Context) (*Stats, error) {
	if e.runs <= 0 {
		return newStats(), nil
	}

	errnie.Info("Ensemble.Run - %d runs across %d workers", e.runs, e.workers)

	stats := newStats()
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < e.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				stats.record(e.runOne(i))
			}
		}()
	}

	var cause error
feed:
	for i := 0; i < e.runs; i++ {
		select {
		case jobs <- i:
		case <-ctx.Done():
			cause = ctx.Err()
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	return stats, cause
}

func (e *Ensemble) runOne(i int) (*Result, error) {
	seed := e.baseSeed + int64(i)
	if !e.seeded {
		seed = rand.Int63()
	}
	rng := rand.New(rand.NewSource(seed))

	q := randomQubit(rng)
	t, err := NewTeleporter(q.Alpha, q.Beta, WithSampler(rng))
	if err != nil {
		return nil, err
	}
	return t.Run()
}

// randomQubit draws a state uniformly over the single-qubit state space by
// normalizing four independent gaussian components.
func randomQubit(rng *rand.Rand) Qubit {
	for {
		alpha := complex(rng.NormFloat64(), rng.NormFloat64())
		beta := complex(rng.NormFloat64(), rng.NormFloat64())
		q, err := NewQubit(alpha, beta)
		if err == nil {
			return q
		}
	}
}
