package odex

import (
	"reflect"

	"github.com/kestrel-sim/odex/internal/threadpool"
)

// Extrapolator drives one [ExtrapConfig] scheme's worker-pool
// fan-out/combine across macro-steps. Construct one with
// [NewExtrapolator]; call [Extrapolator.Step] or [Extrapolator.Run] to
// advance it, and [Extrapolator.Close] when done with the parallel
// path so its worker pool's goroutines are released.
//
// An Extrapolator is not safe for concurrent use (see the package
// doc's thread-safety note).
type Extrapolator struct {
	cfg      ExtrapConfig
	parallel bool

	systems []System
	scratch []Scratch
	outputs []State

	// partitionIdx[k] holds the indices into cfg.Steps/cfg.Weights
	// assigned to worker k, in the order [Partition] returned them.
	partitionIdx [][]int
	pool         *threadpool.Pool

	input State
	t, dt float64
}

// NewExtrapolator constructs an Extrapolator for the given scheme and
// system. If parallel is true, the steps are bin-packed via
// [Partition] and a worker is spawned per bin; otherwise a single
// replica evaluates every sub-integration in sequence. Both paths use
// the same weights and steps, so their outputs agree to within a few
// ULPs (the combine step's summation order is fixed regardless of
// path).
func NewExtrapolator(sys System, cfg ExtrapConfig, parallel bool) *Extrapolator {
	e := &Extrapolator{
		cfg:      cfg,
		parallel: parallel,
		outputs:  make([]State, len(cfg.Steps)),
	}

	if !parallel {
		e.systems = []System{sys}
		e.scratch = make([]Scratch, 1)
		return e
	}

	bins := Partition(cfg.Steps)
	e.partitionIdx = partitionIndices(cfg.Steps, bins)
	numWorkers := len(bins)

	e.systems = make([]System, numWorkers)
	e.scratch = make([]Scratch, numWorkers)
	for i := range e.systems {
		e.systems[i] = replicate(sys)
	}

	e.pool = threadpool.New(numWorkers)
	for i := 0; i < numWorkers; i++ {
		worker := i
		e.pool.Emplace(worker, func() { e.evaluateBin(worker) })
	}
	return e
}

// partitionIndices maps each bin's values back to positions in steps.
// Supported schemes never repeat a step count, so a linear scan
// tracking which positions are already claimed is sufficient and
// matches the reference implementation's approach.
func partitionIndices(steps []int, bins [][]int) [][]int {
	used := make([]bool, len(steps))
	out := make([][]int, len(bins))
	for bi, bin := range bins {
		idxs := make([]int, len(bin))
		for j, v := range bin {
			for k, s := range steps {
				if !used[k] && s == v {
					used[k] = true
					idxs[j] = k
					break
				}
			}
		}
		out[bi] = idxs
	}
	return out
}

// Order returns the order of accuracy of the underlying scheme.
func (e *Extrapolator) Order() int { return e.cfg.Order }

// ISBn returns the scheme's normalized imaginary stability boundary.
// It is advisory only; the core does not act on it.
func (e *Extrapolator) ISBn() float32 { return e.cfg.ISBn }

// Step advances y by one macro-step of size dt starting at time t and
// returns the combined result. The combination y = Σ wⱼ·yⱼ is computed
// in the fixed index order 0..m, independent of how the partitioner
// distributed the work across workers, so serial and parallel runs
// are bit-for-bit reproducible.
//
// If y is slice-shaped, Step also checks the combined result against
// y's length and returns [ErrBadSize] on a mismatch.
func (e *Extrapolator) Step(y State, t, dt float64) (State, error) {
	e.input = y
	e.t = t
	e.dt = dt

	if e.parallel {
		e.pool.Process()
	} else {
		e.evaluateSerial()
	}

	combined := e.outputs[0].Scale(e.cfg.Weights[0])
	for j := 1; j < len(e.outputs); j++ {
		combined = combined.Add(e.outputs[j].Scale(e.cfg.Weights[j]))
	}

	if !sameSize(y, combined) {
		return combined, ErrBadSize
	}
	return combined, nil
}

// Run advances y0 by n macro-steps of size dt, calling observe after
// every step with the post-step time and state. observe may be nil.
// It returns the final state, or the first error [Step] reports.
func (e *Extrapolator) Run(y0 State, t, dt float64, n int, observe func(t float64, y State)) (State, error) {
	y := y0
	for i := 0; i < n; i++ {
		var err error
		y, err = e.Step(y, t, dt)
		if err != nil {
			return y, err
		}
		t += dt
		if observe != nil {
			observe(t, y)
		}
	}
	return y, nil
}

// sameSize reports whether a and b have the same length, when both
// are slice-shaped. Non-slice State implementations always compare
// equal since the core has no generic way to size them.
func sameSize(a, b State) bool {
	va := reflect.ValueOf(a)
	vb := reflect.ValueOf(b)
	if va.Kind() != reflect.Slice || vb.Kind() != reflect.Slice {
		return true
	}
	return va.Len() == vb.Len()
}

// Close releases the worker pool's goroutines. Safe to call on a
// serial Extrapolator (a no-op) or more than once.
func (e *Extrapolator) Close() {
	if e.pool != nil {
		e.pool.Join()
		e.pool = nil
	}
}

func (e *Extrapolator) evaluateSerial() {
	sys := e.systems[0]
	fval0 := sys.Derive(e.t, e.input)
	scratch := &e.scratch[0]
	for idx, n := range e.cfg.Steps {
		e.outputs[idx] = gbsStep(sys, e.input, e.t, e.dt, n, fval0, scratch)
	}
}

// evaluateBin is the target installed on worker's pool slot: it
// evaluates f once at (t, input) and shares the result across every
// sub-integration assigned to this worker, then runs each in turn.
func (e *Extrapolator) evaluateBin(worker int) {
	idxs := e.partitionIdx[worker]
	sys := e.systems[worker]
	fval0 := sys.Derive(e.t, e.input)
	scratch := &e.scratch[worker]
	for _, idx := range idxs {
		e.outputs[idx] = gbsStep(sys, e.input, e.t, e.dt, e.cfg.Steps[idx], fval0, scratch)
	}
}
