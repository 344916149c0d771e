package odex

import (
	"math"
	"testing"
)

type zeroSystem struct{}

func (zeroSystem) Derive(_ float64, y State) State {
	v := y.(Vector)
	return make(Vector, len(v))
}

func TestGBSStepPreservesConstantSolution(t *testing.T) {
	y0 := Vector{3.5, -1.0}
	for _, n := range []int{2, 4, 6, 20} {
		var scratch Scratch
		fval0 := zeroSystem{}.Derive(0, y0)
		out := gbsStep(zeroSystem{}, y0, 0, 0.1, n, fval0, &scratch)
		got := out.(Vector)
		for i := range got {
			if math.Abs(got[i]-y0[i]) > 1e-15 {
				t.Errorf("n=%d: component %d drifted to %v, want %v", n, i, got[i], y0[i])
			}
		}
	}
}

type linearSystem struct{ rate float64 }

func (l linearSystem) Derive(_ float64, y State) State {
	return y.(Vector).Scale(l.rate)
}

func TestGBSStepConvergesWithMoreSubsteps(t *testing.T) {
	y0 := Vector{1.0}
	dt := 0.5
	want := math.Exp(dt)

	errFor := func(n int) float64 {
		var scratch Scratch
		sys := linearSystem{rate: 1.0}
		fval0 := sys.Derive(0, y0)
		out := gbsStep(sys, y0, 0, dt, n, fval0, &scratch)
		return math.Abs(out.(Vector)[0] - want)
	}

	errCoarse := errFor(4)
	errFine := errFor(40)
	if errFine >= errCoarse {
		t.Errorf("refining substeps did not reduce error: coarse=%.3e fine=%.3e", errCoarse, errFine)
	}
}
