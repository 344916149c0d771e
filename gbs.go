package odex

// Scratch is the three-slot ring buffer a GBS sub-integration uses as
// its leap-frog history. One ring is owned exclusively by one worker
// (or, in the serial path, by the single replica) for the lifetime of
// the [Extrapolator]. It is never shared across goroutines.
type Scratch [3]State

// gbsRingOrder mirrors the cyclic index triples the reference stepper
// advances through: at ring position cur, (a, b, c) are the slots to
// read-read-write on the next leap-frog update.
var gbsRingOrder = [3][3]int{{0, 1, 2}, {1, 2, 0}, {2, 0, 1}}

// gbsStep advances y0 by dt using n modified-midpoint sub-steps with a
// final smoothing step and returns the result. fval0 is f(t, y0),
// evaluated once by the caller and shared across every sub-integration
// in a macro-step since they all start from the same (t, y0). scratch
// is the three-slot leap-frog ring; n must be >= 2.
//
// The asymptotic error of this scheme contains even powers of the
// sub-step size only, which is what lets Richardson extrapolation on
// n gain two orders of accuracy per cancelled term (see [Extrapolator]).
func gbsStep(sys System, y0 State, t, dt float64, n int, fval0 State, scratch *Scratch) State {
	h := dt / float64(n)
	tn := t

	// Initial forward Euler step.
	scratch[0] = y0.Add(fval0.Scale(h))
	tn += h

	// First leap-frog step, avoiding an extra copy of y0.
	scratch[1] = y0.Add(sys.Derive(tn, scratch[0]).Scale(2 * h))

	cur := 2
	for i := 1; i < n; i++ {
		if cur < 2 {
			cur++
		} else {
			cur = 0
		}
		tn += h
		ind := gbsRingOrder[cur]
		scratch[ind[2]] = scratch[ind[0]].Add(sys.Derive(tn, scratch[ind[1]]).Scale(2 * h))
	}

	ind := gbsRingOrder[cur]
	// Smoothing suppresses the weak leap-frog instability mode and
	// preserves the even-order error structure.
	return scratch[ind[0]].Add(scratch[ind[1]].Scale(2)).Add(scratch[ind[2]]).Scale(0.25)
}
