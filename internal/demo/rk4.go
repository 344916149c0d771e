package demo

import "github.com/kestrel-sim/odex"

// RK4 is a classic fixed-step fourth-order Runge-Kutta stepper, kept
// alongside the extrapolation core as a cheap baseline: `odex bench`
// reports its run time and final state next to the extrapolator's, so
// a scheme's (order, cores) tradeoff has something concrete to be
// compared to.
type RK4 struct{}

// Step advances y by one step of size dt at time t.
func (RK4) Step(sys odex.System, y odex.State, t, dt float64) odex.State {
	half := dt / 2

	k1 := sys.Derive(t, y)
	k2 := sys.Derive(t+half, y.Add(k1.Scale(half)))
	k3 := sys.Derive(t+half, y.Add(k2.Scale(half)))
	k4 := sys.Derive(t+dt, y.Add(k3.Scale(dt)))

	sum := k1.Add(k2.Scale(2)).Add(k3.Scale(2)).Add(k4)
	return y.Add(sum.Scale(dt / 6.0))
}

// Run advances y0 by n fixed steps of size dt starting at t, calling
// observe after each step if non-nil, and returns the final state.
func (r RK4) Run(sys odex.System, y0 odex.State, t, dt float64, n int, observe func(t float64, y odex.State)) odex.State {
	y := y0
	for i := 0; i < n; i++ {
		y = r.Step(sys, y, t, dt)
		t += dt
		if observe != nil {
			observe(t, y)
		}
	}
	return y
}
