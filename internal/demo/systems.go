// Package demo bundles a small catalogue of [odex.System] implementations
// used by the CLI and by this package's own tests. None
// of this is part of the integrator core. It exists so the CLI has
// something real to run and plot.
package demo

import (
	"math"

	"github.com/kestrel-sim/odex"
)

// Scalar implements dy/dt = rate*y, the textbook exponential used to
// check a scheme's order of accuracy against the exact solution
// e^(rate*t).
type Scalar struct {
	Rate float64
}

// NewScalar returns the canonical growth system dy/dt = y.
func NewScalar() *Scalar { return &Scalar{Rate: 1.0} }

func (s *Scalar) Derive(_ float64, y odex.State) odex.State {
	return y.(odex.Vector).Scale(s.Rate)
}

func (s *Scalar) DefaultState() odex.Vector { return odex.Vector{1.0} }

// Lorenz is the classic butterfly attractor, grounded on the
// reference library's own LorenzAttractor example. State: [x, y, z].
type Lorenz struct {
	Sigma, Rho, Beta float64
}

// NewLorenz returns the Lorenz system at its standard chaotic
// parameters.
func NewLorenz() *Lorenz { return &Lorenz{Sigma: 10.0, Rho: 28.0, Beta: 8.0 / 3.0} }

func (l *Lorenz) Derive(_ float64, y odex.State) odex.State {
	s := y.(odex.Vector)
	x, yy, z := s[0], s[1], s[2]
	return odex.Vector{
		l.Sigma * (yy - x),
		x*(l.Rho-z) - yy,
		x*yy - l.Beta*z,
	}
}

func (l *Lorenz) DefaultState() odex.Vector { return odex.Vector{1.0, 0.0, 0.0} }

// VanDerPol is the Van der Pol oscillator: dx/dt = y, dy/dt =
// mu*(1-x^2)*y - x. Large mu makes the limit cycle relaxation-like and
// stiff, which stresses a fixed-dt scheme's stability boundary rather
// than just its order.
type VanDerPol struct {
	Mu float64
}

// NewVanDerPol returns the classic mu=1 limit-cycle oscillator.
func NewVanDerPol() *VanDerPol { return &VanDerPol{Mu: 1.0} }

func (v *VanDerPol) Derive(_ float64, y odex.State) odex.State {
	s := y.(odex.Vector)
	x, yy := s[0], s[1]
	return odex.Vector{yy, v.Mu*(1-x*x)*yy - x}
}

func (v *VanDerPol) DefaultState() odex.Vector { return odex.Vector{2.0, 0.0} }

// Robertson is the classic three-species stiff chemical kinetics
// system (Robertson 1966): A -> B (rate k1), B + B -> B + C (rate k2),
// B + C -> A + C (rate k3). Its reaction rates span several orders of
// magnitude, making it a standard stress test for how large a fixed
// dt a scheme can take before its stability boundary, not its order,
// starts to dominate the error.
type Robertson struct {
	K1, K2, K3 float64
}

// NewRobertson returns the system at its standard textbook rate
// constants.
func NewRobertson() *Robertson { return &Robertson{K1: 0.04, K2: 3e7, K3: 1e4} }

func (r *Robertson) Derive(_ float64, y odex.State) odex.State {
	s := y.(odex.Vector)
	a, b, c := s[0], s[1], s[2]
	return odex.Vector{
		-r.K1*a + r.K3*b*c,
		r.K1*a - r.K2*b*b - r.K3*b*c,
		r.K2 * b * b,
	}
}

func (r *Robertson) DefaultState() odex.Vector { return odex.Vector{1.0, 0.0, 0.0} }

// Pendulum is a damped simple pendulum: theta'' = -(g/length)*sin(theta)
// - damping*theta'. State: [theta, omega].
type Pendulum struct {
	Mass, Length, Damping, Gravity float64
}

// NewPendulum returns a unit-mass, unit-length, lightly damped
// pendulum.
func NewPendulum() *Pendulum {
	return &Pendulum{Mass: 1.0, Length: 1.0, Damping: 0.1, Gravity: 9.81}
}

func (p *Pendulum) Derive(_ float64, y odex.State) odex.State {
	s := y.(odex.Vector)
	theta, omega := s[0], s[1]
	return odex.Vector{
		omega,
		-(p.Gravity/p.Length)*math.Sin(theta) - p.Damping*omega,
	}
}

func (p *Pendulum) DefaultState() odex.Vector { return odex.Vector{0.5, 0.0} }

// Energy returns the pendulum's mechanical energy at state y, used by
// [internal/report] to track energy drift over a run.
func (p *Pendulum) Energy(y odex.Vector) float64 {
	theta, omega := y[0], y[1]
	ke := 0.5 * p.Mass * p.Length * p.Length * omega * omega
	pe := p.Mass * p.Gravity * p.Length * (1 - math.Cos(theta))
	return ke + pe
}
