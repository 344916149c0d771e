package demo

import (
	"math"
	"testing"

	"github.com/kestrel-sim/odex"
)

func TestScalarGrowthRate(t *testing.T) {
	s := &Scalar{Rate: 2.0}
	dy := s.Derive(0, odex.Vector{3.0})
	if got := dy.(odex.Vector)[0]; math.Abs(got-6.0) > 1e-12 {
		t.Errorf("Derive = %v, want 6.0", got)
	}
}

func TestLorenzUnitXIsNotFixed(t *testing.T) {
	l := NewLorenz()
	dy := l.Derive(0, odex.Vector{1, 0, 0}).(odex.Vector)
	// At (1,0,0) the Lorenz system is not at equilibrium: dx/dt = sigma*(0-1) != 0.
	if math.Abs(dy[0]-(-l.Sigma)) > 1e-12 {
		t.Errorf("dx/dt = %v, want %v", dy[0], -l.Sigma)
	}
}

func TestVanDerPolEquilibriumAtOrigin(t *testing.T) {
	v := NewVanDerPol()
	dy := v.Derive(0, odex.Vector{0, 0}).(odex.Vector)
	if dy[0] != 0 || dy[1] != 0 {
		t.Errorf("Derive at origin = %v, want {0,0}", dy)
	}
}

func TestRobertsonConservesTotalMass(t *testing.T) {
	r := NewRobertson()
	y := odex.Vector{0.6, 0.2, 0.2}
	dy := r.Derive(0, y).(odex.Vector)
	// a+b+c is conserved: d(a+b+c)/dt must be zero.
	sum := dy[0] + dy[1] + dy[2]
	if math.Abs(sum) > 1e-9 {
		t.Errorf("d(a+b+c)/dt = %v, want ~0", sum)
	}
}

func TestPendulumEquilibrium(t *testing.T) {
	p := NewPendulum()
	p.Damping = 0

	dy := p.Derive(0, odex.Vector{0, 0}).(odex.Vector)
	if math.Abs(dy[0]) > 1e-10 || math.Abs(dy[1]) > 1e-10 {
		t.Errorf("expected zero derivative at equilibrium, got %v", dy)
	}
}

func TestPendulumEnergyAtRestIsZero(t *testing.T) {
	p := NewPendulum()
	e := p.Energy(odex.Vector{0, 0})
	if math.Abs(e) > 1e-12 {
		t.Errorf("Energy at rest = %v, want 0", e)
	}
}

func TestRK4MatchesExactGrowth(t *testing.T) {
	rk4 := RK4{}
	sys := NewScalar()
	y := rk4.Run(sys, odex.Vector{1.0}, 0, 0.001, 1000, nil)
	want := math.Exp(1.0)
	if diff := math.Abs(y.(odex.Vector)[0] - want); diff > 1e-6 {
		t.Errorf("RK4 final state error %.3e too large", diff)
	}
}
