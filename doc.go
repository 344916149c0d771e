// Package odex implements a parallel extrapolation ODE integrator.
//
// The integrator advances a user-supplied time-derivative operator
// [System] over a fixed sequence of macro-steps, producing a
// high-order-accurate result at each step via Richardson-style
// extrapolation over a Gragg-Bulirsch-Stoer base stepper. Each
// macro-step runs several independent sub-integrations at different
// sub-step counts; on a multicore machine these are distributed
// across a static worker pool and combined once all have finished.
//
//   - [State]: vector type the core treats as an opaque value.
//   - [System]: time-derivative operator dY/dt = f(t, Y).
//   - [ExtrapConfig]: precomputed step-count/weight scheme for an
//     (order, cores) pair, see [Lookup].
//   - [Extrapolator]: drives the per-macro-step fan-out/combine.
//   - [Integrate]: one-shot façade over [Extrapolator].
//
// # Thread Safety
//
// An [Extrapolator] is not safe for concurrent use by multiple
// goroutines calling [Extrapolator.Step] at once: it owns a single
// worker pool that it barrier-synchronizes on every macro-step. Run
// independent integrations through independent [Extrapolator] values.
package odex
