package odex

// Integrate advances sys from y0 for n macro-steps of size dt starting
// at time t, calling observe after every step with the post-step time
// and state, and returns the final state. observe may be nil.
//
// order must be one of 8, 12, or 16, and cores must be a supported
// core count for that order (see [SupportedConfigs]); an unsupported
// pair returns [ErrNoConfig]. If parallel is false the integration
// still uses the weights/steps for the requested (order, cores) pair
// but runs single-threaded.
func Integrate(sys System, y0 State, t, dt float64, n int, observe func(t float64, y State), order, cores int, parallel bool) (State, error) {
	cfg, err := Lookup(order, cores)
	if err != nil {
		return nil, err
	}

	ex := NewExtrapolator(sys, cfg, parallel)
	defer ex.Close()

	return ex.Run(y0, t, dt, n, observe)
}
