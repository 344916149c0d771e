package odex

import "math/big"

// weightPrecision is the working precision (bits of mantissa) used to
// evaluate the rational weight constants before rounding once to
// float64. It comfortably exceeds the ~64-bit mantissa of the
// long-double literals the scheme was originally derived in, so the
// float64 result is the correctly-rounded value of the exact rational
// weight, not of some re-derived approximation.
const weightPrecision = 200

// ExtrapConfig is the immutable per-(order, cores) scheme: the
// sub-step counts for each sub-integration and the extrapolation
// weight combining its output, plus the scheme's advisory stability
// boundary. Obtain one via [Lookup]; the zero value is not meaningful.
type ExtrapConfig struct {
	Order   int
	Cores   int
	ISBn    float32
	Steps   []int
	Weights []float64
}

var lookupTable = buildLookupTable()

type configKey struct{ order, cores int }

func buildLookupTable() map[configKey]ExtrapConfig {
	m := make(map[configKey]ExtrapConfig, len(configTable))
	for _, row := range configTable {
		weights := make([]float64, len(row.weights))
		for i, w := range row.weights {
			weights[i] = evalRational(w)
		}
		steps := make([]int, len(row.steps))
		copy(steps, row.steps)
		m[configKey{row.order, row.cores}] = ExtrapConfig{
			Order:   row.order,
			Cores:   row.cores,
			ISBn:    row.isbn,
			Steps:   steps,
			Weights: weights,
		}
	}
	return m
}

func evalRational(r rational) float64 {
	num, _, err := big.ParseFloat(r.num, 10, weightPrecision, big.ToNearestEven)
	if err != nil {
		panic("odex: malformed weight numerator " + r.num)
	}
	den, _, err := big.ParseFloat(r.den, 10, weightPrecision, big.ToNearestEven)
	if err != nil {
		panic("odex: malformed weight denominator " + r.den)
	}
	quot := new(big.Float).SetPrec(weightPrecision).Quo(num, den)
	f, _ := quot.Float64()
	return f
}

// Lookup returns the extrapolation scheme for the given (order, cores)
// pair. It is the only construction-time failure mode in the core: if
// the pair is not one of the supported rows, [ErrNoConfig] is
// returned.
func Lookup(order, cores int) (ExtrapConfig, error) {
	cfg, ok := lookupTable[configKey{order, cores}]
	if !ok {
		return ExtrapConfig{}, ErrNoConfig
	}
	// Copy slices out so callers can't mutate the shared table entry.
	steps := make([]int, len(cfg.Steps))
	copy(steps, cfg.Steps)
	weights := make([]float64, len(cfg.Weights))
	copy(weights, cfg.Weights)
	cfg.Steps = steps
	cfg.Weights = weights
	return cfg, nil
}

// SupportedConfigs returns every (order, cores) pair Lookup will
// accept, in the order they appear in the scheme table.
func SupportedConfigs() []struct{ Order, Cores int } {
	out := make([]struct{ Order, Cores int }, len(configTable))
	for i, row := range configTable {
		out[i] = struct{ Order, Cores int }{row.order, row.cores}
	}
	return out
}
