package config

// Presets collects named starting configurations per model: the
// (order, cores) scheme, dt, duration and, where the model uses them,
// initial-state fields. The systems' own parameters (Van der Pol mu,
// Robertson rate constants) are not part of a preset.
var Presets = map[string]map[string]*Config{
	"scalar": {
		"unit": {
			Model: "scalar", Order: 8, Cores: 3, Parallel: true, Dt: 2.0 / 32, Duration: 2.0,
			InitState: InitStateConfig{Rate: 1.0},
		},
		"decay": {
			Model: "scalar", Order: 8, Cores: 3, Parallel: true, Dt: 0.05, Duration: 5.0,
			InitState: InitStateConfig{Rate: -1.0},
		},
	},
	"lorenz": {
		"classic": {
			Model: "lorenz", Order: 8, Cores: 6, Parallel: true, Dt: 0.005, Duration: 20.0,
			InitState: InitStateConfig{X: 1.0, Y: 0.0, Z: 0.0},
		},
		"perturbed": {
			Model: "lorenz", Order: 8, Cores: 6, Parallel: true, Dt: 0.005, Duration: 20.0,
			InitState: InitStateConfig{X: 1.001, Y: 0.0, Z: 0.0},
		},
	},
	"vanderpol": {
		"limit_cycle": {
			Model: "vanderpol", Order: 8, Cores: 3, Parallel: true, Dt: 0.02, Duration: 30.0,
		},
	},
	"robertson": {
		"stiff": {
			Model: "robertson", Order: 12, Cores: 8, Parallel: true, Dt: 0.01, Duration: 40.0,
		},
	},
	"pendulum": {
		"small": {
			Model: "pendulum", Order: 8, Cores: 3, Parallel: true, Dt: 0.01, Duration: 20.0,
			InitState: InitStateConfig{Theta: 0.2, Omega: 0.0},
		},
		"large": {
			Model: "pendulum", Order: 8, Cores: 3, Parallel: true, Dt: 0.01, Duration: 20.0,
			InitState: InitStateConfig{Theta: 2.5, Omega: 0.0},
		},
		"spinning": {
			Model: "pendulum", Order: 12, Cores: 4, Parallel: true, Dt: 0.01, Duration: 30.0,
			InitState: InitStateConfig{Theta: 0.1, Omega: 8.0},
		},
	},
}

// GetPreset looks up a named preset for model, returning nil if
// either the model or the preset name is unknown.
func GetPreset(model, preset string) *Config {
	modelPresets, ok := Presets[model]
	if !ok {
		return nil
	}
	cfg, ok := modelPresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

// ListPresets returns the preset names defined for model, or nil if
// model has none.
func ListPresets(model string) []string {
	modelPresets, ok := Presets[model]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(modelPresets))
	for name := range modelPresets {
		names = append(names, name)
	}
	return names
}
