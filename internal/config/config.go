// Package config reads and writes the YAML run configuration for the
// odex CLI. This is a CLI-layer concern, distinct from the core
// library's own scheme table. It picks which demo system, order, and
// core count to run, not the scheme's weights.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultDt       = 0.01
	DefaultDuration = 10.0
	DefaultOrder    = 8
	DefaultCores    = 3
	DefaultTheta    = 0.5
)

// Config is a single run's CLI configuration.
type Config struct {
	Model     string          `yaml:"model"`
	Order     int             `yaml:"order"`
	Cores     int             `yaml:"cores"`
	Parallel  bool            `yaml:"parallel"`
	Dt        float64         `yaml:"dt"`
	Duration  float64         `yaml:"duration"`
	InitState InitStateConfig `yaml:"init_state"`
}

// InitStateConfig holds the per-model initial-condition fields the
// CLI exposes as flags. Fields unused by the selected model are
// ignored.
type InitStateConfig struct {
	Theta float64 `yaml:"theta"`
	Omega float64 `yaml:"omega"`
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Z     float64 `yaml:"z"`
	Rate  float64 `yaml:"rate"`
}

// DefaultConfig returns the CLI's default run: the scalar growth
// system under the order-8/3-core scheme.
func DefaultConfig() *Config {
	return &Config{
		Model:     "scalar",
		Order:     DefaultOrder,
		Cores:     DefaultCores,
		Parallel:  true,
		Dt:        DefaultDt,
		Duration:  DefaultDuration,
		InitState: InitStateConfig{Rate: 1.0, Theta: DefaultTheta},
	}
}

// Load reads a YAML config file, filling any field absent from the
// file with DefaultConfig's value.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes cfg to path as YAML.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// GetInitState returns the initial state for c.Model as a plain
// []float64, in the order the matching demo system expects it.
func (c *Config) GetInitState() []float64 {
	switch c.Model {
	case "scalar":
		return []float64{1.0}
	case "lorenz":
		return []float64{c.InitState.X, c.InitState.Y, c.InitState.Z}
	case "vanderpol":
		return []float64{2.0, 0.0}
	case "robertson":
		return []float64{1.0, 0.0, 0.0}
	case "pendulum":
		return []float64{c.InitState.Theta, c.InitState.Omega}
	default:
		return []float64{c.InitState.Theta, c.InitState.Omega}
	}
}
