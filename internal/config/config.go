// Package config loads and validates the run configuration: the five
// numeric parameters spec.md §6 exposes (grid extents, simulated time,
// output cadence, scenario selection), plus the ambient CLI/run-store
// knobs SPEC_FULL.md §6.1 adds (rank count, output path, live monitor).
package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/fluidkit/miniweather/internal/scenario"
	"github.com/fluidkit/miniweather/internal/simerr"
)

// Config holds everything a run needs beyond the fixed physical
// constants in internal/scenario. Zero values are not valid on their
// own; use DefaultConfig or Load to obtain one, then apply CLI
// overrides and call Validate.
type Config struct {
	NxGlob     int     `yaml:"nx_glob"`
	NzGlob     int     `yaml:"nz_glob"`
	SimTime    float64 `yaml:"sim_time"`
	OutputFreq float64 `yaml:"output_freq"`
	DataSpec   int     `yaml:"data_spec"`
	Ranks      int     `yaml:"ranks"`
	OutputPath string  `yaml:"output_path"`
	Monitor    bool    `yaml:"monitor"`
	HvBeta     float64 `yaml:"hv_beta"`
}

// DefaultConfig mirrors the first concrete scenario in spec.md §8: a
// small thermal-bubble run with output disabled.
func DefaultConfig() *Config {
	return &Config{
		NxGlob:     100,
		NzGlob:     50,
		SimTime:    2.0,
		OutputFreq: -1,
		DataSpec:   scenario.DataSpecThermal,
		Ranks:      1,
		HvBeta:     0.05,
	}
}

// Load reads a YAML config file over a copy of DefaultConfig, so any
// field the file omits keeps its default.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading config file: %v", simerr.ErrConfig, err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: parsing config file: %v", simerr.ErrConfig, err)
	}
	return cfg, nil
}

// Save writes cfg to path as YAML, for run reproducibility alongside
// the run store's metadata.json.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate enforces spec.md §7's taxonomy (a) and (b): non-positive
// extents, a data_spec outside {1,2,3,5,6}, a NaN output_freq, or a
// rank count that exceeds nx_glob. A rank count that does not divide
// nx_glob evenly is accepted; the ranks then get uneven column spans.
func (c *Config) Validate() error {
	if c.NxGlob <= 0 || c.NzGlob <= 0 {
		return fmt.Errorf("%w: nx_glob and nz_glob must be positive, got %d, %d", simerr.ErrConfig, c.NxGlob, c.NzGlob)
	}
	if c.SimTime <= 0 {
		return fmt.Errorf("%w: sim_time must be positive, got %f", simerr.ErrConfig, c.SimTime)
	}
	if math.IsNaN(c.OutputFreq) {
		return fmt.Errorf("%w: output_freq must not be NaN", simerr.ErrConfig)
	}
	if _, ok := scenario.ByDataSpec(c.DataSpec); !ok {
		return fmt.Errorf("%w: unknown data_spec %d", simerr.ErrConfig, c.DataSpec)
	}
	if c.Ranks <= 0 {
		return fmt.Errorf("%w: ranks must be positive, got %d", simerr.ErrConfig, c.Ranks)
	}
	if c.Ranks > c.NxGlob {
		return fmt.Errorf("%w: rank count %d exceeds nx_glob %d", simerr.ErrRankLayout, c.Ranks, c.NxGlob)
	}
	return nil
}

// dataSpecNames maps the CLI/config scenario names SPEC_FULL.md §6.1
// accepts to their numeric data_spec value, so --scenario can take
// either form.
var dataSpecNames = map[string]int{
	"collision":       scenario.DataSpecCollision,
	"thermal":         scenario.DataSpecThermal,
	"gravity_waves":   scenario.DataSpecGravityWaves,
	"density_current": scenario.DataSpecDensityCurrent,
	"injection":       scenario.DataSpecInjection,
}

// ParseDataSpec accepts either a numeric data_spec or a scenario name.
func ParseDataSpec(s string) (int, error) {
	if n, ok := dataSpecNames[s]; ok {
		return n, nil
	}
	var n int
	if _, err := fmt.Sscanf(s, "%d", &n); err == nil {
		if _, ok := scenario.ByDataSpec(n); ok {
			return n, nil
		}
	}
	return 0, fmt.Errorf("%w: unrecognized scenario %q", simerr.ErrConfig, s)
}
