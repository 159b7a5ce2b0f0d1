package config

import "github.com/fluidkit/miniweather/internal/scenario"

// Presets offers named starting points per scenario, keyed the same way
// the CLI's --scenario flag resolves names (internal/config.ParseDataSpec).
// Grid sizes and sim_time are picked to match the six concrete scenarios
// spec.md §8 exercises.
var Presets = map[string]map[string]*Config{
	"thermal": {
		"quick": {
			NxGlob: 100, NzGlob: 50, SimTime: 2.0, OutputFreq: -1,
			DataSpec: scenario.DataSpecThermal, Ranks: 1, HvBeta: 0.05,
		},
		"full": {
			NxGlob: 400, NzGlob: 200, SimTime: 20.0, OutputFreq: 1.0,
			DataSpec: scenario.DataSpecThermal, Ranks: 4, HvBeta: 0.05,
		},
	},
	"collision": {
		"quick": {
			NxGlob: 200, NzGlob: 100, SimTime: 10.0, OutputFreq: -1,
			DataSpec: scenario.DataSpecCollision, Ranks: 1, HvBeta: 0.05,
		},
		"full": {
			NxGlob: 400, NzGlob: 200, SimTime: 15.0, OutputFreq: 1.0,
			DataSpec: scenario.DataSpecCollision, Ranks: 4, HvBeta: 0.05,
		},
	},
	"gravity_waves": {
		"quick": {
			NxGlob: 400, NzGlob: 200, SimTime: 5.0, OutputFreq: -1,
			DataSpec: scenario.DataSpecGravityWaves, Ranks: 1, HvBeta: 0.05,
		},
	},
	"density_current": {
		"quick": {
			NxGlob: 400, NzGlob: 200, SimTime: 15.0, OutputFreq: -1,
			DataSpec: scenario.DataSpecDensityCurrent, Ranks: 1, HvBeta: 0.05,
		},
	},
	"injection": {
		"quick": {
			NxGlob: 200, NzGlob: 100, SimTime: 4.0, OutputFreq: -1,
			DataSpec: scenario.DataSpecInjection, Ranks: 2, HvBeta: 0.05,
		},
	},
}

// GetPreset looks up a named preset for a scenario, returning nil if
// either the scenario or the named preset is unrecognized.
func GetPreset(name, preset string) *Config {
	scenarioPresets, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg, ok := scenarioPresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

// ListPresets returns the preset names defined for a scenario, or nil
// if the scenario has none.
func ListPresets(name string) []string {
	scenarioPresets, ok := Presets[name]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(scenarioPresets))
	for n := range scenarioPresets {
		names = append(names, n)
	}
	return names
}
