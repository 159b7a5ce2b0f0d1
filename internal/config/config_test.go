package config

import (
	"errors"
	"testing"

	"github.com/fluidkit/miniweather/internal/scenario"
	"github.com/fluidkit/miniweather/internal/simerr"
)

func TestDefaultConfigValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}
}

func TestValidateRejectsNonPositiveExtent(t *testing.T) {
	cfg := DefaultConfig()
	cfg.NxGlob = 0
	if err := cfg.Validate(); !errors.Is(err, simerr.ErrConfig) {
		t.Errorf("expected ErrConfig, got %v", err)
	}
}

func TestValidateRejectsUnknownDataSpec(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DataSpec = 4
	if err := cfg.Validate(); !errors.Is(err, simerr.ErrConfig) {
		t.Errorf("expected ErrConfig for reserved data_spec 4, got %v", err)
	}
}

func TestValidateRejectsRankCountExceedingGrid(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Ranks = cfg.NxGlob + 1
	if err := cfg.Validate(); !errors.Is(err, simerr.ErrRankLayout) {
		t.Errorf("expected ErrRankLayout, got %v", err)
	}
}

func TestValidateRejectsNaNOutputFreq(t *testing.T) {
	cfg := DefaultConfig()
	cfg.OutputFreq = nan()
	if err := cfg.Validate(); !errors.Is(err, simerr.ErrConfig) {
		t.Errorf("expected ErrConfig for NaN output_freq, got %v", err)
	}
}

func nan() float64 {
	var z float64
	return z / z
}

func TestParseDataSpecAcceptsNameOrNumber(t *testing.T) {
	n, err := ParseDataSpec("thermal")
	if err != nil || n != scenario.DataSpecThermal {
		t.Errorf("expected thermal=%d, got %d err=%v", scenario.DataSpecThermal, n, err)
	}
	n, err = ParseDataSpec("2")
	if err != nil || n != scenario.DataSpecThermal {
		t.Errorf("expected numeric 2 to resolve to thermal, got %d err=%v", n, err)
	}
}

func TestParseDataSpecRejectsReservedValue(t *testing.T) {
	if _, err := ParseDataSpec("4"); err == nil {
		t.Error("expected error for reserved data_spec 4")
	}
}

func TestGetPresetAndList(t *testing.T) {
	cfg := GetPreset("thermal", "quick")
	if cfg == nil {
		t.Fatal("expected thermal/quick preset")
	}
	if cfg.DataSpec != scenario.DataSpecThermal {
		t.Errorf("expected DataSpecThermal, got %d", cfg.DataSpec)
	}

	if GetPreset("thermal", "nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
	if GetPreset("nonexistent", "quick") != nil {
		t.Error("expected nil for nonexistent scenario")
	}

	names := ListPresets("thermal")
	if len(names) == 0 {
		t.Error("expected presets for thermal")
	}
}
