package config

import (
	"math"
	"sort"
)

var Presets = map[string]map[string]*Config{
	"linear": {
		"coarse": {
			Model: "linear", Method: "euler", T0: 0, Tf: 1, H: 0.1,
			MaxSteps: DefaultMaxSteps, Y0: []float64{0},
		},
		"fine": {
			Model: "linear", Method: "rk4", T0: 0, Tf: 1, H: 0.01,
			MaxSteps: DefaultMaxSteps, Y0: []float64{0},
		},
	},
	"exponential": {
		"growth": {
			Model: "exponential", Method: "rk4", T0: 0, Tf: 1, H: 0.1,
			MaxSteps: DefaultMaxSteps, Y0: []float64{1},
		},
		"decay": {
			Model: "exponential", Method: "midpoint", T0: 0, Tf: 5, H: 0.05,
			MaxSteps: DefaultMaxSteps, Y0: []float64{1},
			Params: map[string]float64{"rate": -2},
		},
	},
	"polynomial": {
		"quadratic": {
			Model: "polynomial", Method: "midpoint", T0: 0, Tf: 2, H: 0.25,
			MaxSteps: DefaultMaxSteps, Y0: []float64{0},
			Params: map[string]float64{"c0": 1, "c1": 2},
		},
	},
	"oscillator": {
		"period": {
			Model: "oscillator", Method: "rk4", T0: 0, Tf: 2 * math.Pi, H: 0.01,
			MaxSteps: DefaultMaxSteps, Y0: []float64{1, 0},
		},
	},
	"pendulum": {
		"small": {
			Model: "pendulum", Method: "rk4", T0: 0, Tf: 20, H: 0.01,
			MaxSteps: DefaultMaxSteps, Y0: []float64{0.2, 0},
		},
		"large": {
			Model: "pendulum", Method: "rk4", T0: 0, Tf: 20, H: 0.01,
			MaxSteps: DefaultMaxSteps, Y0: []float64{2.5, 0},
		},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(model, name string) *Config {
	presets, ok := Presets[model]
	if !ok {
		return nil
	}
	cfg, ok := presets[name]
	if !ok {
		return nil
	}
	return cfg.Clone()
}

// ListPresets returns the sorted preset names for model, or nil.
func ListPresets(model string) []string {
	presets, ok := Presets[model]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
