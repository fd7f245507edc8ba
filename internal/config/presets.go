package config

import "github.com/acuellar/bargecalc/internal/naval"

// Presets are named loading/environment conditions over the default
// hull.
var Presets = map[string]func() *Config{
	"design": func() *Config {
		return DefaultConfig()
	},
	"light": func() *Config {
		cfg := DefaultConfig()
		cfg.Masses.Cargo.Mass = 0
		return cfg
	},
	"overload": func() *Config {
		cfg := DefaultConfig()
		cfg.Masses.Cargo.Mass = 4.0
		cfg.Masses.Cargo.CGHeight = 0.08
		return cfg
	},
	"seawater": func() *Config {
		cfg := DefaultConfig()
		cfg.Fluid = naval.SeaWater()
		return cfg
	},
	"sprint": func() *Config {
		cfg := DefaultConfig()
		cfg.Masses.Cargo.Mass = 0.5
		cfg.Resistance.VelocityMax = 1.5
		cfg.Resistance.Samples = 29
		return cfg
	},
}

func GetPreset(name string) *Config {
	fn, ok := Presets[name]
	if !ok {
		return nil
	}
	return fn()
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
