package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/acuellar/bargecalc/internal/analysis"
	"github.com/acuellar/bargecalc/internal/hull"
	"github.com/acuellar/bargecalc/internal/naval"
)

const (
	DefaultFormFactor  = 0.25
	DefaultEfficiency  = 0.5
	DefaultVelocityMin = 0.1
	DefaultVelocityMax = 1.0
	DefaultSamples     = 19
	DefaultGMThreshold = 0.05
	DefaultDraftLimit  = 0.06
	DefaultPowerLimit  = 75.0
)

type Config struct {
	Hull     hull.Parameters        `yaml:"hull"`
	Masses   naval.MassDistribution `yaml:"masses"`
	Fluid    naval.Fluid            `yaml:"fluid"`
	Material hull.Material          `yaml:"material"`

	Resistance ResistanceConfig `yaml:"resistance"`
	Stability  StabilityConfig  `yaml:"stability"`
}

type ResistanceConfig struct {
	FormFactor  float64 `yaml:"form_factor"`
	Efficiency  float64 `yaml:"efficiency"`
	VelocityMin float64 `yaml:"velocity_min"`
	VelocityMax float64 `yaml:"velocity_max"`
	Samples     int     `yaml:"samples"`
	PowerLimit  float64 `yaml:"power_limit"`
}

type StabilityConfig struct {
	GMThreshold float64 `yaml:"gm_threshold"`
	DraftLimit  float64 `yaml:"draft_limit"`
}

// DefaultConfig is the as-built barge: 45 cm hull with a 5 cm pyramidal
// bow, 4 mm MDF panels, 2.5 kg design cargo, fresh water.
func DefaultConfig() *Config {
	return &Config{
		Hull: hull.Parameters{
			TotalLength: 0.45,
			Beam:        0.172,
			Height:      0.156,
			BowLength:   0.05,
			DesignDraft: 0.055,
		},
		Masses: naval.MassDistribution{
			Hull:        naval.MassItem{Mass: 1.2, CGHeight: 0.04},
			Electronics: naval.MassItem{Mass: 1.0, CGHeight: 0.03},
			Cargo:       naval.MassItem{Mass: 2.5, CGHeight: 0.06},
		},
		Fluid:    naval.FreshWater(),
		Material: hull.MDF4mm(),
		Resistance: ResistanceConfig{
			FormFactor:  DefaultFormFactor,
			Efficiency:  DefaultEfficiency,
			VelocityMin: DefaultVelocityMin,
			VelocityMax: DefaultVelocityMax,
			Samples:     DefaultSamples,
			PowerLimit:  DefaultPowerLimit,
		},
		Stability: StabilityConfig{
			GMThreshold: DefaultGMThreshold,
			DraftLimit:  DefaultDraftLimit,
		},
	}
}

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

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// AnalysisInput maps the config onto one engine request.
func (c *Config) AnalysisInput() analysis.Input {
	return analysis.Input{
		Hull:        c.Hull,
		Mass:        c.Masses,
		Fluid:       c.Fluid,
		FormFactor:  c.Resistance.FormFactor,
		Efficiency:  c.Resistance.Efficiency,
		VelocityMin: c.Resistance.VelocityMin,
		VelocityMax: c.Resistance.VelocityMax,
		Samples:     c.Resistance.Samples,
		GMThreshold: c.Stability.GMThreshold,
		DraftLimit:  c.Stability.DraftLimit,
		PowerLimit:  c.Resistance.PowerLimit,
	}
}
