// Package analysis sequences the engine: geometry, flotation, stability
// and the resistance sweep for one parameter set, assembled into a
// single report record for the CLI, TUI and exporters.
package analysis

import (
	"time"

	"github.com/acuellar/bargecalc/internal/flotation"
	"github.com/acuellar/bargecalc/internal/hull"
	"github.com/acuellar/bargecalc/internal/naval"
	"github.com/acuellar/bargecalc/internal/resistance"
	"github.com/acuellar/bargecalc/internal/stability"
)

// Input is one complete analysis request. Zero sweep bounds select the
// defaults of the original study (0.1–1.0 m/s, 19 samples).
type Input struct {
	Hull  hull.Parameters        `json:"hull"`
	Mass  naval.MassDistribution `json:"mass"`
	Fluid naval.Fluid            `json:"fluid"`

	FormFactor  float64 `json:"form_factor"`
	Efficiency  float64 `json:"efficiency"`
	VelocityMin float64 `json:"velocity_min"`
	VelocityMax float64 `json:"velocity_max"`
	Samples     int     `json:"samples"`

	GMThreshold float64 `json:"gm_threshold"`
	// DraftLimit is the operating draft limit for the floating check;
	// zero means the hull height.
	DraftLimit float64 `json:"draft_limit"`
	// PowerLimit is the available shaft power in Watts; zero disables
	// the speed-under-power lookup.
	PowerLimit float64 `json:"power_limit"`
}

func (in Input) withDefaults() Input {
	if in.FormFactor == 0 {
		in.FormFactor = 0.25
	}
	if in.Efficiency == 0 {
		in.Efficiency = 0.5
	}
	if in.VelocityMin == 0 {
		in.VelocityMin = 0.1
	}
	if in.VelocityMax == 0 {
		in.VelocityMax = 1.0
	}
	if in.Samples == 0 {
		in.Samples = 19
	}
	if in.GMThreshold == 0 {
		in.GMThreshold = stability.DefaultGMThreshold
	}
	return in
}

// Report is the composite result of one analysis. All fields are plain
// values owned by the caller and serializable without engine help.
type Report struct {
	GeneratedAt time.Time `json:"generated_at"`
	Input       Input     `json:"input"`

	Geometry  hull.Geometry    `json:"geometry"`
	Flotation flotation.Result `json:"flotation"`
	Stability stability.Result `json:"stability"`
	Curve     resistance.Curve `json:"resistance_curve"`

	Optimal     resistance.Point `json:"optimal"`
	UnderPower  resistance.Point `json:"under_power"`
	HasOptimal  bool             `json:"has_optimal"`
	HasUnderPwr bool             `json:"has_under_power"`
}

// Run executes the full pipeline. The computation is synchronous,
// stateless and deterministic; errors surface at the first invalid
// stage and nothing is retried.
func Run(in Input) (*Report, error) {
	in = in.withDefaults()

	if err := in.Hull.Validate(); err != nil {
		return nil, err
	}

	fl, err := flotation.Solve(in.Hull, in.Mass, in.Fluid, in.DraftLimit)
	if err != nil {
		return nil, err
	}

	geom, err := in.Hull.Compute(fl.EquilibriumDraft)
	if err != nil {
		return nil, err
	}

	st, err := stability.Analyze(in.Hull, in.Mass, in.Fluid, stability.Options{
		GMThreshold: in.GMThreshold,
		Draft:       fl.EquilibriumDraft,
	})
	if err != nil {
		return nil, err
	}

	calc, err := resistance.New(in.Hull, in.Fluid, fl.EquilibriumDraft, in.FormFactor, in.Efficiency)
	if err != nil {
		return nil, err
	}
	curve, err := calc.Sweep(in.VelocityMin, in.VelocityMax, in.Samples)
	if err != nil {
		return nil, err
	}

	rep := &Report{
		GeneratedAt: time.Now(),
		Input:       in,
		Geometry:    geom,
		Flotation:   fl,
		Stability:   st,
		Curve:       curve,
	}
	rep.Optimal, rep.HasOptimal = curve.OptimalVelocity()
	if in.PowerLimit > 0 {
		rep.UnderPower, rep.HasUnderPwr = curve.MaxVelocityUnder(in.PowerLimit)
	}
	return rep, nil
}
