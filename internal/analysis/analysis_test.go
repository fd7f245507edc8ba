package analysis

import (
	"math"
	"testing"

	"github.com/acuellar/bargecalc/internal/hull"
	"github.com/acuellar/bargecalc/internal/naval"
)

func testInput() Input {
	return Input{
		Hull: hull.Parameters{
			TotalLength: 0.45,
			Beam:        0.172,
			Height:      0.156,
			BowLength:   0.05,
			DesignDraft: 0.055,
		},
		Mass: naval.MassDistribution{
			Hull:        naval.MassItem{Mass: 1.2, CGHeight: 0.04},
			Electronics: naval.MassItem{Mass: 1.0, CGHeight: 0.03},
			Cargo:       naval.MassItem{Mass: 2.5, CGHeight: 0.06},
		},
		Fluid:      naval.FreshWater(),
		DraftLimit: 0.06,
		PowerLimit: 75,
	}
}

func TestRunFullPipeline(t *testing.T) {
	rep, err := Run(testInput())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	// Defaults fill in the unset sweep and hydrodynamic parameters.
	if rep.Input.FormFactor != 0.25 || rep.Input.Efficiency != 0.5 {
		t.Errorf("defaults not applied: k=%.2f η=%.2f",
			rep.Input.FormFactor, rep.Input.Efficiency)
	}
	if rep.Input.Samples != 19 {
		t.Errorf("default sample count = %d, want 19", rep.Input.Samples)
	}

	if rep.Flotation.IsFloating {
		t.Error("full load should exceed the 6 cm draft limit")
	}
	if math.Abs(rep.Geometry.Draft-rep.Flotation.EquilibriumDraft) > 1e-9 {
		t.Error("geometry not evaluated at the equilibrium draft")
	}
	if math.Abs(rep.Stability.Draft-rep.Flotation.EquilibriumDraft) > 1e-9 {
		t.Error("stability not evaluated at the equilibrium draft")
	}

	if len(rep.Curve) != 19 {
		t.Fatalf("curve has %d points, want 19", len(rep.Curve))
	}
	if !rep.HasOptimal {
		t.Error("expected an optimal velocity")
	}
	if !rep.HasUnderPwr {
		t.Error("expected a top speed under 75 W")
	}
	if rep.GeneratedAt.IsZero() {
		t.Error("report timestamp not set")
	}
}

func TestRunNoPowerLimit(t *testing.T) {
	in := testInput()
	in.PowerLimit = 0
	rep, err := Run(in)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if rep.HasUnderPwr {
		t.Error("power lookup should be disabled at zero limit")
	}
}

func TestRunErrorPropagation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Input)
	}{
		{"invalid hull", func(in *Input) { in.Hull.Beam = 0 }},
		{"empty mass budget", func(in *Input) { in.Mass = naval.MassDistribution{} }},
		{"invalid fluid", func(in *Input) { in.Fluid.Density = 0 }},
		{"inverted sweep", func(in *Input) { in.VelocityMin = 1.0; in.VelocityMax = 0.5 }},
		{"draft limit above deck", func(in *Input) { in.DraftLimit = 0.3 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := testInput()
			tt.mutate(&in)
			if _, err := Run(in); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}
