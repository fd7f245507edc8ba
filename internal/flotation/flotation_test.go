package flotation

import (
	"math"
	"testing"

	"github.com/acuellar/bargecalc/internal/hull"
	"github.com/acuellar/bargecalc/internal/naval"
)

func testHull() hull.Parameters {
	return hull.Parameters{
		TotalLength: 0.45,
		Beam:        0.172,
		Height:      0.156,
		BowLength:   0.05,
		DesignDraft: 0.055,
	}
}

func testMasses() naval.MassDistribution {
	return naval.MassDistribution{
		Hull:        naval.MassItem{Mass: 1.2, CGHeight: 0.04},
		Electronics: naval.MassItem{Mass: 1.0, CGHeight: 0.03},
		Cargo:       naval.MassItem{Mass: 2.5, CGHeight: 0.06},
	}
}

func TestSolveFullLoad(t *testing.T) {
	res, err := Solve(testHull(), testMasses(), naval.FreshWater(), 0.06)
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}

	// 4.70 kg needs ~6.56 cm of draft, past the 6 cm operating limit.
	if math.Abs(res.RequiredDraft-0.0656) > 2e-4 {
		t.Errorf("required draft = %.4f, want ~0.0656", res.RequiredDraft)
	}
	if res.IsFloating {
		t.Error("expected not floating within 6 cm draft limit")
	}

	// The hull itself has headroom, so equilibrium is still reached.
	if math.Abs(res.EquilibriumDraft-res.RequiredDraft) > 1e-4 {
		t.Errorf("equilibrium %.5f diverges from required %.5f",
			res.EquilibriumDraft, res.RequiredDraft)
	}
	if math.Abs(res.NetForce) > 0.05 {
		t.Errorf("net force at equilibrium = %.3f N, want ~0", res.NetForce)
	}
	if res.ReserveBuoyancy <= 0 {
		t.Errorf("reserve buoyancy = %.3f, want positive", res.ReserveBuoyancy)
	}
}

func TestSolveNoLimit(t *testing.T) {
	// Limit zero means the hull height; at 6.56 cm the barge floats.
	res, err := Solve(testHull(), testMasses(), naval.FreshWater(), 0)
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}
	if !res.IsFloating {
		t.Error("expected floating within hull height")
	}
	if res.DraftLimit != testHull().Height {
		t.Errorf("draft limit = %.3f, want hull height", res.DraftLimit)
	}
}

func TestSolveLight(t *testing.T) {
	m := testMasses()
	m.Cargo.Mass = 0
	res, err := Solve(testHull(), m, naval.FreshWater(), 0.06)
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}
	if !res.IsFloating {
		t.Error("expected floating with no cargo")
	}
	if math.Abs(res.RequiredDraft-0.0307) > 2e-4 {
		t.Errorf("required draft = %.4f, want ~0.0307", res.RequiredDraft)
	}
}

func TestSolveSinking(t *testing.T) {
	m := testMasses()
	m.Cargo.Mass = 12 // beyond the ~11.2 kg the hull can displace
	res, err := Solve(testHull(), m, naval.FreshWater(), 0)
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}
	if res.IsFloating {
		t.Error("expected sinking condition")
	}
	if res.EquilibriumDraft != testHull().Height {
		t.Errorf("equilibrium = %.4f, want hull height", res.EquilibriumDraft)
	}
	if res.NetForce >= 0 {
		t.Errorf("net force = %.2f N, want negative when awash", res.NetForce)
	}
	if res.RequiredDraft <= testHull().Height {
		t.Errorf("required draft %.4f should exceed hull height", res.RequiredDraft)
	}
}

func TestSolveIdempotent(t *testing.T) {
	a, err := Solve(testHull(), testMasses(), naval.FreshWater(), 0.06)
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}
	b, err := Solve(testHull(), testMasses(), naval.FreshWater(), 0.06)
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}
	if math.Abs(a.EquilibriumDraft-b.EquilibriumDraft) > 1e-4 {
		t.Errorf("repeated solves differ: %.6f vs %.6f",
			a.EquilibriumDraft, b.EquilibriumDraft)
	}
}

func TestSolveLimitDomain(t *testing.T) {
	for _, limit := range []float64{-0.01, 0.2} {
		if _, err := Solve(testHull(), testMasses(), naval.FreshWater(), limit); err == nil {
			t.Errorf("limit %v: expected domain error", limit)
		}
	}
}

func TestSolveSeawater(t *testing.T) {
	fresh, err := Solve(testHull(), testMasses(), naval.FreshWater(), 0)
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}
	salt, err := Solve(testHull(), testMasses(), naval.SeaWater(), 0)
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}
	if salt.RequiredDraft >= fresh.RequiredDraft {
		t.Errorf("denser water should need less draft: %.4f >= %.4f",
			salt.RequiredDraft, fresh.RequiredDraft)
	}
}
