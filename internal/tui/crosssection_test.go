package tui

import (
	"strings"
	"testing"

	"github.com/acuellar/bargecalc/internal/analysis"
	"github.com/acuellar/bargecalc/internal/hull"
	"github.com/acuellar/bargecalc/internal/naval"
)

func testReport(t *testing.T) *analysis.Report {
	t.Helper()
	rep, err := analysis.Run(analysis.Input{
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
		Fluid: naval.FreshWater(),
	})
	if err != nil {
		t.Fatalf("analysis failed: %v", err)
	}
	return rep
}

func TestCrossSectionRender(t *testing.T) {
	cs := NewCrossSection()
	rep := testReport(t)

	for _, heel := range []float64{0, 5, 15, -10} {
		out := cs.Render(rep, heel)
		lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
		if len(lines) != canvasHeight {
			t.Fatalf("heel %.0f: rendered %d lines, want %d", heel, len(lines), canvasHeight)
		}
		if !strings.ContainsRune(out, '~') {
			t.Errorf("heel %.0f: waterline missing", heel)
		}
		if !strings.ContainsRune(out, '#') {
			t.Errorf("heel %.0f: hull outline missing", heel)
		}
	}
}

func TestCrossSectionRerender(t *testing.T) {
	cs := NewCrossSection()
	rep := testReport(t)

	a := cs.Render(rep, 5)
	cs.Render(rep, 30)
	b := cs.Render(rep, 5)
	if a != b {
		t.Error("canvas not cleared between renders")
	}
}
