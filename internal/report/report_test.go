package report

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
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
		Fluid:      naval.FreshWater(),
		DraftLimit: 0.06,
		PowerLimit: 75,
	})
	if err != nil {
		t.Fatalf("analysis failed: %v", err)
	}
	return rep
}

func TestText(t *testing.T) {
	out := Text(testReport(t))

	for _, section := range []string{
		"HULL",
		"MASS BUDGET",
		"FLOTATION",
		"STABILITY",
		"HEEL SENSITIVITY",
		"RESISTANCE",
		"CRITERIA",
	} {
		if !strings.Contains(out, section) {
			t.Errorf("report missing %q section", section)
		}
	}

	// The full-load case overshoots the 6 cm limit; the report must say so.
	if !strings.Contains(out, "NOT FLOATING") {
		t.Error("report should flag the failed draft-limit check")
	}
	if !strings.Contains(out, "MARGINAL") {
		t.Error("report should carry the stability rating")
	}
}

func TestCurveTable(t *testing.T) {
	rep := testReport(t)
	out := CurveTable(rep)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// Header plus one row per sweep point.
	if len(lines) < len(rep.Curve)+1 {
		t.Errorf("table has %d lines, want at least %d", len(lines), len(rep.Curve)+1)
	}
}

func TestWriteJSON(t *testing.T) {
	rep := testReport(t)

	var buf bytes.Buffer
	if err := WriteJSON(&buf, rep); err != nil {
		t.Fatalf("write json: %v", err)
	}

	var decoded analysis.Report
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("exported json malformed: %v", err)
	}
	if len(decoded.Curve) != len(rep.Curve) {
		t.Errorf("curve lost in export: %d vs %d points", len(decoded.Curve), len(rep.Curve))
	}
	if decoded.Stability.GM != rep.Stability.GM {
		t.Error("stability figures lost in export")
	}
}

func TestWriteCSV(t *testing.T) {
	rep := testReport(t)

	var buf bytes.Buffer
	if err := WriteCSV(&buf, rep); err != nil {
		t.Fatalf("write csv: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("exported csv malformed: %v", err)
	}
	if len(records) != len(rep.Curve)+1 {
		t.Fatalf("csv has %d records, want %d", len(records), len(rep.Curve)+1)
	}
	width := len(records[0])
	for i, rec := range records[1:] {
		if len(rec) != width {
			t.Errorf("row %d has %d fields, want %d", i+1, len(rec), width)
		}
	}
	if records[0][0] != "velocity_ms" {
		t.Errorf("unexpected first column %q", records[0][0])
	}
}

func TestCurveSVG(t *testing.T) {
	rep := testReport(t)

	series := map[string][]XY{}
	for _, pt := range rep.Curve {
		series["total"] = append(series["total"], XY{X: pt.Velocity, Y: pt.TotalResistance})
		series["viscous"] = append(series["viscous"], XY{X: pt.Velocity, Y: pt.ViscousResistance})
	}

	svg := CurveSVG(series, 800, 500)
	if !strings.HasPrefix(svg, "<?xml") || !strings.HasSuffix(strings.TrimSpace(svg), "</svg>") {
		t.Error("output is not a complete svg document")
	}
	if strings.Count(svg, "<path") < 2 {
		t.Error("expected one path per series")
	}
	for _, name := range []string{"total", "viscous"} {
		if !strings.Contains(svg, name) {
			t.Errorf("legend missing series %q", name)
		}
	}
}
