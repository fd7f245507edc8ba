// Package report renders an analysis report as text, JSON, CSV or an
// SVG resistance plot. It only reads the report record; the engine does
// not participate in formatting.
package report

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/acuellar/bargecalc/internal/analysis"
	"github.com/acuellar/bargecalc/internal/stability"
)

const ruleWidth = 78

func rule(b *strings.Builder) {
	b.WriteString(strings.Repeat("-", ruleWidth))
	b.WriteByte('\n')
}

func heading(b *strings.Builder, title string) {
	b.WriteByte('\n')
	b.WriteString(title)
	b.WriteByte('\n')
	rule(b)
}

// Text renders the full analysis report in the layout of the original
// survey print-out: dimensions, mass budget, flotation, stability and
// the resistance table with its criteria checks.
func Text(rep *analysis.Report) string {
	var b strings.Builder
	in := rep.Input

	b.WriteString(strings.Repeat("=", ruleWidth) + "\n")
	b.WriteString(center("RC CARGO BARGE - ANALYSIS REPORT") + "\n")
	b.WriteString(strings.Repeat("=", ruleWidth) + "\n")
	fmt.Fprintf(&b, "generated: %s\n", rep.GeneratedAt.Format("2006-01-02 15:04:05"))

	heading(&b, "HULL")
	fmt.Fprintf(&b, "  total length:    %.1f cm\n", in.Hull.TotalLength*100)
	fmt.Fprintf(&b, "  beam:            %.1f cm\n", in.Hull.Beam*100)
	fmt.Fprintf(&b, "  height:          %.1f cm\n", in.Hull.Height*100)
	fmt.Fprintf(&b, "  bow section:     %.1f cm (pyramidal)\n", in.Hull.BowLength*100)
	fmt.Fprintf(&b, "  stern section:   %.1f cm (rectangular)\n", in.Hull.SternLength()*100)
	fmt.Fprintf(&b, "  waterplane area: %.4f m² (Cwp %.3f)\n", in.Hull.WaterplaneArea(), in.Hull.WaterplaneCoefficient())

	heading(&b, "MASS BUDGET")
	fmt.Fprintf(&b, "  hull:        %5.2f kg @ %4.1f cm\n", in.Mass.Hull.Mass, in.Mass.Hull.CGHeight*100)
	fmt.Fprintf(&b, "  electronics: %5.2f kg @ %4.1f cm\n", in.Mass.Electronics.Mass, in.Mass.Electronics.CGHeight*100)
	fmt.Fprintf(&b, "  cargo:       %5.2f kg @ %4.1f cm\n", in.Mass.Cargo.Mass, in.Mass.Cargo.CGHeight*100)
	fmt.Fprintf(&b, "  total:       %5.2f kg, KG %.2f cm\n", in.Mass.TotalMass(), in.Mass.KG()*100)

	heading(&b, "FLOTATION")
	fl := rep.Flotation
	fmt.Fprintf(&b, "  required draft:     %.2f cm (limit %.2f cm)\n", fl.RequiredDraft*100, fl.DraftLimit*100)
	fmt.Fprintf(&b, "  equilibrium draft:  %.2f cm\n", fl.EquilibriumDraft*100)
	fmt.Fprintf(&b, "  buoyant force:      %.2f N\n", fl.BuoyantForce)
	fmt.Fprintf(&b, "  weight force:       %.2f N\n", fl.WeightForce)
	fmt.Fprintf(&b, "  net force:          %+.2f N\n", fl.NetForce)
	if fl.IsFloating {
		fmt.Fprintf(&b, "  status:             FLOATING (reserve %.1f N, +%.2f kg load margin)\n",
			fl.ReserveBuoyancy, fl.MaxAdditionalLoad)
	} else {
		fmt.Fprintf(&b, "  status:             NOT FLOATING within limit (needs %.2f cm draft)\n",
			fl.RequiredDraft*100)
	}

	heading(&b, "STABILITY")
	st := rep.Stability
	fmt.Fprintf(&b, "  KB: %.2f cm   BM: %.2f cm   KG: %.2f cm\n", st.KB*100, st.BM*100, st.KG*100)
	fmt.Fprintf(&b, "  GM: %.2f cm  →  %s (threshold %.1f cm)\n", st.GM*100, strings.ToUpper(st.Rating.String()), st.GMThreshold*100)
	fmt.Fprintf(&b, "  displacement:       %.2f kg\n", st.Displacement)
	fmt.Fprintf(&b, "  max safe heel:      %.0f°\n", st.MaxSafeHeel())
	fmt.Fprintf(&b, "  righting moment@10°: %.3f N·m\n", st.RightingMoment(10))

	heading(&b, "HEEL SENSITIVITY (1 kg offset load)")
	for _, offset := range []float64{0.02, 0.05, 0.08} {
		heel := st.HeelAngle(1.0, offset)
		mark := "ok"
		if !(heel < 10) {
			mark = "EXCEEDS 10°"
		}
		fmt.Fprintf(&b, "  %2.0f cm offset → %6.2f° heel  %s\n", offset*100, heel, mark)
	}

	heading(&b, "RESISTANCE (ITTC-1957)")
	fmt.Fprintf(&b, "  wetted area %.4f m², form factor %.2f, η %.0f%%\n\n",
		rep.Geometry.WettedArea, in.FormFactor, in.Efficiency*100)
	b.WriteString(CurveTable(rep))

	heading(&b, "CRITERIA")
	writeCheck(&b, fmt.Sprintf("draft within %.1f cm limit", fl.DraftLimit*100), fl.IsFloating)
	writeCheck(&b, fmt.Sprintf("GM above %.1f cm", st.GMThreshold*100), st.Rating == stability.Stable)
	if rep.HasOptimal {
		fmt.Fprintf(&b, "  optimal cruise: %.2f m/s (min RT/V)\n", rep.Optimal.Velocity)
	}
	if rep.HasUnderPwr {
		fmt.Fprintf(&b, "  max speed under %.0f W shaft: %.2f m/s\n", in.PowerLimit, rep.UnderPower.Velocity)
	} else if in.PowerLimit > 0 {
		fmt.Fprintf(&b, "  no sampled speed fits under %.0f W shaft power\n", in.PowerLimit)
	}

	b.WriteString("\n" + strings.Repeat("=", ruleWidth) + "\n")
	return b.String()
}

// CurveTable renders the resistance sweep as an aligned table.
func CurveTable(rep *analysis.Report) string {
	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "V (m/s)\tRe\tFr\tCf\tRf (N)\tRv (N)\tRw (N)\tRT (N)\tPE (W)\tPshaft (W)\t")
	for _, pt := range rep.Curve {
		fmt.Fprintf(w, "%.2f\t%.2e\t%.3f\t%.5f\t%.3f\t%.3f\t%.3f\t%.3f\t%.3f\t%.3f\t\n",
			pt.Velocity, pt.Reynolds, pt.Froude, pt.FrictionCoefficient,
			pt.FrictionResistance, pt.ViscousResistance, pt.WaveResistance,
			pt.TotalResistance, pt.EffectivePower, pt.ShaftPower)
	}
	w.Flush()
	return b.String()
}

func writeCheck(b *strings.Builder, label string, ok bool) {
	status := "PASS"
	if !ok {
		status = "FAIL"
	}
	fmt.Fprintf(b, "  %-50s %s\n", label, status)
}

func center(s string) string {
	if len(s) >= ruleWidth {
		return s
	}
	pad := (ruleWidth - len(s)) / 2
	return strings.Repeat(" ", pad) + s
}
