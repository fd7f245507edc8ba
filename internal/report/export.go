package report

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/acuellar/bargecalc/internal/analysis"
)

// WriteJSON emits the complete report as indented JSON.
func WriteJSON(w io.Writer, rep *analysis.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}

// csvHeader matches the original study's export column set, including
// shaft power at the two bracketing efficiencies.
var csvHeader = []string{
	"velocity_ms", "reynolds", "froude", "cf",
	"rf_n", "rv_n", "rw_n", "ra_n", "rt_n",
	"pe_w", "pshaft_50_w", "pshaft_40_w",
}

// WriteCSV emits the resistance curve as CSV.
func WriteCSV(w io.Writer, rep *analysis.Report) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, pt := range rep.Curve {
		row := []string{
			fv(pt.Velocity), fv(pt.Reynolds), fv(pt.Froude), fv(pt.FrictionCoefficient),
			fv(pt.FrictionResistance), fv(pt.ViscousResistance), fv(pt.WaveResistance),
			fv(pt.AirResistance), fv(pt.TotalResistance),
			fv(pt.EffectivePower), fv(pt.EffectivePower / 0.5), fv(pt.EffectivePower / 0.4),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func fv(v float64) string {
	return strconv.FormatFloat(v, 'g', 8, 64)
}
