// Package stability computes transverse metacentric stability for the
// two-section hull at its equilibrium draft.
//
// The chain is the classical one: KB from the section-weighted buoyancy
// centroid, BM = I/∇ from the waterplane inertia, GM = KB + BM − KG.
// The waterplane inertia integrates the pentagonal waterplane section by
// section (bow triangle + stern rectangle) rather than treating it as a
// single full-beam rectangle; see [RectangularBM] for the coarser
// approximation.
package stability

import (
	"math"

	"github.com/acuellar/bargecalc/internal/flotation"
	"github.com/acuellar/bargecalc/internal/hull"
	"github.com/acuellar/bargecalc/internal/naval"
)

// DefaultGMThreshold is the metacentric height above which the vessel
// is rated stable, in meters.
const DefaultGMThreshold = 0.05

// Rating classifies GM against the stability threshold.
type Rating int

const (
	Unstable Rating = iota
	Marginal
	Stable
)

func (r Rating) String() string {
	switch r {
	case Stable:
		return "stable"
	case Marginal:
		return "marginal"
	default:
		return "unstable"
	}
}

// Result holds the stability figures for one loading condition.
// Heights are meters above the keel, displacement is kg.
type Result struct {
	Draft        float64
	KB           float64
	BM           float64
	KG           float64
	GM           float64
	Displacement float64
	TotalMass    float64
	Rating       Rating
	GMThreshold  float64

	gravity float64
}

// Options tune the analysis. Zero values select the defaults.
type Options struct {
	// GMThreshold rates GM >= threshold stable, 0 < GM < threshold
	// marginal. Zero means DefaultGMThreshold.
	GMThreshold float64
	// Draft overrides the equilibrium draft when positive, for what-if
	// checks at a fixed waterline.
	Draft float64
}

// Analyze computes stability at the equilibrium draft resolved by the
// flotation solver (or at opts.Draft when set). A sunk vessel is still
// analyzed at its capped draft; the figures stay meaningful for load
// planning.
func Analyze(p hull.Parameters, m naval.MassDistribution, f naval.Fluid, opts Options) (Result, error) {
	if opts.GMThreshold == 0 {
		opts.GMThreshold = DefaultGMThreshold
	}
	if opts.GMThreshold < 0 {
		return Result{}, &naval.DomainError{Quantity: "gm threshold", Value: opts.GMThreshold, Reason: "must not be negative"}
	}

	draft := opts.Draft
	if draft == 0 {
		fl, err := flotation.Solve(p, m, f, 0)
		if err != nil {
			return Result{}, err
		}
		draft = fl.EquilibriumDraft
	}

	geom, err := p.Compute(draft)
	if err != nil {
		return Result{}, err
	}
	if geom.SubmergedVolume <= 0 {
		return Result{}, &naval.DomainError{Quantity: "submerged volume", Value: geom.SubmergedVolume, Reason: "degenerate at zero draft"}
	}
	if geom.WaterplaneArea <= 0 {
		return Result{}, &naval.DomainError{Quantity: "waterplane area", Value: geom.WaterplaneArea, Reason: "degenerate waterplane"}
	}

	bm := waterplaneInertia(p) / geom.SubmergedVolume
	kg := m.KG()
	gm := geom.KB + bm - kg

	res := Result{
		Draft:        draft,
		KB:           geom.KB,
		BM:           bm,
		KG:           kg,
		GM:           gm,
		Displacement: f.Density * geom.SubmergedVolume,
		TotalMass:    m.TotalMass(),
		Rating:       classify(gm, opts.GMThreshold),
		GMThreshold:  opts.GMThreshold,
		gravity:      f.Gravity,
	}
	return res, nil
}

func classify(gm, threshold float64) Rating {
	switch {
	case gm >= threshold:
		return Stable
	case gm > 0:
		return Marginal
	default:
		return Unstable
	}
}

// waterplaneInertia sums the transverse second moments of the two
// waterplane sections about the centerline: the bow triangle and the
// stern rectangle.
func waterplaneInertia(p hull.Parameters) float64 {
	bow := p.Beam * math.Pow(p.BowLength, 3) / 36
	stern := p.SternLength() * math.Pow(p.Beam, 3) / 12
	return bow + stern
}

// RectangularBM returns the single-rectangle shortcut BM = (Lw·B³/12)/∇,
// treating the full waterplane as a rectangle of the full beam. It
// overestimates the pentagonal waterplane slightly and is kept for
// comparison only.
func RectangularBM(p hull.Parameters, geom hull.Geometry) (float64, error) {
	if geom.SubmergedVolume <= 0 {
		return 0, &naval.DomainError{Quantity: "submerged volume", Value: geom.SubmergedVolume, Reason: "degenerate at zero draft"}
	}
	inertia := p.TotalLength * math.Pow(p.Beam, 3) / 12
	return inertia / geom.SubmergedVolume, nil
}

// HeelAngle estimates the steady heel, in degrees, produced by placing
// loadMass kg at offset meters off the centerline. Small-angle
// approximation: tan θ ≈ m·d / (Δ·GM). NaN when GM is not positive;
// the vessel has no righting arm to settle against.
func (r Result) HeelAngle(loadMass, offset float64) float64 {
	if r.GM <= 0 {
		return math.NaN()
	}
	tan := (loadMass * offset) / (r.TotalMass * r.GM)
	return math.Atan(tan) * 180 / math.Pi
}

// RightingMoment returns the restoring moment in N·m at the given heel
// angle, linear in sin θ (valid for small angles).
func (r Result) RightingMoment(heelDeg float64) float64 {
	rad := heelDeg * math.Pi / 180
	return r.Displacement * r.GM * math.Sin(rad) * r.gravity
}

// MaxSafeHeel gives the empirical safe-heel budget for small craft as a
// step function of GM.
func (r Result) MaxSafeHeel() float64 {
	switch {
	case r.GM <= 0:
		return 0
	case r.GM < 0.03:
		return 5
	case r.GM < 0.05:
		return 8
	default:
		return 12
	}
}

// GMPoint pairs a cargo load with the resulting metacentric height.
type GMPoint struct {
	Cargo float64
	GM    float64
}

// GMCurve sweeps the cargo mass over [min, max] at fixed cargo CG
// height and reports GM at each load's own equilibrium draft.
func GMCurve(p hull.Parameters, m naval.MassDistribution, f naval.Fluid, min, max float64, n int) ([]GMPoint, error) {
	if n < 2 {
		return nil, &naval.DomainError{Quantity: "sample count", Value: float64(n), Reason: "need at least 2 samples"}
	}
	if min < 0 || max <= min {
		return nil, &naval.DomainError{Quantity: "cargo range", Value: min, Reason: "need 0 <= min < max"}
	}
	curve := make([]GMPoint, 0, n)
	for i := 0; i < n; i++ {
		cargo := min + (max-min)*float64(i)/float64(n-1)
		res, err := Analyze(p, m.WithCargo(cargo), f, Options{})
		if err != nil {
			return nil, err
		}
		curve = append(curve, GMPoint{Cargo: cargo, GM: res.GM})
	}
	return curve, nil
}
