// Package hull models the hybrid pyramidal-bow / rectangular-stern hull
// and derives its hydrostatic properties as pure functions of draft.
//
// The hull is decomposed into two sections along its length: a pyramidal
// bow whose cross-section tapers linearly from a point at the bow tip to
// the full beam×draft rectangle at the bow/stern junction, and a
// rectangular prism stern with constant cross-section. All quantities are
// SI (meters, m², m³).
package hull

import (
	"math"

	"github.com/acuellar/bargecalc/internal/naval"
)

// Parameters are the fixed hull dimensions, constructed once per
// analysis. SternLength is derived as TotalLength - BowLength.
type Parameters struct {
	TotalLength float64 `yaml:"total_length"`
	Beam        float64 `yaml:"beam"`
	Height      float64 `yaml:"height"`
	BowLength   float64 `yaml:"bow_length"`
	DesignDraft float64 `yaml:"design_draft"`
}

// Validate checks the dimensional invariants. A failed check is fatal to
// the analysis.
func (p Parameters) Validate() error {
	checks := []struct {
		field string
		value float64
	}{
		{"total_length", p.TotalLength},
		{"beam", p.Beam},
		{"height", p.Height},
		{"bow_length", p.BowLength},
		{"design_draft", p.DesignDraft},
	}
	for _, c := range checks {
		if c.value <= 0 || math.IsNaN(c.value) || math.IsInf(c.value, 0) {
			return &naval.GeometryError{Field: c.field, Value: c.value, Reason: "must be a positive finite length"}
		}
	}
	if p.BowLength >= p.TotalLength {
		return &naval.GeometryError{Field: "bow_length", Value: p.BowLength, Reason: "must be shorter than total_length"}
	}
	if p.DesignDraft > p.Height {
		return &naval.GeometryError{Field: "design_draft", Value: p.DesignDraft, Reason: "exceeds hull height"}
	}
	return nil
}

// SternLength returns the length of the rectangular stern section.
func (p Parameters) SternLength() float64 {
	return p.TotalLength - p.BowLength
}

// Geometry is the hydrostatic state of the hull at one draft. KB is the
// vertical center of buoyancy above the keel.
type Geometry struct {
	Draft           float64
	SubmergedVolume float64
	WettedArea      float64
	WaterplaneArea  float64
	KB              float64
}

// Compute derives the geometry at the given draft. Draft must lie in
// [0, Height]; anything else is a domain error, not a clamp.
func (p Parameters) Compute(draft float64) (Geometry, error) {
	if err := p.Validate(); err != nil {
		return Geometry{}, err
	}
	if draft < 0 || math.IsNaN(draft) {
		return Geometry{}, &naval.DomainError{Quantity: "draft", Value: draft, Reason: "must not be negative"}
	}
	if draft > p.Height {
		return Geometry{}, &naval.DomainError{Quantity: "draft", Value: draft, Reason: "exceeds hull height"}
	}
	if draft == 0 {
		return Geometry{}, nil
	}

	bowVol := p.bowVolume(draft)
	sternVol := p.SternLength() * p.Beam * draft

	// Pyramid centroid sits at 1/4 of the section height from the base,
	// not the 1/3 of a plane triangle. The prism centroid is at T/2.
	bowKB := 0.25 * draft
	sternKB := 0.5 * draft

	total := bowVol + sternVol
	kb := (bowVol*bowKB + sternVol*sternKB) / total

	return Geometry{
		Draft:           draft,
		SubmergedVolume: total,
		WettedArea:      p.wettedArea(draft),
		WaterplaneArea:  p.WaterplaneArea(),
		KB:              kb,
	}, nil
}

// bowVolume is the submerged pyramid: base beam×draft at the junction,
// apex at the bow tip, so V = (1/3)·(B·T)·Lb.
func (p Parameters) bowVolume(draft float64) float64 {
	return (1.0 / 3.0) * p.Beam * draft * p.BowLength
}

// wettedArea sums the stern prism faces with the triangulated bow
// panels: two lateral triangles along the slant edges and a triangular
// bottom panel lengthened by the keel slope.
func (p Parameters) wettedArea(draft float64) float64 {
	sternBottom := p.SternLength() * p.Beam
	sternSides := 2 * p.SternLength() * draft
	transom := p.Beam * draft

	slantEdge := math.Sqrt(p.BowLength*p.BowLength + (p.Beam/2)*(p.Beam/2))
	bowSides := 2 * 0.5 * slantEdge * draft
	bowBottom := 0.5 * p.Beam * math.Sqrt(p.BowLength*p.BowLength+draft*draft)

	return sternBottom + sternSides + transom + bowSides + bowBottom
}

// WaterplaneArea returns the pentagonal waterplane: the bow triangle
// plus the stern rectangle. The taper runs to a point in plan view, so
// the area does not depend on draft.
func (p Parameters) WaterplaneArea() float64 {
	bow := 0.5 * p.Beam * p.BowLength
	stern := p.SternLength() * p.Beam
	return bow + stern
}

// DeckArea returns the pentagonal deck area (identical plan shape to
// the waterplane).
func (p Parameters) DeckArea() float64 {
	return p.WaterplaneArea()
}

// BottomArea returns the full keel plan area.
func (p Parameters) BottomArea() float64 {
	return p.TotalLength * p.Beam
}

// BlockCoefficient returns Cb = V / (L·B·T) at the given draft.
func (p Parameters) BlockCoefficient(draft float64) (float64, error) {
	if draft <= 0 {
		return 0, &naval.DomainError{Quantity: "draft", Value: draft, Reason: "must be positive"}
	}
	g, err := p.Compute(draft)
	if err != nil {
		return 0, err
	}
	return g.SubmergedVolume / (p.TotalLength * p.Beam * draft), nil
}

// WaterplaneCoefficient returns Cwp = Aw / (L·B).
func (p Parameters) WaterplaneCoefficient() float64 {
	return p.WaterplaneArea() / (p.TotalLength * p.Beam)
}

// DraftCurve samples geometry at n evenly spaced drafts in (0, max],
// for hydrostatic curve plots.
func (p Parameters) DraftCurve(max float64, n int) ([]Geometry, error) {
	if n < 2 {
		return nil, &naval.DomainError{Quantity: "sample count", Value: float64(n), Reason: "need at least 2 samples"}
	}
	if max <= 0 || max > p.Height {
		return nil, &naval.DomainError{Quantity: "max draft", Value: max, Reason: "must lie in (0, height]"}
	}
	curve := make([]Geometry, 0, n)
	for i := 1; i <= n; i++ {
		d := max * float64(i) / float64(n)
		g, err := p.Compute(d)
		if err != nil {
			return nil, err
		}
		curve = append(curve, g)
	}
	return curve, nil
}
