// Package resistance implements the ITTC-1957 resistance and power
// estimate for the hull at model scale.
//
// Friction follows the ITTC-1957 line Cf = 0.075/(log10 Re − 2)²,
// scaled to viscous resistance by the form factor. Wave resistance is
// an empirical Froude-band estimate: negligible below Fr 0.3, growing
// sharply through the displacement/semi-planing transition near Fr 0.4.
// Air drag uses a bluff-body Cd of 0.8 on the estimated above-water
// profile (beam × 5 cm).
package resistance

import (
	"math"

	"github.com/acuellar/bargecalc/internal/hull"
	"github.com/acuellar/bargecalc/internal/naval"
)

const (
	// minReynolds bounds the friction line's validity; it also keeps the
	// Cf denominator well away from its Re = 100 singularity.
	minReynolds = 1e4

	airDensity    = 1.225
	airDragCoeff  = 0.8
	profileHeight = 0.05
	// waveBase scales the quartic wave term: Rw = factor·waveBase·ρ·V⁴·B.
	waveBase = 0.01
)

// Point is the full resistance breakdown at one velocity. Forces in
// Newtons, power in Watts.
type Point struct {
	Velocity            float64
	Reynolds            float64
	Froude              float64
	FrictionCoefficient float64
	FrictionResistance  float64
	ViscousResistance   float64
	WaveResistance      float64
	AirResistance       float64
	TotalResistance     float64
	EffectivePower      float64
	ShaftPower          float64
}

// Curve is an ordered resistance sweep, strictly increasing in
// velocity. It is computed once and held; re-evaluating any point
// through Calculator.Compute reproduces it exactly.
type Curve []Point

// Calculator evaluates resistance for a fixed hull condition. It is a
// pure function of its inputs and safe to reuse across velocities.
type Calculator struct {
	Hull       hull.Parameters
	Geometry   hull.Geometry
	Fluid      naval.Fluid
	FormFactor float64
	// Efficiency is the total propulsive efficiency η_T in (0, 1],
	// converting effective to shaft power.
	Efficiency float64
}

// New builds a calculator at the given draft.
func New(p hull.Parameters, f naval.Fluid, draft, formFactor, efficiency float64) (*Calculator, error) {
	geom, err := p.Compute(draft)
	if err != nil {
		return nil, err
	}
	c := &Calculator{
		Hull:       p,
		Geometry:   geom,
		Fluid:      f,
		FormFactor: formFactor,
		Efficiency: efficiency,
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Calculator) validate() error {
	if err := c.Fluid.Validate(); err != nil {
		return err
	}
	if c.FormFactor < 0 {
		return &naval.DomainError{Quantity: "form factor", Value: c.FormFactor, Reason: "must not be negative"}
	}
	if c.Efficiency <= 0 || c.Efficiency > 1 {
		return &naval.DomainError{Quantity: "efficiency", Value: c.Efficiency, Reason: "must lie in (0, 1]"}
	}
	if c.Geometry.WettedArea <= 0 {
		return &naval.DomainError{Quantity: "wetted area", Value: c.Geometry.WettedArea, Reason: "degenerate at zero draft"}
	}
	return nil
}

// Compute evaluates the full breakdown at one velocity. Velocities at
// or below zero, and velocities whose Reynolds number falls under the
// friction line's validity floor, are rejected.
func (c *Calculator) Compute(velocity float64) (Point, error) {
	if err := c.validate(); err != nil {
		return Point{}, err
	}
	if velocity <= 0 || math.IsNaN(velocity) {
		return Point{}, &naval.DomainError{Quantity: "velocity", Value: velocity, Reason: "must be positive"}
	}

	re := velocity * c.Hull.TotalLength / c.Fluid.KinematicViscosity
	if re < minReynolds {
		return Point{}, &naval.DomainError{Quantity: "reynolds number", Value: re, Reason: "below ITTC-1957 validity floor"}
	}
	fr := velocity / math.Sqrt(c.Fluid.Gravity*c.Hull.TotalLength)

	cf := 0.075 / math.Pow(math.Log10(re)-2, 2)
	rf := 0.5 * c.Fluid.Density * velocity * velocity * c.Geometry.WettedArea * cf
	rv := (1 + c.FormFactor) * rf
	rw := c.waveResistance(velocity, fr)
	ra := c.airResistance(velocity)
	rt := rv + rw + ra
	pe := rt * velocity

	return Point{
		Velocity:            velocity,
		Reynolds:            re,
		Froude:              fr,
		FrictionCoefficient: cf,
		FrictionResistance:  rf,
		ViscousResistance:   rv,
		WaveResistance:      rw,
		AirResistance:       ra,
		TotalResistance:     rt,
		EffectivePower:      pe,
		ShaftPower:          pe / c.Efficiency,
	}, nil
}

// waveResistance applies the Froude-band factor to the quartic base
// term. The bands mark the displacement, transition and semi-planing
// regimes.
func (c *Calculator) waveResistance(velocity, froude float64) float64 {
	var factor float64
	switch {
	case froude < 0.3:
		factor = 0.1
	case froude < 0.4:
		factor = 0.2
	case froude < 0.5:
		factor = 0.5
	default:
		factor = 1.0
	}
	base := waveBase * c.Fluid.Density * math.Pow(velocity, 4) * c.Hull.Beam
	return factor * base
}

func (c *Calculator) airResistance(velocity float64) float64 {
	frontal := c.Hull.Beam * profileHeight
	return 0.5 * airDensity * velocity * velocity * frontal * airDragCoeff
}

// Sweep evaluates n points evenly spaced over [vmin, vmax], ordered by
// increasing velocity. Each point is independent, so a sweep is fully
// reproducible point by point.
func (c *Calculator) Sweep(vmin, vmax float64, n int) (Curve, error) {
	if vmin <= 0 {
		return nil, &naval.DomainError{Quantity: "velocity min", Value: vmin, Reason: "must be positive"}
	}
	if vmax <= vmin {
		return nil, &naval.DomainError{Quantity: "velocity max", Value: vmax, Reason: "must exceed velocity min"}
	}
	if n < 2 {
		return nil, &naval.DomainError{Quantity: "sample count", Value: float64(n), Reason: "need at least 2 samples"}
	}

	curve := make(Curve, 0, n)
	for i := 0; i < n; i++ {
		v := vmin + (vmax-vmin)*float64(i)/float64(n-1)
		pt, err := c.Compute(v)
		if err != nil {
			return nil, err
		}
		curve = append(curve, pt)
	}
	return curve, nil
}

// OptimalVelocity returns the sweep point with minimum specific
// resistance RT/V, the most economical cruise speed in the sampled
// range.
func (c Curve) OptimalVelocity() (Point, bool) {
	if len(c) == 0 {
		return Point{}, false
	}
	best := c[0]
	for _, pt := range c[1:] {
		if pt.TotalResistance/pt.Velocity < best.TotalResistance/best.Velocity {
			best = pt
		}
	}
	return best, true
}

// MaxVelocityUnder returns the fastest sampled point whose shaft power
// stays at or under the limit, and whether any point qualifies.
func (c Curve) MaxVelocityUnder(powerLimit float64) (Point, bool) {
	var best Point
	found := false
	for _, pt := range c {
		if pt.ShaftPower <= powerLimit && (!found || pt.Velocity > best.Velocity) {
			best = pt
			found = true
		}
	}
	return best, found
}
