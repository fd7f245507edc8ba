// Package flotation finds the equilibrium draft at which buoyancy
// balances vessel weight.
//
// Submerged volume is strictly increasing in draft, so the equilibrium
// is the root of a monotone function and a short bisection converges
// well under the 1 mm tolerance. Sinking is a first-class outcome
// reported as data, never an error: the draft the vessel would need
// remains meaningful for load planning even when it exceeds the hull.
package flotation

import (
	"github.com/acuellar/bargecalc/internal/hull"
	"github.com/acuellar/bargecalc/internal/naval"
)

// tolerance is the bisection convergence bound on draft, in meters.
const tolerance = 1e-5

// Result reports the flotation state for one loading condition.
// Forces are in Newtons, drafts in meters, loads in kg.
type Result struct {
	// EquilibriumDraft is the draft actually attainable, capped at the
	// hull height when the vessel cannot displace its own weight.
	EquilibriumDraft float64
	// RequiredDraft is the draft that would balance the weight, even
	// when it exceeds the hull height or the operating limit.
	RequiredDraft float64
	BuoyantForce  float64
	WeightForce   float64
	NetForce      float64
	// IsFloating is false when the required draft exceeds the draft
	// limit (or the hull height, whichever is smaller).
	IsFloating bool
	// DraftLimit is the limit the floating check was made against.
	DraftLimit float64
	// ReserveBuoyancy is the additional buoyant force available between
	// the equilibrium draft and the deck edge.
	ReserveBuoyancy float64
	// MaxAdditionalLoad is the cargo that could still be taken before
	// the hull is awash.
	MaxAdditionalLoad float64
}

// Solve computes the equilibrium draft for the given hull and loading.
// limit is the maximum operating draft; zero means the hull height.
func Solve(p hull.Parameters, m naval.MassDistribution, f naval.Fluid, limit float64) (Result, error) {
	if err := p.Validate(); err != nil {
		return Result{}, err
	}
	if err := m.Validate(); err != nil {
		return Result{}, err
	}
	if err := f.Validate(); err != nil {
		return Result{}, err
	}
	if limit < 0 || limit > p.Height {
		return Result{}, &naval.DomainError{Quantity: "draft limit", Value: limit, Reason: "must lie in [0, height]"}
	}
	if limit == 0 {
		limit = p.Height
	}

	weight := m.TotalMass() * f.Gravity

	full, err := p.Compute(p.Height)
	if err != nil {
		return Result{}, err
	}
	maxBuoyancy := f.Density * f.Gravity * full.SubmergedVolume

	required := requiredDraft(p, m, f)

	res := Result{
		RequiredDraft: required,
		WeightForce:   weight,
		DraftLimit:    limit,
		IsFloating:    required <= limit+tolerance,
	}

	if maxBuoyancy < weight {
		// Fully submerged the hull still cannot carry the weight.
		res.EquilibriumDraft = p.Height
		res.BuoyantForce = maxBuoyancy
		res.NetForce = maxBuoyancy - weight
		res.IsFloating = false
		return res, nil
	}

	res.EquilibriumDraft = bisect(p, f, weight)

	eq, err := p.Compute(res.EquilibriumDraft)
	if err != nil {
		return Result{}, err
	}
	res.BuoyantForce = f.Density * f.Gravity * eq.SubmergedVolume
	res.NetForce = res.BuoyantForce - weight

	margin := p.Height - res.EquilibriumDraft
	res.ReserveBuoyancy = p.WaterplaneArea() * margin * f.Density * f.Gravity
	res.MaxAdditionalLoad = res.ReserveBuoyancy / f.Gravity

	return res, nil
}

// requiredDraft inverts the volume formula directly. Volume is linear
// in draft for this hull form, so the inversion is exact:
// V(T) = T·(B·Ls + B·Lb/3).
func requiredDraft(p hull.Parameters, m naval.MassDistribution, f naval.Fluid) float64 {
	coeff := p.Beam*p.SternLength() + p.Beam*p.BowLength/3
	return m.TotalMass() / (f.Density * coeff)
}

// bisect finds the draft where buoyancy matches weight, kept alongside
// the algebraic inversion so the solver stays correct if the geometry
// ever grows nonlinear terms.
func bisect(p hull.Parameters, f naval.Fluid, weight float64) float64 {
	lo, hi := 0.0, p.Height
	for hi-lo > tolerance {
		mid := (lo + hi) / 2
		g, err := p.Compute(mid)
		if err != nil {
			break
		}
		if f.Density*f.Gravity*g.SubmergedVolume < weight {
			lo = mid
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2
}
