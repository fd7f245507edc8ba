package naval

import (
	"fmt"
)

// Fluid holds the properties of the water the vessel operates in.
// All values are SI: kg/m³, m²/s, m/s².
type Fluid struct {
	Density            float64 `yaml:"density"`
	KinematicViscosity float64 `yaml:"kinematic_viscosity"`
	Gravity            float64 `yaml:"gravity"`
}

// FreshWater returns fluid properties for fresh water at ~20 °C.
func FreshWater() Fluid {
	return Fluid{
		Density:            1000.0,
		KinematicViscosity: 1.004e-6,
		Gravity:            9.81,
	}
}

// SeaWater returns fluid properties for standard sea water at ~15 °C.
func SeaWater() Fluid {
	return Fluid{
		Density:            1025.0,
		KinematicViscosity: 1.188e-6,
		Gravity:            9.81,
	}
}

func (f Fluid) Validate() error {
	if f.Density <= 0 {
		return &DomainError{Quantity: "density", Value: f.Density, Reason: "must be positive"}
	}
	if f.KinematicViscosity <= 0 {
		return &DomainError{Quantity: "kinematic_viscosity", Value: f.KinematicViscosity, Reason: "must be positive"}
	}
	if f.Gravity <= 0 {
		return &DomainError{Quantity: "gravity", Value: f.Gravity, Reason: "must be positive"}
	}
	return nil
}

// MassItem is a single mass component with its vertical center of gravity
// measured from the keel.
type MassItem struct {
	Mass     float64 `yaml:"mass"`
	CGHeight float64 `yaml:"cg_height"`
}

// MassDistribution describes the vessel's mass budget: structure,
// electronics (controller, battery, motors) and payload.
type MassDistribution struct {
	Hull        MassItem `yaml:"hull"`
	Electronics MassItem `yaml:"electronics"`
	Cargo       MassItem `yaml:"cargo"`
}

// TotalMass returns the sum of all components in kg.
func (m MassDistribution) TotalMass() float64 {
	return m.Hull.Mass + m.Electronics.Mass + m.Cargo.Mass
}

// KG returns the combined vertical center of gravity above the keel,
// the mass-weighted average of the component CG heights.
func (m MassDistribution) KG() float64 {
	total := m.TotalMass()
	if total <= 0 {
		return 0
	}
	moment := m.Hull.Mass*m.Hull.CGHeight +
		m.Electronics.Mass*m.Electronics.CGHeight +
		m.Cargo.Mass*m.Cargo.CGHeight
	return moment / total
}

// WithCargo returns a copy of the distribution with the cargo mass
// replaced, keeping the cargo CG height.
func (m MassDistribution) WithCargo(mass float64) MassDistribution {
	m.Cargo.Mass = mass
	return m
}

func (m MassDistribution) Validate() error {
	for _, item := range []struct {
		name string
		MassItem
	}{
		{"hull", m.Hull},
		{"electronics", m.Electronics},
		{"cargo", m.Cargo},
	} {
		if item.Mass < 0 {
			return &DomainError{Quantity: item.name + " mass", Value: item.Mass, Reason: "must not be negative"}
		}
		if item.CGHeight < 0 {
			return &DomainError{Quantity: item.name + " cg height", Value: item.CGHeight, Reason: "must not be negative"}
		}
	}
	if m.TotalMass() <= 0 {
		return &DomainError{Quantity: "total mass", Value: m.TotalMass(), Reason: "must be positive"}
	}
	return nil
}

// GeometryError reports an invalid hull parameter. The analysis cannot
// proceed past it.
type GeometryError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *GeometryError) Error() string {
	return fmt.Sprintf("invalid hull geometry: %s = %g (%s)", e.Field, e.Value, e.Reason)
}

// DomainError reports a numeric input outside the domain of a
// calculation, e.g. a non-positive velocity fed to the friction line.
// Inputs are rejected before use, never silently clamped.
type DomainError struct {
	Quantity string
	Value    float64
	Reason   string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("domain error: %s = %g (%s)", e.Quantity, e.Value, e.Reason)
}
