package hull

// Material describes the hull build: panel thickness and density plus a
// flat mass allowance for finish (paint, sealant).
type Material struct {
	Thickness  float64 `yaml:"thickness"`
	Density    float64 `yaml:"density"`
	FinishMass float64 `yaml:"finish_mass"`
}

// MDF4mm is the default build: 4 mm MDF panels with waterproof paint.
func MDF4mm() Material {
	return Material{
		Thickness:  0.004,
		Density:    700,
		FinishMass: 0.05,
	}
}

// StructuralMass estimates the bare hull mass from the panel areas:
// bottom, sides, transom and deck, treated as flat plates of uniform
// thickness.
func (p Parameters) StructuralMass(m Material) float64 {
	bottom := p.BottomArea()
	sides := 2*p.SternLength()*p.Height + 2*p.BowLength*p.Height
	transom := p.Beam * p.Height
	deck := p.DeckArea()

	panelVolume := (bottom + sides + transom + deck) * m.Thickness
	return panelVolume*m.Density + m.FinishMass
}
