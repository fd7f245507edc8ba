package tui

import (
	"math"
	"strings"

	"github.com/acuellar/bargecalc/internal/analysis"
)

const (
	canvasWidth  = 58
	canvasHeight = 16
)

// CrossSection draws the midship section heeled by the given angle,
// with the waterline and the G/B/M stability centers marked. The
// drawing is schematic: beam and height are scaled to the canvas, the
// hull outline rotates about the waterline center.
type CrossSection struct {
	canvas [][]rune
}

func NewCrossSection() *CrossSection {
	canvas := make([][]rune, canvasHeight)
	for i := range canvas {
		canvas[i] = make([]rune, canvasWidth)
	}
	return &CrossSection{canvas: canvas}
}

func (c *CrossSection) Render(rep *analysis.Report, heelDeg float64) string {
	c.clear()

	p := rep.Input.Hull
	scale := float64(canvasWidth-16) / p.Beam
	vscale := float64(canvasHeight-4) / p.Height

	cx := canvasWidth / 2
	waterRow := canvasHeight / 2

	// Waterline across the full canvas.
	for x := 0; x < canvasWidth; x++ {
		c.set(x, waterRow, '~')
	}

	draft := rep.Flotation.EquilibriumDraft
	heel := heelDeg * math.Pi / 180

	// Hull corners in meters relative to the waterline center,
	// y positive down.
	halfBeam := p.Beam / 2
	corners := [4][2]float64{
		{-halfBeam, draft},            // keel port
		{halfBeam, draft},             // keel starboard
		{halfBeam, draft - p.Height},  // deck starboard
		{-halfBeam, draft - p.Height}, // deck port
	}

	px := make([]int, 4)
	py := make([]int, 4)
	for i, corner := range corners {
		// Rotate about the waterline center, then scale to cells.
		rx := corner[0]*math.Cos(heel) - corner[1]*math.Sin(heel)
		ry := corner[0]*math.Sin(heel) + corner[1]*math.Cos(heel)
		px[i] = cx + int(rx*scale)
		py[i] = waterRow + int(ry*vscale)
	}
	for i := 0; i < 4; i++ {
		j := (i + 1) % 4
		c.line(px[i], py[i], px[j], py[j], '#')
	}

	// Stability centers on the upright centerline, keel at draft below
	// the waterline.
	st := rep.Stability
	c.mark(cx, waterRow+int((draft-st.KB)*vscale), 'B')
	c.mark(cx, waterRow+int((draft-st.KG)*vscale), 'G')
	c.mark(cx, waterRow+int((draft-st.KB-st.BM)*vscale), 'M')

	var b strings.Builder
	for _, row := range c.canvas {
		b.WriteString(string(row))
		b.WriteByte('\n')
	}
	return b.String()
}

func (c *CrossSection) clear() {
	for y := range c.canvas {
		for x := range c.canvas[y] {
			c.canvas[y][x] = ' '
		}
	}
}

func (c *CrossSection) set(x, y int, r rune) {
	if x >= 0 && x < canvasWidth && y >= 0 && y < canvasHeight {
		c.canvas[y][x] = r
	}
}

func (c *CrossSection) mark(x, y int, r rune) {
	c.set(x, y, r)
}

func (c *CrossSection) line(x1, y1, x2, y2 int, r rune) {
	dx := abs(x2 - x1)
	dy := abs(y2 - y1)
	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}
	err := dx - dy
	for {
		c.set(x1, y1, r)
		if x1 == x2 && y1 == y2 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
