package report

import (
	"fmt"
	"sort"
	"strings"
)

// XY is one sample of a plotted series.
type XY struct {
	X, Y float64
}

// CurveSVG renders one or more series as an SVG line chart on a dark
// background, used for the resistance and power plots.
func CurveSVG(series map[string][]XY, width, height int) string {
	if len(series) == 0 {
		return ""
	}

	minX, maxX, minY, maxY := bounds(series)
	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.05
	maxX += rangeX * 0.05
	minY -= rangeY * 0.05
	maxY += rangeY * 0.05
	rangeX = maxX - minX
	rangeY = maxY - minY

	colors := []string{"#00ff88", "#4488ff", "#ff4466", "#ffcc00", "#cc66ff"}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	names := sortedKeys(series)
	for i, name := range names {
		points := series[name]
		if len(points) < 2 {
			continue
		}
		color := colors[i%len(colors)]

		sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5" d="M`, color))
		for j, p := range points {
			x := (p.X - minX) / rangeX * float64(width)
			y := float64(height) - (p.Y-minY)/rangeY*float64(height)
			if j == 0 {
				sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
			} else {
				sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
			}
		}
		sb.WriteString("\"/>\n")
		sb.WriteString(fmt.Sprintf(`<text x="8" y="%d" fill="%s" font-family="monospace" font-size="12">%s</text>
`, 16+i*16, color, name))
	}

	sb.WriteString("</svg>")
	return sb.String()
}

func bounds(series map[string][]XY) (minX, maxX, minY, maxY float64) {
	first := true
	for _, points := range series {
		for _, p := range points {
			if first {
				minX, maxX, minY, maxY = p.X, p.X, p.Y, p.Y
				first = false
				continue
			}
			if p.X < minX {
				minX = p.X
			}
			if p.X > maxX {
				maxX = p.X
			}
			if p.Y < minY {
				minY = p.Y
			}
			if p.Y > maxY {
				maxY = p.Y
			}
		}
	}
	return
}

func sortedKeys(series map[string][]XY) []string {
	names := make([]string, 0, len(series))
	for name := range series {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
