// Package tui is the interactive terminal dashboard: edit the loading
// condition, re-run the analysis and page through summary, stability
// and resistance views.
package tui

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/acuellar/bargecalc/internal/analysis"
	"github.com/acuellar/bargecalc/internal/config"
)

var (
	cyan   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	green  = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	red    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

type screen int

const (
	screenSummary screen = iota
	screenStability
	screenResistance
	screenParams
)

var screenNames = []string{"summary", "stability", "resistance", "parameters"}

type param struct {
	name string
	unit string
	get  func(*config.Config) float64
	set  func(*config.Config, float64)
}

var params = []param{
	{"cargo mass", "kg",
		func(c *config.Config) float64 { return c.Masses.Cargo.Mass },
		func(c *config.Config, v float64) { c.Masses.Cargo.Mass = v }},
	{"cargo cg height", "m",
		func(c *config.Config) float64 { return c.Masses.Cargo.CGHeight },
		func(c *config.Config, v float64) { c.Masses.Cargo.CGHeight = v }},
	{"hull mass", "kg",
		func(c *config.Config) float64 { return c.Masses.Hull.Mass },
		func(c *config.Config, v float64) { c.Masses.Hull.Mass = v }},
	{"electronics mass", "kg",
		func(c *config.Config) float64 { return c.Masses.Electronics.Mass },
		func(c *config.Config, v float64) { c.Masses.Electronics.Mass = v }},
	{"form factor", "",
		func(c *config.Config) float64 { return c.Resistance.FormFactor },
		func(c *config.Config, v float64) { c.Resistance.FormFactor = v }},
	{"efficiency", "",
		func(c *config.Config) float64 { return c.Resistance.Efficiency },
		func(c *config.Config, v float64) { c.Resistance.Efficiency = v }},
	{"velocity max", "m/s",
		func(c *config.Config) float64 { return c.Resistance.VelocityMax },
		func(c *config.Config, v float64) { c.Resistance.VelocityMax = v }},
	{"fluid density", "kg/m³",
		func(c *config.Config) float64 { return c.Fluid.Density },
		func(c *config.Config, v float64) { c.Fluid.Density = v }},
}

type model struct {
	cfg *config.Config
	rep *analysis.Report
	err error

	screen  screen
	cursor  int
	editing bool
	editBuf string

	heelLoad   float64
	heelOffset float64
	section    *CrossSection

	width  int
	height int
}

// NewApp builds the dashboard around a configuration, running the first
// analysis immediately.
func NewApp(cfg *config.Config) *model {
	m := &model{
		cfg:        cfg,
		heelLoad:   1.0,
		heelOffset: 0.05,
		section:    NewCrossSection(),
		width:      80,
		height:     24,
	}
	m.recompute()
	return m
}

// Run starts the bubbletea program and blocks until quit.
func Run(cfg *config.Config) error {
	_, err := tea.NewProgram(NewApp(cfg), tea.WithAltScreen()).Run()
	return err
}

func (m *model) recompute() {
	m.rep, m.err = analysis.Run(m.cfg.AnalysisInput())
}

func (m *model) Init() tea.Cmd { return nil }

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.editing {
		return m.editKey(msg)
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "tab", "right", "l":
		m.screen = (m.screen + 1) % screen(len(screenNames))
		m.cursor = 0
	case "shift+tab", "left", "h":
		m.screen = (m.screen + screen(len(screenNames)) - 1) % screen(len(screenNames))
		m.cursor = 0
	case "r":
		m.recompute()
	}

	switch m.screen {
	case screenParams:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(params)-1 {
				m.cursor++
			}
		case "enter":
			m.editing = true
			m.editBuf = ""
		}
	case screenStability:
		switch msg.String() {
		case "+", "=":
			m.heelOffset += 0.01
		case "-":
			if m.heelOffset > 0.01 {
				m.heelOffset -= 0.01
			}
		}
	}
	return m, nil
}

func (m *model) editKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		var val float64
		if _, err := fmt.Sscanf(m.editBuf, "%f", &val); err == nil {
			params[m.cursor].set(m.cfg, val)
			m.recompute()
		}
		m.editing = false
		m.editBuf = ""
	case "escape":
		m.editing = false
		m.editBuf = ""
	case "backspace":
		if len(m.editBuf) > 0 {
			m.editBuf = m.editBuf[:len(m.editBuf)-1]
		}
	default:
		s := msg.String()
		if len(s) == 1 && (s[0] >= '0' && s[0] <= '9' || s[0] == '.' || s[0] == '-') {
			m.editBuf += s
		}
	}
	return m, nil
}

func (m *model) View() string {
	var b strings.Builder

	b.WriteString(cyan.Render("bargecalc") + dim.Render("  hull analysis dashboard") + "\n")
	for i, name := range screenNames {
		if screen(i) == m.screen {
			b.WriteString(white.Render(" ["+name+"] "))
		} else {
			b.WriteString(dim.Render("  " + name + "  "))
		}
	}
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(red.Render("error: "+m.err.Error()) + "\n")
		b.WriteString(dim.Render("\nfix parameters (tab → parameters), q quits\n"))
		return b.String()
	}

	switch m.screen {
	case screenSummary:
		m.viewSummary(&b)
	case screenStability:
		m.viewStability(&b)
	case screenResistance:
		m.viewResistance(&b)
	case screenParams:
		m.viewParams(&b)
	}

	b.WriteString(dim.Render("\ntab: switch view  r: rerun  q: quit\n"))
	return b.String()
}

func (m *model) viewSummary(b *strings.Builder) {
	fl := m.rep.Flotation
	st := m.rep.Stability

	status := green.Render("FLOATING")
	if !fl.IsFloating {
		status = red.Render("NOT FLOATING")
	}
	fmt.Fprintf(b, "  %s  total %.2f kg, draft limit %.1f cm\n\n",
		status, st.TotalMass, fl.DraftLimit*100)
	fmt.Fprintf(b, "  equilibrium draft  %s\n", white.Render(fmt.Sprintf("%.2f cm", fl.EquilibriumDraft*100)))
	fmt.Fprintf(b, "  required draft     %.2f cm\n", fl.RequiredDraft*100)
	fmt.Fprintf(b, "  displacement       %.2f kg\n", st.Displacement)
	fmt.Fprintf(b, "  load margin        %.2f kg\n\n", fl.MaxAdditionalLoad)

	rating := st.Rating.String()
	styled := green.Render(rating)
	switch rating {
	case "marginal":
		styled = yellow.Render(rating)
	case "unstable":
		styled = red.Render(rating)
	}
	fmt.Fprintf(b, "  GM %.2f cm (%s)   KB %.2f  BM %.2f  KG %.2f cm\n",
		st.GM*100, styled, st.KB*100, st.BM*100, st.KG*100)
	if m.rep.HasOptimal {
		fmt.Fprintf(b, "  optimal cruise %.2f m/s, PE %.3f W\n",
			m.rep.Optimal.Velocity, m.rep.Optimal.EffectivePower)
	}
}

func (m *model) viewStability(b *strings.Builder) {
	st := m.rep.Stability
	heel := st.HeelAngle(m.heelLoad, m.heelOffset)

	fmt.Fprintf(b, "  %.1f kg load at %.0f cm offset (+/- adjusts)\n", m.heelLoad, m.heelOffset*100)
	if math.IsNaN(heel) {
		b.WriteString(red.Render("  UNSTABLE: no positive righting arm\n"))
		heel = 0
	} else {
		style := green
		if heel >= 10 {
			style = red
		} else if heel >= st.MaxSafeHeel() {
			style = yellow
		}
		fmt.Fprintf(b, "  heel %s (max safe %.0f°)\n", style.Render(fmt.Sprintf("%.2f°", heel)), st.MaxSafeHeel())
	}
	b.WriteByte('\n')
	b.WriteString(m.section.Render(m.rep, heel))
	fmt.Fprintf(b, "\n  righting moment @ %.1f°: %.3f N·m\n", heel, st.RightingMoment(heel))
}

func (m *model) viewResistance(b *strings.Builder) {
	curve := m.rep.Curve
	if len(curve) == 0 {
		b.WriteString(dim.Render("  no curve\n"))
		return
	}

	data := make([]float64, len(curve))
	for i, pt := range curve {
		data[i] = pt.TotalResistance
	}
	b.WriteString(asciigraph.Plot(data,
		asciigraph.Height(9),
		asciigraph.Width(64),
		asciigraph.Caption(fmt.Sprintf("total resistance (N), %.2f–%.2f m/s",
			curve[0].Velocity, curve[len(curve)-1].Velocity)),
	))
	b.WriteString("\n\n")

	for i, pt := range curve {
		data[i] = pt.ShaftPower
	}
	b.WriteString(asciigraph.Plot(data,
		asciigraph.Height(9),
		asciigraph.Width(64),
		asciigraph.Caption("shaft power (W)"),
	))
	b.WriteByte('\n')
}

func (m *model) viewParams(b *strings.Builder) {
	for i, p := range params {
		cursor := "  "
		if i == m.cursor {
			cursor = cyan.Render("> ")
		}
		value := fmt.Sprintf("%.4g %s", p.get(m.cfg), p.unit)
		if m.editing && i == m.cursor {
			value = yellow.Render(m.editBuf + "_")
		}
		fmt.Fprintf(b, "%s%-18s %s\n", cursor, p.name, value)
	}
	b.WriteString(dim.Render("\nenter: edit  esc: cancel\n"))
}
