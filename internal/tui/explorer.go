// Package tui provides an interactive trap explorer: tweak field
// parameters and watch the potential profile respond. It re-evaluates
// the static field model only; nothing is integrated in time.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/trapsim/internal/atom"
	"github.com/san-kum/trapsim/internal/config"
	"github.com/san-kum/trapsim/internal/field"
	"github.com/san-kum/trapsim/internal/profile"
)

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

// knob is one adjustable config parameter.
type knob struct {
	label string
	get   func(*config.Config) float64
	set   func(*config.Config, float64)
}

func buildKnobs(cfg *config.Config) []knob {
	var knobs []knob
	for i := range cfg.Fields {
		i := i
		switch cfg.Fields[i].Kind {
		case "gaussian":
			knobs = append(knobs,
				knob{
					label: fmt.Sprintf("beam %d power [W]", i),
					get:   func(c *config.Config) float64 { return c.Fields[i].Power },
					set:   func(c *config.Config, v float64) { c.Fields[i].Power = v },
				},
				knob{
					label: fmt.Sprintf("beam %d waist [m]", i),
					get:   func(c *config.Config) float64 { return c.Fields[i].Waist },
					set:   func(c *config.Config, v float64) { c.Fields[i].Waist = v },
				},
			)
		case "harmonic":
			knobs = append(knobs,
				knob{
					label: fmt.Sprintf("trap %d omega_x [rad/s]", i),
					get:   func(c *config.Config) float64 { return c.Fields[i].OmegaX },
					set:   func(c *config.Config, v float64) { c.Fields[i].OmegaX = v },
				},
				knob{
					label: fmt.Sprintf("trap %d omega_y [rad/s]", i),
					get:   func(c *config.Config) float64 { return c.Fields[i].OmegaY },
					set:   func(c *config.Config, v float64) { c.Fields[i].OmegaY = v },
				},
				knob{
					label: fmt.Sprintf("trap %d omega_z [rad/s]", i),
					get:   func(c *config.Config) float64 { return c.Fields[i].OmegaZ },
					set:   func(c *config.Config, v float64) { c.Fields[i].OmegaZ = v },
				},
			)
		}
	}
	return knobs
}

type model struct {
	cfg    *config.Config
	sp     atom.Species
	bound  *field.Bound
	knobs  []knob
	cursor int
	axis   profile.Axis
	span   float64
	err    error
	width  int
	height int
}

// NewExplorer builds the explorer TUI model for one trap config.
func NewExplorer(cfg *config.Config) (tea.Model, error) {
	sp, err := atom.ByName(cfg.Species)
	if err != nil {
		return nil, err
	}
	fields, err := config.BuildFields(cfg)
	if err != nil {
		return nil, err
	}
	return &model{
		cfg:   cfg,
		sp:    sp,
		bound: field.Combine(fields...),
		knobs: buildKnobs(cfg),
		axis:  profile.AxisY,
		span:  6 * cfg.Cloud.Radius,
		width: 80, height: 24,
	}, nil
}

// Run starts the explorer program.
func Run(cfg *config.Config) error {
	m, err := NewExplorer(cfg)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

func (m *model) Init() tea.Cmd { return nil }

func (m *model) rebuild() {
	fields, err := config.BuildFields(m.cfg)
	if err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.bound = field.Combine(fields...)
}

func (m *model) adjust(factor float64) {
	if len(m.knobs) == 0 {
		return
	}
	k := m.knobs[m.cursor]
	k.set(m.cfg, k.get(m.cfg)*factor)
	m.rebuild()
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.knobs)-1 {
				m.cursor++
			}
		case "left", "h":
			m.adjust(0.9)
		case "right", "l":
			m.adjust(1.1)
		case "x":
			m.axis = profile.AxisX
		case "y":
			m.axis = profile.AxisY
		case "z":
			m.axis = profile.AxisZ
		case "+":
			m.span *= 2
		case "-":
			m.span /= 2
		}
	}
	return m, nil
}

func (m *model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("trapsim explorer — %s", m.sp.Name)))
	b.WriteString("\n\n")

	for i, k := range m.knobs {
		marker := "  "
		style := labelStyle
		if i == m.cursor {
			marker = cursorStyle.Render("> ")
			style = cursorStyle
		}
		b.WriteString(fmt.Sprintf("%s%s %s\n", marker,
			style.Render(fmt.Sprintf("%-24s", k.label)),
			labelStyle.Render(fmt.Sprintf("%.4g", k.get(m.cfg)))))
	}

	if m.err != nil {
		b.WriteString("\n" + errStyle.Render(m.err.Error()) + "\n")
		return b.String()
	}

	opts := profile.Options{Axis: m.axis, Span: m.span, Points: 64}
	_, values := profile.Potential(m.bound, m.sp, opts)
	profile.ToMicroKelvin(values)

	depth := profile.Depth(m.bound, m.sp, [3]float64{}, 0) / atom.Kb * 1e6
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("potential along %s (span %.3g m) — center %.3g uK",
		m.axis, m.span, depth)))
	b.WriteString("\n\n")
	b.WriteString(profile.Render(values, 12, "uK"))
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render("arrows adjust - x/y/z axis - +/- span - q quit"))
	return b.String()
}
