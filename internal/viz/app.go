package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/bowshock/internal/energetics"
	"github.com/san-kum/bowshock/internal/params"
	"github.com/san-kum/bowshock/internal/velocity"
	"github.com/san-kum/bowshock/internal/wake"
)

const (
	tabPV = iota
	tabWake
	tabShock
	tabShape
	tabCount
)

var tabNames = [tabCount]string{"pv model", "wake", "shock front", "shell"}

// Model is the bubbletea state: the single mutable parameter snapshot
// lives here, at the application edge, and is handed to the physics
// packages by value. Every keystroke that changes a parameter rebuilds
// whatever the active view needs from the fresh snapshot.
type Model struct {
	snap    params.Snapshot
	cursor  int
	tab     int
	editing bool
	editBuf string
	width   int
	height  int
}

func New(snap params.Snapshot) Model {
	return Model{snap: snap, width: 100, height: 32}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.editing {
		switch msg.String() {
		case "enter":
			var val float64
			if _, err := fmt.Sscanf(m.editBuf, "%f", &val); err == nil {
				m.snap, _ = m.snap.Set(params.Names[m.cursor], val)
			}
			m.editing, m.editBuf = false, ""
		case "esc":
			m.editing, m.editBuf = false, ""
		case "backspace":
			if len(m.editBuf) > 0 {
				m.editBuf = m.editBuf[:len(m.editBuf)-1]
			}
		default:
			if len(msg.String()) == 1 {
				c := msg.String()[0]
				if (c >= '0' && c <= '9') || c == '.' || c == '-' {
					m.editBuf += string(c)
				}
			}
		}
		return m, nil
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(params.Names)-1 {
			m.cursor++
		}
	case "left", "h":
		m.nudge(-1)
	case "right", "l":
		m.nudge(+1)
	case "tab":
		m.tab = (m.tab + 1) % tabCount
	case "shift+tab":
		m.tab = (m.tab + tabCount - 1) % tabCount
	case "enter":
		cur, _ := m.snap.Get(params.Names[m.cursor])
		m.editing, m.editBuf = true, fmt.Sprintf("%.2f", cur)
	case "r":
		m.snap = params.Defaults()
	}
	return m, nil
}

func (m *Model) nudge(dir float64) {
	name := params.Names[m.cursor]
	cur, err := m.snap.Get(name)
	if err != nil {
		return
	}
	step := params.Bounds[name].Step
	m.snap, _ = m.snap.Set(name, cur+dir*step)
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString("\n  " + headerStyle.Render("BOWSHOCK") + "  " +
		subStyle.Render("runaway black hole bow shock & wake lab") + "\n\n")

	b.WriteString("  " + m.viewTabs() + "\n\n")

	left := m.viewParams()
	right := m.viewPlot() + "\n" + m.viewDashboard()

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, statsStyle.Render(right)))
	b.WriteString(helpStyle.Render("\n  j/k select  h/l adjust  enter edit  tab view  r reset  q quit") + "\n")
	return b.String()
}

func (m Model) viewTabs() string {
	var parts []string
	for i, name := range tabNames {
		if i == m.tab {
			parts = append(parts, tabOnStyle.Render(name))
		} else {
			parts = append(parts, tabStyle.Render(name))
		}
	}
	return strings.Join(parts, " ")
}

func (m Model) viewParams() string {
	var b strings.Builder
	for i, name := range params.Names {
		val, _ := m.snap.Get(name)
		valStr := fmt.Sprintf("%9.2f", val)
		if m.editing && i == m.cursor {
			valStr = fmt.Sprintf("%9s", m.editBuf+"_")
		}
		if i == m.cursor {
			b.WriteString(fmt.Sprintf("  %s %s %s\n",
				cursorStyle.Render("▸"),
				activeStyle.Render(fmt.Sprintf("%-12s", name)),
				valueStyle.Render(valStr)))
		} else {
			b.WriteString(fmt.Sprintf("    %s %s\n",
				labelStyle.Render(name),
				dimStyle.Render(valStr)))
		}
	}
	// R0 is derived, never edited directly; shown with the sliders so
	// the R_c -> R0 coupling is visible while dragging.
	b.WriteString(fmt.Sprintf("\n    %s %s\n",
		labelStyle.Render("r_0 (derived)"),
		derivStyle.Render(fmt.Sprintf("%9.2f", m.snap.Standoff()))))
	return b.String()
}

func (m Model) viewPlot() string {
	plotW := m.width - 50
	if plotW < 40 {
		plotW = 40
	}
	plotH := 12

	switch m.tab {
	case tabPV:
		pts := velocity.Curve(m.snap, velocity.DefaultCurvePoints)
		data := make([]float64, len(pts))
		for i, p := range pts {
			data[i] = p.V
		}
		return graphStyle.Render(asciigraph.Plot(data,
			asciigraph.Height(plotH), asciigraph.Width(plotW),
			asciigraph.Caption(fmt.Sprintf("LOS velocity [km/s] over x ∈ [%+.1f, %+.1f] kpc", -m.snap.RingRadius, m.snap.RingRadius))))
	case tabWake:
		pts := wake.Curve(m.snap, wake.DefaultCurvePoints)
		data := make([]float64, len(pts))
		for i, p := range pts {
			data[i] = p.V
		}
		return graphStyle.Render(asciigraph.Plot(data,
			asciigraph.Height(plotH), asciigraph.Width(plotW),
			asciigraph.Caption(fmt.Sprintf("wake velocity [km/s] over r ∈ [0, %.0f] kpc", m.snap.RStar))))
	case tabShock:
		pts := wake.ShockCurve(m.snap, wake.DefaultCurvePoints)
		data := make([]float64, len(pts))
		for i, p := range pts {
			data[i] = p.V
		}
		return graphStyle.Render(asciigraph.Plot(data,
			asciigraph.Height(plotH), asciigraph.Width(plotW),
			asciigraph.Caption(fmt.Sprintf("shock-front velocity [km/s] over r ∈ [0, %.0f] kpc", m.snap.RStar))))
	case tabShape:
		return graphStyle.Render(shellProfile(m.snap.Standoff(), plotW/2, plotH) +
			subStyle.Render("meridional shell cross-section (motion up)"))
	}
	return ""
}

func (m Model) viewDashboard() string {
	d := energetics.Compute(m.snap)
	rows := []struct {
		label, value string
	}{
		{"standoff R0", fmt.Sprintf("%.2f kpc", d.Standoff)},
		{"sound speed", fmt.Sprintf("%.1f km/s", d.SoundSpeed)},
		{"mach", fmt.Sprintf("%.1f", d.Mach)},
		{"wake age", fmt.Sprintf("%.1f Myr", d.WakeAge)},
		{"BH mass", fmt.Sprintf("%.2e Msun", d.MassEstimate)},
		{"shock @ apex", fmt.Sprintf("%.0f km/s", d.ShockVelApex)},
		{"wake LOS", fmt.Sprintf("%.1f km/s", d.WakeLOS)},
		{"v / c", fmt.Sprintf("%.4f", d.LightFraction)},
	}
	var b strings.Builder
	for _, r := range rows {
		b.WriteString(fmt.Sprintf("%s %s\n", labelStyle.Render(r.label), derivStyle.Render(r.value)))
	}
	return b.String()
}

// Run starts the interactive lab with the given starting snapshot.
func Run(snap params.Snapshot) error {
	_, err := tea.NewProgram(New(snap), tea.WithAltScreen()).Run()
	return err
}
